package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
)

// saveAndOpen saves f to a temporary file and opens it again.
func saveAndOpen(t *testing.T, f *excelize.File) (*excelize.File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	f2, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2, path
}

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Header2"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "A4", "Text"))

	f2, _ := saveAndOpen(t, f)

	rows, err := ExtractCells(f2, sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].R)
	assert.Equal(t, "Header1", rows[0].C["A"])
	assert.Equal(t, int64(100), rows[1].C["A"])
	assert.Equal(t, 200.5, rows[1].C["B"])
	assert.Equal(t, 4, rows[2].R, "empty rows are skipped")

	_, err = ExtractCells(f2, "Missing")
	assert.Error(t, err)
}

func TestReadRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "B2", &[]interface{}{1, "x", 2.5}))
	require.NoError(t, f.SetSheetRow("Sheet1", "B3", &[]interface{}{4, nil, 6}))

	rng, err := coord.ParseRange("B2:D3", "Sheet1")
	require.NoError(t, err)

	values, err := ReadRange(f, rng)
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{
		{int64(1), "x", 2.5},
		{int64(4), "", int64(6)},
	}, values)

	column, err := ReadValues(f, coord.Range{Start: coord.NewCell("Sheet1", 1, 3), Stop: coord.NewCell("Sheet1", 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{2.5, int64(6)}, column)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseValue(tt.input), "parseValue(%q)", tt.input)
	}
}
