package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseAreas(t *testing.T) {
	tests := []struct {
		ref  string
		want []string
	}{
		{"'Sheet1'!$A$1:$D$10", []string{"'Sheet1'!A1:D10"}},
		{"=Sheet1!$A$1:$D$10,Sheet1!$F$1:$F$4", []string{"'Sheet1'!A1:D10", "'Sheet1'!F1:F4"}},
		{"'My Sheet'!B2", []string{"'My Sheet'!B2:B2"}},
		{"A1:B2", nil},
		{"SUM(Sheet1!A1:A3)", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			var got []string
			for _, area := range ParseAreas(tt.ref) {
				got = append(got, area.FormulaRef())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefinedRanges(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)

	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "sales_data", RefersTo: "'Data'!$B$2:$E$5"}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "rate", RefersTo: "0.2", Scope: "Data"}))
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{Name: "_xlnm.Print_Area", RefersTo: "'Sheet1'!$A$1:$C$3", Scope: "Sheet1"}))

	f2, _ := saveAndOpen(t, f)

	byName := map[string]int{}
	ranges := ExtractDefinedRanges(f2)
	for i, dn := range ranges {
		byName[dn.Name] = i
	}
	require.Contains(t, byName, "sales_data")
	require.Contains(t, byName, "rate")

	sales := ranges[byName["sales_data"]]
	assert.Empty(t, sales.Scope)
	assert.Equal(t, []string{"'Data'!B2:E5"}, sales.Ranges)

	rate := ranges[byName["rate"]]
	assert.Equal(t, "Data", rate.Scope)
	assert.Empty(t, rate.Ranges)

	found, ok := LookupDefinedRange(f2, "SALES_DATA")
	require.True(t, ok)
	assert.Equal(t, "B2:E5", found[0].Address())

	_, ok = LookupDefinedRange(f2, "rate")
	assert.False(t, ok, "constants have no ranges")
	_, ok = LookupDefinedRange(f2, "missing")
	assert.False(t, ok)

	areas := ExtractPrintAreas(f2)
	require.Len(t, areas["Sheet1"], 1)
	assert.Equal(t, "A1:C3", areas["Sheet1"][0].Address())
}
