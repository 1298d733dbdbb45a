package writer_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink"
	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/parser"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
	"github.com/ukaji3/xllink-go/pkg/xllink/writer"
)

func weekFrame(t *testing.T) *xllink.Frame {
	t.Helper()
	frame, err := xllink.NewFrame(
		selection.Flat("Mon", "Tues", "Weds", "Thurs"),
		selection.Flat("Meat", "Fish", "Veg", "Fruit"),
		[][]any{
			{1, 2, 3, 4},
			{5, 6, 7, 8},
			{9, 10, 11, 12},
			{13, 14, 15, 16},
		},
	)
	require.NoError(t, err)
	return frame
}

// reopen saves f and opens the saved copy.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	out, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func TestWriteFrame(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	m, err := writer.WriteFrame(f, weekFrame(t), writer.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "B2:E5", m.Data().Address())

	book := reopen(t, f)

	values, err := parser.ReadRange(book, m.Data())
	require.NoError(t, err)
	assert.Equal(t, [][]interface{}{
		{int64(1), int64(2), int64(3), int64(4)},
		{int64(5), int64(6), int64(7), int64(8)},
		{int64(9), int64(10), int64(11), int64(12)},
		{int64(13), int64(14), int64(15), int64(16)},
	}, values)

	header, err := parser.ReadValues(book, *m.Layout().ColumnHeader)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Meat", "Fish", "Veg", "Fruit"}, header)

	index, err := parser.ReadValues(book, *m.Layout().RowIndex)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Mon", "Tues", "Weds", "Thurs"}, index)

	// every cell the map reports holds the matching value
	frame := weekFrame(t)
	for pos, cell := range m.Cells() {
		v, err := book.GetCellValue(cell.Sheet, cell.Address())
		require.NoError(t, err)
		n, err := strconv.Atoi(v)
		require.NoError(t, err)
		assert.Equal(t, frame.Value(pos[0], pos[1]), n, cell.Address())
	}
}

func TestWriteFramePlacement(t *testing.T) {
	tests := []struct {
		name    string
		opts    func(*writer.Options)
		data    string
		probe   string
		probeAt string
	}{
		{
			name:    "offset",
			opts:    func(o *writer.Options) { o.StartRow, o.StartCol = 4, 8 },
			data:    "J6:M9",
			probe:   "Meat",
			probeAt: "J5",
		},
		{
			name:    "caption",
			opts:    func(o *writer.Options) { o.IndexLabel = "day" },
			data:    "B3:E6",
			probe:   "day",
			probeAt: "A2",
		},
		{
			name:    "no index",
			opts:    func(o *writer.Options) { o.WriteIndex = xllink.Bool(false) },
			data:    "A2:D5",
			probe:   "Meat",
			probeAt: "A1",
		},
		{
			name:    "no labels",
			opts:    func(o *writer.Options) { o.WriteIndex, o.WriteHeader = xllink.Bool(false), xllink.Bool(false) },
			data:    "A1:D4",
			probe:   "1",
			probeAt: "A1",
		},
		{
			name:    "new sheet",
			opts:    func(o *writer.Options) { o.Sheet = "Report" },
			data:    "B2:E5",
			probe:   "Mon",
			probeAt: "A2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()

			opts := writer.DefaultOptions()
			tt.opts(&opts)
			m, err := writer.WriteFrame(f, weekFrame(t), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.data, m.Data().Address())

			v, err := f.GetCellValue(m.Layout().Sheet(), tt.probeAt)
			require.NoError(t, err)
			assert.Equal(t, tt.probe, v)
		})
	}
}

func TestWriteFrameColumnSubset(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	opts := writer.DefaultOptions()
	opts.Columns = []selection.Label{selection.L("Veg"), selection.L("Meat")}
	m, err := writer.WriteFrame(f, weekFrame(t), opts)
	require.NoError(t, err)
	assert.Equal(t, "B2:C5", m.Data().Address())

	rows, err := parser.ReadRange(f, m.Layout().Extent())
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"", "Veg", "Meat"}, rows[0])
	assert.Equal(t, []interface{}{"Mon", int64(3), int64(1)}, rows[1])
}

func TestWriteFrameMultiLevelHeader(t *testing.T) {
	frame, err := xllink.NewFrame(
		selection.Flat("r1", "r2"),
		[]selection.Label{selection.L("a", "x"), selection.L("a", "y"), selection.L("b", "x")},
		[][]any{{1, 2, 3}, {4, 5, 6}},
	)
	require.NoError(t, err)

	t.Run("merged", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()

		m, err := writer.WriteFrame(f, frame, writer.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, "B3:D4", m.Data().Address())

		assert.Equal(t, "B1:D1", mustHeaderRow(t, m, 0).Address())
		for addr, want := range map[string]string{"B1": "a", "D1": "b"} {
			v, err := f.GetCellValue("Sheet1", addr)
			require.NoError(t, err)
			assert.Equal(t, want, v, addr)
		}

		inner, err := parser.ReadValues(f, mustHeaderRow(t, m, 1))
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"x", "y", "x"}, inner)

		merged, err := f.GetMergeCells("Sheet1")
		require.NoError(t, err)
		require.Len(t, merged, 1)
		assert.Equal(t, "B1", merged[0].GetStartAxis())
		assert.Equal(t, "C1", merged[0].GetEndAxis())
	})

	t.Run("unmerged", func(t *testing.T) {
		f := excelize.NewFile()
		defer f.Close()

		opts := writer.DefaultOptions()
		opts.MergeCells = xllink.Bool(false)
		opts.BoldLabels = xllink.Bool(false)
		m, err := writer.WriteFrame(f, frame, opts)
		require.NoError(t, err)

		outer, err := parser.ReadValues(f, mustHeaderRow(t, m, 0))
		require.NoError(t, err)
		assert.Equal(t, []interface{}{"a", "a", "b"}, outer)

		merged, err := f.GetMergeCells("Sheet1")
		require.NoError(t, err)
		assert.Empty(t, merged)
	})
}

func TestWriteFrameHierarchicalIndex(t *testing.T) {
	frame, err := xllink.NewFrame(
		[]selection.Label{selection.L("a", "x"), selection.L("a", "y")},
		selection.Flat("Meat", "Fish"),
		[][]any{{1, 2}, {3, 4}},
	)
	require.NoError(t, err)

	f := excelize.NewFile()
	defer f.Close()

	m, err := writer.WriteFrame(f, frame, writer.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "C2:D3", m.Data().Address())
	assert.Equal(t, "D1:D1", m.Layout().ColumnHeader.Address())

	// every data column carries its own label directly above it
	for j, want := range []string{"Meat", "Fish"} {
		top, ok := m.Cell(0, j)
		require.True(t, ok)
		above := top.Translate(-1, 0)

		v, err := f.GetCellValue("Sheet1", above.Address())
		require.NoError(t, err)
		assert.Equal(t, want, v, above.Address())

		c, ok := m.ColumnLabelCell(j)
		require.True(t, ok)
		assert.Equal(t, above, c)
	}

	ref, err := m.Column(selection.Key("Fish"))
	require.NoError(t, err)
	assert.Equal(t, "D2:D3", ref.Address())

	names, err := writer.DefineNames(f, m, "food")
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "'Sheet1'!C1:D1", names[2].Ranges[0])

	outer, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "a", outer)
}

func mustHeaderRow(t *testing.T, m *xllink.Map, level int) coord.Range {
	t.Helper()
	r, err := m.Layout().HeaderRow(level)
	require.NoError(t, err)
	return r
}

func TestWriteFrameErrors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	opts := writer.DefaultOptions()
	opts.Columns = []selection.Label{selection.L("Bread")}
	_, err := writer.WriteFrame(f, weekFrame(t), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, xllink.ErrLabelNotFound)

	var werr *writer.WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "layout", werr.Component)
	assert.Equal(t, "Sheet1", werr.Sheet)

	_, err = writer.WriteFrame(f, shapeOnly{}, writer.DefaultOptions())
	assert.ErrorIs(t, err, writer.ErrNoValues)
}

// shapeOnly is a table without values.
type shapeOnly struct{}

func (shapeOnly) Shape() (int, int)               { return 1, 1 }
func (shapeOnly) IndexLabels() []selection.Label  { return selection.Flat(0) }
func (shapeOnly) ColumnLabels() []selection.Label { return selection.Flat(0) }

func TestAddChart(t *testing.T) {
	tests := []struct {
		name   string
		spec   writer.ChartSpec
		cell   string
		series []string // name range, categories, values of the first series
		count  int
	}{
		{
			name:   "by column",
			spec:   writer.ChartSpec{Type: "line", Title: "Sales"},
			cell:   "G1",
			series: []string{"'Sheet1'!$B$1", "'Sheet1'!$A$2:$A$5", "'Sheet1'!$B$2:$B$5"},
			count:  4,
		},
		{
			name: "by row",
			spec: writer.ChartSpec{
				Cell:        "H10",
				Orientation: writer.ByRow,
				Rows:        selection.Key("Tues"),
			},
			cell:   "H10",
			series: []string{"'Sheet1'!$A$3", "'Sheet1'!$B$1:$E$1", "'Sheet1'!$B$3:$E$3"},
			count:  1,
		},
		{
			name: "row and column subset",
			spec: writer.ChartSpec{
				Rows:    selection.Slice(1, 3),
				Columns: selection.KeySlice(selection.L("Fish"), selection.L("Veg")),
			},
			cell:   "G1",
			series: []string{"'Sheet1'!$C$1", "'Sheet1'!$A$3:$A$4", "'Sheet1'!$C$3:$C$4"},
			count:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()

			m, err := writer.WriteFrame(f, weekFrame(t), writer.DefaultOptions())
			require.NoError(t, err)

			chart, err := writer.AddChart(f, m, tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.cell, chart.Cell)
			require.Len(t, chart.Series, tt.count)

			first := chart.Series[0]
			assert.Equal(t, tt.series, []string{first.NameRange, first.XRange, first.YRange})
			assert.Equal(t, tt.spec.Orientation.String(), chart.Orientation)
		})
	}
}

func TestAddChartWithoutLabels(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	opts := writer.DefaultOptions()
	opts.WriteHeader = xllink.Bool(false)
	opts.WriteIndex = xllink.Bool(false)
	m, err := writer.WriteFrame(f, weekFrame(t), opts)
	require.NoError(t, err)

	chart, err := writer.AddChart(f, m, writer.ChartSpec{Columns: selection.Key("Veg")})
	require.NoError(t, err)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, "Veg", chart.Series[0].Name)
	assert.Empty(t, chart.Series[0].NameRange)
	assert.Empty(t, chart.Series[0].XRange)
	assert.Equal(t, "'Sheet1'!$C$1:$C$4", chart.Series[0].YRange)
}

func TestAddChartErrors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	m, err := writer.WriteFrame(f, weekFrame(t), writer.DefaultOptions())
	require.NoError(t, err)

	_, err = writer.AddChart(f, m, writer.ChartSpec{Type: "sunburst"})
	assert.ErrorIs(t, err, writer.ErrChartType)

	_, err = writer.AddChart(f, m, writer.ChartSpec{Columns: selection.Key("Bread")})
	assert.ErrorIs(t, err, xllink.ErrLabelNotFound)

	var werr *writer.WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "chart", werr.Component)
}

func TestDefineNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	m, err := writer.WriteFrame(f, weekFrame(t), writer.DefaultOptions())
	require.NoError(t, err)

	names, err := writer.DefineNames(f, m, "sales")
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "sales_data", names[0].Name)
	assert.Equal(t, "'Sheet1'!$B$2:$E$5", names[0].RefersTo)
	assert.Equal(t, "sales_index", names[1].Name)
	assert.Equal(t, "sales_columns", names[2].Name)

	book := reopen(t, f)

	data, ok := parser.LookupDefinedRange(book, "sales_data")
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.True(t, data[0].Equal(m.Data()))

	got := map[string][]string{}
	for _, dn := range parser.ExtractDefinedRanges(book) {
		got[dn.Name] = dn.Ranges
	}
	assert.Equal(t, map[string][]string{
		"sales_data":    {"'Sheet1'!B2:E5"},
		"sales_index":   {"'Sheet1'!A2:A5"},
		"sales_columns": {"'Sheet1'!B1:E1"},
	}, got)
}

func TestDefineNamesSkipsUnwrittenLabels(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	opts := writer.DefaultOptions()
	opts.WriteIndex = xllink.Bool(false)
	m, err := writer.WriteFrame(f, weekFrame(t), opts)
	require.NoError(t, err)

	names, err := writer.DefineNames(f, m, "t")
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "t_data", names[0].Name)
	assert.Equal(t, "t_columns", names[1].Name)
}
