package xllink

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

// Table is the shape and labels of a table. Locate needs nothing else.
type Table interface {
	Shape() (rows, cols int)
	IndexLabels() []selection.Label
	ColumnLabels() []selection.Label
}

// IndexNamer is implemented by tables whose index levels carry names.
type IndexNamer interface {
	IndexNames() []string
}

// Valuer is implemented by tables that can be written to a sheet.
type Valuer interface {
	Value(i, j int) any
}

// Frame is an in-memory table.
type Frame struct {
	// Index holds one label per row.
	Index []selection.Label
	// Columns holds one label per column.
	Columns []selection.Label
	// Names holds the index level names (optional).
	Names []string
	// Values holds the cells, row by row.
	Values [][]any
}

// NewFrame returns a frame after checking that values match the labels.
func NewFrame(index, columns []selection.Label, values [][]any) (*Frame, error) {
	if len(values) != len(index) {
		return nil, fmt.Errorf("%w: %d rows of values for %d index labels", ErrTableShape, len(values), len(index))
	}
	for i, row := range values {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d values for %d columns", ErrTableShape, i, len(row), len(columns))
		}
	}
	return &Frame{Index: index, Columns: columns, Values: values}, nil
}

// Shape returns the number of rows and columns.
func (f *Frame) Shape() (int, int) {
	return len(f.Index), len(f.Columns)
}

// IndexLabels returns the row labels.
func (f *Frame) IndexLabels() []selection.Label {
	return f.Index
}

// ColumnLabels returns the column labels.
func (f *Frame) ColumnLabels() []selection.Label {
	return f.Columns
}

// IndexNames returns the index level names.
func (f *Frame) IndexNames() []string {
	return f.Names
}

// Value returns the cell at row i, column j, or nil when out of range.
func (f *Frame) Value(i, j int) any {
	if i < 0 || i >= len(f.Values) || j < 0 || j >= len(f.Values[i]) {
		return nil
	}
	return f.Values[i][j]
}

// FrameFromRecords builds a frame from text records such as CSV rows. The
// first headerRows records hold column labels and the first indexCols fields
// of every record hold row labels. When both are present, the top-left block
// holds the index names (taken from the last header row). Numeric fields
// become float64 values.
func FrameFromRecords(records [][]string, headerRows, indexCols int) (*Frame, error) {
	if headerRows < 0 || indexCols < 0 {
		return nil, fmt.Errorf("%w: negative label depth", ErrTableShape)
	}
	if len(records) <= headerRows {
		return nil, fmt.Errorf("%w: %d records with %d header rows", ErrEmptyTable, len(records), headerRows)
	}
	width := len(records[0])
	for i, rec := range records {
		if len(rec) != width {
			return nil, fmt.Errorf("%w: record %d has %d fields, want %d", ErrTableShape, i, len(rec), width)
		}
	}
	if width <= indexCols {
		return nil, fmt.Errorf("%w: %d fields with %d index columns", ErrEmptyTable, width, indexCols)
	}

	f := &Frame{}
	for j := indexCols; j < width; j++ {
		var label selection.Label
		for i := 0; i < headerRows; i++ {
			label = append(label, records[i][j])
		}
		if headerRows == 0 {
			label = selection.L(j - indexCols)
		}
		f.Columns = append(f.Columns, label)
	}
	if headerRows > 0 && indexCols > 0 {
		names := records[headerRows-1][:indexCols]
		if strings.Join(names, "") != "" {
			f.Names = append([]string(nil), names...)
		}
	}

	for i, rec := range records[headerRows:] {
		var label selection.Label
		for j := 0; j < indexCols; j++ {
			label = append(label, rec[j])
		}
		if indexCols == 0 {
			label = selection.L(i)
		}
		f.Index = append(f.Index, label)

		row := make([]any, 0, width-indexCols)
		for _, field := range rec[indexCols:] {
			row = append(row, parseField(field))
		}
		f.Values = append(f.Values, row)
	}
	return f, nil
}

func parseField(s string) any {
	if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return n
	}
	return s
}

// Project returns a view of t holding only columns, in that order. Each
// label must match a column of t exactly. Nil columns returns t unchanged.
func Project(t Table, columns []selection.Label) (Table, error) {
	if len(columns) == 0 {
		return t, nil
	}
	all := t.ColumnLabels()
	source := make([]int, len(columns))
	for i, want := range columns {
		found := -1
		for j, have := range all {
			if have.Equal(want) {
				found = j
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: column %s", ErrLabelNotFound, want)
		}
		source[i] = found
	}
	return &projection{Table: t, columns: columns, source: source}, nil
}

type projection struct {
	Table
	columns []selection.Label
	source  []int
}

func (p *projection) Shape() (int, int) {
	rows, _ := p.Table.Shape()
	return rows, len(p.columns)
}

func (p *projection) ColumnLabels() []selection.Label {
	return p.columns
}

func (p *projection) IndexNames() []string {
	if n, ok := p.Table.(IndexNamer); ok {
		return n.IndexNames()
	}
	return nil
}

func (p *projection) Value(i, j int) any {
	v, ok := p.Table.(Valuer)
	if !ok || j < 0 || j >= len(p.source) {
		return nil
	}
	return v.Value(i, p.source[j])
}
