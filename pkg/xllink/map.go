package xllink

import (
	"fmt"
	"iter"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/layout"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

// Map is a grid shaped like a placed table whose entry (i, j) is the sheet
// cell holding value (i, j). Selections against it return sheet coordinates:
// a coord.Cell when both axes name a single position, a coord.Range
// otherwise.
//
// A Map is read-only and safe for concurrent use.
type Map struct {
	layout  layout.Layout
	index   *selection.Axis
	columns *selection.Axis
}

// NewMap returns a map over data. The axes must have one label per data row
// and per data column; their spans are taken as the printed label cells and
// must be on data's sheet, else ErrCrossSheet.
func NewMap(data coord.Range, index, columns *selection.Axis) (*Map, error) {
	if index == nil || columns == nil {
		return nil, fmt.Errorf("%w: both axes are required", ErrAxisLength)
	}
	l, err := layout.Assemble(data, index.Span(), columns.Span())
	if err != nil {
		return nil, err
	}
	return newMap(l, index, columns)
}

func newMap(l layout.Layout, index, columns *selection.Axis) (*Map, error) {
	rows, cols := l.Data.Shape()
	if index.Len() != rows {
		return nil, fmt.Errorf("%w: %d index labels for %d data rows", ErrAxisLength, index.Len(), rows)
	}
	if columns.Len() != cols {
		return nil, fmt.Errorf("%w: %d column labels for %d data columns", ErrAxisLength, columns.Len(), cols)
	}
	return &Map{layout: l, index: index, columns: columns}, nil
}

// Layout returns the placements of the table.
func (m *Map) Layout() layout.Layout {
	return m.layout
}

// Data returns the range holding the values.
func (m *Map) Data() coord.Range {
	return m.layout.Data
}

// Shape returns the number of rows and columns.
func (m *Map) Shape() (rows, cols int) {
	return m.layout.Data.Shape()
}

// Index returns the row axis.
func (m *Map) Index() *selection.Axis {
	return m.index
}

// Columns returns the column axis.
func (m *Map) Columns() *selection.Axis {
	return m.columns
}

// Select resolves row against the index and col against the columns.
func (m *Map) Select(row, col selection.Selector) (coord.Ref, error) {
	rs, err := m.index.Locate(row)
	if err != nil {
		return nil, err
	}
	cs, err := m.columns.Locate(col)
	if err != nil {
		return nil, err
	}

	start := m.layout.Data.Start
	if rs.Scalar && cs.Scalar {
		return start.Translate(rs.Lo, cs.Lo), nil
	}
	return coord.Range{
		Start: start.Translate(rs.Lo, cs.Lo),
		Stop:  start.Translate(rs.Hi, cs.Hi),
	}, nil
}

// Get resolves a Pair like Select. Any other selector picks rows.
func (m *Map) Get(sel selection.Selector) (coord.Ref, error) {
	if row, col, ok := selection.Split(sel); ok {
		return m.Select(row, col)
	}
	return m.Row(sel)
}

// Column returns the data cells of the selected columns, over all rows.
func (m *Map) Column(sel selection.Selector) (coord.Ref, error) {
	return m.Select(selection.All(), sel)
}

// Row returns the data cells of the selected rows, across all columns.
func (m *Map) Row(sel selection.Selector) (coord.Ref, error) {
	return m.Select(sel, selection.All())
}

// At returns the cell at the given row and column labels.
func (m *Map) At(rowKey, colKey selection.Label) (coord.Cell, error) {
	ref, err := m.Select(selection.Key(rowKey...), selection.Key(colKey...))
	if err != nil {
		return coord.Cell{}, err
	}
	return ref.(coord.Cell), nil
}

// IAt returns the cell at row position i and column position j. Negative
// positions count from the end.
func (m *Map) IAt(i, j int) (coord.Cell, error) {
	ref, err := m.Select(selection.At(i), selection.At(j))
	if err != nil {
		return coord.Cell{}, err
	}
	return ref.(coord.Cell), nil
}

// Slice is Select that always returns a range.
func (m *Map) Slice(row, col selection.Selector) (coord.Range, error) {
	ref, err := m.Select(row, col)
	if err != nil {
		return coord.Range{}, err
	}
	return ref.Bounds(), nil
}

// Cell returns entry (i, j) of the grid.
func (m *Map) Cell(i, j int) (coord.Cell, bool) {
	rows, cols := m.Shape()
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return coord.Cell{}, false
	}
	return m.layout.Data.Start.Translate(i, j), true
}

// Cells yields every grid entry with its (row, column) position, row by row.
func (m *Map) Cells() iter.Seq2[[2]int, coord.Cell] {
	start := m.layout.Data.Start
	rows, cols := m.Shape()
	return func(yield func([2]int, coord.Cell) bool) {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if !yield([2]int{i, j}, start.Translate(i, j)) {
					return
				}
			}
		}
	}
}

// IndexLabelCell returns the sheet cell holding the label of row i, if the
// index was written.
func (m *Map) IndexLabelCell(i int) (coord.Cell, bool) {
	if m.layout.RowIndex == nil {
		return coord.Cell{}, false
	}
	c, err := m.index.LabelCell(i)
	return c, err == nil
}

// ColumnLabelCell returns the sheet cell holding the label of column j, if
// the header was written. For multi-level headers it is the innermost level.
func (m *Map) ColumnLabelCell(j int) (coord.Cell, bool) {
	if m.layout.ColumnHeader == nil {
		return coord.Cell{}, false
	}
	c, err := m.columns.LabelCell(j)
	return c, err == nil
}
