package coord

import (
	"fmt"
	"iter"
	"strings"
)

// Range is a rectangular block of cells on one sheet, given by two corners.
// The corners may be in either order; Normalize puts Start at the top left.
type Range struct {
	Start Cell `json:"start"`
	Stop  Cell `json:"stop"`
}

// NewRange returns the range between start and stop.
func NewRange(start, stop Cell) (Range, error) {
	if start.Sheet != stop.Sheet {
		return Range{}, fmt.Errorf("%w: %q and %q", ErrCrossSheet, start.Sheet, stop.Sheet)
	}
	return Range{Start: start, Stop: stop}, nil
}

// ParseRange parses "A1:B7" (or a single "A1") on sheet.
func ParseRange(text, sheet string) (Range, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	switch len(parts) {
	case 1:
		c, err := ParseCell(parts[0], sheet)
		if err != nil {
			return Range{}, err
		}
		return c.Bounds(), nil
	case 2:
		start, err := ParseCell(parts[0], sheet)
		if err != nil {
			return Range{}, err
		}
		stop, err := ParseCell(parts[1], sheet)
		if err != nil {
			return Range{}, err
		}
		return Range{Start: start, Stop: stop}, nil
	}
	return Range{}, newAddressError(text, "not a range address")
}

// ParseFormulaRange parses "'Sheet1'!A1:B7". Absolute markers are accepted.
func ParseFormulaRange(text string) (Range, error) {
	sheet, address, err := splitSheet(text)
	if err != nil {
		return Range{}, err
	}
	return ParseRange(address, sheet)
}

// Sheet returns the sheet the range is on.
func (r Range) Sheet() string {
	return r.Start.Sheet
}

// Normalize returns the same rectangle with Start at the top-left corner.
func (r Range) Normalize() Range {
	return Range{
		Start: Cell{Sheet: r.Start.Sheet, Row: min(r.Start.Row, r.Stop.Row), Col: min(r.Start.Col, r.Stop.Col)},
		Stop:  Cell{Sheet: r.Start.Sheet, Row: max(r.Start.Row, r.Stop.Row), Col: max(r.Start.Col, r.Stop.Col)},
	}
}

// Equal reports whether r and other cover the same cells.
func (r Range) Equal(other Range) bool {
	return r.Normalize() == other.Normalize()
}

// Shape returns the height and width of the range.
func (r Range) Shape() (rows, cols int) {
	n := r.Normalize()
	return n.Stop.Row - n.Start.Row + 1, n.Stop.Col - n.Start.Col + 1
}

// IsRow reports whether the range is one row high.
func (r Range) IsRow() bool {
	rows, _ := r.Shape()
	return rows == 1
}

// IsCol reports whether the range is one column wide.
func (r Range) IsCol() bool {
	_, cols := r.Shape()
	return cols == 1
}

// Is1D reports whether the range is a single row or column.
func (r Range) Is1D() bool {
	return r.IsRow() || r.IsCol()
}

// Is2D reports whether the range spans several rows and several columns.
func (r Range) Is2D() bool {
	return !r.Is1D()
}

// Contains reports whether c lies inside the range.
func (r Range) Contains(c Cell) bool {
	n := r.Normalize()
	return c.Sheet == n.Start.Sheet &&
		c.Row >= n.Start.Row && c.Row <= n.Stop.Row &&
		c.Col >= n.Start.Col && c.Col <= n.Stop.Col
}

// Union returns the smallest range covering r and other.
func (r Range) Union(other Range) (Range, error) {
	if r.Sheet() != other.Sheet() {
		return Range{}, fmt.Errorf("%w: %q and %q", ErrCrossSheet, r.Sheet(), other.Sheet())
	}
	a, b := r.Normalize(), other.Normalize()
	return Range{
		Start: Cell{Sheet: a.Start.Sheet, Row: min(a.Start.Row, b.Start.Row), Col: min(a.Start.Col, b.Start.Col)},
		Stop:  Cell{Sheet: a.Start.Sheet, Row: max(a.Stop.Row, b.Stop.Row), Col: max(a.Stop.Col, b.Stop.Col)},
	}, nil
}

// Address returns the range in A1 notation, e.g. "A1:B7".
func (r Range) Address() string {
	n := r.Normalize()
	return n.Start.Address() + ":" + n.Stop.Address()
}

// AbsAddress returns the range with absolute markers, e.g. "$A$1:$B$7".
func (r Range) AbsAddress() string {
	n := r.Normalize()
	return n.Start.AbsAddress() + ":" + n.Stop.AbsAddress()
}

// FormulaRef returns the sheet-qualified range, e.g. "'Sheet1'!A1:B7".
func (r Range) FormulaRef() string {
	return quoteSheet(r.Sheet()) + "!" + r.Address()
}

// AbsFormulaRef returns the sheet-qualified range with absolute markers.
func (r Range) AbsFormulaRef() string {
	return quoteSheet(r.Sheet()) + "!" + r.AbsAddress()
}

// Bounds returns r.
func (r Range) Bounds() Range {
	return r
}

func (r Range) String() string {
	return r.FormulaRef()
}

// Translate moves both corners by the same offset. The shape is unchanged.
func (r Range) Translate(dRow, dCol int) Range {
	return Range{Start: r.Start.Translate(dRow, dCol), Stop: r.Stop.Translate(dRow, dCol)}
}

// Len returns the number of cells in a one-dimensional range.
func (r Range) Len() (int, error) {
	rows, cols := r.Shape()
	switch {
	case cols == 1:
		return rows, nil
	case rows == 1:
		return cols, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrNotOneDimensional, r.Address())
}

// Offset returns the i-th cell of a one-dimensional range. Negative i counts
// from the end.
func (r Range) Offset(i int) (Cell, error) {
	n, err := r.Len()
	if err != nil {
		return Cell{}, err
	}
	pos, err := NormalizeIndex(i, n)
	if err != nil {
		return Cell{}, err
	}
	return r.along(pos), nil
}

// Span returns the cells at positions lo through hi (inclusive) of a
// one-dimensional range. Negative positions count from the end.
func (r Range) Span(lo, hi int) (Range, error) {
	n, err := r.Len()
	if err != nil {
		return Range{}, err
	}
	if lo, err = NormalizeIndex(lo, n); err != nil {
		return Range{}, err
	}
	if hi, err = NormalizeIndex(hi, n); err != nil {
		return Range{}, err
	}
	if lo > hi {
		return Range{}, fmt.Errorf("%w: span %d..%d is empty", ErrIndexOutOfRange, lo, hi)
	}
	return Range{Start: r.along(lo), Stop: r.along(hi)}, nil
}

// At returns the cell at row offset i and column offset j. Negative offsets
// count from the end.
func (r Range) At(i, j int) (Cell, error) {
	rows, cols := r.Shape()
	row, err := NormalizeIndex(i, rows)
	if err != nil {
		return Cell{}, err
	}
	col, err := NormalizeIndex(j, cols)
	if err != nil {
		return Cell{}, err
	}
	return r.Normalize().Start.Translate(row, col), nil
}

// Window returns the sub-range from (r0, c0) to (r1, c1), both inclusive.
func (r Range) Window(r0, c0, r1, c1 int) (Range, error) {
	start, err := r.At(r0, c0)
	if err != nil {
		return Range{}, err
	}
	stop, err := r.At(r1, c1)
	if err != nil {
		return Range{}, err
	}
	if start.Row > stop.Row || start.Col > stop.Col {
		return Range{}, fmt.Errorf("%w: window (%d,%d)-(%d,%d) is empty", ErrIndexOutOfRange, r0, c0, r1, c1)
	}
	return Range{Start: start, Stop: stop}, nil
}

// Cells yields every cell in address order, row by row.
func (r Range) Cells() iter.Seq[Cell] {
	n := r.Normalize()
	return func(yield func(Cell) bool) {
		for row := n.Start.Row; row <= n.Stop.Row; row++ {
			for col := n.Start.Col; col <= n.Stop.Col; col++ {
				if !yield(Cell{Sheet: n.Start.Sheet, Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// Rows yields one single-row range per row.
func (r Range) Rows() iter.Seq[Range] {
	n := r.Normalize()
	return func(yield func(Range) bool) {
		for row := n.Start.Row; row <= n.Stop.Row; row++ {
			line := Range{
				Start: Cell{Sheet: n.Start.Sheet, Row: row, Col: n.Start.Col},
				Stop:  Cell{Sheet: n.Start.Sheet, Row: row, Col: n.Stop.Col},
			}
			if !yield(line) {
				return
			}
		}
	}
}

// along returns the cell pos steps from the top-left corner of a 1-D range.
func (r Range) along(pos int) Cell {
	start := r.Normalize().Start
	if r.IsCol() {
		return start.Translate(pos, 0)
	}
	return start.Translate(0, pos)
}

// NormalizeIndex maps a possibly negative position onto [0, n).
func NormalizeIndex(i, n int) (int, error) {
	pos := i
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return pos, nil
}
