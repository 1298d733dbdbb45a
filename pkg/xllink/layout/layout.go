// Package layout computes where the parts of a table land on a sheet.
//
// Given a table's shape, its label depth on both axes, and the placement
// options used to write it, Derive returns the column-header, row-index and
// data rectangles together with the anchor cell. Nothing is read or written.
package layout

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
)

// ErrEmptyTable indicates a table with no rows or no columns.
var ErrEmptyTable = errors.New("table has no rows or no columns")

// ErrInvalidParams indicates negative offsets or level counts, or a table
// that would not fit on a sheet.
var ErrInvalidParams = errors.New("invalid layout parameters")

// Params describes a table about to be placed on a sheet.
type Params struct {
	// Sheet is the target sheet. Empty means coord.DefaultSheet.
	Sheet string `json:"sheet" yaml:"sheet" toml:"sheet"`
	// StartRow is the zero-based row of the top-left corner.
	StartRow int `json:"start_row" yaml:"start_row" toml:"start_row"`
	// StartCol is the zero-based column of the top-left corner.
	StartCol int `json:"start_col" yaml:"start_col" toml:"start_col"`
	// Rows is the number of data rows.
	Rows int `json:"rows" yaml:"rows" toml:"rows"`
	// Cols is the number of data columns.
	Cols int `json:"cols" yaml:"cols" toml:"cols"`
	// IndexLevels is the number of row-label columns. Zero means 1.
	IndexLevels int `json:"index_levels" yaml:"index_levels" toml:"index_levels"`
	// HeaderLevels is the number of column-label rows. Zero means 1.
	HeaderLevels int `json:"header_levels" yaml:"header_levels" toml:"header_levels"`
	// WriteHeader places column labels above the data.
	WriteHeader bool `json:"write_header" yaml:"write_header" toml:"write_header"`
	// WriteIndex places row labels left of the data.
	WriteIndex bool `json:"write_index" yaml:"write_index" toml:"write_index"`
	// IndexLabel reserves a caption row between the header and the data
	// for the index names. It only has an effect when WriteHeader is set.
	IndexLabel bool `json:"index_label" yaml:"index_label" toml:"index_label"`
}

// Layout holds the placements derived from Params.
type Layout struct {
	// Anchor is the top-left cell of the placed table.
	Anchor coord.Cell `json:"anchor"`
	// ColumnHeader covers every header row. With a hierarchical index its
	// start column sits one right of the data, over the blank cell above the
	// outermost index level. Nil when the header is not written.
	ColumnHeader *coord.Range `json:"column_header,omitempty"`
	// RowIndex is the innermost index column over the data rows. Nil when the
	// index is not written.
	RowIndex *coord.Range `json:"row_index,omitempty"`
	// Data covers the values only.
	Data coord.Range `json:"data"`

	params Params
}

// Derive computes the placements for p.
func Derive(p Params) (Layout, error) {
	p, err := p.normalize()
	if err != nil {
		return Layout{}, err
	}

	headerRowOffset := 0
	if p.WriteHeader {
		headerRowOffset = p.HeaderLevels
		if p.IndexLabel {
			headerRowOffset++
		}
	}
	indexColOffset := 0
	if p.WriteIndex {
		indexColOffset = p.IndexLevels
	}

	anchor := coord.NewCell(p.Sheet, p.StartRow, p.StartCol)
	dataStart := anchor.Translate(headerRowOffset, indexColOffset)
	l := Layout{
		Anchor: anchor,
		Data: coord.Range{
			Start: dataStart,
			Stop:  dataStart.Translate(p.Rows-1, p.Cols-1),
		},
		params: p,
	}

	if p.WriteHeader {
		start := anchor.Translate(0, indexColOffset)
		header := coord.Range{
			Start: start,
			Stop:  start.Translate(p.HeaderLevels-1, p.Cols-1),
		}
		// a hierarchical index leaves a blank header cell above its outermost
		// level; the labels themselves stay over their data columns
		if p.WriteIndex && p.IndexLevels > 1 && p.Cols > 1 {
			header.Start = header.Start.Translate(0, 1)
		}
		l.ColumnHeader = &header
	}

	if p.WriteIndex {
		start := coord.NewCell(p.Sheet, dataStart.Row, dataStart.Col-1)
		index := coord.Range{
			Start: start,
			Stop:  start.Translate(p.Rows-1, 0),
		}
		l.RowIndex = &index
	}

	if stop := l.Extent().Stop; !stop.Valid() {
		return Layout{}, fmt.Errorf("%w: table ends at row %d, column %d, beyond the sheet", ErrInvalidParams, stop.Row, stop.Col)
	}
	return l, nil
}

func (p Params) normalize() (Params, error) {
	if p.Rows == 0 || p.Cols == 0 {
		return p, fmt.Errorf("%w: shape (%d, %d)", ErrEmptyTable, p.Rows, p.Cols)
	}
	if p.Rows < 0 || p.Cols < 0 {
		return p, fmt.Errorf("%w: negative shape (%d, %d)", ErrInvalidParams, p.Rows, p.Cols)
	}
	if p.StartRow < 0 || p.StartCol < 0 {
		return p, fmt.Errorf("%w: negative start (%d, %d)", ErrInvalidParams, p.StartRow, p.StartCol)
	}
	if p.Sheet == "" {
		p.Sheet = coord.DefaultSheet
	}
	if p.IndexLevels == 0 {
		p.IndexLevels = 1
	}
	if p.HeaderLevels == 0 {
		p.HeaderLevels = 1
	}
	if p.IndexLevels < 1 || p.HeaderLevels < 1 {
		return p, fmt.Errorf("%w: levels must be positive (index %d, header %d)", ErrInvalidParams, p.IndexLevels, p.HeaderLevels)
	}
	return p, nil
}

// Params returns the parameters the layout was derived from, with defaults
// filled in.
func (l Layout) Params() Params {
	return l.params
}

// Sheet returns the sheet the table is placed on.
func (l Layout) Sheet() string {
	return l.Anchor.Sheet
}

// ColumnLabels returns the innermost header row over the data columns, the
// span of the column axis.
func (l Layout) ColumnLabels() (coord.Range, bool) {
	if l.ColumnHeader == nil {
		return coord.Range{}, false
	}
	return l.headerRow(l.ColumnHeader.Normalize().Stop.Row), true
}

// HeaderRow returns the header row holding label level (0 is outermost),
// over the data columns.
func (l Layout) HeaderRow(level int) (coord.Range, error) {
	if l.ColumnHeader == nil {
		return coord.Range{}, fmt.Errorf("%w: header is not written", ErrInvalidParams)
	}
	if level < 0 || level >= l.params.HeaderLevels {
		return coord.Range{}, fmt.Errorf("%w: header level %d of %d", coord.ErrIndexOutOfRange, level, l.params.HeaderLevels)
	}
	return l.headerRow(l.ColumnHeader.Normalize().Start.Row + level), nil
}

func (l Layout) headerRow(row int) coord.Range {
	d := l.Data.Normalize()
	return coord.Range{
		Start: coord.NewCell(d.Sheet(), row, d.Start.Col),
		Stop:  coord.NewCell(d.Sheet(), row, d.Stop.Col),
	}
}

// IndexColumn returns the index column holding label level (0 is outermost).
func (l Layout) IndexColumn(level int) (coord.Range, error) {
	if l.RowIndex == nil {
		return coord.Range{}, fmt.Errorf("%w: index is not written", ErrInvalidParams)
	}
	if level < 0 || level >= l.params.IndexLevels {
		return coord.Range{}, fmt.Errorf("%w: index level %d of %d", coord.ErrIndexOutOfRange, level, l.params.IndexLevels)
	}
	shift := level - (l.params.IndexLevels - 1)
	return l.RowIndex.Translate(0, shift), nil
}

// Caption returns the row of index-name cells, one per index level. It is
// present only when both the index and the caption row are written.
func (l Layout) Caption() (coord.Range, bool) {
	p := l.params
	if !p.WriteIndex || !p.WriteHeader || !p.IndexLabel {
		return coord.Range{}, false
	}
	start := coord.NewCell(p.Sheet, p.StartRow+p.HeaderLevels, p.StartCol)
	return coord.Range{Start: start, Stop: start.Translate(0, p.IndexLevels-1)}, true
}

// Extent returns the smallest range covering the anchor and every placement
// on the anchor's sheet.
func (l Layout) Extent() coord.Range {
	ext := coord.Range{Start: l.Anchor, Stop: l.Anchor}
	for _, r := range []*coord.Range{&l.Data, l.ColumnHeader, l.RowIndex} {
		if r == nil || r.Sheet() != l.Anchor.Sheet {
			continue
		}
		if u, err := ext.Union(*r); err == nil {
			ext = u
		}
	}
	return ext
}

// Assemble builds a layout from placements found elsewhere, such as label
// cells read back from a workbook. index and header are the innermost label
// column and row; both must be on data's sheet. The layout reports one label
// level per axis and no caption.
func Assemble(data, index, header coord.Range) (Layout, error) {
	data = data.Normalize()
	sheet := data.Sheet()
	for _, r := range []coord.Range{index, header} {
		if r.Sheet() != sheet {
			return Layout{}, fmt.Errorf("%w: labels on %q, data on %q", coord.ErrCrossSheet, r.Sheet(), sheet)
		}
	}
	index, header = index.Normalize(), header.Normalize()
	rows, cols := data.Shape()
	l := Layout{Data: data, RowIndex: &index, ColumnHeader: &header}
	l.Anchor = data.Start
	l.Anchor = l.Extent().Start
	l.params = Params{
		Sheet:        sheet,
		StartRow:     l.Anchor.Row,
		StartCol:     l.Anchor.Col,
		Rows:         rows,
		Cols:         cols,
		IndexLevels:  1,
		HeaderLevels: 1,
		WriteHeader:  true,
		WriteIndex:   true,
	}
	return l, nil
}
