package xllink

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/layout"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

// Locate works out where t lands on the sheet when placed with opts and
// returns the coordinate map for it. Only the shape and labels of t are
// used.
func Locate(t Table, opts Options) (*Map, error) {
	sheet := opts.SheetName()
	log := opts.Log()

	t, err := Project(t, opts.Columns)
	if err != nil {
		return nil, NewLocateError(sheet, "columns", err)
	}

	rows, cols := t.Shape()
	index, columns := t.IndexLabels(), t.ColumnLabels()
	if len(index) != rows || len(columns) != cols {
		err := fmt.Errorf("%w: shape (%d, %d) with %d index and %d column labels", ErrTableShape, rows, cols, len(index), len(columns))
		return nil, NewLocateError(sheet, "table", err)
	}

	writeIndex := opts.ShouldWriteIndex()
	params := layout.Params{
		Sheet:        sheet,
		StartRow:     opts.StartRow,
		StartCol:     opts.StartCol,
		Rows:         rows,
		Cols:         cols,
		IndexLevels:  depth(index),
		HeaderLevels: depth(columns),
		WriteHeader:  opts.ShouldWriteHeader(),
		WriteIndex:   writeIndex,
		IndexLabel:   writeIndex && Caption(t, opts) != nil,
	}
	l, err := layout.Derive(params)
	if err != nil {
		return nil, NewLocateError(sheet, "layout", err)
	}

	rowSpan := firstColumn(l.Data)
	if l.RowIndex != nil {
		rowSpan = *l.RowIndex
	}
	rowAxis, err := selection.NewRowAxis(index, rowSpan)
	if err != nil {
		return nil, NewLocateError(sheet, "index", err)
	}
	if n, ok := t.(IndexNamer); ok {
		rowAxis = rowAxis.WithNames(n.IndexNames()...)
	}

	colSpan := firstRow(l.Data)
	if labels, ok := l.ColumnLabels(); ok {
		colSpan = labels
	}
	colAxis, err := selection.NewColumnAxis(columns, colSpan)
	if err != nil {
		return nil, NewLocateError(sheet, "columns", err)
	}

	m, err := newMap(l, rowAxis.WithMode(opts.MatchMode), colAxis.WithMode(opts.MatchMode))
	if err != nil {
		return nil, NewLocateError(sheet, "table", err)
	}

	ev := log.Debug().
		Str("sheet", sheet).
		Str("data", l.Data.Address()).
		Int("rows", rows).
		Int("cols", cols)
	if l.RowIndex != nil {
		ev = ev.Str("index", l.RowIndex.Address())
	}
	if l.ColumnHeader != nil {
		ev = ev.Str("columns", l.ColumnHeader.Address())
	}
	ev.Msg("located table")

	return m, nil
}

// Caption returns the index captions to print in the caption row, one per
// index level, or nil when there are none. opts.IndexLabel wins over the
// table's own index names.
func Caption(t Table, opts Options) []string {
	levels := depth(t.IndexLabels())
	if opts.IndexLabel != "" {
		out := make([]string, levels)
		out[0] = opts.IndexLabel
		return out
	}
	n, ok := t.(IndexNamer)
	if !ok {
		return nil
	}
	names := n.IndexNames()
	if strings.Join(names, "") == "" {
		return nil
	}
	out := make([]string, levels)
	copy(out, names)
	return out
}

// depth returns the number of label levels, at least 1.
func depth(labels []selection.Label) int {
	d := 1
	for _, l := range labels {
		d = max(d, len(l))
	}
	return d
}

func firstColumn(r coord.Range) coord.Range {
	return coord.Range{Start: r.Start, Stop: coord.NewCell(r.Sheet(), r.Stop.Row, r.Start.Col)}
}

func firstRow(r coord.Range) coord.Range {
	return coord.Range{Start: r.Start, Stop: coord.NewCell(r.Sheet(), r.Start.Row, r.Stop.Col)}
}
