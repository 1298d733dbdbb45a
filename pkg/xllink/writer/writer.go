// Package writer places tables on excelize sheets at the coordinates xllink
// derives for them, and wires charts and defined names to the result.
//
// An *excelize.File is not safe for concurrent use, so neither are these
// functions on the same file.
package writer

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink"
	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

// Options configures WriteFrame.
type Options struct {
	xllink.Options
	// MergeCells merges runs of repeated outer labels on multi-level axes.
	// If nil, defaults to true.
	MergeCells *bool
	// BoldLabels styles header and index cells bold.
	// If nil, defaults to true.
	BoldLabels *bool
}

// DefaultOptions returns default writer options.
func DefaultOptions() Options {
	return Options{Options: xllink.DefaultOptions()}
}

// ShouldMergeCells returns whether repeated outer labels are merged.
func (o Options) ShouldMergeCells() bool {
	if o.MergeCells != nil {
		return *o.MergeCells
	}
	return true
}

// ShouldBoldLabels returns whether label cells are styled bold.
func (o Options) ShouldBoldLabels() bool {
	if o.BoldLabels != nil {
		return *o.BoldLabels
	}
	return true
}

// WriteFrame writes t to f at the placement opts describe and returns the
// coordinate map of what was written. The sheet is created if missing.
func WriteFrame(f *excelize.File, t xllink.Table, opts Options) (*xllink.Map, error) {
	sheet := opts.SheetName()
	log := opts.Log()

	m, err := xllink.Locate(t, opts.Options)
	if err != nil {
		return nil, newWriteError(sheet, "layout", err)
	}
	view, err := xllink.Project(t, opts.Columns)
	if err != nil {
		return nil, newWriteError(sheet, "layout", err)
	}
	values, ok := view.(xllink.Valuer)
	if !ok {
		return nil, newWriteError(sheet, "values", ErrNoValues)
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, newWriteError(sheet, "layout", err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, newWriteError(sheet, "layout", err)
		}
	}

	w := &sheetWriter{f: f, sheet: sheet, merge: opts.ShouldMergeCells()}
	if opts.ShouldBoldLabels() {
		if w.labelStyle, err = f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
		}); err != nil {
			return nil, newWriteError(sheet, "header", err)
		}
	}

	l := m.Layout()
	if l.ColumnHeader != nil {
		if err := w.writeHeader(m); err != nil {
			return nil, newWriteError(sheet, "header", err)
		}
	}
	if l.RowIndex != nil {
		if err := w.writeIndex(m); err != nil {
			return nil, newWriteError(sheet, "index", err)
		}
	}
	if caption, ok := l.Caption(); ok {
		if err := w.writeCaption(caption, xllink.Caption(view, opts.Options)); err != nil {
			return nil, newWriteError(sheet, "caption", err)
		}
	}
	if err := w.writeValues(m, values); err != nil {
		return nil, newWriteError(sheet, "values", err)
	}

	rows, cols := m.Shape()
	log.Debug().
		Str("sheet", sheet).
		Str("data", m.Data().Address()).
		Int("rows", rows).
		Int("cols", cols).
		Bool("header", l.ColumnHeader != nil).
		Bool("index", l.RowIndex != nil).
		Msg("wrote table")

	return m, nil
}

type sheetWriter struct {
	f          *excelize.File
	sheet      string
	merge      bool
	labelStyle int
}

func (w *sheetWriter) writeHeader(m *xllink.Map) error {
	l := m.Layout()
	labels := m.Columns().Labels()
	levels := l.Params().HeaderLevels
	for level := 0; level < levels; level++ {
		row, err := l.HeaderRow(level)
		if err != nil {
			return err
		}
		if err := w.writeLabels(row, labels, level, level < levels-1); err != nil {
			return err
		}
	}
	return nil
}

func (w *sheetWriter) writeIndex(m *xllink.Map) error {
	l := m.Layout()
	labels := m.Index().Labels()
	levels := l.Params().IndexLevels
	for level := 0; level < levels; level++ {
		col, err := l.IndexColumn(level)
		if err != nil {
			return err
		}
		if err := w.writeLabels(col, labels, level, level < levels-1); err != nil {
			return err
		}
	}
	return nil
}

// writeLabels writes one level of labels along span. Outer levels print
// only the first label of a run of equal prefixes, merged over the run.
func (w *sheetWriter) writeLabels(span coord.Range, labels []selection.Label, level int, outer bool) error {
	for i := 0; i < len(labels); {
		j := i + 1
		if outer {
			for j < len(labels) && labels[j].HasPrefix(labels[i][:min(level+1, len(labels[i]))]) {
				j++
			}
		}
		first, err := span.Offset(i)
		if err != nil {
			return err
		}
		last, err := span.Offset(j - 1)
		if err != nil {
			return err
		}
		if level < len(labels[i]) {
			if err := w.f.SetCellValue(w.sheet, first.Address(), labels[i][level]); err != nil {
				return err
			}
		}
		if w.merge && j-i > 1 {
			if err := w.f.MergeCell(w.sheet, first.Address(), last.Address()); err != nil {
				return err
			}
		}
		if w.labelStyle != 0 {
			if err := w.f.SetCellStyle(w.sheet, first.Address(), last.Address(), w.labelStyle); err != nil {
				return err
			}
		}
		if !w.merge && outer {
			// unmerged outer levels repeat the label on every row of the run
			for k := i + 1; k < j; k++ {
				if level >= len(labels[k]) {
					continue
				}
				c, _ := span.Offset(k)
				if err := w.f.SetCellValue(w.sheet, c.Address(), labels[k][level]); err != nil {
					return err
				}
			}
		}
		i = j
	}
	return nil
}

func (w *sheetWriter) writeCaption(span coord.Range, names []string) error {
	for k, name := range names {
		if name == "" {
			continue
		}
		c, err := span.Offset(k)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(w.sheet, c.Address(), name); err != nil {
			return err
		}
		if w.labelStyle != 0 {
			if err := w.f.SetCellStyle(w.sheet, c.Address(), c.Address(), w.labelStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *sheetWriter) writeValues(m *xllink.Map, values xllink.Valuer) error {
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ {
		start, _ := m.Cell(i, 0)
		row := make([]interface{}, cols)
		for j := range row {
			row[j] = values.Value(i, j)
		}
		if err := w.f.SetSheetRow(w.sheet, start.Address(), &row); err != nil {
			return err
		}
	}
	return nil
}
