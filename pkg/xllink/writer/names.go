package writer

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink"
	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/formula"
	"github.com/ukaji3/xllink-go/pkg/xllink/models"
)

// DefineNames adds workbook names for the parts of the table m describes:
// prefix_data for the values, and prefix_index and prefix_columns for the
// label cells that were written.
func DefineNames(f *excelize.File, m *xllink.Map, prefix string) ([]models.DefinedRange, error) {
	l := m.Layout()
	parts := []struct {
		suffix string
		rng    *coord.Range
	}{
		{"_data", &l.Data},
		{"_index", l.RowIndex},
		{"_columns", nil},
	}
	if labels, ok := l.ColumnLabels(); ok {
		parts[2].rng = &labels
	}

	var out []models.DefinedRange
	for _, p := range parts {
		if p.rng == nil {
			continue
		}
		ref := formula.Absolute(*p.rng)
		dn := &excelize.DefinedName{
			Name:     prefix + p.suffix,
			RefersTo: ref,
		}
		if err := f.SetDefinedName(dn); err != nil {
			return nil, newWriteError(l.Sheet(), "names", err)
		}
		out = append(out, models.DefinedRange{
			Name:     dn.Name,
			RefersTo: ref,
			Ranges:   []string{p.rng.FormulaRef()},
		})
	}
	return out, nil
}
