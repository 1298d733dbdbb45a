package xllink

import (
	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/layout"
	"github.com/ukaji3/xllink-go/pkg/xllink/models"
)

// Placement reports where m's table lands.
func (m *Map) Placement() models.Placement {
	return PlacementOf(m.layout)
}

// PlacementOf reports the placements of l.
func PlacementOf(l layout.Layout) models.Placement {
	rows, cols := l.Data.Shape()
	p := models.Placement{
		Sheet:   l.Sheet(),
		Anchor:  l.Anchor.Address(),
		Data:    l.Data.Address(),
		DataRef: l.Data.FormulaRef(),
		Extent:  l.Extent().Address(),
		Rows:    rows,
		Cols:    cols,
	}
	if l.RowIndex != nil {
		p.Index = l.RowIndex.Address()
	}
	if l.ColumnHeader != nil {
		p.Columns = l.ColumnHeader.Address()
	}
	return p
}

// Describe reports the coordinates ref resolved to for a row and a column
// selector.
func Describe(row, col string, ref coord.Ref) models.Selection {
	b := ref.Bounds()
	rows, cols := b.Shape()
	kind := "range"
	if _, ok := ref.(coord.Cell); ok {
		kind = "cell"
	}
	return models.Selection{
		Row:        row,
		Col:        col,
		Kind:       kind,
		Address:    ref.Address(),
		FormulaRef: ref.FormulaRef(),
		Rows:       rows,
		Cols:       cols,
	}
}
