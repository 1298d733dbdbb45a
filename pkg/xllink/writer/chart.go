package writer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink"
	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/formula"
	"github.com/ukaji3/xllink-go/pkg/xllink/models"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

// Orientation selects whether a chart series runs down a table column or
// across a table row.
type Orientation int

const (
	// ByColumn makes one series per selected column, categorised by the index.
	ByColumn Orientation = iota
	// ByRow makes one series per selected row, categorised by the columns.
	ByRow
)

func (o Orientation) String() string {
	if o == ByRow {
		return "rows"
	}
	return "columns"
}

var chartTypes = map[string]excelize.ChartType{
	"column":   excelize.Col,
	"bar":      excelize.Bar,
	"line":     excelize.Line,
	"pie":      excelize.Pie,
	"area":     excelize.Area,
	"scatter":  excelize.Scatter,
	"doughnut": excelize.Doughnut,
	"radar":    excelize.Radar,
}

// ChartTypes returns the chart type names AddChart accepts.
func ChartTypes() []string {
	return []string{"column", "bar", "line", "pie", "area", "scatter", "doughnut", "radar"}
}

// ChartSpec describes a chart over part of a placed table.
type ChartSpec struct {
	// Cell anchors the chart. Empty places it two columns right of the table.
	Cell string
	// Type is one of ChartTypes. Empty means "column".
	Type string
	// Title is the chart title.
	Title string
	// Orientation picks the series direction.
	Orientation Orientation
	// Rows and Columns narrow the charted data. Nil means all.
	Rows    selection.Selector
	Columns selection.Selector
}

// AddChart adds a chart over the table m describes. Series names refer to
// the written label cells where there are any, and categories to the other
// axis' labels.
func AddChart(f *excelize.File, m *xllink.Map, spec ChartSpec) (*models.Chart, error) {
	sheet := m.Layout().Sheet()

	typeName := strings.ToLower(spec.Type)
	if typeName == "" {
		typeName = "column"
	}
	chartType, ok := chartTypes[typeName]
	if !ok {
		return nil, newWriteError(sheet, "chart", fmt.Errorf("%w: %q", ErrChartType, spec.Type))
	}

	rows, cols := orAll(spec.Rows), orAll(spec.Columns)
	rs, err := m.Index().Locate(rows)
	if err != nil {
		return nil, newWriteError(sheet, "chart", err)
	}
	cs, err := m.Columns().Locate(cols)
	if err != nil {
		return nil, newWriteError(sheet, "chart", err)
	}

	cell := spec.Cell
	if cell == "" {
		ext := m.Layout().Extent()
		cell = coord.NewCell(sheet, ext.Start.Row, ext.Stop.Col+2).Address()
	}

	// series run along one axis, categories along the other
	series, across := cs, rs
	seriesLabel, categoryLabel := m.ColumnLabelCell, m.IndexLabelCell
	seriesAxis := m.Columns()
	if spec.Orientation == ByRow {
		series, across = rs, cs
		seriesLabel, categoryLabel = m.IndexLabelCell, m.ColumnLabelCell
		seriesAxis = m.Index()
	}

	var categories string
	if first, ok := categoryLabel(across.Lo); ok {
		last, _ := categoryLabel(across.Hi)
		categories = formula.Absolute(coord.Range{Start: first, Stop: last})
	}

	out := &models.Chart{
		Cell:        cell,
		ChartType:   typeName,
		Title:       spec.Title,
		Orientation: spec.Orientation.String(),
	}
	chart := &excelize.Chart{Type: chartType}
	if spec.Title != "" {
		chart.Title = []excelize.RichTextRun{{Text: spec.Title}}
	}

	data := m.Data()
	for k := series.Lo; k <= series.Hi; k++ {
		var values coord.Range
		if spec.Orientation == ByRow {
			values, err = data.Window(k, across.Lo, k, across.Hi)
		} else {
			values, err = data.Window(across.Lo, k, across.Hi, k)
		}
		if err != nil {
			return nil, newWriteError(sheet, "chart", err)
		}

		label, _ := seriesAxis.Label(k)
		s := models.ChartSeries{
			Name:   label.String(),
			XRange: categories,
			YRange: formula.Absolute(values),
		}
		name := s.Name
		if c, ok := seriesLabel(k); ok {
			s.NameRange = formula.Absolute(c)
			name = s.NameRange
		}
		out.Series = append(out.Series, s)
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       name,
			Categories: categories,
			Values:     s.YRange,
		})
	}

	if err := f.AddChart(sheet, cell, chart); err != nil {
		return nil, newWriteError(sheet, "chart", err)
	}
	return out, nil
}

func orAll(sel selection.Selector) selection.Selector {
	if sel == nil {
		return selection.All()
	}
	return sel
}
