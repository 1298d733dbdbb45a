package models

// ChartSeries represents the ranges one chart series is wired to.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for series values.
	YRange string `json:"y_range,omitempty"`
}

// Chart represents a chart added over a placed table.
type Chart struct {
	// Name is the drawing object name, when read from a workbook.
	Name string `json:"name,omitempty"`
	// Cell is the top-left cell the chart is anchored to.
	Cell string `json:"cell"`
	// ChartType is the chart type (e.g., column, line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Orientation is "rows" when each table row is a series, "columns" otherwise.
	// It is empty for charts read from a workbook.
	Orientation string `json:"orientation,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
