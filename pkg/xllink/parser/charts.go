package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "line",
	"line3DChart":    "line3d",
	"barChart":       "bar",
	"bar3DChart":     "bar3d",
	"areaChart":      "area",
	"area3DChart":    "area3d",
	"pieChart":       "pie",
	"pie3DChart":     "pie3d",
	"doughnutChart":  "doughnut",
	"scatterChart":   "scatter",
	"bubbleChart":    "bubble",
	"radarChart":     "radar",
	"surfaceChart":   "surface",
	"surface3DChart": "surface3d",
	"stockChart":     "stock",
	"ofPieChart":     "pie_of_pie",
}

// chartAnchor is a chart frame found in a drawing part.
type chartAnchor struct {
	name     string
	rID      string
	row, col int
}

// ExtractCharts reads the charts drawn on each sheet of the workbook at
// xlsxPath, with the ranges their series refer to.
func ExtractCharts(xlsxPath string) (map[string][]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheets, err := sheetParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Chart)
	for sheetName, sheetPart := range sheets {
		drawings, err := readRels(&r.Reader, sheetPart, "drawing")
		if err != nil {
			return nil, err
		}
		for _, d := range drawings {
			charts, err := chartsInDrawing(&r.Reader, sheetName, resolvePart(sheetPart, d.target))
			if err != nil {
				return nil, err
			}
			result[sheetName] = append(result[sheetName], charts...)
		}
	}
	return result, nil
}

func chartsInDrawing(r *zip.Reader, sheetName, drawingPart string) ([]models.Chart, error) {
	data, err := readZipFile(r, drawingPart)
	if err != nil || data == nil {
		return nil, err
	}
	rels, err := readRels(r, drawingPart, "chart")
	if err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels))
	for _, rel := range rels {
		targets[rel.id] = resolvePart(drawingPart, rel.target)
	}

	var charts []models.Chart
	for _, anchor := range parseDrawingAnchors(data) {
		part, ok := targets[anchor.rID]
		if !ok {
			continue
		}
		chartXML, err := readZipFile(r, part)
		if err != nil {
			return nil, err
		}
		if chartXML == nil {
			continue
		}
		chart := parseChartXML(chartXML)
		chart.Name = anchor.name
		chart.Cell = coord.NewCell(sheetName, anchor.row, anchor.col).Address()
		charts = append(charts, chart)
	}
	return charts, nil
}

// parseDrawingAnchors finds the chart frames of a drawing and the cell each
// one starts at.
func parseDrawingAnchors(data []byte) []chartAnchor {
	var anchors []chartAnchor
	var cur *chartAnchor
	inFrom := false

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "twoCellAnchor", "oneCellAnchor":
				cur = &chartAnchor{}
			case "from":
				inFrom = true
			case "col", "row":
				if cur == nil || !inFrom {
					continue
				}
				txt, err := readElementText(decoder)
				if err != nil {
					return anchors
				}
				n, _ := strconv.Atoi(strings.TrimSpace(txt))
				if t.Name.Local == "col" {
					cur.col = n
				} else {
					cur.row = n
				}
			case "cNvPr":
				if cur != nil {
					cur.name = attr(t, "name")
				}
			case "chart":
				if cur != nil {
					cur.rID = attr(t, "id")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "from":
				inFrom = false
			case "twoCellAnchor", "oneCellAnchor":
				if cur != nil && cur.rID != "" {
					anchors = append(anchors, *cur)
				}
				cur = nil
			}
		}
	}
	return anchors
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte) models.Chart {
	var chart models.Chart
	inPlot := false

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch name := se.Name.Local; {
		case name == "title" && !inPlot:
			chart.Title = parseChartTitle(decoder)
		case name == "plotArea":
			inPlot = true
		case name == "barDir":
			if attr(se, "val") == "col" {
				chart.ChartType = strings.Replace(chart.ChartType, "bar", "column", 1)
			}
		case name == "ser":
			chart.Series = append(chart.Series, parseSingleSeries(decoder))
		default:
			if ct, ok := ChartTypeMap[name]; ok && chart.ChartType == "" {
				chart.ChartType = ct
			}
		}
	}

	if chart.ChartType == "" {
		chart.ChartType = "unknown"
	}
	return chart
}

// walkElement reads up to the end of the element whose start was just read,
// handing every nested start element to visit. visit reports whether it read
// the element through its end tag.
func walkElement(decoder *xml.Decoder, visit func(xml.StartElement) bool) {
	for depth := 1; depth > 0; {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		switch t := token.(type) {
		case xml.StartElement:
			if !visit(t) {
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle joins the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var title strings.Builder
	walkElement(decoder, func(t xml.StartElement) bool {
		if t.Name.Local != "t" {
			return false
		}
		txt, _ := readElementText(decoder)
		title.WriteString(txt)
		return true
	})
	return strings.TrimSpace(title.String())
}

// parseSingleSeries reads a ser element. Scatter series carry xVal/yVal in
// place of cat/val. A literal series name lands in Name, a referenced one in
// NameRange.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	walkElement(decoder, func(t xml.StartElement) bool {
		switch t.Name.Local {
		case "tx":
			walkElement(decoder, func(t xml.StartElement) bool {
				switch t.Name.Local {
				case "f":
					s.NameRange = trimmedText(decoder)
				case "v":
					s.Name = trimmedText(decoder)
				default:
					return false
				}
				return true
			})
		case "cat", "xVal":
			s.XRange = seriesFormula(decoder)
		case "val", "yVal":
			s.YRange = seriesFormula(decoder)
		default:
			return false
		}
		return true
	})
	return s
}

// seriesFormula returns the first range formula below the current element.
func seriesFormula(decoder *xml.Decoder) string {
	var ref string
	walkElement(decoder, func(t xml.StartElement) bool {
		if t.Name.Local != "f" {
			return false
		}
		if f := trimmedText(decoder); ref == "" {
			ref = f
		}
		return true
	})
	return ref
}

func trimmedText(decoder *xml.Decoder) string {
	txt, _ := readElementText(decoder)
	return strings.TrimSpace(txt)
}
