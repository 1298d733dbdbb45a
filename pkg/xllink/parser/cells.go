// Package parser reads cell values, used bounds and defined names back out of
// a workbook.
package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/models"
)

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]interface{})
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			name, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				return nil, err
			}
			cellMap[name] = parseValue(cellValue)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// ReadRange returns the values in rng row by row. Empty cells read as "".
func ReadRange(f *excelize.File, rng coord.Range) ([][]interface{}, error) {
	var out [][]interface{}
	for line := range rng.Rows() {
		values, err := ReadValues(f, line)
		if err != nil {
			return nil, err
		}
		out = append(out, values)
	}
	return out, nil
}

// ReadValues returns the values in rng in address order.
func ReadValues(f *excelize.File, rng coord.Range) ([]interface{}, error) {
	var out []interface{}
	for c := range rng.Cells() {
		v, err := f.GetCellValue(c.Sheet, c.Address())
		if err != nil {
			return nil, err
		}
		out = append(out, parseValue(v))
	}
	return out, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
