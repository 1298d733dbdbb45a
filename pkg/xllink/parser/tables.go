package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectBounds returns the bounding range of the non-empty cells of a sheet.
// ok is false for an empty sheet.
func DetectBounds(f *excelize.File, sheetName string) (rng coord.Range, ok bool, err error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return coord.Range{}, false, err
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return coord.Range{}, false, nil
	}
	return coord.Range{
		Start: coord.NewCell(sheetName, minRow, minCol),
		Stop:  coord.NewCell(sheetName, maxRow, maxCol),
	}, true, nil
}

// DetectTables detects table-like regions in a sheet.
// Returns the ranges that likely represent tables.
func DetectTables(f *excelize.File, sheetName string, params TableDetectionParams) ([]coord.Range, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return nil, nil
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil, nil
	}

	return []coord.Range{{
		Start: coord.NewCell(sheetName, minRow, minCol),
		Stop:  coord.NewCell(sheetName, maxRow, maxCol),
	}}, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
