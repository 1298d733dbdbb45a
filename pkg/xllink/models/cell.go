// Package models defines the JSON reports produced for placed tables and
// inspected workbooks.
package models

// CellRow represents a single row of non-empty cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column letter to cell value.
	C map[string]interface{} `json:"c"`
}
