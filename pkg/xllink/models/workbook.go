package models

// SheetReport represents what was found on a single sheet.
type SheetReport struct {
	// UsedRange is the bounding range of non-empty cells.
	UsedRange string `json:"used_range,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []string `json:"print_areas,omitempty"`
	// Charts contains the charts drawn on the sheet with their series ranges.
	Charts []Chart `json:"charts,omitempty"`
	// Rows contains non-empty rows, when requested.
	Rows []CellRow `json:"rows,omitempty"`
}

// WorkbookReport represents workbook-level container with per-sheet data.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets maps sheet name to SheetReport.
	Sheets map[string]SheetReport `json:"sheets"`
	// Names lists the workbook's defined names.
	Names []DefinedRange `json:"names,omitempty"`
}
