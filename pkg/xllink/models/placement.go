package models

// Placement reports where a table was put on a sheet.
type Placement struct {
	// Sheet is the sheet holding the table.
	Sheet string `json:"sheet"`
	// Anchor is the top-left cell of the table.
	Anchor string `json:"anchor"`
	// Data is the range holding the values.
	Data string `json:"data"`
	// DataRef is Data as a formula reference.
	DataRef string `json:"data_ref"`
	// Index is the innermost row-label column (empty if not written).
	Index string `json:"index,omitempty"`
	// Columns is the column-label block (empty if not written).
	Columns string `json:"columns,omitempty"`
	// Extent is the smallest range covering everything placed.
	Extent string `json:"extent"`
	// Rows is the number of data rows.
	Rows int `json:"rows"`
	// Cols is the number of data columns.
	Cols int `json:"cols"`
}

// Selection reports the coordinates a selector resolved to.
type Selection struct {
	// Row is the row selector as given.
	Row string `json:"row"`
	// Col is the column selector as given.
	Col string `json:"col"`
	// Kind is "cell" or "range".
	Kind string `json:"kind"`
	// Address is the reference without sheet, e.g. "C3" or "B2:D9".
	Address string `json:"address"`
	// FormulaRef is the sheet-qualified reference.
	FormulaRef string `json:"formula_ref"`
	// Rows is the height of the result.
	Rows int `json:"rows"`
	// Cols is the width of the result.
	Cols int `json:"cols"`
}

// WriteReport is the result of writing a table with its extras.
type WriteReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Placement is where the table landed.
	Placement Placement `json:"placement"`
	// Chart describes the chart added, if any.
	Chart *Chart `json:"chart,omitempty"`
	// Names lists the defined names added.
	Names []DefinedRange `json:"names,omitempty"`
}
