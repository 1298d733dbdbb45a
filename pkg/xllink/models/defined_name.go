package models

// DefinedRange represents a workbook defined name and the ranges it covers.
type DefinedRange struct {
	// Name is the defined name.
	Name string `json:"name"`
	// Scope is the sheet the name is local to, or empty for the workbook.
	Scope string `json:"scope,omitempty"`
	// RefersTo is the formula text of the name.
	RefersTo string `json:"refers_to"`
	// Ranges holds each parsed area as a formula reference.
	Ranges []string `json:"ranges,omitempty"`
}
