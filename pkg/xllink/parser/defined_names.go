package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/models"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractDefinedRanges lists every defined name of the workbook with the
// ranges it refers to. Names whose formula is not a plain list of ranges
// are listed without ranges.
func ExtractDefinedRanges(f *excelize.File) []models.DefinedRange {
	var result []models.DefinedRange
	for _, dn := range f.GetDefinedName() {
		entry := models.DefinedRange{
			Name:     dn.Name,
			RefersTo: dn.RefersTo,
		}
		if dn.Scope != "" && dn.Scope != "Workbook" {
			entry.Scope = dn.Scope
		}
		for _, r := range ParseAreas(dn.RefersTo) {
			entry.Ranges = append(entry.Ranges, r.FormulaRef())
		}
		result = append(result, entry)
	}
	return result
}

// LookupDefinedRange returns the ranges behind the defined name.
func LookupDefinedRange(f *excelize.File, name string) ([]coord.Range, bool) {
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, name) {
			areas := ParseAreas(dn.RefersTo)
			return areas, len(areas) > 0
		}
	}
	return nil, false
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]coord.Range {
	result := make(map[string][]coord.Range)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		for _, area := range ParseAreas(dn.RefersTo) {
			result[area.Sheet()] = append(result[area.Sheet()], area)
		}
	}
	return result
}

// ParseAreas parses a reference list such as
// "'Sheet1'!$A$1:$D$10,'Sheet1'!$F$1:$F$4". Parts that are not
// sheet-qualified ranges are skipped.
func ParseAreas(ref string) []coord.Range {
	var areas []coord.Range
	for _, part := range strings.Split(strings.TrimPrefix(ref, "="), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		area, err := coord.ParseFormulaRange(part)
		if err != nil {
			continue
		}
		areas = append(areas, area)
	}
	return areas
}
