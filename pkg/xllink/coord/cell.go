// Package coord provides spreadsheet cell and range addresses.
//
// Rows and columns are zero-based. Conversion to and from A1 notation goes
// through excelize, which works one-based.
package coord

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name used when none is given.
const DefaultSheet = "Sheet1"

// refError is rendered in place of an address that cannot exist on a sheet.
const refError = "#REF!"

// Ref is implemented by Cell and Range.
type Ref interface {
	// Address returns the reference without sheet qualification, e.g. "C3" or "B2:D9".
	Address() string
	// FormulaRef returns the sheet-qualified reference, e.g. "'Sheet1'!C3".
	FormulaRef() string
	// Bounds returns the rectangle covered by the reference.
	Bounds() Range
	String() string
}

// Cell is the location of a single cell.
type Cell struct {
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

// NewCell returns the cell at row, col on sheet.
func NewCell(sheet string, row, col int) Cell {
	return Cell{Sheet: sheet, Row: row, Col: col}
}

// ParseCell parses an A1-style address such as "F1" or "$F$1".
func ParseCell(address, sheet string) (Cell, error) {
	text := strings.TrimSpace(address)
	if text == "" || strings.ContainsAny(text, ":!") {
		return Cell{}, newAddressError(address, "not a cell address")
	}
	col, row, err := excelize.CellNameToCoordinates(text)
	if err != nil {
		return Cell{}, &AddressError{Text: address, Err: fmt.Errorf("%w: %v", ErrAddressFormat, err)}
	}
	return Cell{Sheet: sheet, Row: row - 1, Col: col - 1}, nil
}

// ParseFormulaCell parses a sheet-qualified reference such as "'Accounts'!F1".
func ParseFormulaCell(ref string) (Cell, error) {
	sheet, address, err := splitSheet(ref)
	if err != nil {
		return Cell{}, err
	}
	return ParseCell(address, sheet)
}

// Valid reports whether c addresses a cell that can exist on a sheet.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < excelize.TotalRows && c.Col < excelize.MaxColumns
}

// RowCol returns the zero-based row and column.
func (c Cell) RowCol() (int, int) {
	return c.Row, c.Col
}

// Address returns the A1-style address, or "#REF!" if c is not Valid.
func (c Cell) Address() string {
	if !c.Valid() {
		return refError
	}
	name, err := excelize.CoordinatesToCellName(c.Col+1, c.Row+1)
	if err != nil {
		return refError
	}
	return name
}

// AbsAddress returns the address with absolute markers, e.g. "$F$1".
func (c Cell) AbsAddress() string {
	if !c.Valid() {
		return refError
	}
	name, err := excelize.CoordinatesToCellName(c.Col+1, c.Row+1, true)
	if err != nil {
		return refError
	}
	return name
}

// FormulaRef returns the reference usable in formulas, e.g. "'Accounts'!F1".
func (c Cell) FormulaRef() string {
	return quoteSheet(c.Sheet) + "!" + c.Address()
}

// AbsFormulaRef is FormulaRef with absolute markers.
func (c Cell) AbsFormulaRef() string {
	return quoteSheet(c.Sheet) + "!" + c.AbsAddress()
}

// Bounds returns the single-cell range at c.
func (c Cell) Bounds() Range {
	return Range{Start: c, Stop: c}
}

func (c Cell) String() string {
	return c.FormulaRef()
}

// Translate returns c moved by dRow rows and dCol columns.
func (c Cell) Translate(dRow, dCol int) Cell {
	c.Row += dRow
	c.Col += dCol
	return c
}

// To returns the range spanning c and other.
func (c Cell) To(other Cell) (Range, error) {
	return NewRange(c, other)
}

// Is reports whether c is the cell referenced by text. text may be a formula
// reference or a bare address, which is taken to be on c's sheet.
func (c Cell) Is(text string) bool {
	var other Cell
	var err error
	if strings.Contains(text, "!") {
		other, err = ParseFormulaCell(text)
	} else {
		other, err = ParseCell(text, c.Sheet)
	}
	return err == nil && other == c
}

// quoteSheet wraps a sheet name in single quotes, doubling embedded quotes.
func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// splitSheet separates "'Sheet'!A1" into its sheet name and address.
func splitSheet(ref string) (string, string, error) {
	text := strings.TrimPrefix(strings.TrimSpace(ref), "=")
	if !strings.HasPrefix(text, "'") {
		idx := strings.LastIndex(text, "!")
		if idx <= 0 {
			return "", "", newAddressError(ref, "missing sheet separator")
		}
		return text[:idx], text[idx+1:], nil
	}

	var sb strings.Builder
	for i := 1; i < len(text); i++ {
		if text[i] != '\'' {
			sb.WriteByte(text[i])
			continue
		}
		if i+1 < len(text) && text[i+1] == '\'' {
			sb.WriteByte('\'')
			i++
			continue
		}
		rest := text[i+1:]
		if !strings.HasPrefix(rest, "!") {
			return "", "", newAddressError(ref, "missing sheet separator")
		}
		if sb.Len() == 0 {
			return "", "", newAddressError(ref, "empty sheet name")
		}
		return sb.String(), rest[1:], nil
	}
	return "", "", newAddressError(ref, "unbalanced sheet quotes")
}
