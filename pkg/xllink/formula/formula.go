// Package formula builds formula text from coordinates and finds the
// coordinates a formula refers to.
package formula

import (
	"strings"

	"github.com/xuri/efp"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
)

// Series returns ref as a formula, e.g. "='Sheet1'!B2:B5".
func Series(ref coord.Ref) string {
	return "=" + ref.FormulaRef()
}

// AbsSeries is Series with absolute markers, as chart series expect.
func AbsSeries(ref coord.Ref) string {
	return "=" + Absolute(ref)
}

// Absolute returns the sheet-qualified reference with absolute markers.
func Absolute(ref coord.Ref) string {
	switch r := ref.(type) {
	case coord.Cell:
		return r.AbsFormulaRef()
	case coord.Range:
		if r.Start == r.Stop {
			return r.Start.AbsFormulaRef()
		}
		return r.AbsFormulaRef()
	}
	return ref.Bounds().AbsFormulaRef()
}

// Call returns a function call over refs, e.g. "=SUM('Sheet1'!B2:B9)".
func Call(name string, refs ...coord.Ref) string {
	args := make([]string, len(refs))
	for i, r := range refs {
		args[i] = r.FormulaRef()
	}
	return "=" + strings.ToUpper(name) + "(" + strings.Join(args, ",") + ")"
}

// Reference is one range operand found in a formula.
type Reference struct {
	// Text is the operand as written.
	Text string `json:"text"`
	// Range is the parsed operand. It is zero for named references.
	Range coord.Range `json:"range"`
	// Named is set when the operand is a defined name rather than an address.
	Named bool `json:"named,omitempty"`
}

// References returns the range operands of text in the order they appear.
// Unqualified addresses are taken to be on sheet. Whole-column and whole-row
// references are reported as named since they have no finite corners.
func References(text, sheet string) []Reference {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	ps := efp.ExcelParser()
	tokens := ps.Parse(text)

	var refs []Reference
	for _, token := range tokens {
		if token.TType != efp.TokenTypeOperand || token.TSubType != efp.TokenSubTypeRange {
			continue
		}
		ref := Reference{Text: token.TValue}
		var err error
		if strings.Contains(token.TValue, "!") {
			ref.Range, err = coord.ParseFormulaRange(token.TValue)
		} else {
			ref.Range, err = coord.ParseRange(token.TValue, sheet)
		}
		if err != nil {
			ref.Range = coord.Range{}
			ref.Named = true
		}
		refs = append(refs, ref)
	}
	return refs
}
