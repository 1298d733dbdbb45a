// Package xllink maps a table written into a spreadsheet to the cells it
// occupies, so charts, formulas and defined names can be wired to the table
// with the same selectors used on the table itself.
package xllink

import (
	"github.com/rs/zerolog"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

// Options configures where and how a table is placed.
type Options struct {
	// Sheet is the target sheet name. Empty means coord.DefaultSheet.
	Sheet string
	// StartRow is the zero-based row of the top-left corner.
	StartRow int
	// StartCol is the zero-based column of the top-left corner.
	StartCol int
	// WriteHeader specifies whether column labels are written.
	// If nil, defaults to true.
	WriteHeader *bool
	// WriteIndex specifies whether row labels are written.
	// If nil, defaults to true.
	WriteIndex *bool
	// IndexLabel is a caption for the index column. When empty, the table's
	// index names are used if it has any.
	IndexLabel string
	// Columns restricts and orders the columns placed. Nil means all.
	Columns []selection.Label
	// MatchMode controls how keys match hierarchical labels.
	MatchMode selection.MatchMode
	// Logger receives debug output. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns options placing a table at A1 of Sheet1 with both
// header and index written.
func DefaultOptions() Options {
	return Options{
		Sheet: coord.DefaultSheet,
	}
}

// ShouldWriteHeader returns whether column labels are written.
func (o Options) ShouldWriteHeader() bool {
	if o.WriteHeader != nil {
		return *o.WriteHeader
	}
	return true
}

// ShouldWriteIndex returns whether row labels are written.
func (o Options) ShouldWriteIndex() bool {
	if o.WriteIndex != nil {
		return *o.WriteIndex
	}
	return true
}

// SheetName returns the target sheet, defaulting to coord.DefaultSheet.
func (o Options) SheetName() string {
	if o.Sheet == "" {
		return coord.DefaultSheet
	}
	return o.Sheet
}

// Log returns the configured logger, or a no-op logger.
func (o Options) Log() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

// Bool returns a pointer to v, for the optional fields of Options.
func Bool(v bool) *bool {
	return &v
}
