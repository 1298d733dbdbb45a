package xllink

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
	"github.com/ukaji3/xllink-go/pkg/xllink/layout"
	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

// Errors from the coordinate, layout and selection packages, re-exported so
// callers only need this package for errors.Is checks.
var (
	ErrAddressFormat       = coord.ErrAddressFormat
	ErrCrossSheet          = coord.ErrCrossSheet
	ErrIndexOutOfRange     = coord.ErrIndexOutOfRange
	ErrNotOneDimensional   = coord.ErrNotOneDimensional
	ErrEmptyTable          = layout.ErrEmptyTable
	ErrInvalidParams       = layout.ErrInvalidParams
	ErrLabelNotFound       = selection.ErrLabelNotFound
	ErrNotContiguous       = selection.ErrNotContiguous
	ErrUnsupportedSelector = selection.ErrUnsupportedSelector
	ErrAxisLength          = selection.ErrAxisLength
)

// ErrTableShape indicates a table whose label counts disagree with its shape.
var ErrTableShape = errors.New("table labels do not match its shape")

// LocateError reports which part of a table could not be placed.
type LocateError struct {
	Sheet     string
	Component string // "table", "layout", "index", "columns"
	Err       error
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("locate error in sheet %q (%s): %v", e.Sheet, e.Component, e.Err)
}

func (e *LocateError) Unwrap() error {
	return e.Err
}

// NewLocateError creates a new LocateError.
func NewLocateError(sheet, component string, err error) *LocateError {
	return &LocateError{
		Sheet:     sheet,
		Component: component,
		Err:       err,
	}
}
