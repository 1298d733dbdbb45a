package writer

import (
	"errors"
	"fmt"
)

// ErrNoValues indicates a table that cannot report its values.
var ErrNoValues = errors.New("table does not provide values")

// ErrChartType indicates an unknown chart type name.
var ErrChartType = errors.New("unknown chart type")

// WriteError represents an error while writing part of a table.
type WriteError struct {
	Sheet     string
	Component string // "layout", "header", "index", "caption", "values", "chart", "names"
	Err       error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error in sheet %q (%s): %v", e.Sheet, e.Component, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func newWriteError(sheet, component string, err error) *WriteError {
	return &WriteError{
		Sheet:     sheet,
		Component: component,
		Err:       err,
	}
}
