package selection

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
)

// Sentinel errors for selector resolution.
var (
	// ErrLabelNotFound indicates a key with no match on the axis.
	ErrLabelNotFound = errors.New("label not found")

	// ErrNotContiguous indicates a mask whose true positions have holes.
	ErrNotContiguous = errors.New("selection is not contiguous")

	// ErrUnsupportedSelector indicates a selector that cannot apply here.
	ErrUnsupportedSelector = errors.New("unsupported selector")

	// ErrAxisLength indicates a label count that differs from the span length.
	ErrAxisLength = errors.New("label count does not match axis span")

	// ErrIndexOutOfRange is coord.ErrIndexOutOfRange.
	ErrIndexOutOfRange = coord.ErrIndexOutOfRange
)

// Error reports a selector that failed to resolve.
type Error struct {
	Op       string
	Selector Selector
	Err      error
}

func (e *Error) Error() string {
	if e.Selector == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Selector, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, sel Selector, err error) error {
	if err == nil {
		return nil
	}
	var selErr *Error
	if errors.As(err, &selErr) {
		return err
	}
	return &Error{Op: op, Selector: sel, Err: err}
}
