package coord

import (
	"errors"
	"fmt"
)

// ErrAddressFormat indicates malformed address or formula reference text.
var ErrAddressFormat = errors.New("malformed address")

// ErrCrossSheet indicates an attempt to span a range across two sheets.
var ErrCrossSheet = errors.New("cells are on different sheets")

// ErrIndexOutOfRange indicates a position outside the bounds of a range or axis.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrNotOneDimensional indicates a single-position lookup on a 2-D range.
var ErrNotOneDimensional = errors.New("range is not one-dimensional")

// AddressError reports the text that failed to parse.
type AddressError struct {
	Text string
	Err  error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Text, e.Err)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}

func newAddressError(text, reason string) *AddressError {
	return &AddressError{
		Text: text,
		Err:  fmt.Errorf("%w: %s", ErrAddressFormat, reason),
	}
}
