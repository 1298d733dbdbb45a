package selection

import (
	"fmt"
	"reflect"
	"strings"
)

// Label is one axis label, outermost level first. Flat axes use
// one-level labels.
type Label []any

// L builds a Label from its levels.
func L(levels ...any) Label {
	return Label(levels)
}

// Flat wraps each value as a one-level label.
func Flat[T any](values ...T) []Label {
	out := make([]Label, len(values))
	for i, v := range values {
		out[i] = Label{v}
	}
	return out
}

// Equal reports whether l and o have the same levels.
func (l Label) Equal(o Label) bool {
	return len(l) == len(o) && l.HasPrefix(o)
}

// HasPrefix reports whether the leading levels of l equal prefix.
func (l Label) HasPrefix(prefix Label) bool {
	if len(prefix) > len(l) {
		return false
	}
	for i, v := range prefix {
		if !equalValue(l[i], v) {
			return false
		}
	}
	return true
}

// Last returns the innermost level, or nil for an empty label.
func (l Label) Last() any {
	if len(l) == 0 {
		return nil
	}
	return l[len(l)-1]
}

func (l Label) String() string {
	if len(l) == 1 {
		return fmt.Sprint(l[0])
	}
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
