package selection

import (
	"fmt"
	"strings"
)

// Selector picks positions along an axis. The set of selectors is closed;
// build them with the constructors in this package.
type Selector interface {
	fmt.Stringer
	selector()
}

type atSelector struct{ i int }

type keySelector struct{ key Label }

type sliceSelector struct {
	start, stop int
	hasStart    bool
	hasStop     bool
}

type keySliceSelector struct{ from, to Label }

type maskSelector struct{ mask []bool }

type positionsSelector struct{ positions []int }

type keysSelector struct{ keys []Label }

type pairSelector struct{ row, col Selector }

func (atSelector) selector()        {}
func (keySelector) selector()       {}
func (sliceSelector) selector()     {}
func (keySliceSelector) selector()  {}
func (maskSelector) selector()      {}
func (positionsSelector) selector() {}
func (keysSelector) selector()      {}
func (pairSelector) selector()      {}

// At selects the single position i. Negative i counts from the end.
func At(i int) Selector {
	return atSelector{i: i}
}

// Key selects the first position whose label starts with levels.
func Key(levels ...any) Selector {
	return keySelector{key: Label(levels)}
}

// Slice selects positions start up to but not including stop.
func Slice(start, stop int) Selector {
	return sliceSelector{start: start, stop: stop, hasStart: true, hasStop: true}
}

// From selects positions start through the end.
func From(start int) Selector {
	return sliceSelector{start: start, hasStart: true}
}

// To selects positions from the beginning up to but not including stop.
func To(stop int) Selector {
	return sliceSelector{stop: stop, hasStop: true}
}

// All selects the whole axis.
func All() Selector {
	return sliceSelector{}
}

// KeySlice selects the labels from through to, both inclusive. A nil end
// is open.
func KeySlice(from, to Label) Selector {
	return keySliceSelector{from: from, to: to}
}

// Mask selects the true positions. It must cover the whole axis and the
// true positions must be one run.
func Mask(mask ...bool) Selector {
	return maskSelector{mask: mask}
}

// Positions selects the bounding span of several positions.
func Positions(positions ...int) Selector {
	return positionsSelector{positions: positions}
}

// Keys selects the bounding span of several labels.
func Keys(keys ...Label) Selector {
	return keysSelector{keys: keys}
}

// Pair selects rows and columns together. It only applies to a table.
func Pair(row, col Selector) Selector {
	return pairSelector{row: row, col: col}
}

// Split returns the row and column halves of a Pair.
func Split(sel Selector) (row, col Selector, ok bool) {
	p, ok := sel.(pairSelector)
	if !ok {
		return nil, nil, false
	}
	return p.row, p.col, true
}

// IsScalar reports whether sel names a single position.
func IsScalar(sel Selector) bool {
	switch sel.(type) {
	case atSelector, keySelector:
		return true
	}
	return false
}

func (s atSelector) String() string {
	return fmt.Sprintf("At(%d)", s.i)
}

func (s keySelector) String() string {
	return fmt.Sprintf("Key(%s)", s.key)
}

func (s sliceSelector) String() string {
	var sb strings.Builder
	sb.WriteString("Slice(")
	if s.hasStart {
		fmt.Fprint(&sb, s.start)
	}
	sb.WriteByte(':')
	if s.hasStop {
		fmt.Fprint(&sb, s.stop)
	}
	sb.WriteByte(')')
	return sb.String()
}

func (s keySliceSelector) String() string {
	from, to := "", ""
	if s.from != nil {
		from = s.from.String()
	}
	if s.to != nil {
		to = s.to.String()
	}
	return fmt.Sprintf("KeySlice(%s:%s)", from, to)
}

func (s maskSelector) String() string {
	var sb strings.Builder
	sb.WriteString("Mask(")
	for _, b := range s.mask {
		if b {
			sb.WriteByte('T')
		} else {
			sb.WriteByte('F')
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func (s positionsSelector) String() string {
	return fmt.Sprintf("Positions%v", s.positions)
}

func (s keysSelector) String() string {
	parts := make([]string, len(s.keys))
	for i, k := range s.keys {
		parts[i] = k.String()
	}
	return "Keys[" + strings.Join(parts, " ") + "]"
}

func (s pairSelector) String() string {
	return fmt.Sprintf("Pair(%s, %s)", s.row, s.col)
}
