package selection

import (
	"fmt"
	"slices"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
)

// Span is a resolved selection: positions Lo through Hi inclusive. Scalar is
// set when the selector named exactly one position.
type Span struct {
	Lo     int  `json:"lo"`
	Hi     int  `json:"hi"`
	Scalar bool `json:"scalar"`
}

// Len returns the number of positions covered.
func (s Span) Len() int {
	return s.Hi - s.Lo + 1
}

func (s Span) String() string {
	if s.Scalar {
		return fmt.Sprint(s.Lo)
	}
	return fmt.Sprintf("%d..%d", s.Lo, s.Hi)
}

// Locate resolves sel to positions on the axis.
func (a *Axis) Locate(sel Selector) (Span, error) {
	s, err := a.locate(sel)
	if err != nil {
		return Span{}, wrap("locate", sel, err)
	}
	return s, nil
}

func (a *Axis) locate(sel Selector) (Span, error) {
	n := len(a.labels)
	switch s := sel.(type) {
	case atSelector:
		pos, err := a.position(s.i)
		if err != nil {
			return Span{}, err
		}
		return Span{Lo: pos, Hi: pos, Scalar: true}, nil

	case keySelector:
		pos, err := a.firstMatch(s.key)
		if err != nil {
			return Span{}, err
		}
		return Span{Lo: pos, Hi: pos, Scalar: true}, nil

	case sliceSelector:
		return a.slice(s)

	case keySliceSelector:
		lo, hi := 0, n-1
		var err error
		if s.from != nil {
			if lo, err = a.firstMatch(s.from); err != nil {
				return Span{}, err
			}
		}
		if s.to != nil {
			if hi, err = a.lastMatch(s.to); err != nil {
				return Span{}, err
			}
		}
		if lo > hi {
			return Span{}, fmt.Errorf("%w: %s comes after %s", ErrIndexOutOfRange, s.from, s.to)
		}
		return Span{Lo: lo, Hi: hi}, nil

	case maskSelector:
		return a.mask(s.mask)

	case positionsSelector:
		if len(s.positions) == 0 {
			return Span{}, fmt.Errorf("%w: empty position list", ErrUnsupportedSelector)
		}
		resolved := make([]int, len(s.positions))
		for i, p := range s.positions {
			pos, err := a.position(p)
			if err != nil {
				return Span{}, err
			}
			resolved[i] = pos
		}
		return Span{Lo: slices.Min(resolved), Hi: slices.Max(resolved)}, nil

	case keysSelector:
		if len(s.keys) == 0 {
			return Span{}, fmt.Errorf("%w: empty key list", ErrUnsupportedSelector)
		}
		resolved := make([]int, len(s.keys))
		for i, k := range s.keys {
			pos, err := a.firstMatch(k)
			if err != nil {
				return Span{}, err
			}
			resolved[i] = pos
		}
		return Span{Lo: slices.Min(resolved), Hi: slices.Max(resolved)}, nil

	case pairSelector:
		return Span{}, fmt.Errorf("%w: row/column pair on a single %s axis", ErrUnsupportedSelector, a.orient)
	}
	return Span{}, fmt.Errorf("%w: %T", ErrUnsupportedSelector, sel)
}

func (a *Axis) position(i int) (int, error) {
	return coord.NormalizeIndex(i, len(a.labels))
}

// slice resolves [start, stop). Endpoints outside the axis are errors.
func (a *Axis) slice(s sliceSelector) (Span, error) {
	n := len(a.labels)
	start, stop := 0, n
	if s.hasStart {
		start = s.start
		if start < 0 {
			start += n
		}
	}
	if s.hasStop {
		stop = s.stop
		if stop < 0 {
			stop += n
		}
	}
	if start < 0 || start > n || stop < 0 || stop > n {
		return Span{}, fmt.Errorf("%w: %s on axis of length %d", ErrIndexOutOfRange, s, n)
	}
	if start >= stop {
		return Span{}, fmt.Errorf("%w: %s selects nothing", ErrIndexOutOfRange, s)
	}
	return Span{Lo: start, Hi: stop - 1}, nil
}

func (a *Axis) mask(mask []bool) (Span, error) {
	if len(mask) != len(a.labels) {
		return Span{}, fmt.Errorf("%w: mask of length %d on axis of length %d", ErrUnsupportedSelector, len(mask), len(a.labels))
	}
	lo, hi, count := -1, -1, 0
	for i, b := range mask {
		if !b {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
		count++
	}
	if count == 0 {
		return Span{}, fmt.Errorf("%w: mask selects nothing", ErrNotContiguous)
	}
	if hi-lo+1 != count {
		return Span{}, fmt.Errorf("%w: %d true values spread over positions %d..%d", ErrNotContiguous, count, lo, hi)
	}
	return Span{Lo: lo, Hi: hi}, nil
}

func (a *Axis) firstMatch(key Label) (int, error) {
	for i, l := range a.labels {
		if a.matches(l, key) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLabelNotFound, key)
}

func (a *Axis) lastMatch(key Label) (int, error) {
	for i := len(a.labels) - 1; i >= 0; i-- {
		if a.matches(a.labels[i], key) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLabelNotFound, key)
}

func (a *Axis) matches(label, key Label) bool {
	if len(key) == 0 {
		return false
	}
	if a.mode == MatchInnermost && len(key) == 1 && len(label) > 1 {
		return equalValue(label.Last(), key[0])
	}
	return label.HasPrefix(key)
}
