// Package selection resolves label and position selectors against a table
// axis and reports the matching positions or sheet coordinates.
//
// Every selection is reduced to one contiguous span of positions: the
// smallest run covering everything the selector picked.
package selection

import (
	"fmt"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
)

// Orientation is the direction an axis runs on the sheet.
type Orientation int

const (
	// Vertical is a row index: labels run down a column.
	Vertical Orientation = iota
	// Horizontal is a column axis: labels run along a row.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// MatchMode controls how a key is compared to hierarchical labels.
type MatchMode int

const (
	// MatchPrefix matches a key against the leading levels of a label.
	MatchPrefix MatchMode = iota
	// MatchInnermost matches a one-level key against the innermost level of
	// a label. Longer keys fall back to MatchPrefix.
	MatchInnermost
)

func (m MatchMode) String() string {
	if m == MatchInnermost {
		return "innermost"
	}
	return "prefix"
}

// ParseMatchMode parses "prefix" or "innermost".
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "", "prefix":
		return MatchPrefix, nil
	case "innermost":
		return MatchInnermost, nil
	}
	return MatchPrefix, fmt.Errorf("unknown match mode %q", s)
}

// Axis is an ordered label sequence together with the sheet cells its
// labels occupy.
type Axis struct {
	labels []Label
	names  []string
	span   coord.Range
	orient Orientation
	mode   MatchMode
}

// NewRowAxis returns a vertical axis. span must be one column wide with a
// cell per label.
func NewRowAxis(labels []Label, span coord.Range) (*Axis, error) {
	return newAxis(labels, span, Vertical)
}

// NewColumnAxis returns a horizontal axis. span must be one row high with a
// cell per label.
func NewColumnAxis(labels []Label, span coord.Range) (*Axis, error) {
	return newAxis(labels, span, Horizontal)
}

func newAxis(labels []Label, span coord.Range, orient Orientation) (*Axis, error) {
	rows, cols := span.Shape()
	n := rows
	if orient == Horizontal {
		n = cols
		if rows != 1 {
			return nil, fmt.Errorf("%w: horizontal span %s is %d rows high", ErrAxisLength, span.Address(), rows)
		}
	} else if cols != 1 {
		return nil, fmt.Errorf("%w: vertical span %s is %d columns wide", ErrAxisLength, span.Address(), cols)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d cells in %s", ErrAxisLength, len(labels), n, span.Address())
	}

	owned := make([]Label, len(labels))
	copy(owned, labels)
	return &Axis{
		labels: owned,
		span:   span.Normalize(),
		orient: orient,
	}, nil
}

// WithMode returns a copy of a that compares keys using mode.
func (a *Axis) WithMode(mode MatchMode) *Axis {
	cp := *a
	cp.mode = mode
	return &cp
}

// WithNames returns a copy of a carrying the level names.
func (a *Axis) WithNames(names ...string) *Axis {
	cp := *a
	cp.names = append([]string(nil), names...)
	return &cp
}

// Len returns the number of labels.
func (a *Axis) Len() int {
	return len(a.labels)
}

// Levels returns the depth of the deepest label.
func (a *Axis) Levels() int {
	depth := 0
	for _, l := range a.labels {
		depth = max(depth, len(l))
	}
	return depth
}

// Label returns the label at position i. Negative i counts from the end.
func (a *Axis) Label(i int) (Label, error) {
	pos, err := coord.NormalizeIndex(i, len(a.labels))
	if err != nil {
		return nil, err
	}
	return a.labels[pos], nil
}

// Labels returns a copy of the label sequence.
func (a *Axis) Labels() []Label {
	out := make([]Label, len(a.labels))
	copy(out, a.labels)
	return out
}

// Names returns the level names, if any were given.
func (a *Axis) Names() []string {
	return append([]string(nil), a.names...)
}

// Span returns the cells occupied by the labels.
func (a *Axis) Span() coord.Range {
	return a.span
}

// Orientation returns the direction the axis runs.
func (a *Axis) Orientation() Orientation {
	return a.orient
}

// Mode returns the key match mode.
func (a *Axis) Mode() MatchMode {
	return a.mode
}

// LabelCell returns the cell holding the label at position i.
func (a *Axis) LabelCell(i int) (coord.Cell, error) {
	return a.span.Offset(i)
}

// Resolve maps sel onto the axis's own label cells. Scalar selectors give a
// coord.Cell, everything else a coord.Range.
func (a *Axis) Resolve(sel Selector) (coord.Ref, error) {
	s, err := a.Locate(sel)
	if err != nil {
		return nil, err
	}
	if s.Scalar {
		c, err := a.span.Offset(s.Lo)
		if err != nil {
			return nil, wrap("resolve", sel, err)
		}
		return c, nil
	}
	r, err := a.span.Span(s.Lo, s.Hi)
	if err != nil {
		return nil, wrap("resolve", sel, err)
	}
	return r, nil
}
