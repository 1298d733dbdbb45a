package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// LevelSeparator joins the levels of a hierarchical label in text form.
const LevelSeparator = "/"

// ParseLabel reads a label written as its levels joined by LevelSeparator,
// e.g. "2024/Q1".
func ParseLabel(text string) Label {
	parts := strings.Split(text, LevelSeparator)
	label := make(Label, len(parts))
	for i, p := range parts {
		label[i] = strings.TrimSpace(p)
	}
	return label
}

// Parse reads a selector from its text form:
//
//	""  ":"        All
//	"@3" "@-1"     At
//	"@1:3" "@1:"   Slice, From, To
//	"@0,2"         Positions
//	"Mon"          Key ("2024/Q1" for a hierarchical key)
//	"Mon:Weds"     KeySlice, either end may be empty
//	"Mon,Weds"     Keys
func Parse(text string) (Selector, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == ":" {
		return All(), nil
	}
	if rest, ok := strings.CutPrefix(text, "@"); ok {
		return parsePositional(text, rest)
	}
	if from, to, ok := strings.Cut(text, ":"); ok {
		return KeySlice(optionalLabel(from), optionalLabel(to)), nil
	}
	if strings.Contains(text, ",") {
		var keys []Label
		for _, part := range strings.Split(text, ",") {
			keys = append(keys, ParseLabel(part))
		}
		return Keys(keys...), nil
	}
	label := ParseLabel(text)
	return Key(label...), nil
}

func parsePositional(text, rest string) (Selector, error) {
	if start, stop, ok := strings.Cut(rest, ":"); ok {
		lo, hasLo, err := optionalInt(text, start)
		if err != nil {
			return nil, err
		}
		hi, hasHi, err := optionalInt(text, stop)
		if err != nil {
			return nil, err
		}
		switch {
		case hasLo && hasHi:
			return Slice(lo, hi), nil
		case hasLo:
			return From(lo), nil
		case hasHi:
			return To(hi), nil
		}
		return All(), nil
	}
	if strings.Contains(rest, ",") {
		var positions []int
		for _, part := range strings.Split(rest, ",") {
			n, err := atoi(text, part)
			if err != nil {
				return nil, err
			}
			positions = append(positions, n)
		}
		return Positions(positions...), nil
	}
	n, err := atoi(text, rest)
	if err != nil {
		return nil, err
	}
	return At(n), nil
}

func optionalLabel(text string) Label {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return ParseLabel(text)
}

func optionalInt(text, part string) (int, bool, error) {
	if strings.TrimSpace(part) == "" {
		return 0, false, nil
	}
	n, err := atoi(text, part)
	return n, err == nil, err
}

func atoi(text, part string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a position selector", ErrUnsupportedSelector, text)
	}
	return n, nil
}
