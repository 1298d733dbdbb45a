package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Selector
	}{
		{"", All()},
		{":", All()},
		{"@3", At(3)},
		{"@-1", At(-1)},
		{"@1:3", Slice(1, 3)},
		{"@1:", From(1)},
		{"@:2", To(2)},
		{"@:", All()},
		{"@0, 2", Positions(0, 2)},
		{"Mon", Key("Mon")},
		{" 2024/Q1 ", Key("2024", "Q1")},
		{"Mon:Weds", KeySlice(L("Mon"), L("Weds"))},
		{":Weds", KeySlice(nil, L("Weds"))},
		{"Mon:", KeySlice(L("Mon"), nil)},
		{"Mon,a/b", Keys(L("Mon"), L("a", "b"))},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"@x", "@1:y", "@1,,2", "@"} {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text)
			assert.ErrorIs(t, err, ErrUnsupportedSelector)
		})
	}
}

func TestParseResolves(t *testing.T) {
	axis := rowAxis(t, Flat("Mon", "Tues", "Weds", "Thurs"), "A2:A5")

	sel, err := Parse("Tues:Thurs")
	require.NoError(t, err)
	span, err := axis.Locate(sel)
	require.NoError(t, err)
	assert.Equal(t, Span{Lo: 1, Hi: 3}, span)
}

func TestParseLabel(t *testing.T) {
	assert.Equal(t, L("a"), ParseLabel("a"))
	assert.Equal(t, L("a", "b", "c"), ParseLabel("a / b/c"))
}
