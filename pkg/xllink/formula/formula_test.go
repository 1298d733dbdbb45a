package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xllink-go/pkg/xllink/coord"
)

func rng(t *testing.T, text, sheet string) coord.Range {
	t.Helper()
	r, err := coord.ParseRange(text, sheet)
	require.NoError(t, err)
	return r
}

func TestSeries(t *testing.T) {
	assert.Equal(t, "='Sheet1'!B2:B5", Series(rng(t, "B2:B5", "Sheet1")))
	assert.Equal(t, "='Sheet1'!C3", Series(coord.NewCell("Sheet1", 2, 2)))
	assert.Equal(t, "='Sheet1'!$B$2:$B$5", AbsSeries(rng(t, "B2:B5", "Sheet1")))
	assert.Equal(t, "'Sheet1'!$C$3", Absolute(rng(t, "C3", "Sheet1")))
}

func TestCall(t *testing.T) {
	got := Call("sum", rng(t, "B2:B9", "Sheet1"))
	assert.Equal(t, "=SUM('Sheet1'!B2:B9)", got)

	got = Call("AVERAGE", rng(t, "B2:B9", "Sheet1"), coord.NewCell("Other", 0, 0))
	assert.Equal(t, "=AVERAGE('Sheet1'!B2:B9,'Other'!A1)", got)
}

func TestReferences(t *testing.T) {
	refs := References("=SUM('My Data'!$B$2:$B$9)+C3*Rate-SUM(D:D)", "Sheet1")
	require.Len(t, refs, 4)

	assert.Equal(t, "My Data", refs[0].Range.Sheet())
	assert.Equal(t, "B2:B9", refs[0].Range.Address())
	assert.False(t, refs[0].Named)

	assert.Equal(t, "'Sheet1'!C3:C3", refs[1].Range.FormulaRef())

	assert.Equal(t, "Rate", refs[2].Text)
	assert.True(t, refs[2].Named)

	assert.True(t, refs[3].Named, "whole-column references have no corners")
}

func TestReferencesRoundTrip(t *testing.T) {
	r := rng(t, "C2:F2", "Q1 Sales")
	refs := References(Call("SUM", r), "Sheet1")
	require.Len(t, refs, 1)
	assert.True(t, r.Equal(refs[0].Range))
}

func TestReferencesWithoutOperands(t *testing.T) {
	assert.Empty(t, References("=1+2", "Sheet1"))
	assert.Empty(t, References("", "Sheet1"))
}
