package xllink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xllink-go/pkg/xllink/selection"
)

func TestNewFrame(t *testing.T) {
	f, err := NewFrame(selection.Flat("a", "b"), selection.Flat("x"), [][]any{{1}, {2}})
	require.NoError(t, err)
	rows, cols := f.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 2, f.Value(1, 0))
	assert.Nil(t, f.Value(2, 0))

	_, err = NewFrame(selection.Flat("a"), selection.Flat("x"), [][]any{{1}, {2}})
	assert.ErrorIs(t, err, ErrTableShape)

	_, err = NewFrame(selection.Flat("a"), selection.Flat("x", "y"), [][]any{{1}})
	assert.ErrorIs(t, err, ErrTableShape)
}

func TestFrameFromRecords(t *testing.T) {
	records := [][]string{
		{"day", "Mon", "Tues"},
		{"r1", "1", "2.5"},
		{"r2", "n/a", "4"},
	}
	f, err := FrameFromRecords(records, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, selection.Flat("Mon", "Tues"), f.Columns)
	assert.Equal(t, selection.Flat("r1", "r2"), f.Index)
	assert.Equal(t, []string{"day"}, f.Names)
	assert.Equal(t, 1.0, f.Value(0, 0))
	assert.Equal(t, 2.5, f.Value(0, 1))
	assert.Equal(t, "n/a", f.Value(1, 0))
}

func TestFrameFromRecordsMultiLevel(t *testing.T) {
	records := [][]string{
		{"", "", "2024", "2024"},
		{"", "", "Q1", "Q2"},
		{"east", "a", "1", "2"},
		{"west", "b", "3", "4"},
	}
	f, err := FrameFromRecords(records, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []selection.Label{selection.L("2024", "Q1"), selection.L("2024", "Q2")}, f.Columns)
	assert.Equal(t, []selection.Label{selection.L("east", "a"), selection.L("west", "b")}, f.Index)
	assert.Nil(t, f.Names)
}

func TestFrameFromRecordsWithoutLabels(t *testing.T) {
	f, err := FrameFromRecords([][]string{{"1", "2"}, {"3", "4"}}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, selection.Flat(0, 1), f.Columns)
	assert.Equal(t, selection.Flat(0, 1), f.Index)
}

func TestFrameFromRecordsErrors(t *testing.T) {
	_, err := FrameFromRecords([][]string{{"a", "b"}}, 1, 0)
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = FrameFromRecords([][]string{{"a", "b"}, {"c"}}, 1, 0)
	assert.ErrorIs(t, err, ErrTableShape)

	_, err = FrameFromRecords([][]string{{"a"}, {"b"}}, 1, 1)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestProject(t *testing.T) {
	f := weekFrame()
	f.Names = []string{"week"}
	view, err := Project(f, []selection.Label{selection.L("Thurs"), selection.L("Mon")})
	require.NoError(t, err)

	rows, cols := view.Shape()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, selection.Flat("Thurs", "Mon"), view.ColumnLabels())
	assert.Equal(t, f.Index, view.IndexLabels())
	assert.Equal(t, []string{"week"}, view.(IndexNamer).IndexNames())
	assert.Equal(t, 8, view.(Valuer).Value(1, 0))
	assert.Equal(t, 5, view.(Valuer).Value(1, 1))

	same, err := Project(f, nil)
	require.NoError(t, err)
	assert.Same(t, f, same)
}
