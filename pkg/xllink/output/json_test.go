package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/xllink-go/pkg/xllink/models"
)

func TestToJSON(t *testing.T) {
	p := models.Placement{Sheet: "Sheet1", Anchor: "A1", Data: "B2:E5", Extent: "A1:E5", Rows: 4, Cols: 4}

	compact, err := ToJSON(p, false)
	require.NoError(t, err)
	assert.Contains(t, string(compact), `"data":"B2:E5"`)
	assert.NotContains(t, string(compact), "\n")
	assert.NotContains(t, string(compact), `"index"`)

	indented, err := ToJSON(p, true)
	require.NoError(t, err)
	assert.Contains(t, string(indented), "\n  \"sheet\": \"Sheet1\"")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]int{"rows": 4}, false))
	assert.Equal(t, "{\"rows\":4}\n", buf.String())

	_, err := ToJSON(make(chan int), false)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(path, []string{"a"}, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[\"a\"]\n", string(data))
}
