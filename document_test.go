package vtable

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `
theme: dark
config:
  blockSize: 10
  scrollbarHideDelay: 500ms
table:
  width: 300
  height: 220
  margin: {t: 4, b: 4, l: 0, r: 0}
  columnOrder: [1, 0]
  columns:
    - name: id
      header: [ID]
      values: [1, 2, 3]
    - name: price
      header: [Price]
      values: [1.5, 2, 3.25]
      width: 2
  cells:
    format: [[""], [",.2f"]]
    align: [[left], [right]]
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(testDocument))
	require.NoError(t, err)

	assert.Equal(t, 10, doc.Config.BlockSize)
	assert.Equal(t, 500*time.Millisecond, doc.Config.ScrollbarHideDelay)
	assert.Equal(t, float32(20), doc.Config.RowHeight, "missing keys keep their defaults")
	assert.Equal(t, Insets{Top: 4, Bottom: 4}, doc.Table.Margin)
	assert.Equal(t, 1.5, doc.Table.Columns[1].Values[0])
	assert.Equal(t, AlignRight, doc.Table.Cells.Align.Pick(1, 2, AlignLeft))

	style, err := doc.Style()
	require.NoError(t, err)
	assert.Equal(t, DarkStyle(), style)

	tbl, err := New(doc.Table, doc.Options()...)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, tbl.Columns().Order())
	assert.InDelta(t, 200, tbl.Columns().Column(1).Width, 1e-3)
	assert.Equal(t, float32(192), tbl.ViewportHeight())
	assert.Equal(t, "1.50", FormatCell(&doc.Table.Cells, 1, 0, doc.Table.Columns[1].Values[0]).Text)
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no columns", "table: {width: 100, height: 100}", ErrNoColumns},
		{"ragged", `
table:
  width: 100
  height: 100
  columns:
    - values: [1, 2]
    - values: [1]
`, ErrRaggedColumns},
		{"block size", `
config: {blockSize: 0}
table: {width: 100, height: 100, columns: [{values: [1]}]}
`, ErrInvalidBlockSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseDocument([]byte("theme: neon\ntable: {width: 100, height: 100, columns: [{values: [1]}]}"))
	assert.ErrorContains(t, err, "unknown theme")

	_, err = ParseDocument([]byte("table: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", doc.Theme)

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
