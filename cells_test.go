package vtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridPick(t *testing.T) {
	perCol := PerColumn("a", "b")
	assert.Equal(t, "a", perCol.Pick(0, 50, "z"))
	assert.Equal(t, "b", perCol.Pick(5, 9, "z"))
	assert.Equal(t, "a", perCol.Pick(-1, 0, "z"))

	assert.Equal(t, 3, Uniform(3).Pick(4, 100, 0))

	rows := Grid[int]{{1, 2, 3}}
	assert.Equal(t, 2, rows.Pick(0, 1, 0))
	assert.Equal(t, 3, rows.Pick(2, 10, 0))

	var empty Grid[int]
	assert.Equal(t, 7, empty.Pick(0, 0, 7))
	assert.Equal(t, 7, Grid[int]{{}}.Pick(0, 0, 7))
}

func TestFormatCell(t *testing.T) {
	spec := &CellSpec{
		Prefix: PerColumn("", "$", ""),
		Suffix: PerColumn("", "", " pts"),
		Format: PerColumn("", ",.2f", ".1%"),
	}

	tests := []struct {
		name string
		col  int
		v    any
		want CellContent
	}{
		{"plain string wraps", 0, "hello world", CellContent{Text: "hello world", Wrap: true}},
		{"number without format", 0, 42, CellContent{Text: "42"}},
		{"grouped fixed", 1, 1234.5, CellContent{Text: "$1,234.50"}},
		{"percent", 2, 0.123, CellContent{Text: "12.3% pts"}},
		{"nil", 0, nil, CellContent{}},
		{"latex passes through", 1, "$\\alpha$", CellContent{Text: "$\\alpha$", Latex: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(spec, tt.col, 0, tt.v))
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1234.50", formatValue(1234.5, ".2f"))
	assert.Equal(t, "1,234.50", formatValue(float32(1234.5), ",.2f"))
	assert.Equal(t, "42", formatValue(42, "d"))
	assert.Equal(t, "50%", formatValue(0.5, ".0%"))
	assert.Equal(t, "text", formatValue("text", ".2f"))
	assert.Equal(t, "true", formatValue(true, ""))
}
