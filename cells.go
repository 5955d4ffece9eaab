package vtable

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Grid is a per-column, per-row attribute. The outer slice is indexed by
// column specification index and the inner one by row; indices past the end
// clamp to the last element, so a single value broadcasts to every cell and
// a single value per column broadcasts down that column.
type Grid[T any] [][]T

// Uniform returns a grid with one value for every cell.
func Uniform[T any](v T) Grid[T] {
	return Grid[T]{{v}}
}

// PerColumn returns a grid with one value per column.
func PerColumn[T any](vs ...T) Grid[T] {
	g := make(Grid[T], len(vs))
	for i, v := range vs {
		g[i] = []T{v}
	}
	return g
}

// Pick returns the value for a cell, or def when the grid has none.
func (g Grid[T]) Pick(col, row int, def T) T {
	if len(g) == 0 {
		return def
	}
	column := g[clampIndex(col, len(g))]
	if len(column) == 0 {
		return def
	}
	return column[clampIndex(row, len(column))]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Align is the horizontal alignment of cell text.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// CellSpec holds the per-cell formatting and styling grids of a table part
// (body or header). Zero grids fall back to the table Style.
type CellSpec struct {
	Prefix    Grid[string]  `yaml:"prefix"`
	Suffix    Grid[string]  `yaml:"suffix"`
	Format    Grid[string]  `yaml:"format"`
	Align     Grid[Align]   `yaml:"align"`
	FillColor Grid[uint32]  `yaml:"fillColor"`
	LineColor Grid[uint32]  `yaml:"lineColor"`
	FontColor Grid[uint32]  `yaml:"fontColor"`
	LineWidth Grid[float32] `yaml:"lineWidth"`
}

// latexMark delimits values that are passed through untouched.
const latexMark = '$'

// lineBreak is the user-supplied line break marker.
const lineBreak = "<br>"

// isLatex reports whether s is delimited by latex marks.
func isLatex(s string) bool {
	return len(s) >= 2 && s[0] == latexMark && s[len(s)-1] == latexMark
}

// CellContent is a formatted cell value ready for layout.
type CellContent struct {
	Text  string
	Wrap  bool // Eligible for automatic word wrapping
	Latex bool
}

// FormatCell formats the value of cell (col, row) as
// prefix + format(value) + suffix. Latex values skip prefix, suffix and
// format. Only plain strings without user line breaks are wrapped.
func FormatCell(spec *CellSpec, col, row int, v any) CellContent {
	if s, ok := v.(string); ok && isLatex(s) {
		return CellContent{Text: s, Latex: true}
	}

	var prefix, suffix, format string
	if spec != nil {
		prefix = spec.Prefix.Pick(col, row, "")
		suffix = spec.Suffix.Pick(col, row, "")
		format = spec.Format.Pick(col, row, "")
	}

	body := formatValue(v, format)
	_, isString := v.(string)
	text := prefix + body + suffix
	userBroken := strings.Contains(strings.ToLower(text), lineBreak)
	return CellContent{Text: text, Wrap: isString && !userBroken}
}

var numberPrinter = message.NewPrinter(language.English)

// formatValue renders v with a d3-style format subset: an optional ","
// for grouping, ".N" for precision and a trailing "f", "d" or "%".
func formatValue(v any, format string) string {
	if v == nil {
		return ""
	}
	f, ok := toFloat(v)
	if !ok || format == "" {
		return fmt.Sprint(v)
	}

	var opts []number.Option
	if !strings.Contains(format, ",") {
		opts = append(opts, number.NoSeparator())
	}
	if i := strings.IndexByte(format, '.'); i >= 0 {
		digits := strings.TrimRight(format[i+1:], "fd%")
		if n, err := strconv.Atoi(digits); err == nil {
			opts = append(opts, number.MinFractionDigits(n), number.MaxFractionDigits(n))
		}
	} else if strings.HasSuffix(format, "d") {
		opts = append(opts, number.MaxFractionDigits(0))
	}

	if strings.HasSuffix(format, "%") {
		return numberPrinter.Sprint(number.Percent(f, opts...))
	}
	return numberPrinter.Sprint(number.Decimal(f, opts...))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	}
	return 0, false
}
