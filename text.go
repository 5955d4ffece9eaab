package vtable

import (
	"regexp"
	"strings"
)

// wrapSplit separates wrappable fragments; wrapSpacer joins them on a line.
const (
	wrapSplit  = " "
	wrapSpacer = " "
)

var lineBreakRe = regexp.MustCompile(`(?i)<br>`)

// CellLayout is the measured layout of one cell's text.
type CellLayout struct {
	Lines   []string
	Widths  []float32 // Measured width per line
	Height  float32   // Text height, padding excluded
	Wrapped bool
}

// fragment is a word measured in the unwrapped probe.
type fragment struct {
	text  string
	width float32
}

// LayoutCell lays out cell text for a column of the given width.
//
// Wrapping is a two-phase protocol. Phase one measures the unwrapped
// fragments and the separator; phase two packs fragments greedily into lines
// no wider than columnWidth - 2*pad. User broken and latex text is never
// re-wrapped.
func LayoutCell(m TextMeasurer, c CellContent, columnWidth, pad float32) CellLayout {
	var lines []string
	switch {
	case c.Latex:
		lines = []string{c.Text}
	case !c.Wrap:
		lines = lineBreakRe.Split(c.Text, -1)
	default:
		lines = wrapFragments(probe(m, c.Text), m.MeasureString(wrapSpacer), columnWidth-2*pad)
	}

	l := CellLayout{
		Lines:   lines,
		Widths:  make([]float32, len(lines)),
		Height:  float32(len(lines)) * m.LineHeight(),
		Wrapped: c.Wrap,
	}
	for i, line := range lines {
		l.Widths[i] = m.MeasureString(line)
	}
	return l
}

// probe is phase one: measure every fragment of the unwrapped text.
func probe(m TextMeasurer, text string) []fragment {
	parts := strings.Split(text, wrapSplit)
	frags := make([]fragment, len(parts))
	for i, p := range parts {
		frags[i] = fragment{text: p, width: m.MeasureString(p)}
	}
	return frags
}

// wrapFragments is phase two: greedy line packing. A fragment wider than the
// limit gets a line of its own.
func wrapFragments(frags []fragment, separator, limit float32) []string {
	var lines, row []string
	rowWidth := float32(0)
	for _, f := range frags {
		add := f.width + separator
		if rowWidth+add > limit && len(row) > 0 {
			lines = append(lines, strings.Join(row, wrapSpacer))
			row = row[:0]
			rowWidth = 0
		}
		row = append(row, f.text)
		rowWidth += add
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, wrapSpacer))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
