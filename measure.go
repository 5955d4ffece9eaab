package vtable

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextMeasurer is the text measurement collaborator: it reports the rendered
// width of a glyph run and the height of one line. Implementations must be
// deterministic; reflow relies on measuring unchanged text to the same size.
type TextMeasurer interface {
	MeasureString(s string) float32
	LineHeight() float32
}

// FaceMeasurer measures text with a font.Face.
type FaceMeasurer struct {
	face font.Face
}

// NewFaceMeasurer wraps a face. A nil face selects basicfont.Face7x13, the
// face the OpenGL backend rasterizes its glyph atlas from.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceMeasurer{face: face}
}

// MeasureString returns the advance width of s in pixels.
func (m *FaceMeasurer) MeasureString(s string) float32 {
	return fixedToFloat(font.MeasureString(m.face, s))
}

// LineHeight returns the face's recommended line height in pixels.
func (m *FaceMeasurer) LineHeight() float32 {
	return fixedToFloat(m.face.Metrics().Height)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// CellMeasurer measures text on a fixed character grid, counting East Asian
// wide runes as two cells.
type CellMeasurer struct {
	CellWidth  float32
	CellHeight float32
}

// NewCellMeasurer returns a grid measurer with the given cell size.
func NewCellMeasurer(cellWidth, cellHeight float32) *CellMeasurer {
	return &CellMeasurer{CellWidth: cellWidth, CellHeight: cellHeight}
}

// MeasureString returns the display width of s in pixels.
func (m *CellMeasurer) MeasureString(s string) float32 {
	return float32(runewidth.StringWidth(s)) * m.CellWidth
}

// LineHeight returns the cell height.
func (m *CellMeasurer) LineHeight() float32 {
	return m.CellHeight
}
