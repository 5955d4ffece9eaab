package vtable

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// GlyphAtlas rasterizes printable ASCII from basicfont.Face7x13 into the
// grid AddText samples from. The alpha channel is the glyph coverage.
func GlyphAtlas() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, AtlasWidth, AtlasHeight))
	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	ascent := face.Metrics().Ascent
	for ch := rune(32); ch < 127; ch++ {
		idx := int(ch - 32)
		col, row := idx%AtlasColumns, idx/AtlasColumns
		d.Dot = fixed.Point26_6{
			X: fixed.I(col * GlyphWidth),
			Y: fixed.I(row*GlyphHeight) + ascent,
		}
		d.DrawString(string(ch))
	}
	return img
}
