package vtable

import (
	"image"
	"testing"
)

func TestDrawListPrimitives(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorTransparent)
	dl.AddRect(0, 0, 0, 10, ColorBlack)
	if !dl.Empty() {
		t.Fatal("transparent and zero-size rects must draw nothing")
	}

	dl.AddRect(1, 2, 10, 20, ColorBlack)
	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("rect: %d vertices, %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if got := dl.VtxBuffer[2].Pos; got != [2]float32{11, 22} {
		t.Errorf("bottom-right corner = %v", got)
	}

	dl.AddRectOutline(0, 0, 10, 10, ColorBlack, 1)
	if len(dl.VtxBuffer) != 20 {
		t.Errorf("outline added %d vertices, want 16", len(dl.VtxBuffer)-4)
	}

	dl.AddLine(0, 0, 10, 0, ColorBlack, 2)
	if got := dl.VtxBuffer[len(dl.VtxBuffer)-4].Pos; got != [2]float32{0, 1} {
		t.Errorf("line offset = %v, want [0 1]", got)
	}

	dl.Finalize()
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != uint32(len(dl.IdxBuffer)) {
		t.Errorf("untextured primitives should batch into one command, got %+v", dl.CmdBuffer)
	}
}

func TestDrawListTextAndClip(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 50, 20, ColorWhite)
	dl.PushClipRect(0, 0, 50, 20)
	dl.AddText(8, 4, "Aé", ColorBlack)
	dl.PopClipRect()
	dl.PushClipRect(0, 20, 50, 40)
	dl.PopClipRect()
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("got %d commands, want fill and text", len(dl.CmdBuffer))
	}
	text := dl.CmdBuffer[1]
	if text.TextureID != FontTexture {
		t.Errorf("text texture = %d", text.TextureID)
	}
	if text.ClipRect != [4]float32{0, 0, 50, 20} {
		t.Errorf("text clip = %v", text.ClipRect)
	}
	if text.ElemCount != 12 {
		t.Errorf("two glyphs should be 12 indices, got %d", text.ElemCount)
	}

	// 'A' sits at atlas cell (1, 2); unknown runes fall back to '?' at (15, 1).
	a := dl.VtxBuffer[4]
	if a.TexCoord != [2]float32{1.0 / AtlasColumns, 2.0 / AtlasRows} {
		t.Errorf("'A' uv = %v", a.TexCoord)
	}
	q := dl.VtxBuffer[8]
	if q.TexCoord != [2]float32{15.0 / AtlasColumns, 1.0 / AtlasRows} {
		t.Errorf("fallback uv = %v", q.TexCoord)
	}
	if q.Pos[0] != 8+GlyphWidth {
		t.Errorf("second glyph x = %v", q.Pos[0])
	}

	dl.Clear()
	if !dl.Empty() || len(dl.CmdBuffer) != 0 {
		t.Error("Clear should reset the list")
	}
}

func TestGlyphAtlas(t *testing.T) {
	img := GlyphAtlas()
	if img.Bounds() != image.Rect(0, 0, AtlasWidth, AtlasHeight) {
		t.Fatalf("atlas bounds = %v", img.Bounds())
	}

	coverage := func(ch rune) int {
		idx := int(ch - 32)
		x0, y0 := (idx%AtlasColumns)*GlyphWidth, (idx/AtlasColumns)*GlyphHeight
		n := 0
		for y := y0; y < y0+GlyphHeight; y++ {
			for x := x0; x < x0+GlyphWidth; x++ {
				if img.AlphaAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if coverage(' ') != 0 {
		t.Error("space should be blank")
	}
	for _, ch := range "A?9~" {
		if coverage(ch) == 0 {
			t.Errorf("glyph %q is blank", ch)
		}
	}
}
