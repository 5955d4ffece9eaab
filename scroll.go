package vtable

// ScrollState holds the vertical scroll position of a table body.
type ScrollState struct {
	Offset      float32 // Current scroll offset into the content
	GroupHeight float32 // Height of the table body including the header
}

// ViewportHeight is the height available to the scrolled rows:
// the group height minus the header.
func (s *ScrollState) ViewportHeight(headerHeight float32) float32 {
	return maxf(0, s.GroupHeight-headerHeight)
}

// MaxOffset returns the largest valid offset for the given content.
func (s *ScrollState) MaxOffset(contentHeight, headerHeight float32) float32 {
	return maxf(0, contentHeight-s.ViewportHeight(headerHeight))
}

// Set clamps offset to [0, contentHeight - viewportHeight] and stores it.
// Out-of-range values are never rejected.
func (s *ScrollState) Set(offset, contentHeight, headerHeight float32) float32 {
	if offset != offset { // NaN
		offset = 0
	}
	s.Offset = clampf(offset, 0, s.MaxOffset(contentHeight, headerHeight))
	return s.Offset
}

// ScrollbarState is the derived scrollbar geometry. It is a pure function of
// the content height, the viewport height and the scroll offset; nothing
// mutates it independently.
type ScrollbarState struct {
	TotalHeight    float32 // Scrollable content height
	ViewportHeight float32 // Height of the scroll track
	VisibleHeight  float32 // min(TotalHeight, ViewportHeight)
	Ratio          float32 // Visible share of the content, 1 when it fits
	BarLength      float32 // Thumb length
	WiggleRoom     float32 // Content scroll range
	BarWiggleRoom  float32 // Thumb travel range
	TopY           float32 // Thumb top, relative to the track
	BottomY        float32 // Thumb bottom, relative to the track
	DragMultiplier float32 // Content pixels per thumb pixel, 0 when not scrollable
	ScrollOffset   float32
	CanScroll      bool
}

// DeriveScrollbar computes the scrollbar geometry for a scroll offset.
// Division by zero is guarded: when the content fits, the thumb spans the
// whole track and dragging it is a no-op.
func DeriveScrollbar(contentHeight, viewportHeight, offset float32) ScrollbarState {
	s := ScrollbarState{
		TotalHeight:    contentHeight,
		ViewportHeight: viewportHeight,
		VisibleHeight:  minf(contentHeight, viewportHeight),
		Ratio:          1,
		ScrollOffset:   offset,
	}
	if contentHeight > viewportHeight && contentHeight > 0 {
		s.Ratio = viewportHeight / contentHeight
	}
	s.BarLength = s.Ratio * viewportHeight
	s.WiggleRoom = maxf(0, contentHeight-viewportHeight)
	s.BarWiggleRoom = maxf(0, viewportHeight-s.BarLength)

	if s.WiggleRoom > 0 && s.BarWiggleRoom > 0 {
		s.CanScroll = true
		s.TopY = clampf(offset/s.WiggleRoom, 0, 1) * s.BarWiggleRoom
		s.DragMultiplier = s.WiggleRoom / s.BarWiggleRoom
	}
	s.BottomY = s.TopY + s.BarLength
	return s
}

// OnThumb reports whether a track-relative y hits the thumb.
func (s ScrollbarState) OnThumb(y float32) bool {
	return s.TopY <= y && y <= s.BottomY
}

// JumpOffset maps a track-relative pointer position to the scroll offset
// that centers the thumb on it (linear inverse scale, clamped).
func (s ScrollbarState) JumpOffset(y float32) float32 {
	if s.ViewportHeight <= 0 {
		return 0
	}
	pixel := clampf(y-s.BarLength/2, 0, s.ViewportHeight)
	return pixel / s.ViewportHeight * s.TotalHeight
}
