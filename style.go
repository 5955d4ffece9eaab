package vtable

// Style defines the default colors of a table. Per-cell overrides come from
// the CellSpec grids of the table data.
type Style struct {
	// Cells
	CellFillColor   uint32
	CellLineColor   uint32
	CellTextColor   uint32
	CellLineWidth   float32
	HeaderFillColor uint32
	HeaderTextColor uint32 // 0 = use CellTextColor

	// Scrollbar
	ScrollbarColor   uint32
	ScrollbarOpacity float32 // Opacity of a freshly shown thumb

	// Background behind the table body
	BackgroundColor uint32
}

// DefaultStyle returns a light style close to the chart defaults.
func DefaultStyle() Style {
	return Style{
		CellFillColor:    ColorWhite,
		CellLineColor:    RGBA(0x44, 0x44, 0x44, 0xFF),
		CellTextColor:    RGBA(0x44, 0x44, 0x44, 0xFF),
		CellLineWidth:    1,
		HeaderFillColor:  RGBA(0xE5, 0xEC, 0xF6, 0xFF),
		HeaderTextColor:  RGBA(0x2A, 0x3F, 0x5F, 0xFF),
		ScrollbarColor:   ColorBlack,
		ScrollbarOpacity: 0.4,
		BackgroundColor:  ColorTransparent,
	}
}

// DarkStyle returns a dark variant for the OpenGL example.
func DarkStyle() Style {
	s := DefaultStyle()
	s.CellFillColor = RGBA(0x1E, 0x1E, 0x24, 0xFF)
	s.CellLineColor = RGBA(0x3A, 0x3A, 0x44, 0xFF)
	s.CellTextColor = RGBA(0xDD, 0xDD, 0xDD, 0xFF)
	s.HeaderFillColor = RGBA(0x2A, 0x2A, 0x36, 0xFF)
	s.HeaderTextColor = RGBA(0xFF, 0xCC, 0x66, 0xFF)
	s.ScrollbarColor = ColorWhite
	return s
}

// headerTextColor returns the header text color, falling back to the cell color.
func (s Style) headerTextColor() uint32 {
	if s.HeaderTextColor == 0 {
		return s.CellTextColor
	}
	return s.HeaderTextColor
}
