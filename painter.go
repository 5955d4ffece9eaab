package vtable

// PageContext is one column's slice of a page handed to a Painter.
// Coordinates are local to the column surface: x from the column's left
// edge, y from the top of the block.
type PageContext struct {
	Header   bool      // Painting an auxiliary (header) block
	Page     int       // Block index within the body or header blocks
	Block    *RowBlock // Rows with their current heights
	Column   *Column
	Values   []any // Cell values of the column, indexed by row
	Cells    *CellSpec
	Style    Style
	Pad      float32
	Measurer TextMeasurer
}

// Measurement is the measured text height of one painted cell.
type Measurement struct {
	Ref    CellRef
	Height float32
}

// Painter is the cell rendering collaborator. PaintCells paints every cell of
// the page for one column and returns each cell's measured text height. It
// may be re-invoked for one page without touching any other surface.
type Painter interface {
	PaintCells(dl *DrawList, ctx PageContext) []Measurement
}

// CellPainter paints cell fills, borders and wrapped text.
type CellPainter struct{}

// PaintCells implements Painter.
func (CellPainter) PaintCells(dl *DrawList, ctx PageContext) []Measurement {
	if ctx.Block == nil || ctx.Column == nil {
		return nil
	}
	spec := ctx.Column.Spec
	width := ctx.Column.Width
	lineHeight := ctx.Measurer.LineHeight()

	fillDefault, textDefault := ctx.Style.CellFillColor, ctx.Style.CellTextColor
	if ctx.Header {
		fillDefault, textDefault = ctx.Style.HeaderFillColor, ctx.Style.headerTextColor()
	}

	type textRun struct {
		layout CellLayout
		y      float32
		align  Align
		color  uint32
		clip   [4]float32
	}
	runs := make([]textRun, 0, len(ctx.Block.Rows))
	out := make([]Measurement, 0, len(ctx.Block.Rows))

	// Backgrounds and borders first so text batches into few commands.
	y := float32(0)
	for _, row := range ctx.Block.Rows {
		r := row.Index
		fill := ctx.Cells.pickColor(func(c *CellSpec) Grid[uint32] { return c.FillColor }, spec, r, fillDefault)
		line := ctx.Cells.pickColor(func(c *CellSpec) Grid[uint32] { return c.LineColor }, spec, r, ctx.Style.CellLineColor)
		lineWidth := ctx.Style.CellLineWidth
		if ctx.Cells != nil {
			lineWidth = ctx.Cells.LineWidth.Pick(spec, r, lineWidth)
		}

		dl.AddRect(0, y, width, row.Height, fill)
		dl.AddRectOutline(0, y, width, row.Height, line, lineWidth)

		var v any
		if r >= 0 && r < len(ctx.Values) {
			v = ctx.Values[r]
		}
		layout := LayoutCell(ctx.Measurer, FormatCell(ctx.Cells, spec, r, v), width, ctx.Pad)
		align := AlignLeft
		if ctx.Cells != nil {
			align = ctx.Cells.Align.Pick(spec, r, AlignLeft)
		}
		runs = append(runs, textRun{
			layout: layout,
			y:      y + ctx.Pad,
			align:  align,
			color:  ctx.Cells.pickColor(func(c *CellSpec) Grid[uint32] { return c.FontColor }, spec, r, textDefault),
			clip:   [4]float32{0, y, width, y + row.Height},
		})
		out = append(out, Measurement{
			Ref:    CellRef{Header: ctx.Header, Page: ctx.Page, Row: r, Column: spec},
			Height: layout.Height,
		})
		y += row.Height
	}

	for _, run := range runs {
		dl.PushClipRect(run.clip[0], run.clip[1], run.clip[2], run.clip[3])
		for i, text := range run.layout.Lines {
			x := alignX(run.align, width, run.layout.Widths[i], ctx.Pad)
			dl.AddText(x, run.y+float32(i)*lineHeight, text, run.color)
		}
		dl.PopClipRect()
	}
	dl.Finalize()
	return out
}

// pickColor picks a color grid value, falling back to def on a nil spec.
func (c *CellSpec) pickColor(grid func(*CellSpec) Grid[uint32], col, row int, def uint32) uint32 {
	if c == nil {
		return def
	}
	return grid(c).Pick(col, row, def)
}

func alignX(a Align, width, textWidth, pad float32) float32 {
	switch a {
	case AlignCenter:
		return (width - textWidth) / 2
	case AlignRight:
		return width - pad - textWidth
	default:
		return pad
	}
}
