package vtable

// Surface is one painted draw list placed in window coordinates. Draw lists
// are painted in local coordinates; scrolling and column moves only change
// Offset and Clip.
type Surface struct {
	Column int // Specification index, -1 for the scrollbar
	Slot   int // Panel slot, HeaderSlot for the header, -1 for the scrollbar
	Page   int
	List   *DrawList
	Offset Vec2
	Clip   Rect
}

// Renderer draws surfaces.
type Renderer interface {
	RenderSurface(s Surface) error
}

// columnSurfaces are the three draw lists one column owns: both revolver
// panels and the header panel.
type columnSurfaces struct {
	lists   [PanelCount + 1]*DrawList
	pages   [PanelCount + 1]int
	painted [PanelCount + 1]uint64 // BlockIndex version at last paint
}

func (s *columnSurfaces) list(slot int) *DrawList {
	if s.lists[slot] == nil {
		s.lists[slot] = AcquireDrawList()
	}
	return s.lists[slot]
}

func (s *columnSurfaces) release() {
	for i, dl := range s.lists {
		ReleaseDrawList(dl)
		s.lists[i] = nil
	}
}

// View executes table commands against retained per-column surfaces.
//
// Usage:
//
//	view, err := vtable.NewView(data, vtable.Vec2{X: 20, Y: 20})
//	for !window.ShouldClose() {
//	    view.HandleInput(input)
//	    view.Update(dt)
//	    view.Render(renderer)
//	}
type View struct {
	Origin Vec2 // Window position of the table box

	table     *Table
	surfaces  *KeyedStore[columnSurfaces]
	placement PlacePanels
	scrollbar UpdateScrollbar
	scrollDL  *DrawList
	repaints  int
}

// NewView builds a table and paints its initial panels.
func NewView(data TableData, origin Vec2, opts ...TableOption) (*View, error) {
	t, err := New(data, opts...)
	if err != nil {
		return nil, err
	}
	return NewTableView(t, origin), nil
}

// NewTableView wraps an existing table and paints its initial panels.
func NewTableView(t *Table, origin Vec2) *View {
	v := &View{
		Origin:   origin,
		table:    t,
		surfaces: NewKeyedStore[columnSurfaces](),
		scrollDL: AcquireDrawList(),
	}
	v.Dispatch(t.Refresh())
	v.sweep()
	return v
}

// Table returns the layout engine behind the view.
func (v *View) Table() *Table {
	return v.table
}

// Repaints returns how many column panels have been painted so far.
func (v *View) Repaints() int {
	return v.repaints
}

// SetData replaces the table data and repaints what changed.
func (v *View) SetData(data TableData) error {
	cmds, err := v.table.SetData(data)
	if err != nil {
		return err
	}
	v.Dispatch(cmds)
	v.sweep()
	return nil
}

// sweep releases the surfaces of columns that no longer exist.
func (v *View) sweep() {
	for _, c := range v.table.Columns().Columns() {
		v.surfaces.Get(c.Key, columnSurfaces{})
	}
	for _, s := range v.surfaces.Sweep() {
		s.release()
	}
}

// HandleInput applies a frame of window-space input.
func (v *View) HandleInput(in *InputState) {
	wx, wy := in.MouseX, in.MouseY
	in.SetMousePos(wx-v.Origin.X, wy-v.Origin.Y)
	cmds := v.table.HandleInput(in)
	in.SetMousePos(wx, wy)
	v.Dispatch(cmds)
}

// Update advances animations by dt seconds.
func (v *View) Update(dt float32) {
	v.Dispatch(v.table.Tick(dt))
}

// Dispatch executes commands in order. Measurements taken while painting are
// fed back to the table within the same pass; relayouts they cause run after
// the queue drains, once per panel.
func (v *View) Dispatch(cmds []Command) {
	if len(cmds) == 0 {
		return
	}
	v.table.BeginMeasurePass()

	queue := append([]Command(nil), cmds...)
	var relayout []RelayoutPanel
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]

		switch c := cmd.(type) {
		case RepaintPanel:
			queue = append(queue, v.paint(c.Slot, c.Page, c.Column, false)...)
		case RelayoutPanel:
			if !containsRelayout(relayout, c) {
				relayout = append(relayout, c)
			}
		case PlacePanels:
			v.placement = c
		case UpdateScrollbar:
			v.scrollbar = c
			v.paintScrollbar()
		case RaiseColumn, MoveColumn, AnimateColumn, EmitColumnOrder:
			// Column positions are read from the model when surfaces are built.
		}

		if len(queue) == 0 && len(relayout) > 0 {
			for _, r := range relayout {
				queue = append(queue, v.paint(r.Slot, r.Page, -1, true)...)
			}
			relayout = relayout[:0]
		}
	}
}

func containsRelayout(rs []RelayoutPanel, r RelayoutPanel) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// paint paints one panel slot for a page, for one column or all of them, and
// returns the commands the measurements produced. With stale set, only
// surfaces painted before the latest row growth are repainted.
func (v *View) paint(slot, page, column int, stale bool) []Command {
	t := v.table
	header := slot == HeaderSlot
	version := t.Index().Version()

	var out []Command
	for _, c := range t.Columns().Columns() {
		if column >= 0 && c.Spec != column {
			continue
		}
		s := v.surfaces.Get(c.Key, columnSurfaces{})
		if stale && (s.pages[slot] != page || s.painted[slot] == version) {
			continue
		}
		dl := s.list(slot)
		dl.Clear()
		s.pages[slot] = page
		s.painted[slot] = version
		if !header && page == NoPage {
			continue
		}

		ms := t.Painter().PaintCells(dl, t.PageContext(header, page, c))
		v.repaints++
		for _, m := range ms {
			cmds := t.OnMeasured(m.Ref, m.Height)
			if len(cmds) > 0 {
				version = t.Index().Version()
				out = append(out, cmds...)
			}
		}
	}
	return out
}

// paintScrollbar redraws the thumb in body coordinates.
func (v *View) paintScrollbar() {
	dl := v.scrollDL
	dl.Clear()
	sb := v.scrollbar.State
	if !sb.CanScroll || v.scrollbar.Opacity <= 0 {
		return
	}
	t := v.table
	w := t.Config().ScrollbarWidth
	top := t.Index().HeaderHeight() + sb.TopY
	color := WithAlpha(t.Style().ScrollbarColor, v.scrollbar.Opacity)
	dl.AddRect(t.ScrollbarX()-w/2, top, w, sb.BarLength, color)
	dl.Finalize()
}

// Surfaces returns every surface to draw, back to front: columns in raise
// order with their body panels under their header, then the scrollbar.
func (v *View) Surfaces() []Surface {
	t := v.table
	body := v.Origin.Add(Vec2{X: t.Margin().Left, Y: t.Margin().Top})
	header := t.Index().HeaderHeight()
	viewport := t.ViewportHeight()
	pages := v.placement.Pages

	var out []Surface
	for _, c := range t.Columns().ZOrder() {
		s, ok := v.surfaces.Lookup(c.Key)
		if !ok {
			continue
		}
		pos := body.Add(c.RenderPos())

		for slot := range PanelCount {
			page := pages[slot]
			if page == NoPage || (slot > 0 && page == pages[0]) || s.lists[slot] == nil {
				continue
			}
			out = append(out, Surface{
				Column: c.Spec,
				Slot:   slot,
				Page:   page,
				List:   s.lists[slot],
				Offset: Vec2{X: pos.X, Y: pos.Y + v.placement.Offsets[slot]},
				Clip:   Rect{X: pos.X, Y: pos.Y + header, W: c.Width, H: viewport},
			})
		}
		if s.lists[HeaderSlot] != nil && header > 0 {
			out = append(out, Surface{
				Column: c.Spec,
				Slot:   HeaderSlot,
				List:   s.lists[HeaderSlot],
				Offset: pos,
				Clip:   Rect{X: pos.X, Y: pos.Y, W: c.Width, H: header},
			})
		}
	}

	if !v.scrollDL.Empty() {
		out = append(out, Surface{
			Column: -1,
			Slot:   -1,
			Page:   NoPage,
			List:   v.scrollDL,
			Offset: body,
			Clip:   Rect{X: body.X, Y: body.Y, W: t.ScrollbarX() + t.Config().ScrollbarCaptureWidth, H: t.GroupHeight()},
		})
	}
	return out
}

// Render draws every surface with r.
func (v *View) Render(r Renderer) error {
	for _, s := range v.Surfaces() {
		if err := r.RenderSurface(s); err != nil {
			return err
		}
	}
	return nil
}
