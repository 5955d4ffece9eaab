package vtable

import "sort"

// Column is the layout state of one table column. Spec is its immutable
// specification index and is used for every data and style lookup; XIndex
// and X are the only things reordering changes.
type Column struct {
	Spec   int     // Specification index, never changes
	Key    Key     // Stable identity across data updates
	Width  float32 // Column width
	XIndex int     // Display position
	X      float32 // Settled x (live pointer-driven x while dragged)

	renderX Tween // Animated x actually drawn
	renderY Tween // Animated lift
	z       int   // Raise counter, higher draws on top
}

// RenderPos returns where the column is currently drawn.
func (c *Column) RenderPos() Vec2 {
	return Vec2{X: c.renderX.Value(), Y: c.renderY.Value()}
}

// ColumnOrder tracks column positions and the drag-to-reorder interaction.
type ColumnOrder struct {
	cols       []*Column // Indexed by Spec
	tableWidth float32
	overdrag   float32
	uplift     float32
	transition float32 // Seconds for neighbours to slide
	release    float32 // Seconds for lift and drop

	dragged *Column
	grab    float32 // Pointer x minus column x at drag start
	zTop    int
}

// NewColumnOrder creates columns with the given widths (by specification
// index) arranged in order, a permutation of specification indices in display
// order. A nil or invalid order means specification order.
func NewColumnOrder(widths []float32, keys []Key, order []int, tableWidth float32, cfg Config) *ColumnOrder {
	m := &ColumnOrder{
		cols:       make([]*Column, len(widths)),
		tableWidth: tableWidth,
		overdrag:   cfg.Overdrag,
		uplift:     cfg.Uplift,
		transition: seconds(cfg.TransitionDuration),
		release:    seconds(cfg.ReleaseTransitionDuration),
	}
	for i, w := range widths {
		c := &Column{Spec: i, Width: w, XIndex: i}
		if i < len(keys) {
			c.Key = keys[i]
		} else {
			c.Key = ColumnKey("", i)
		}
		m.cols[i] = c
	}
	if isPermutation(order, len(widths)) {
		for pos, spec := range order {
			m.cols[spec].XIndex = pos
		}
	}
	m.settle()
	for _, c := range m.cols {
		c.renderX = NewTween(c.X)
		c.renderY = NewTween(0)
	}
	return m
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// XScale returns the settled x of a column: the widths of all columns
// displayed before it.
func (m *ColumnOrder) XScale(c *Column) float32 {
	x := float32(0)
	for _, other := range m.cols {
		if other.XIndex < c.XIndex {
			x += other.Width
		}
	}
	return x
}

// settle snaps every column's X to its XScale.
func (m *ColumnOrder) settle() {
	for _, c := range m.cols {
		c.X = m.XScale(c)
	}
}

// Len returns the number of columns.
func (m *ColumnOrder) Len() int {
	return len(m.cols)
}

// Column returns the column with the given specification index.
func (m *ColumnOrder) Column(spec int) *Column {
	if spec < 0 || spec >= len(m.cols) {
		return nil
	}
	return m.cols[spec]
}

// Columns returns the columns indexed by specification index.
func (m *ColumnOrder) Columns() []*Column {
	return m.cols
}

// Displayed returns the columns in display order.
func (m *ColumnOrder) Displayed() []*Column {
	out := make([]*Column, len(m.cols))
	copy(out, m.cols)
	sort.SliceStable(out, func(i, j int) bool { return out[i].XIndex < out[j].XIndex })
	return out
}

// Order returns the specification indices in display order.
func (m *ColumnOrder) Order() []int {
	displayed := m.Displayed()
	order := make([]int, len(displayed))
	for i, c := range displayed {
		order[i] = c.Spec
	}
	return order
}

// Positions returns the display index of every column, by specification index.
func (m *ColumnOrder) Positions() []int {
	pos := make([]int, len(m.cols))
	for i, c := range m.cols {
		pos[i] = c.XIndex
	}
	return pos
}

// ColumnAt returns the column whose settled span contains x, or nil.
func (m *ColumnOrder) ColumnAt(x float32) *Column {
	for _, c := range m.cols {
		if x >= c.X && x < c.X+c.Width {
			return c
		}
	}
	return nil
}

// Dragging returns the column being dragged, or nil.
func (m *ColumnOrder) Dragging() *Column {
	return m.dragged
}

// InProgress reports whether a column drag is active.
func (m *ColumnOrder) InProgress() bool {
	return m.dragged != nil
}

// DragStart lifts a column: it is raised to the top and eased up by the
// uplift for the duration of the drag.
func (m *ColumnOrder) DragStart(spec int, pointerX float32) []Command {
	c := m.Column(spec)
	if c == nil || m.dragged != nil {
		return nil
	}
	m.dragged = c
	m.grab = pointerX - c.X
	m.zTop++
	c.z = m.zTop
	c.renderY.Start(-m.uplift, m.release, EaseCubicOut)

	return []Command{
		RaiseColumn{Spec: spec},
		AnimateColumn{Spec: spec, X: c.X, Y: -m.uplift, Duration: m.release},
	}
}

// DragMove follows the pointer. The dragged column's x is clamped to
// [-overdrag, tableWidth+overdrag-width]; all columns are re-sorted by the
// dragged column's live midpoint against the others' settled midpoints and
// every other column slides to its new slot.
func (m *ColumnOrder) DragMove(pointerX float32) []Command {
	c := m.dragged
	if c == nil {
		return nil
	}
	x := clampf(pointerX-m.grab, -m.overdrag, m.tableWidth+m.overdrag-c.Width)
	c.X = x

	mid := func(d *Column) float32 { return d.X + d.Width/2 }
	sorted := make([]*Column, len(m.cols))
	copy(sorted, m.cols)
	sort.SliceStable(sorted, func(i, j int) bool {
		if mid(sorted[i]) != mid(sorted[j]) {
			return mid(sorted[i]) < mid(sorted[j])
		}
		return sorted[i].XIndex < sorted[j].XIndex
	})
	for i, d := range sorted {
		d.XIndex = i
	}

	var cmds []Command
	for _, d := range sorted {
		if d == c {
			continue
		}
		settled := m.XScale(d)
		if settled == d.X && d.renderX.Target() == settled {
			continue
		}
		d.X = settled
		d.renderX.Start(settled, m.transition, EaseCubicOut)
		cmds = append(cmds, AnimateColumn{Spec: d.Spec, X: settled, Duration: m.transition})
	}

	c.renderX.Set(x)
	c.renderY.Set(-m.uplift)
	cmds = append(cmds, MoveColumn{Spec: c.Spec, X: x, Y: -m.uplift})
	return cmds
}

// DragEnd drops the dragged column into its slot, removes the lift and emits
// the resulting column order.
func (m *ColumnOrder) DragEnd() []Command {
	c := m.dragged
	if c == nil {
		return nil
	}
	m.dragged = nil
	c.X = m.XScale(c)
	c.renderX.Start(c.X, m.release, EaseCubicOut)
	c.renderY.Start(0, m.release, EaseCubicOut)

	return []Command{
		AnimateColumn{Spec: c.Spec, X: c.X, Y: 0, Duration: m.release},
		EmitColumnOrder{Order: m.Order()},
	}
}

// Tick advances column animations; it reports whether any is still running.
func (m *ColumnOrder) Tick(dt float32) bool {
	running := false
	for _, c := range m.cols {
		if c.renderX.Advance(dt) {
			running = true
		}
		if c.renderY.Advance(dt) {
			running = true
		}
	}
	return running
}

// ZOrder returns the columns in painting order: lower raise counters first.
func (m *ColumnOrder) ZOrder() []*Column {
	out := make([]*Column, len(m.cols))
	copy(out, m.cols)
	sort.SliceStable(out, func(i, j int) bool { return out[i].z < out[j].z })
	return out
}
