package vtable

import (
	"reflect"
	"testing"
	"time"
)

func newTestColumns(order []int) *ColumnOrder {
	widths := []float32{100, 100, 100, 100}
	return NewColumnOrder(widths, nil, order, 400, DefaultConfig())
}

func TestColumnOrderInitial(t *testing.T) {
	m := newTestColumns(nil)
	if got := m.Order(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Errorf("Order = %v", got)
	}
	for i, c := range m.Columns() {
		if c.X != float32(i*100) {
			t.Errorf("column %d at %v", i, c.X)
		}
	}

	m = newTestColumns([]int{3, 1, 0, 2})
	if got := m.Order(); !reflect.DeepEqual(got, []int{3, 1, 0, 2}) {
		t.Errorf("Order = %v", got)
	}
	if got := m.Positions(); !reflect.DeepEqual(got, []int{2, 1, 3, 0}) {
		t.Errorf("Positions = %v", got)
	}
	if x := m.Column(3).X; x != 0 {
		t.Errorf("column 3 displayed first but at %v", x)
	}

	// Orders that are not a permutation fall back to specification order.
	for _, bad := range [][]int{{0, 1}, {0, 0, 1, 2}, {0, 1, 2, 7}} {
		m = newTestColumns(bad)
		if got := m.Order(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
			t.Errorf("order %v: got %v", bad, got)
		}
	}
}

func TestColumnDragSwap(t *testing.T) {
	m := newTestColumns(nil)

	start := m.DragStart(2, 250)
	if len(start) != 2 {
		t.Fatalf("DragStart returned %d commands", len(start))
	}
	if _, ok := start[0].(RaiseColumn); !ok {
		t.Errorf("first command = %T, want RaiseColumn", start[0])
	}
	if !m.InProgress() || m.Dragging().Spec != 2 {
		t.Fatal("drag not in progress")
	}
	if m.DragStart(1, 150) != nil {
		t.Error("a second drag must not start while one is active")
	}

	cmds := m.DragMove(140)
	want := []Command{
		AnimateColumn{Spec: 1, X: 200, Duration: 0.1},
		MoveColumn{Spec: 2, X: 90, Y: -5},
	}
	if !reflect.DeepEqual(cmds, want) {
		t.Errorf("DragMove = %#v, want %#v", cmds, want)
	}
	if got := m.Order(); !reflect.DeepEqual(got, []int{0, 2, 1, 3}) {
		t.Errorf("live order = %v", got)
	}

	end := m.DragEnd()
	if len(end) != 2 {
		t.Fatalf("DragEnd returned %d commands", len(end))
	}
	emit, ok := end[1].(EmitColumnOrder)
	if !ok || !reflect.DeepEqual(emit.Order, []int{0, 2, 1, 3}) {
		t.Errorf("emitted %#v, want order [0 2 1 3]", end[1])
	}
	if x := m.Column(2).X; x != 100 {
		t.Errorf("dropped column settled at %v, want 100", x)
	}
	if m.InProgress() || m.DragMove(10) != nil || m.DragEnd() != nil {
		t.Error("drag should be over")
	}
}

func TestColumnDragClamp(t *testing.T) {
	m := newTestColumns(nil)
	m.DragStart(0, 50)

	m.DragMove(1000)
	if x := m.Column(0).X; x != 345 {
		t.Errorf("right clamp = %v, want 345", x)
	}
	if got := m.Order(); !reflect.DeepEqual(got, []int{1, 2, 3, 0}) {
		t.Errorf("order at the right edge = %v", got)
	}

	m.DragMove(-1000)
	if x := m.Column(0).X; x != -45 {
		t.Errorf("left clamp = %v, want -45", x)
	}
	if got := m.Order(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Errorf("order at the left edge = %v", got)
	}
}

func TestColumnAnimationsSettle(t *testing.T) {
	m := newTestColumns(nil)
	m.DragStart(2, 250)
	m.DragMove(140)

	if p := m.Column(2).RenderPos(); p.X != 90 || p.Y != -5 {
		t.Errorf("dragged column drawn at %+v", p)
	}
	m.DragEnd()

	if !m.Tick(0.05) {
		t.Error("animations should still be running")
	}
	release := DefaultConfig().ReleaseTransitionDuration
	if m.Tick(float32((release + time.Millisecond).Seconds())) {
		t.Error("animations should have settled")
	}
	for _, c := range m.Columns() {
		if p := c.RenderPos(); p.X != c.X || p.Y != 0 {
			t.Errorf("column %d drawn at %+v, settled at %v", c.Spec, p, c.X)
		}
	}

	z := m.ZOrder()
	if z[len(z)-1].Spec != 2 {
		t.Errorf("raised column painted at %d, want last", z[len(z)-1].Spec)
	}
}

func TestColumnAt(t *testing.T) {
	m := newTestColumns([]int{1, 0, 2, 3})
	cases := map[float32]int{0: 1, 99: 1, 100: 0, 399: 3}
	for x, want := range cases {
		c := m.ColumnAt(x)
		if c == nil || c.Spec != want {
			t.Errorf("ColumnAt(%v) = %v, want spec %d", x, c, want)
		}
	}
	if m.ColumnAt(400) != nil || m.ColumnAt(-1) != nil {
		t.Error("ColumnAt outside the table should be nil")
	}
}
