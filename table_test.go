package vtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, data TableData, opts ...TableOption) *Table {
	t.Helper()
	opts = append([]TableOption{WithMeasurer(fixedMeasurer{charW: 1, lineH: 4})}, opts...)
	tbl, err := New(data, opts...)
	require.NoError(t, err)
	return tbl
}

func TestNewValidation(t *testing.T) {
	ragged := testData(10, 2)
	ragged.Columns[1].Values = ragged.Columns[1].Values[:9]

	noViewport := testData(10, 2)
	noViewport.Height = 10
	noViewport.Margin = Insets{Top: 5, Bottom: 5}

	badConfig := DefaultConfig()
	badConfig.BlockSize = 0

	sameName := testData(10, 3)
	sameName.Columns[2].Name = "c0"

	tests := []struct {
		name string
		data TableData
		opts []TableOption
		want error
	}{
		{"no columns", TableData{Width: 100, Height: 100}, nil, ErrNoColumns},
		{"ragged columns", ragged, nil, ErrRaggedColumns},
		{"empty viewport", noViewport, nil, ErrInvalidViewport},
		{"zero block size", testData(10, 2), []TableOption{WithConfig(badConfig)}, ErrInvalidBlockSize},
		{"duplicate column name", sameName, nil, ErrDuplicateColumn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.data, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRefreshPaintsEveryPanelOnce(t *testing.T) {
	tbl := newTestTable(t, testData(200, 4))

	cmds := tbl.Refresh()
	assert.Equal(t, []RepaintPanel{
		{Slot: HeaderSlot, Page: 0, Column: -1},
		{Slot: 0, Page: 0, Column: -1},
		{Slot: 1, Page: 1, Column: -1},
	}, repaintsOf(cmds))

	place, ok := placementOf(cmds)
	require.True(t, ok)
	assert.Equal(t, [PanelCount]int{0, 1}, place.Pages)
	assert.Equal(t, [PanelCount]float32{20, 420}, place.Offsets)

	sb, ok := scrollbarOf(cmds)
	require.True(t, ok)
	assert.Equal(t, float32(4000), sb.State.TotalHeight)
	assert.Equal(t, float32(200), sb.State.ViewportHeight)
	assert.InDelta(t, 0.4, sb.Opacity, 1e-6)

	assert.Empty(t, repaintsOf(tbl.Refresh()))
}

func TestSetScrollRepaintsOnlyChangedSlot(t *testing.T) {
	tbl := newTestTable(t, testData(200, 4))
	tbl.Refresh()

	cmds := tbl.SetScroll(250)
	assert.Empty(t, repaintsOf(cmds))
	place, _ := placementOf(cmds)
	assert.Equal(t, [PanelCount]int{0, 1}, place.Pages)
	assert.Equal(t, [PanelCount]float32{-230, 170}, place.Offsets)

	cmds = tbl.SetScroll(450)
	assert.Equal(t, []RepaintPanel{{Slot: 0, Page: 2, Column: -1}}, repaintsOf(cmds))
	place, _ = placementOf(cmds)
	assert.Equal(t, [PanelCount]int{2, 1}, place.Pages)
	assert.Equal(t, [PanelCount]float32{370, -30}, place.Offsets)

	cmds = tbl.SetScroll(1e9)
	assert.Equal(t, float32(3800), tbl.ScrollOffset())
	assert.Equal(t, [PanelCount]int{8, 9}, tbl.Pages())
	assert.Len(t, repaintsOf(cmds), 2)

	tbl.ScrollToTop()
	assert.Equal(t, float32(0), tbl.ScrollOffset())
	tbl.ScrollToBottom()
	assert.Equal(t, float32(3800), tbl.ScrollOffset())
	tbl.SetScroll(-10)
	assert.Equal(t, float32(0), tbl.ScrollOffset())
}

func TestScrollTransitions(t *testing.T) {
	tbl := newTestTable(t, testData(200, 4))
	tbl.Refresh()

	tbl.Wheel(2)
	assert.Equal(t, float32(60), tbl.ScrollOffset())
	tbl.ScrollPages(1)
	assert.Equal(t, float32(260), tbl.ScrollOffset())

	tbl.ScrollbarPress(100)
	assert.InDelta(t, 1900, tbl.ScrollOffset(), 0.01)
	assert.Nil(t, tbl.ScrollbarPress(100), "pressing the thumb must not jump")

	tbl.ScrollbarDragMove(10)
	assert.InDelta(t, 2100, tbl.ScrollOffset(), 0.01)
	tbl.RowDragMove(30)
	assert.InDelta(t, 2070, tbl.ScrollOffset(), 0.01)
}

func TestDegenerateTables(t *testing.T) {
	empty := newTestTable(t, testData(0, 2))
	cmds := empty.Refresh()
	assert.Equal(t, []RepaintPanel{{Slot: HeaderSlot, Page: 0, Column: -1}}, repaintsOf(cmds))
	assert.Equal(t, [PanelCount]int{NoPage, NoPage}, empty.Pages())
	assert.False(t, empty.Scrollbar().CanScroll)

	single := newTestTable(t, testData(5, 2))
	cmds = single.Refresh()
	assert.Equal(t, []RepaintPanel{
		{Slot: HeaderSlot, Page: 0, Column: -1},
		{Slot: 0, Page: 0, Column: -1},
	}, repaintsOf(cmds))
	assert.Equal(t, [PanelCount]int{0, 0}, single.Pages())
	assert.Empty(t, repaintsOf(single.SetScroll(40)))
}

func TestOnMeasuredRelayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellPad = 0
	tbl := newTestTable(t, testData(200, 4), WithConfig(cfg))
	tbl.Refresh()

	cmds := tbl.OnMeasured(CellRef{Page: 0, Row: 3, Column: 1}, 140)
	require.Len(t, cmds, 3)
	assert.Equal(t, RelayoutPanel{Slot: 0, Page: 0}, cmds[0])
	place, _ := placementOf(cmds)
	assert.Equal(t, [PanelCount]int{0, 1}, place.Pages)
	assert.Equal(t, [PanelCount]float32{20, 540}, place.Offsets)
	sb, _ := scrollbarOf(cmds)
	assert.Equal(t, float32(4120), sb.State.TotalHeight)
	assert.Equal(t, float32(4140), tbl.Layout().TotalHeight)

	assert.Nil(t, tbl.OnMeasured(CellRef{Page: 0, Row: 3, Column: 1}, 140))

	// A page outside both panels still grows, but has no panel to relayout.
	cmds = tbl.OnMeasured(CellRef{Page: 5, Row: 100, Column: 0}, 60)
	require.Len(t, cmds, 2)
	assert.IsType(t, PlacePanels{}, cmds[0])

	cmds = tbl.OnMeasured(CellRef{Header: true, Page: 0, Row: 0, Column: 2}, 30)
	require.NotEmpty(t, cmds)
	assert.Equal(t, RelayoutPanel{Slot: HeaderSlot, Page: 0}, cmds[0])
	assert.Equal(t, float32(30), tbl.Index().HeaderHeight())
}

func TestColumnDragEmitsOrder(t *testing.T) {
	var got []int
	tbl := newTestTable(t, testData(50, 4), WithColumnOrderHandler(func(order []int) {
		got = order
	}))
	tbl.Refresh()

	cmds := tbl.ColumnDragStart(2, 250)
	sb, ok := scrollbarOf(cmds)
	require.True(t, ok)
	assert.Equal(t, float32(0), sb.Opacity, "scrollbar hides while a column is dragged")

	tbl.ColumnDragMove(140)
	cmds = tbl.ColumnDragEnd()

	assert.Contains(t, cmds, EmitColumnOrder{Order: []int{0, 2, 1, 3}})
	assert.Equal(t, []int{0, 2, 1, 3}, got)
	assert.Equal(t, []int{0, 2, 1, 3}, tbl.Data().ColumnOrder)
	assert.True(t, tbl.Animating())
}

func TestColumnDragSlidesNeighbours(t *testing.T) {
	tbl := newTestTable(t, testData(50, 4))
	tbl.Refresh()

	tbl.ColumnDragStart(2, 250)
	for range 20 {
		tbl.Tick(0.05)
	}
	neighbour := tbl.Columns().Column(1)
	require.Equal(t, float32(100), neighbour.RenderPos().X)

	tbl.ColumnDragMove(120)
	assert.True(t, tbl.Animating(), "a neighbour changing slot keeps the table animating")
	assert.Equal(t, float32(200), neighbour.X)
	for range 20 {
		tbl.Tick(0.05)
	}
	assert.Equal(t, float32(200), neighbour.RenderPos().X)
	assert.Equal(t, Vec2{X: 70, Y: -5}, tbl.Columns().Column(2).RenderPos())
}

func TestSetDataCarriesScrollAndOrder(t *testing.T) {
	tbl := newTestTable(t, testData(200, 4))
	tbl.Refresh()
	tbl.SetScroll(450)
	tbl.ColumnDragStart(2, 250)
	tbl.ColumnDragMove(140)
	tbl.ColumnDragEnd()

	reversed := testData(200, 4)
	cols := reversed.Columns
	for i, j := 0, len(cols)-1; i < j; i, j = i+1, j-1 {
		cols[i], cols[j] = cols[j], cols[i]
	}

	cmds, err := tbl.SetData(reversed)
	require.NoError(t, err)
	// Old display order c0 c2 c1 c3 in the new specification indices.
	assert.Equal(t, []int{3, 1, 2, 0}, tbl.Columns().Order())
	assert.Equal(t, float32(450), tbl.ScrollOffset())
	assert.Equal(t, []RepaintPanel{
		{Slot: HeaderSlot, Page: 0, Column: -1},
		{Slot: 0, Page: 2, Column: -1},
		{Slot: 1, Page: 1, Column: -1},
	}, repaintsOf(cmds))

	_, err = tbl.SetData(TableData{})
	assert.ErrorIs(t, err, ErrNoColumns)

	dup := testData(200, 4)
	dup.Columns[3].Name = "c1"
	_, err = tbl.SetData(dup)
	assert.ErrorIs(t, err, ErrDuplicateColumn)
	assert.Equal(t, []int{3, 1, 2, 0}, tbl.Columns().Order(), "rejected data leaves the table unchanged")
}

func TestNewClampsInitialScroll(t *testing.T) {
	data := testData(200, 4)
	data.ScrollY = 1e6
	tbl := newTestTable(t, data)
	assert.Equal(t, float32(3800), tbl.ScrollOffset())
	assert.Equal(t, float32(3800), tbl.Layout().ScrollOffset)

	data.ScrollY = -50
	assert.Equal(t, float32(0), newTestTable(t, data).ScrollOffset())
}

func TestUnnamedColumnsAreDistinct(t *testing.T) {
	data := testData(10, 3)
	for i := range data.Columns {
		data.Columns[i].Name = ""
	}
	tbl := newTestTable(t, data)
	cols := tbl.Columns().Columns()
	assert.NotEqual(t, cols[0].Key, cols[1].Key)
	assert.NotEqual(t, cols[1].Key, cols[2].Key)
}

func TestSetDataKeepsUnchangedBlocks(t *testing.T) {
	tbl := newTestTable(t, testData(200, 4))
	tbl.Refresh()
	tbl.OnMeasured(CellRef{Page: 0, Row: 3, Column: 0}, 44)
	require.Equal(t, float32(60), tbl.Index().Block(0).Row(3).Height)

	cmds, err := tbl.SetData(testData(200, 4))
	require.NoError(t, err)
	assert.Empty(t, repaintsOf(cmds))
	assert.Equal(t, float32(60), tbl.Index().Block(0).Row(3).Height)

	edited := testData(200, 4)
	edited.Columns[2].Values[25] = "edited"
	cmds, err = tbl.SetData(edited)
	require.NoError(t, err)
	assert.Equal(t, []RepaintPanel{{Slot: 1, Page: 1, Column: -1}}, repaintsOf(cmds))
	assert.Equal(t, float32(60), tbl.Index().Block(0).Row(3).Height)
}

func TestScrollbarFade(t *testing.T) {
	tbl := newTestTable(t, testData(200, 2))
	tbl.Refresh()
	require.InDelta(t, 0.4, tbl.ScrollbarOpacity(), 1e-6)

	assert.Empty(t, tbl.Tick(1), "the thumb stays visible for the hide delay")

	cmds := tbl.Tick(0.5)
	sb, ok := scrollbarOf(cmds)
	require.True(t, ok)
	assert.InDelta(t, 0.2, sb.Opacity, 1e-6)

	tbl.Tick(1)
	assert.Equal(t, float32(0), tbl.ScrollbarOpacity())
	assert.False(t, tbl.Animating())

	tbl.Wheel(1)
	assert.InDelta(t, 0.4, tbl.ScrollbarOpacity(), 1e-6)
}

func TestHandleInput(t *testing.T) {
	tbl := newTestTable(t, testData(200, 4))
	tbl.Refresh()
	in := NewInputState()

	// Wheel over the cells; GLFW reports negative y for scrolling down.
	in.SetMousePos(50, 100)
	in.SetMouseWheel(0, -2)
	tbl.HandleInput(in)
	assert.Equal(t, float32(60), tbl.ScrollOffset())

	in.Reset()
	in.SetKey(KeyPageDown, true)
	tbl.HandleInput(in)
	assert.Equal(t, float32(260), tbl.ScrollOffset())
	in.Reset()
	tbl.HandleInput(in)
	assert.Equal(t, float32(260), tbl.ScrollOffset(), "a held key does not repeat before the delay")
	in.SetKey(KeyPageDown, false)

	// Press the scrollbar track below the thumb.
	in.Reset()
	in.SetMousePos(tbl.ScrollbarX(), 120)
	in.SetMouseButton(MouseButtonLeft, true)
	tbl.HandleInput(in)
	assert.InDelta(t, 1900, tbl.ScrollOffset(), 0.01)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	tbl.HandleInput(in)

	// Drag the cells up by 30px: content follows the pointer.
	in.Reset()
	in.SetMousePos(50, 100)
	in.SetMouseButton(MouseButtonLeft, true)
	tbl.HandleInput(in)
	in.Reset()
	in.SetMousePos(50, 70)
	tbl.HandleInput(in)
	assert.InDelta(t, 1930, tbl.ScrollOffset(), 0.01)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	tbl.HandleInput(in)

	// Drag header column 2 left past column 1.
	in.Reset()
	in.SetMousePos(250, 10)
	in.SetMouseButton(MouseButtonLeft, true)
	tbl.HandleInput(in)
	require.True(t, tbl.Columns().InProgress())

	in.Reset()
	in.SetMousePos(140, 10)
	in.SetMouseWheel(0, -5)
	tbl.HandleInput(in)
	assert.InDelta(t, 1930, tbl.ScrollOffset(), 0.01, "the wheel is ignored while a column is dragged")

	in.Reset()
	in.SetMouseButton(MouseButtonLeft, false)
	cmds := tbl.HandleInput(in)
	assert.Contains(t, cmds, EmitColumnOrder{Order: []int{0, 2, 1, 3}})
	assert.False(t, tbl.Columns().InProgress())
}

func TestLayoutSnapshot(t *testing.T) {
	data := testData(200, 4)
	data.Columns[0].Width = 2
	data.Columns[1].Width = 1
	data.Columns[2].Width = 1
	data.Columns[3].Width = 0
	data.ColumnOrder = []int{1, 0, 2, 3}
	data.ScrollY = 250
	tbl := newTestTable(t, data)

	l := tbl.Layout()
	assert.Equal(t, float32(250), l.ScrollOffset)
	assert.Equal(t, float32(20), l.HeaderHeight)
	assert.Equal(t, float32(4000), l.ContentHeight)
	assert.Equal(t, float32(4020), l.TotalHeight)
	assert.Equal(t, []int{1, 0, 2, 3}, l.ColumnOrder)

	require.Len(t, l.Columns, 4)
	assert.Equal(t, ColumnLayout{Spec: 1, Key: ColumnKey("c1", 1), XIndex: 0, X: 0, Width: 80, Render: Vec2{}}, l.Columns[0])
	assert.Equal(t, float32(80), l.Columns[1].X)
	assert.Equal(t, float32(160), l.Columns[1].Width)
	assert.Equal(t, float32(400)+4+5, tbl.ScrollbarX())
}
