package vtable

import (
	"fmt"
	"log/slog"
)

// ColumnSpec is the input specification of one column.
type ColumnSpec struct {
	Name   string   `yaml:"name"`   // Identity across data updates; defaults to the index
	Header []string `yaml:"header"` // Header rows, top to bottom
	Values []any    `yaml:"values"` // Cell values, one per row
	Width  float32  `yaml:"width"`  // Relative width; 0 means 1
}

// TableData is the calculated input of one table: the columns and the box it
// is laid out in.
type TableData struct {
	Columns     []ColumnSpec `yaml:"columns"`
	Width       float32      `yaml:"width"`
	Height      float32      `yaml:"height"`
	Margin      Insets       `yaml:"margin"`
	ScrollY     float32      `yaml:"scrollY"`
	ColumnOrder []int        `yaml:"columnOrder"` // Specification indices in display order
	Cells       CellSpec     `yaml:"cells"`
	HeaderCells CellSpec     `yaml:"headerCells"`
}

// RowCount returns the number of body rows.
func (d TableData) RowCount() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// HeaderRowCount returns the number of header rows.
func (d TableData) HeaderRowCount() int {
	n := 0
	for _, c := range d.Columns {
		n = max(n, len(c.Header))
	}
	return n
}

// Validate checks the data can be laid out.
func (d TableData) Validate() error {
	if len(d.Columns) == 0 {
		return ErrNoColumns
	}
	w := d.Width - d.Margin.Left - d.Margin.Right
	h := d.Height - d.Margin.Top - d.Margin.Bottom
	if w <= 0 || h <= 0 {
		return fmt.Errorf("table body %vx%v: %w", w, h, ErrInvalidViewport)
	}
	rows := d.RowCount()
	seen := make(map[string]int, len(d.Columns))
	for i, c := range d.Columns {
		if len(c.Values) != rows {
			return fmt.Errorf("column %d has %d values, want %d: %w", i, len(c.Values), rows, ErrRaggedColumns)
		}
		if c.Name == "" {
			continue
		}
		if j, ok := seen[c.Name]; ok {
			return fmt.Errorf("columns %d and %d are both named %q: %w", j, i, c.Name, ErrDuplicateColumn)
		}
		seen[c.Name] = i
	}
	return nil
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithConfig replaces the layout constants.
func WithConfig(cfg Config) TableOption {
	return func(t *Table) { t.cfg = cfg }
}

// WithStyle replaces the default colors.
func WithStyle(s Style) TableOption {
	return func(t *Table) { t.style = s }
}

// WithMeasurer sets the text measurement collaborator.
func WithMeasurer(m TextMeasurer) TableOption {
	return func(t *Table) { t.measurer = m }
}

// WithPainter sets the cell rendering collaborator.
func WithPainter(p Painter) TableOption {
	return func(t *Table) { t.painter = p }
}

// WithLogger sets the logger for layout tracing.
func WithLogger(l *slog.Logger) TableOption {
	return func(t *Table) { t.logger = l }
}

// WithActions replaces the key bindings; see DefaultActions.
func WithActions(r *ActionRegistry) TableOption {
	return func(t *Table) { t.actions = r }
}

// WithColumnOrderHandler registers fn to receive the column order whenever a
// column drag completes.
func WithColumnOrderHandler(fn func(order []int)) TableOption {
	return func(t *Table) { t.onOrder = fn }
}

// Table is the layout engine of one virtualized table. All methods run
// synchronously on the caller's goroutine; transitions return the commands a
// host must execute to bring its surfaces up to date.
type Table struct {
	cfg      Config
	style    Style
	measurer TextMeasurer
	painter  Painter
	logger   *slog.Logger
	onOrder  func([]int)
	actions  *ActionRegistry

	data       TableData
	values     [][]any // Body values by specification index
	headers    [][]any // Header labels by specification index
	index      *BlockIndex
	scroll     ScrollState
	revolver   *Revolver
	columns    *ColumnOrder
	reflow     *Reflow
	fade       DelayedAction
	tableWidth float32

	headerPainted bool
	metaHash      uint64 // Widths, names and cell specs
	headerHash    uint64 // Header labels
	animating     bool

	pointer pointerState
}

// New builds a table from data. Call Refresh for the initial commands.
func New(data TableData, opts ...TableOption) (*Table, error) {
	t := &Table{
		cfg:      DefaultConfig(),
		style:    DefaultStyle(),
		painter:  CellPainter{},
		logger:   tableLogger,
		actions:  DefaultActions(),
		revolver: NewRevolver(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.measurer == nil {
		t.measurer = NewFaceMeasurer(nil)
	}
	if err := t.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("vtable: config: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("vtable: new table: %w", err)
	}

	t.fade = DelayedAction{
		Delay:    seconds(t.cfg.ScrollbarHideDelay),
		Duration: seconds(t.cfg.ScrollbarHideDuration),
	}
	t.load(data, data.ColumnOrder)
	t.scroll.Set(data.ScrollY, t.index.ContentHeight(), t.index.HeaderHeight())
	t.fade.Restart()
	return t, nil
}

// load replaces the data. It must only be called with validated data.
func (t *Table) load(data TableData, order []int) {
	t.data = data
	t.tableWidth = data.Width - data.Margin.Left - data.Margin.Right
	t.scroll.GroupHeight = data.Height - data.Margin.Top - data.Margin.Bottom

	n := len(data.Columns)
	t.values = make([][]any, n)
	t.headers = make([][]any, n)
	keys := make([]Key, n)
	names := make([]string, n)
	for i, c := range data.Columns {
		t.values[i] = c.Values
		t.headers[i] = make([]any, len(c.Header))
		for j, h := range c.Header {
			t.headers[i][j] = h
		}
		keys[i] = ColumnKey(c.Name, i)
		names[i] = c.Name
	}

	t.index = NewBlockIndex(data.RowCount(), data.HeaderRowCount(), t.cfg.BlockSize, t.cfg.RowHeight)
	for _, b := range t.index.Blocks {
		b.Hash = t.blockContentHash(b)
	}
	t.headerHash = contentHash(t.headers)
	for _, b := range t.index.Header {
		b.Hash = t.headerHash
	}
	t.reflow = NewReflow(t.index, t.cfg.CellPad)

	widths := columnWidths(data.Columns, t.tableWidth)
	t.metaHash = contentHash(struct {
		Names       []string
		Widths      []float32
		Cells       CellSpec
		HeaderCells CellSpec
	}{names, widths, data.Cells, data.HeaderCells})
	t.columns = NewColumnOrder(widths, keys, order, t.tableWidth, t.cfg)
}

// blockContentHash hashes the values of every cell in the block.
func (t *Table) blockContentHash(b *RowBlock) uint64 {
	rows := make([][]any, len(b.Rows))
	for i, r := range b.Rows {
		row := make([]any, len(t.values))
		for c, vs := range t.values {
			row[c] = vs[r.Index]
		}
		rows[i] = row
	}
	return contentHash(rows)
}

// columnWidths scales relative widths to fill the table width.
func columnWidths(cols []ColumnSpec, tableWidth float32) []float32 {
	widths := make([]float32, len(cols))
	sum := float32(0)
	for i, c := range cols {
		w := c.Width
		if w <= 0 {
			w = 1
		}
		widths[i] = w
		sum += w
	}
	for i := range widths {
		widths[i] = widths[i] / sum * tableWidth
	}
	return widths
}

// SetData replaces the table data. The scroll offset and column order are
// carried forward by column key; blocks whose key and content are unchanged
// keep their measured row heights and their painted panels.
func (t *Table) SetData(data TableData) ([]Command, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("vtable: set data: %w", err)
	}

	prevIndex := t.index
	prevMeta, prevHeader := t.metaHash, t.headerHash
	prevHashes := blockHashes(prevIndex.Blocks)
	order := carryOrder(t.columns, data.Columns)

	if t.columns.InProgress() {
		t.columns.DragEnd()
	}
	t.load(data, order)

	diff := Diff(prevHashes, blockHashes(t.index.Blocks))
	prevByKey := make(map[Key]*RowBlock, len(prevIndex.Blocks))
	for _, b := range prevIndex.Blocks {
		prevByKey[b.Key] = b
	}
	for _, b := range t.index.Blocks {
		if old := prevByKey[b.Key]; old != nil && has(diff.Unchanged, b.Key) {
			copyHeights(t.index, b, old)
		}
	}
	if t.headerHash == prevHeader && len(prevIndex.Header) == len(t.index.Header) {
		for i, b := range t.index.Header {
			copyHeights(t.index, b, prevIndex.Header[i])
		}
	} else {
		t.headerPainted = false
	}

	if t.metaHash != prevMeta {
		t.headerPainted = false
		for slot := range PanelCount {
			t.revolver.Invalidate(slot)
		}
	} else {
		for slot := range PanelCount {
			b := t.index.Block(t.revolver.Page(slot))
			if b == nil || !has(diff.Unchanged, b.Key) {
				t.revolver.Invalidate(slot)
			}
		}
	}

	t.logger.Debug("data replaced",
		"rows", data.RowCount(),
		"added", len(diff.Added),
		"removed", len(diff.Removed),
		"changed", len(diff.Changed),
		"unchanged", len(diff.Unchanged))
	return t.update(), nil
}

func blockHashes(blocks []*RowBlock) map[Key]uint64 {
	m := make(map[Key]uint64, len(blocks))
	for _, b := range blocks {
		m[b.Key] = b.Hash
	}
	return m
}

// copyHeights carries measured heights from an unchanged block.
func copyHeights(ix *BlockIndex, dst, src *RowBlock) {
	if len(dst.Rows) != len(src.Rows) {
		return
	}
	for i, r := range src.Rows {
		ix.GrowRow(dst, dst.Rows[i].Index, r.Height)
	}
}

// carryOrder maps the current display order onto new columns by key. Columns
// that are new go last, in specification order.
func carryOrder(m *ColumnOrder, cols []ColumnSpec) []int {
	specByKey := make(map[Key]int, len(cols))
	for i, c := range cols {
		specByKey[ColumnKey(c.Name, i)] = i
	}
	order := make([]int, 0, len(cols))
	placed := make([]bool, len(cols))
	for _, c := range m.Displayed() {
		if spec, ok := specByKey[c.Key]; ok {
			order = append(order, spec)
			placed[spec] = true
		}
	}
	for spec := range cols {
		if !placed[spec] {
			order = append(order, spec)
		}
	}
	return order
}

// Refresh re-runs page selection and placement and returns the resulting
// commands. The first call after New paints every panel.
func (t *Table) Refresh() []Command {
	return t.update()
}

// update clamps the scroll offset, re-selects pages, requests repaints for
// the slots whose page changed and re-places both panels.
func (t *Table) update() []Command {
	header := t.index.HeaderHeight()
	content := t.index.ContentHeight()
	offset := t.scroll.Set(t.scroll.Offset, content, header)
	viewport := t.scroll.ViewportHeight(header)

	pages := SelectPages(t.index.Blocks, offset, viewport)
	if n := len(VisiblePages(t.index.Blocks, offset, viewport)); n > PanelCount {
		t.logger.Debug("viewport spans more blocks than panels", "visible", n, "blockSize", t.cfg.BlockSize)
	}
	prev := t.revolver.Pages()
	changed := t.revolver.Assign(pages)

	var cmds []Command
	if !t.headerPainted && len(t.index.Header) > 0 {
		cmds = append(cmds, RepaintPanel{Slot: HeaderSlot, Page: 0, Column: -1})
		t.headerPainted = true
	}
	for _, slot := range changed {
		// A single block lives in slot 0 only.
		if slot > 0 && pages[slot] == pages[0] {
			t.revolver.MarkPainted(slot)
			continue
		}
		cmds = append(cmds, RepaintPanel{Slot: slot, Page: pages[slot], Column: -1})
		t.revolver.MarkPainted(slot)
	}
	if len(changed) > 0 {
		t.logger.Debug("pages selected", "pages", pages, "prev", prev, "repaint", changed, "scrollY", offset)
	}
	return append(cmds, t.placement(), t.scrollbarCommand())
}

// placement translates both panels for the current anchors and scroll offset
// without re-selecting pages.
func (t *Table) placement() PlacePanels {
	p := PlacePanels{Pages: t.revolver.Pages()}
	for slot, page := range p.Pages {
		if page != NoPage {
			p.Offsets[slot] = t.index.Anchor(page) - t.scroll.Offset
		}
	}
	return p
}

func (t *Table) scrollbarCommand() UpdateScrollbar {
	return UpdateScrollbar{State: t.Scrollbar(), Opacity: t.ScrollbarOpacity()}
}

// Scrollbar derives the current scrollbar geometry.
func (t *Table) Scrollbar() ScrollbarState {
	header := t.index.HeaderHeight()
	return DeriveScrollbar(t.index.ContentHeight(), t.scroll.ViewportHeight(header), t.scroll.Offset)
}

// ScrollbarOpacity is the thumb opacity: full after a scroll event, fading out
// after the hide delay, and hidden while a column is dragged.
func (t *Table) ScrollbarOpacity() float32 {
	if t.columns.InProgress() {
		return 0
	}
	return t.style.ScrollbarOpacity * (1 - t.fade.Progress())
}

// SetScroll moves the viewport to offset. Out-of-range offsets are clamped.
func (t *Table) SetScroll(offset float32) []Command {
	t.scroll.Offset = offset
	t.fade.Restart()
	return t.update()
}

// ScrollBy moves the viewport by delta pixels.
func (t *Table) ScrollBy(delta float32) []Command {
	return t.SetScroll(t.scroll.Offset + delta)
}

// Wheel scrolls by deltaY wheel notches; positive values scroll down.
func (t *Table) Wheel(deltaY float32) []Command {
	return t.ScrollBy(deltaY * t.cfg.WheelStep)
}

// ScrollPages scrolls by n viewport heights.
func (t *Table) ScrollPages(n float32) []Command {
	return t.ScrollBy(n * t.ViewportHeight())
}

// ScrollToTop scrolls to the first row.
func (t *Table) ScrollToTop() []Command {
	return t.SetScroll(0)
}

// ScrollToBottom scrolls to the last row.
func (t *Table) ScrollToBottom() []Command {
	return t.SetScroll(t.index.ContentHeight())
}

// ScrollbarPress handles a press at track-relative y inside the scrollbar
// capture zone. Off the thumb, the view jumps so the thumb centers on the
// pointer. Either way the press starts a thumb drag.
func (t *Table) ScrollbarPress(y float32) []Command {
	sb := t.Scrollbar()
	if sb.OnThumb(y) {
		return nil
	}
	return t.SetScroll(sb.JumpOffset(y))
}

// ScrollbarDragMove scrolls by a thumb drag delta.
func (t *Table) ScrollbarDragMove(dy float32) []Command {
	return t.ScrollBy(t.Scrollbar().DragMultiplier * dy)
}

// RowDragMove scrolls by dragging the cells: content follows the pointer.
func (t *Table) RowDragMove(dy float32) []Command {
	return t.ScrollBy(-dy)
}

// ColumnDragStart lifts the column with the given specification index and
// hides the scrollbar for the duration of the drag.
func (t *Table) ColumnDragStart(spec int, pointerX float32) []Command {
	cmds := t.columns.DragStart(spec, pointerX)
	if cmds == nil {
		return nil
	}
	t.animating = true
	return append(cmds, t.scrollbarCommand())
}

// ColumnDragMove follows the pointer with the dragged column. Neighbours
// that change slot slide there on later Ticks.
func (t *Table) ColumnDragMove(pointerX float32) []Command {
	cmds := t.columns.DragMove(pointerX)
	for _, c := range cmds {
		if _, ok := c.(AnimateColumn); ok {
			t.animating = true
			break
		}
	}
	return cmds
}

// ColumnDragEnd drops the dragged column and emits the new column order.
func (t *Table) ColumnDragEnd() []Command {
	cmds := t.columns.DragEnd()
	if cmds == nil {
		return nil
	}
	for _, c := range cmds {
		e, ok := c.(EmitColumnOrder)
		if !ok {
			continue
		}
		t.data.ColumnOrder = e.Order
		t.logger.Debug("column order", "order", e.Order)
		if t.onOrder != nil {
			t.onOrder(e.Order)
		}
	}
	t.animating = true
	t.fade.Restart()
	return append(cmds, t.scrollbarCommand())
}

// BeginMeasurePass starts a measurement pass; see Reflow.
func (t *Table) BeginMeasurePass() {
	t.reflow.BeginPass()
}

// OnMeasured feeds a cell's measured text height back into the layout. When
// the row grows, the panel holding it is relaid out, both panels are
// re-placed with the new anchors and the scrollbar is re-derived. Pages are
// not re-selected.
func (t *Table) OnMeasured(ref CellRef, measured float32) []Command {
	var before float32
	if r := t.reflow.Block(ref).Row(ref.Row); r != nil {
		before = r.Height
	}
	if !t.reflow.OnMeasured(ref, measured) {
		return nil
	}
	t.logger.Debug("row grew",
		"row", ref.Row,
		"header", ref.Header,
		"from", before,
		"to", t.reflow.Block(ref).Row(ref.Row).Height)

	slot := HeaderSlot
	if !ref.Header {
		slot = t.revolver.SlotOf(ref.Page)
	}
	var cmds []Command
	if slot >= 0 {
		cmds = append(cmds, RelayoutPanel{Slot: slot, Page: ref.Page})
	}
	return append(cmds, t.placement(), t.scrollbarCommand())
}

// Tick advances the scrollbar fade and the column animations by dt seconds.
func (t *Table) Tick(dt float32) []Command {
	var cmds []Command
	if t.fade.Pending() {
		before := t.ScrollbarOpacity()
		t.fade.Advance(dt)
		if t.ScrollbarOpacity() != before {
			cmds = append(cmds, t.scrollbarCommand())
		}
	}
	if t.animating {
		t.animating = t.columns.Tick(dt)
	}
	return cmds
}

// Animating reports whether Tick still has work to do.
func (t *Table) Animating() bool {
	return t.animating || t.fade.Pending()
}

// PageContext builds the painter input for one column of a page.
func (t *Table) PageContext(header bool, page int, c *Column) PageContext {
	ctx := PageContext{
		Header:   header,
		Page:     page,
		Column:   c,
		Style:    t.style,
		Pad:      t.cfg.CellPad,
		Measurer: t.measurer,
	}
	if header {
		if page >= 0 && page < len(t.index.Header) {
			ctx.Block = t.index.Header[page]
		}
		ctx.Values = t.headers[c.Spec]
		ctx.Cells = &t.data.HeaderCells
	} else {
		ctx.Block = t.index.Block(page)
		ctx.Values = t.values[c.Spec]
		ctx.Cells = &t.data.Cells
	}
	return ctx
}

// Config returns the layout constants.
func (t *Table) Config() Config { return t.cfg }

// Style returns the default colors.
func (t *Table) Style() Style { return t.style }

// Painter returns the cell rendering collaborator.
func (t *Table) Painter() Painter { return t.painter }

// Measurer returns the text measurement collaborator.
func (t *Table) Measurer() TextMeasurer { return t.measurer }

// Actions returns the key bindings.
func (t *Table) Actions() *ActionRegistry { return t.actions }

// Index returns the row block index.
func (t *Table) Index() *BlockIndex { return t.index }

// Columns returns the column order model.
func (t *Table) Columns() *ColumnOrder { return t.columns }

// Data returns the current data with the live scroll offset and column order.
func (t *Table) Data() TableData {
	d := t.data
	d.ScrollY = t.scroll.Offset
	d.ColumnOrder = t.columns.Order()
	return d
}

// ScrollOffset returns the clamped scroll offset.
func (t *Table) ScrollOffset() float32 { return t.scroll.Offset }

// ViewportHeight returns the height of the scrolled area below the header.
func (t *Table) ViewportHeight() float32 {
	return t.scroll.ViewportHeight(t.index.HeaderHeight())
}

// GroupHeight returns the table body height, header included.
func (t *Table) GroupHeight() float32 { return t.scroll.GroupHeight }

// Width returns the table body width.
func (t *Table) Width() float32 { return t.tableWidth }

// Margin returns the insets around the table body.
func (t *Table) Margin() Insets { return t.data.Margin }

// Pages returns the pages assigned to the two panels.
func (t *Table) Pages() [PanelCount]int { return t.revolver.Pages() }

// ScrollbarX returns the x of the scrollbar centre line relative to the body.
func (t *Table) ScrollbarX() float32 {
	return t.tableWidth + t.cfg.ScrollbarWidth/2 + t.cfg.ScrollbarOffset
}

// ColumnLayout is the placement of one column in a Layout snapshot.
type ColumnLayout struct {
	Spec   int
	Key    Key
	XIndex int
	X      float32
	Width  float32
	Render Vec2
}

// Layout is a snapshot of the derived layout state.
type Layout struct {
	Pages            [PanelCount]int
	Offsets          [PanelCount]float32
	ScrollOffset     float32
	HeaderHeight     float32
	ContentHeight    float32
	TotalHeight      float32
	ViewportHeight   float32
	Scrollbar        ScrollbarState
	ScrollbarOpacity float32
	ColumnOrder      []int
	Columns          []ColumnLayout // Display order
}

// Layout returns a snapshot of the current layout.
func (t *Table) Layout() Layout {
	p := t.placement()
	l := Layout{
		Pages:            p.Pages,
		Offsets:          p.Offsets,
		ScrollOffset:     t.scroll.Offset,
		HeaderHeight:     t.index.HeaderHeight(),
		ContentHeight:    t.index.ContentHeight(),
		TotalHeight:      t.index.TotalHeight(),
		ViewportHeight:   t.ViewportHeight(),
		Scrollbar:        t.Scrollbar(),
		ScrollbarOpacity: t.ScrollbarOpacity(),
		ColumnOrder:      t.columns.Order(),
	}
	for _, c := range t.columns.Displayed() {
		l.Columns = append(l.Columns, ColumnLayout{
			Spec:   c.Spec,
			Key:    c.Key,
			XIndex: c.XIndex,
			X:      c.X,
			Width:  c.Width,
			Render: c.RenderPos(),
		})
	}
	return l
}
