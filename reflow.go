package vtable

// CellRef addresses one rendered cell for measurement feedback.
type CellRef struct {
	Header bool // Cell belongs to an auxiliary (header) block
	Page   int  // Block index within the ordinary or header blocks
	Row    int  // Absolute row index within that part
	Column int  // Column specification index
}

// Reflow applies measured cell heights back to the block index.
//
// A pass starts with BeginPass. Within a pass every cell is applied at most
// once, so a relayout triggered by one growth never feeds the same cell back
// into another round of measurement. Heights only grow and measuring the same
// content is idempotent, which bounds the work across passes too.
type Reflow struct {
	index  *BlockIndex
	pad    float32
	stable map[CellRef]struct{}
}

// NewReflow returns a coordinator for index with the given cell padding.
func NewReflow(index *BlockIndex, pad float32) *Reflow {
	return &Reflow{
		index:  index,
		pad:    pad,
		stable: make(map[CellRef]struct{}),
	}
}

// BeginPass starts a new measurement pass.
func (r *Reflow) BeginPass() {
	clear(r.stable)
}

// Block returns the block a reference points into, or nil.
func (r *Reflow) Block(ref CellRef) *RowBlock {
	if ref.Header {
		if ref.Page < 0 || ref.Page >= len(r.index.Header) {
			return nil
		}
		return r.index.Header[ref.Page]
	}
	return r.index.Block(ref.Page)
}

// RequiredHeight is the row height a cell with the given text height needs.
func (r *Reflow) RequiredHeight(measured float32) float32 {
	return measured + 2*r.pad
}

// OnMeasured records a cell's measured text height. The row grows to
// max(measured + 2*pad, current); it reports whether it grew. Calls are
// independent of each other and of their order.
func (r *Reflow) OnMeasured(ref CellRef, measured float32) bool {
	if _, done := r.stable[ref]; done {
		return false
	}
	r.stable[ref] = struct{}{}

	b := r.Block(ref)
	row := b.Row(ref.Row)
	if row == nil {
		return false
	}
	final := maxf(r.RequiredHeight(measured), row.Height)
	return r.index.GrowRow(b, ref.Row, final)
}
