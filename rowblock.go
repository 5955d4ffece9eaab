package vtable

// Row is one row of a block. Height starts at an estimate and only grows.
type Row struct {
	Index  int     // Absolute row index
	Height float32 // Current height in pixels
}

// RowBlock is a contiguous, fixed-size run of rows: the unit of paging and
// of incremental re-layout. Blocks are mutated in place when rows grow.
type RowBlock struct {
	Key      Key    // Stable identity for diffing
	FirstRow int    // Index of Rows[0]
	Rows     []Row  // Rows in index order
	Hash     uint64 // Content hash of the block's cells (0 = unknown)
}

// Row returns the row with the given absolute index, or nil.
func (b *RowBlock) Row(rowIndex int) *Row {
	if b == nil {
		return nil
	}
	i := rowIndex - b.FirstRow
	if i < 0 || i >= len(b.Rows) {
		return nil
	}
	return &b.Rows[i]
}

// Contains reports whether the block holds rowIndex.
func (b *RowBlock) Contains(rowIndex int) bool {
	return rowIndex >= b.FirstRow && rowIndex < b.FirstRow+len(b.Rows)
}

// growRow raises a row's height to h. It returns false when h is not larger.
func (b *RowBlock) growRow(rowIndex int, h float32) bool {
	r := b.Row(rowIndex)
	if r == nil || h <= r.Height {
		return false
	}
	r.Height = h
	return true
}

// Partition splits rowCount rows into blocks of at most blockSize rows, each
// row starting at rowHeight. The last block may be shorter. keyFn derives the
// block key from its first row.
func Partition(rowCount, blockSize int, rowHeight float32, keyFn func(firstRow int) Key) []*RowBlock {
	if rowCount <= 0 || blockSize <= 0 {
		return nil
	}
	if keyFn == nil {
		keyFn = BlockKey
	}

	blocks := make([]*RowBlock, 0, (rowCount+blockSize-1)/blockSize)
	for first := 0; first < rowCount; first += blockSize {
		n := min(blockSize, rowCount-first)
		rows := make([]Row, n)
		for i := range rows {
			rows[i] = Row{Index: first + i, Height: rowHeight}
		}
		blocks = append(blocks, &RowBlock{
			Key:      keyFn(first),
			FirstRow: first,
			Rows:     rows,
		})
	}
	return blocks
}

// BlockIndex owns the ordinary row blocks and the auxiliary header blocks of
// one table. Every height mutation goes through GrowRow so the owner can tell
// when derived offsets are stale.
type BlockIndex struct {
	Blocks []*RowBlock // Ordinary, paged blocks
	Header []*RowBlock // Auxiliary blocks, always rendered, never paged

	version uint64 // Bumped on every successful GrowRow
}

// NewBlockIndex partitions rowCount body rows and headerRows header rows.
// Header rows form a single auxiliary block.
func NewBlockIndex(rowCount, headerRows, blockSize int, rowHeight float32) *BlockIndex {
	ix := &BlockIndex{
		Blocks: Partition(rowCount, blockSize, rowHeight, BlockKey),
	}
	if headerRows > 0 {
		ix.Header = Partition(headerRows, headerRows, rowHeight, HeaderBlockKey)
	}
	return ix
}

// GrowRow sets the row's height to max(current, h). It is a no-op when h is
// not larger and reports whether the height changed.
func (ix *BlockIndex) GrowRow(b *RowBlock, rowIndex int, h float32) bool {
	if b == nil || !b.growRow(rowIndex, h) {
		return false
	}
	ix.version++
	return true
}

// Version changes whenever a row height changes.
func (ix *BlockIndex) Version() uint64 {
	return ix.version
}

// Block returns the ordinary block for a page index, or nil.
func (ix *BlockIndex) Block(page int) *RowBlock {
	if page < 0 || page >= len(ix.Blocks) {
		return nil
	}
	return ix.Blocks[page]
}

// PageOf returns the page index of the block holding rowIndex, or -1.
func (ix *BlockIndex) PageOf(rowIndex int) int {
	if len(ix.Blocks) == 0 || rowIndex < 0 {
		return -1
	}
	size := len(ix.Blocks[0].Rows)
	p := rowIndex / size
	if p >= len(ix.Blocks) || !ix.Blocks[p].Contains(rowIndex) {
		return -1
	}
	return p
}

// RowCount returns the number of ordinary rows.
func (ix *BlockIndex) RowCount() int {
	if len(ix.Blocks) == 0 {
		return 0
	}
	last := ix.Blocks[len(ix.Blocks)-1]
	return last.FirstRow + len(last.Rows)
}
