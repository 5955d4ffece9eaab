package vtable

import "math"

// AllRows passed to HeightOf sums the whole block.
const AllRows = math.MaxInt

// HeightOf returns the sum of row heights in b for rows whose index is
// strictly less than upToRow.
func HeightOf(b *RowBlock, upToRow int) float32 {
	if b == nil {
		return 0
	}
	total := float32(0)
	for i := 0; i < len(b.Rows) && b.Rows[i].Index < upToRow; i++ {
		total += b.Rows[i].Height
	}
	return total
}

// AnchorOf returns the offset of page within the scrollable content: the sum
// of the heights of all blocks strictly before it. Pages past the end anchor
// at the total content height.
func AnchorOf(blocks []*RowBlock, page int) float32 {
	total := float32(0)
	for i := 0; i < page && i < len(blocks); i++ {
		total += HeightOf(blocks[i], AllRows)
	}
	return total
}

// ContentHeight is the anchor of the one-past-last block: the scrollable
// height of all ordinary rows.
func ContentHeight(blocks []*RowBlock) float32 {
	return AnchorOf(blocks, len(blocks))
}

// HeaderHeight sums all auxiliary blocks.
func HeaderHeight(header []*RowBlock) float32 {
	total := float32(0)
	for _, b := range header {
		total += HeightOf(b, AllRows)
	}
	return total
}

// ContentHeight returns the scrollable height of the ordinary rows.
func (ix *BlockIndex) ContentHeight() float32 {
	return ContentHeight(ix.Blocks)
}

// HeaderHeight returns the fixed height of the header blocks.
func (ix *BlockIndex) HeaderHeight() float32 {
	return HeaderHeight(ix.Header)
}

// TotalHeight is the full table extent: every ordinary row plus the header.
func (ix *BlockIndex) TotalHeight() float32 {
	return ix.ContentHeight() + ix.HeaderHeight()
}

// Anchor returns the absolute vertical position of a page, with the header
// height applied as a fixed bias. Scrolling is not applied.
func (ix *BlockIndex) Anchor(page int) float32 {
	return ix.HeaderHeight() + AnchorOf(ix.Blocks, page)
}

// RowOffset returns the offset of rowIndex relative to the top of its
// block, and false when the row is not in b.
func RowOffset(b *RowBlock, rowIndex int) (float32, bool) {
	if b == nil || !b.Contains(rowIndex) {
		return 0, false
	}
	return HeightOf(b, rowIndex), true
}
