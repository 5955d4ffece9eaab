package vtable

// PanelCount is the number of alternating render surfaces ("revolver panels")
// the ordinary rows are painted into.
const PanelCount = 2

// NoPage marks an empty slot (a table without rows).
const NoPage = -1

// overlap is the half-open interval test: [a0,a1) intersects [b0,b1).
func overlap(a0, a1, b0, b1 float32) bool {
	return a0 < b1 && a1 > b0
}

// VisiblePages returns every page whose [anchor, anchor+height) interval
// intersects the viewport [offset, offset+viewportHeight).
func VisiblePages(blocks []*RowBlock, offset, viewportHeight float32) []int {
	var pages []int
	top := float32(0)
	for p, b := range blocks {
		bottom := top + HeightOf(b, AllRows)
		if overlap(offset, offset+viewportHeight, top, bottom) {
			pages = append(pages, p)
		} else if top >= offset+viewportHeight {
			break
		}
		top = bottom
	}
	return pages
}

// SelectPages picks the two pages to keep in the revolver panels.
//
// The overlapping pages are found first. A single visible page is paired with
// its neighbour: the one before it when it is the last page, otherwise the one
// after it, so the idle panel already holds the page scrolling will reveal.
// The pair is then ordered so slot 0 holds the even page and slot 1 the odd
// one. Scrolling across a block boundary then moves only the panel whose page
// left the viewport, by two pages, while the other stays put.
//
// A single block yields [0, 0]; an empty table yields [NoPage, NoPage].
func SelectPages(blocks []*RowBlock, offset, viewportHeight float32) [PanelCount]int {
	switch len(blocks) {
	case 0:
		return [PanelCount]int{NoPage, NoPage}
	case 1:
		return [PanelCount]int{0, 0}
	}

	visible := VisiblePages(blocks, offset, viewportHeight)
	if len(visible) == 0 {
		// Zero-height viewport or content: anchor on the page under offset.
		visible = []int{pageAt(blocks, offset)}
	}

	var pages [PanelCount]int
	if len(visible) == 1 {
		p := visible[0]
		if p == len(blocks)-1 {
			pages = [PanelCount]int{p - 1, p}
		} else {
			pages = [PanelCount]int{p, p + 1}
		}
	} else {
		// More than two visible pages means the block size is too small for
		// the viewport; the panels can only cover the first two.
		pages = [PanelCount]int{visible[0], visible[1]}
	}

	if pages[0]%2 != 0 {
		pages[0], pages[1] = pages[1], pages[0]
	}
	return pages
}

// pageAt returns the page containing offset, clamped to the last page.
func pageAt(blocks []*RowBlock, offset float32) int {
	top := float32(0)
	for p, b := range blocks {
		top += HeightOf(b, AllRows)
		if offset < top {
			return p
		}
	}
	return len(blocks) - 1
}

// Revolver tracks which page each panel shows and which page it last painted.
type Revolver struct {
	pages [PanelCount]int // Assigned page per slot
	prev  [PanelCount]int // Last painted page per slot
}

// NewRevolver returns a revolver whose slots have never been painted.
func NewRevolver() *Revolver {
	return &Revolver{
		pages: [PanelCount]int{NoPage, NoPage},
		prev:  [PanelCount]int{NoPage, NoPage},
	}
}

// Assign stores a new page pair and returns the slots whose page differs from
// what they last painted. Unchanged slots keep their content.
func (r *Revolver) Assign(pages [PanelCount]int) []int {
	r.pages = pages
	var changed []int
	for slot := range pages {
		if r.NeedsPaint(slot) {
			changed = append(changed, slot)
		}
	}
	return changed
}

// NeedsPaint reports whether a slot's assigned page was not painted yet.
func (r *Revolver) NeedsPaint(slot int) bool {
	return r.pages[slot] != NoPage && r.pages[slot] != r.prev[slot]
}

// MarkPainted records that slot now shows its assigned page.
func (r *Revolver) MarkPainted(slot int) {
	r.prev[slot] = r.pages[slot]
}

// Invalidate forgets what a slot painted so the next Assign repaints it.
func (r *Revolver) Invalidate(slot int) {
	r.prev[slot] = NoPage
}

// Page returns the page assigned to slot.
func (r *Revolver) Page(slot int) int {
	return r.pages[slot]
}

// Pages returns the assigned page pair.
func (r *Revolver) Pages() [PanelCount]int {
	return r.pages
}

// SlotOf returns the slot showing page, or -1.
func (r *Revolver) SlotOf(page int) int {
	for slot, p := range r.pages {
		if p == page && p != NoPage {
			return slot
		}
	}
	return -1
}
