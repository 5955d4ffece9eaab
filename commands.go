package vtable

// Command is a side effect requested by a table transition. Transitions never
// paint; they return commands and the View (or any host) executes them.
type Command interface {
	command()
}

// HeaderSlot addresses the header panel in RepaintPanel and RelayoutPanel.
const HeaderSlot = PanelCount

// RepaintPanel asks for a panel to be measured and painted for its page.
// Column -1 means every column.
type RepaintPanel struct {
	Slot   int // 0 or 1 for revolver panels, HeaderSlot for the header
	Page   int
	Column int
}

// RelayoutPanel asks for the rows of an already painted panel to be
// repositioned after a row in its page changed height. Measurement is not
// repeated.
type RelayoutPanel struct {
	Slot int
	Page int
}

// PlacePanels carries the vertical translation of both revolver panels
// relative to the table body top (header bias included, scroll applied).
type PlacePanels struct {
	Pages   [PanelCount]int
	Offsets [PanelCount]float32
}

// UpdateScrollbar carries freshly derived scrollbar geometry.
type UpdateScrollbar struct {
	State   ScrollbarState
	Opacity float32
}

// RaiseColumn moves a column to the top of the z-order.
type RaiseColumn struct {
	Spec int
}

// MoveColumn places a column immediately, cancelling its animation.
type MoveColumn struct {
	Spec int
	X, Y float32
}

// AnimateColumn eases a column to a new position.
type AnimateColumn struct {
	Spec     int
	X, Y     float32
	Duration float32 // Seconds
}

// EmitColumnOrder reports the final column order after a drop: the
// specification indices in display order.
type EmitColumnOrder struct {
	Order []int
}

func (RepaintPanel) command()    {}
func (RelayoutPanel) command()   {}
func (PlacePanels) command()     {}
func (UpdateScrollbar) command() {}
func (RaiseColumn) command()     {}
func (MoveColumn) command()      {}
func (AnimateColumn) command()   {}
func (EmitColumnOrder) command() {}
