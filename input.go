package vtable

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// KeyCode represents a keyboard key the table reacts to.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCount
)

// Key repeat timing in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState holds input for the current frame in table coordinates: the
// host subtracts the table's origin before setting the mouse position.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // Pressed this frame
	mouseUp      [MouseButtonCount]bool // Released this frame

	MouseWheelX float32
	MouseWheelY float32 // Positive scrolls up, as GLFW reports it

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyHoldTime [KeyCount]float32
	lastDt      float32
}

// NewInputState creates an empty InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame events. Call it at the start of each frame before
// collecting input.
func (s *InputState) Reset() {
	s.mouseClicked = [MouseButtonCount]bool{}
	s.mouseUp = [MouseButtonCount]bool{}
	s.keyPressed = [KeyCount]bool{}
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key KeyCode, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if down != wasDown {
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat advances key hold times. Call it once per frame.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	s.lastDt = dt
	for key := range s.keyDown {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// MouseDown reports whether a mouse button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked reports whether a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased reports whether a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyRepeated reports whether a key triggers this frame: on the initial
// press, then after KeyRepeatDelay, then every KeyRepeatInterval.
func (s *InputState) KeyRepeated(key KeyCode) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] || s.keyHoldTime[key] < KeyRepeatDelay {
		return false
	}
	since := s.keyHoldTime[key] - KeyRepeatDelay
	return int(since/KeyRepeatInterval) > int((since-s.lastDt)/KeyRepeatInterval)
}

// hitRegion is the part of the table under the pointer.
type hitRegion int

const (
	hitNone hitRegion = iota
	hitHeader
	hitCells
	hitScrollbar
)

// dragTarget is what an active pointer drag moves.
type dragTarget int

const (
	dragNone dragTarget = iota
	dragColumn
	dragThumb
	dragRows
)

type pointerState struct {
	target       dragTarget
	lastX, lastY float32
}

// hitTest classifies a body-relative point.
func (t *Table) hitTest(x, y float32) hitRegion {
	if y < 0 || y >= t.scroll.GroupHeight {
		return hitNone
	}
	header := t.index.HeaderHeight()
	sx, half := t.ScrollbarX(), t.cfg.ScrollbarCaptureWidth/2
	if y >= header && x >= sx-half && x <= sx+half {
		return hitScrollbar
	}
	if x < 0 || x >= t.tableWidth {
		return hitNone
	}
	if y < header {
		return hitHeader
	}
	return hitCells
}

// HandleInput hit-tests the frame's input and applies the matching
// transitions: pressing the header drags a column, pressing the scrollbar
// capture zone jumps or drags the thumb, pressing the cells drags the rows.
// The wheel and the registered key actions apply while the pointer is over
// the table.
func (t *Table) HandleInput(in *InputState) []Command {
	x := in.MouseX - t.data.Margin.Left
	y := in.MouseY - t.data.Margin.Top
	hit := t.hitTest(x, y)
	p := &t.pointer

	var cmds []Command
	switch {
	case in.MouseClicked(MouseButtonLeft):
		switch hit {
		case hitScrollbar:
			p.target = dragThumb
			cmds = append(cmds, t.ScrollbarPress(y-t.index.HeaderHeight())...)
		case hitHeader:
			if c := t.columns.ColumnAt(x); c != nil {
				p.target = dragColumn
				cmds = append(cmds, t.ColumnDragStart(c.Spec, x)...)
			}
		case hitCells:
			p.target = dragRows
		}
	case in.MouseDown(MouseButtonLeft):
		dx, dy := x-p.lastX, y-p.lastY
		switch {
		case p.target == dragThumb && dy != 0:
			cmds = append(cmds, t.ScrollbarDragMove(dy)...)
		case p.target == dragColumn && dx != 0:
			cmds = append(cmds, t.ColumnDragMove(x)...)
		case p.target == dragRows && dy != 0:
			cmds = append(cmds, t.RowDragMove(dy)...)
		}
	}
	p.lastX, p.lastY = x, y

	if in.MouseReleased(MouseButtonLeft) {
		if p.target == dragColumn {
			cmds = append(cmds, t.ColumnDragEnd()...)
		}
		p.target = dragNone
	}

	if hit == hitNone || t.columns.InProgress() {
		return cmds
	}
	if in.MouseWheelY != 0 {
		cmds = append(cmds, t.Wheel(-in.MouseWheelY)...)
	}
	cmds = append(cmds, t.actions.HandleActions(in, t)...)
	return cmds
}
