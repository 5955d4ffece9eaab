package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vtable"
)

// GLFWInputAdapter feeds GLFW window events into a vtable.InputState.
//
// Per frame: glfw.PollEvents, Update, hand Input to the view, then EndFrame.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *vtable.InputState
}

// NewGLFWInputAdapter installs the window callbacks.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  vtable.NewInputState(),
	}
	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	return adapter
}

// Update samples the cursor and advances key repeat after events were polled.
func (a *GLFWInputAdapter) Update(dt float32) *vtable.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// EndFrame clears the frame's one-shot events.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *vtable.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKeyCode(key)
	if k == vtable.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func glfwKeyToKeyCode(key glfw.Key) vtable.KeyCode {
	switch key {
	case glfw.KeyUp:
		return vtable.KeyUp
	case glfw.KeyDown:
		return vtable.KeyDown
	case glfw.KeyPageUp:
		return vtable.KeyPageUp
	case glfw.KeyPageDown:
		return vtable.KeyPageDown
	case glfw.KeyHome:
		return vtable.KeyHome
	case glfw.KeyEnd:
		return vtable.KeyEnd
	default:
		return vtable.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) vtable.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return vtable.MouseButtonLeft
	case glfw.MouseButtonRight:
		return vtable.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return vtable.MouseButtonMiddle
	default:
		return -1
	}
}
