// Example opens a window with a ten thousand row table: wheel, drag the
// cells or the scrollbar to scroll, drag a header to reorder columns.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vtable"
	"github.com/go-theft-auto/vtable/backend/opengl"
)

const (
	windowWidth  = 900
	windowHeight = 640
	windowTitle  = "vtable example"
	rowCount     = 10000
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sampleData builds a table whose notes column wraps on every seventh row.
func sampleData() vtable.TableData {
	ids := make([]any, rowCount)
	names := make([]any, rowCount)
	amounts := make([]any, rowCount)
	shares := make([]any, rowCount)
	notes := make([]any, rowCount)
	for i := range rowCount {
		ids[i] = i
		names[i] = fmt.Sprintf("item-%05d", i)
		amounts[i] = float64(i) * 1234.5
		shares[i] = float64(i%100) / 100
		if i%7 == 0 {
			notes[i] = strings.Repeat("long note ", 1+i%5)
		} else {
			notes[i] = "ok"
		}
	}
	return vtable.TableData{
		Width:  760,
		Height: 560,
		Margin: vtable.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10},
		Columns: []vtable.ColumnSpec{
			{Name: "id", Header: []string{"ID"}, Values: ids, Width: 0.6},
			{Name: "name", Header: []string{"Name"}, Values: names},
			{Name: "amount", Header: []string{"Amount"}, Values: amounts},
			{Name: "share", Header: []string{"Share"}, Values: shares, Width: 0.7},
			{Name: "notes", Header: []string{"Notes"}, Values: notes, Width: 1.4},
		},
		Cells: vtable.CellSpec{
			Format: vtable.PerColumn("", "", ",.2f", ".1%", ""),
			Align:  vtable.PerColumn(vtable.AlignRight, vtable.AlignLeft, vtable.AlignRight, vtable.AlignRight, vtable.AlignLeft),
			Prefix: vtable.PerColumn("#", "", "$", "", ""),
		},
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)

	view, err := vtable.NewView(sampleData(), vtable.Vec2{X: 20, Y: 20},
		vtable.WithStyle(vtable.DarkStyle()),
		vtable.WithMeasurer(vtable.NewFaceMeasurer(nil)),
		vtable.WithColumnOrderHandler(func(order []int) {
			fmt.Println("column order:", order)
		}),
	)
	if err != nil {
		return fmt.Errorf("table view: %w", err)
	}

	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		glfw.PollEvents()
		view.HandleInput(input.Update(dt))
		view.Update(dt)
		input.EndFrame()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Begin()
		err := view.Render(renderer)
		renderer.End()
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}
