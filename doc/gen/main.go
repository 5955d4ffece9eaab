// Command gen renders a sample table in a few interaction states, captures
// the framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vtable"
	"github.com/go-theft-auto/vtable/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const (
	shotWidth  = 560
	shotHeight = 360
)

// screenshot is one captured table state.
type screenshot struct {
	name  string                  // filename without extension
	data  func() vtable.TableData // table contents
	setup func(v *vtable.View)    // drives the view into the captured state
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(shotWidth, shotHeight)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Fresh view per screenshot so no state leaks between captures.
	view, err := vtable.NewView(s.data(), vtable.Vec2{X: 10, Y: 10},
		vtable.WithStyle(vtable.DarkStyle()),
		vtable.WithMeasurer(vtable.NewFaceMeasurer(nil)))
	if err != nil {
		return err
	}
	if s.setup != nil {
		s.setup(view)
	}

	gl.Viewport(0, 0, shotWidth, shotHeight)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	renderer.Begin()
	err = view.Render(renderer)
	renderer.End()
	if err != nil {
		return err
	}

	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := shotWidth * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < shotHeight/2; y++ {
		top := y * rowLen
		bot := (shotHeight - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// sampleData is a 500 row table with a wrapping notes column.
func sampleData() vtable.TableData {
	const rows = 500
	ids := make([]any, rows)
	prices := make([]any, rows)
	notes := make([]any, rows)
	for i := range rows {
		ids[i] = i
		prices[i] = float64(i) * 17.25
		notes[i] = "ok"
		if i%5 == 0 {
			notes[i] = strings.Repeat("needs review ", 1+i%3)
		}
	}
	return vtable.TableData{
		Width:  500,
		Height: 340,
		Columns: []vtable.ColumnSpec{
			{Name: "id", Header: []string{"ID"}, Values: ids, Width: 0.5},
			{Name: "price", Header: []string{"Price"}, Values: prices},
			{Name: "notes", Header: []string{"Notes"}, Values: notes, Width: 1.5},
		},
		Cells: vtable.CellSpec{
			Format: vtable.PerColumn("", ",.2f", ""),
			Prefix: vtable.PerColumn("#", "$", ""),
			Align:  vtable.PerColumn(vtable.AlignRight, vtable.AlignRight, vtable.AlignLeft),
		},
	}
}

// buildScreenshots returns every table state to capture.
func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "table_top", data: sampleData},
		{
			name: "table_scrolled",
			data: sampleData,
			setup: func(v *vtable.View) {
				v.Dispatch(v.Table().SetScroll(1234))
			},
		},
		{
			name: "table_bottom",
			data: sampleData,
			setup: func(v *vtable.View) {
				v.Dispatch(v.Table().ScrollToBottom())
			},
		},
		{
			name: "table_column_drag",
			data: sampleData,
			setup: func(v *vtable.View) {
				t := v.Table()
				notes := t.Columns().Column(2)
				v.Dispatch(t.ColumnDragStart(2, notes.X+20))
				v.Dispatch(t.ColumnDragMove(60))
				// Let the neighbours settle while the column stays lifted.
				v.Update(1)
			},
		},
	}
}
