/*
Package vtable implements the layout, scroll and paging engine of a
virtualized table: only two blocks of rows are ever painted, however many
rows the table has.

# Overview

Rows are partitioned into fixed-size row blocks. Two alternating panels
("revolver" slots) hold the blocks that intersect the viewport; scrolling
translates the panels and repaints only the slot whose page changed. Row
heights start at an estimate and grow as cells are measured, so anchors and
the scrollbar are always derived from the current heights, never cached.

Transitions never paint. They return commands (RepaintPanel, PlacePanels,
UpdateScrollbar, AnimateColumn, EmitColumnOrder, ...) and a View executes
them against retained per-column draw lists.

# Quick Start

	view, err := vtable.NewView(data, vtable.Vec2{X: 20, Y: 20},
	    vtable.WithStyle(vtable.DarkStyle()))
	if err != nil {
	    return err
	}

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    view.HandleInput(input.Update(dt))
	    view.Update(dt)
	    input.EndFrame()

	    renderer.Begin()
	    view.Render(renderer)
	    renderer.End()
	}

Headless use drives the Table directly:

	t, _ := vtable.New(data, vtable.WithMeasurer(vtable.NewCellMeasurer(7, 13)))
	cmds := t.Refresh()
	cmds = t.SetScroll(250)
	layout := t.Layout()

# Interaction

	Wheel               Scroll by WheelStep pixels per notch
	Drag cells          Scroll, content follows the pointer
	Press scrollbar     Jump so the thumb centers on the pointer
	Drag thumb          Scroll by DragMultiplier per pixel
	Drag header         Reorder columns
	PageUp / PageDown   Scroll by one viewport
	Up / Down           Scroll by one estimated row
	Home / End          Scroll to the first / last row

# Logging

Layout tracing (page selection, repaints, row growth, column order) is
logged at debug level through log/slog. Enable it with SetDebugLogging(true)
or pass a logger with WithLogger.
*/
package vtable
