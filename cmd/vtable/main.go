// Command vtable lays out a table document headlessly and reports the page
// assignment, anchors, scrollbar geometry and column order after each event.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/vtable"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vtable",
	Short: "vtable inspects virtualized table layouts",
	Long: `vtable loads a YAML table document, lays it out with a fixed-grid text
measurer and replays scroll and column drag events against it.

Examples:
  vtable inspect table.yaml
  vtable inspect table.yaml --scroll 250 --scroll 9999
  vtable inspect table.yaml --drag 2:140 --scroll 250

Events replay in the order they are given.`,
	SilenceUsage: true,
}

// event is one replayed interaction, kept in command-line order.
type event struct {
	kind  string // "scroll", "wheel" or "drag"
	value string
}

var (
	events []event
	debug  bool
)

// eventFlag appends every occurrence of its flag to events, so interleaved
// --scroll, --wheel and --drag flags replay in the order given.
type eventFlag string

func (f eventFlag) String() string { return "" }
func (f eventFlag) Type() string   { return string(f) }

func (f eventFlag) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if f != "drag" {
			if _, err := strconv.ParseFloat(part, 32); err != nil {
				return err
			}
		}
		events = append(events, event{kind: string(f), value: part})
	}
	return nil
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.yaml>",
	Short: "Print the layout of a table document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().VarP(eventFlag("scroll"), "scroll", "s", "Scroll to offset (repeatable)")
	inspectCmd.Flags().VarP(eventFlag("wheel"), "wheel", "w", "Wheel by notches, positive scrolls down (repeatable)")
	inspectCmd.Flags().VarP(eventFlag("drag"), "drag", "d", "Drag column spec:x, dropping its grab point at x (repeatable)")
	inspectCmd.Flags().BoolVar(&debug, "debug", false, "Log layout tracing to stderr")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	defer func() { events = nil }()
	vtable.SetDebugLogging(debug)

	doc, err := vtable.LoadDocument(args[0])
	if err != nil {
		return err
	}
	opts := append(doc.Options(),
		vtable.WithMeasurer(vtable.NewCellMeasurer(vtable.GlyphWidth, vtable.GlyphHeight)))
	view, err := vtable.NewView(doc.Table, vtable.Vec2{}, opts...)
	if err != nil {
		return err
	}
	t := view.Table()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "rows %d, blocks %d, columns %d\n",
		t.Index().RowCount(), len(t.Index().Blocks), t.Columns().Len())
	report(out, "initial", view)

	for _, e := range events {
		label, err := replay(view, e)
		if err != nil {
			return err
		}
		report(out, label, view)
	}
	return nil
}

// replay applies one event to the view and returns its report label.
func replay(view *vtable.View, e event) (string, error) {
	t := view.Table()
	switch e.kind {
	case "scroll", "wheel":
		v, err := strconv.ParseFloat(e.value, 32)
		if err != nil {
			return "", fmt.Errorf("%s %q: %w", e.kind, e.value, err)
		}
		if e.kind == "scroll" {
			view.Dispatch(t.SetScroll(float32(v)))
		} else {
			view.Dispatch(t.Wheel(float32(v)))
		}
		return fmt.Sprintf("%s %g", e.kind, v), nil
	case "drag":
		spec, x, err := parseDrag(e.value)
		if err != nil {
			return "", err
		}
		col := t.Columns().Column(spec)
		if col == nil {
			return "", fmt.Errorf("drag %q: no column %d", e.value, spec)
		}
		grab := col.X + col.Width/2
		view.Dispatch(t.ColumnDragStart(spec, grab))
		view.Dispatch(t.ColumnDragMove(x))
		view.Dispatch(t.ColumnDragEnd())
		return fmt.Sprintf("drag %d to %g", spec, x), nil
	}
	return "", fmt.Errorf("unknown event %q", e.kind)
}

// parseDrag parses "spec:x".
func parseDrag(s string) (int, float32, error) {
	specStr, xStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("drag %q: want spec:x", s)
	}
	spec, err := strconv.Atoi(specStr)
	if err != nil {
		return 0, 0, fmt.Errorf("drag %q: %w", s, err)
	}
	x, err := strconv.ParseFloat(xStr, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("drag %q: %w", s, err)
	}
	return spec, float32(x), nil
}

func report(w io.Writer, event string, view *vtable.View) {
	l := view.Table().Layout()
	sb := l.Scrollbar
	fmt.Fprintf(w, "[%s]\n", event)
	fmt.Fprintf(w, "  scrollY %.1f  header %.1f  content %.1f  viewport %.1f\n",
		l.ScrollOffset, l.HeaderHeight, l.ContentHeight, l.ViewportHeight)
	fmt.Fprintf(w, "  pages %v  offsets [%.1f %.1f]\n", l.Pages, l.Offsets[0], l.Offsets[1])
	fmt.Fprintf(w, "  scrollbar top %.1f bottom %.1f length %.1f multiplier %.3f\n",
		sb.TopY, sb.BottomY, sb.BarLength, sb.DragMultiplier)
	fmt.Fprintf(w, "  order %v  repaints %d\n", l.ColumnOrder, view.Repaints())
}
