package vtable

import (
	"fmt"
	"unicode/utf8"
)

// fixedMeasurer measures every rune as charW pixels wide.
type fixedMeasurer struct {
	charW, lineH float32
}

func (m fixedMeasurer) MeasureString(s string) float32 {
	return float32(utf8.RuneCountInString(s)) * m.charW
}

func (m fixedMeasurer) LineHeight() float32 {
	return m.lineH
}

// testData builds rows x cols integer cells, one header row, columns 100px
// wide and a 200px viewport below the 20px header.
func testData(rows, cols int) TableData {
	columns := make([]ColumnSpec, cols)
	for c := range columns {
		vals := make([]any, rows)
		for r := range vals {
			vals[r] = r*10 + c
		}
		columns[c] = ColumnSpec{
			Name:   fmt.Sprintf("c%d", c),
			Header: []string{fmt.Sprintf("H%d", c)},
			Values: vals,
		}
	}
	return TableData{
		Columns: columns,
		Width:   float32(cols * 100),
		Height:  220,
	}
}

func repaintsOf(cmds []Command) []RepaintPanel {
	var out []RepaintPanel
	for _, c := range cmds {
		if r, ok := c.(RepaintPanel); ok {
			out = append(out, r)
		}
	}
	return out
}

func placementOf(cmds []Command) (PlacePanels, bool) {
	for i := len(cmds) - 1; i >= 0; i-- {
		if p, ok := cmds[i].(PlacePanels); ok {
			return p, true
		}
	}
	return PlacePanels{}, false
}

func scrollbarOf(cmds []Command) (UpdateScrollbar, bool) {
	for i := len(cmds) - 1; i >= 0; i-- {
		if u, ok := cmds[i].(UpdateScrollbar); ok {
			return u, true
		}
	}
	return UpdateScrollbar{}, false
}
