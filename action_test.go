package vtable

import "testing"

func TestDefaultActions(t *testing.T) {
	tbl, err := New(testData(200, 2), WithMeasurer(fixedMeasurer{charW: 1, lineH: 4}))
	if err != nil {
		t.Fatal(err)
	}
	tbl.Refresh()

	tests := []struct {
		key  KeyCode
		want float32
	}{
		{KeyPageDown, 200},
		{KeyDown, 220},
		{KeyUp, 200},
		{KeyEnd, 3800},
		{KeyPageUp, 3600},
		{KeyHome, 0},
	}

	in := NewInputState()
	for _, tt := range tests {
		in.Reset()
		in.SetKey(tt.key, true)
		tbl.Actions().HandleActions(in, tbl)
		in.SetKey(tt.key, false)
		if got := tbl.ScrollOffset(); got != tt.want {
			t.Errorf("key %d: offset %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestActionKeyRepeat(t *testing.T) {
	tbl, err := New(testData(200, 2), WithMeasurer(fixedMeasurer{charW: 1, lineH: 4}))
	if err != nil {
		t.Fatal(err)
	}
	in := NewInputState()
	in.SetKey(KeyDown, true)

	fired := 0
	for frame := 0; frame < 30; frame++ {
		if frame > 0 {
			in.Reset()
			in.UpdateKeyRepeat(1.0 / 60)
		}
		if tbl.Actions().HandleActions(in, tbl) != nil {
			fired++
		}
	}
	// The first press, nothing during the repeat delay, then repeats.
	if fired < 2 || fired > 5 {
		t.Errorf("held key fired %d times in 30 frames", fired)
	}
}

func TestActionRegistry(t *testing.T) {
	tbl, err := New(testData(5, 2), WithMeasurer(fixedMeasurer{charW: 1, lineH: 4}))
	if err != nil {
		t.Fatal(err)
	}
	in := NewInputState()
	in.SetKey(KeyPageDown, true)

	// Everything fits: the default scroll actions stay quiet.
	if cmds := DefaultActions().HandleActions(in, tbl); cmds != nil {
		t.Errorf("scroll action ran on a table that fits: %v", cmds)
	}

	r := NewActionRegistry()
	calls := 0
	r.Register("count", KeyPageDown, func(*Table) []Command {
		calls++
		return []Command{tbl.placement()}
	})
	r.Register("shadowed", KeyPageDown, func(*Table) []Command {
		t.Error("only the first matching action runs")
		return nil
	})
	if cmds := r.HandleActions(in, tbl); len(cmds) != 1 || calls != 1 {
		t.Errorf("HandleActions = %v, calls = %d", cmds, calls)
	}

	r.Unregister("count")
	r.Unregister("shadowed")
	if r.Len() != 0 {
		t.Errorf("Len = %d after unregistering", r.Len())
	}

	r.RegisterWithCondition("never", KeyPageDown, func(*Table) []Command {
		t.Error("condition should block the action")
		return nil
	}, func(*Table) bool { return false })
	r.HandleActions(in, tbl)
	r.Clear()
	if r.Len() != 0 {
		t.Error("Clear left actions behind")
	}

	var none *ActionRegistry
	if none.HandleActions(in, tbl) != nil {
		t.Error("a nil registry has no actions")
	}
}
