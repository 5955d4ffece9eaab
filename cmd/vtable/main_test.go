package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDrag(t *testing.T) {
	tests := []struct {
		in      string
		spec    int
		x       float32
		wantErr bool
	}{
		{"2:140", 2, 140, false},
		{"0:-12.5", 0, -12.5, false},
		{"2", 0, 0, true},
		{"a:1", 0, 0, true},
		{"1:b", 0, 0, true},
	}
	for _, tt := range tests {
		spec, x, err := parseDrag(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDrag(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && (spec != tt.spec || x != tt.x) {
			t.Errorf("parseDrag(%q) = %d, %v", tt.in, spec, x)
		}
	}
}

const inspectDoc = `
table:
  width: 300
  height: 100
  columns:
    - name: a
      header: [A]
      values: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25]
    - name: b
      header: [B]
      values: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25]
    - name: c
      header: [C]
      values: [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25]
`

func inspect(t *testing.T, flags ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t.yaml")
	if err := os.WriteFile(path, []byte(inspectDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"inspect", path}, flags...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	return out.String()
}

func TestInspect(t *testing.T) {
	got := inspect(t, "--scroll", "9999", "--drag", "2:20")
	for _, want := range []string{
		"rows 25, blocks 2, columns 3",
		"[initial]",
		"[scroll 9999]",
		"[drag 2 to 20]",
		"order [2 0 1]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestInspectReplaysEventsInOrder(t *testing.T) {
	got := inspect(t, "--drag", "2:20", "--scroll", "9999", "--wheel", "-1", "--scroll", "0,40")

	var at []int
	for _, label := range []string{"[drag 2 to 20]", "[scroll 9999]", "[wheel -1]", "[scroll 0]", "[scroll 40]"} {
		i := strings.Index(got, label)
		if i < 0 {
			t.Fatalf("output missing %q:\n%s", label, got)
		}
		at = append(at, i)
	}
	for i := 1; i < len(at); i++ {
		if at[i] <= at[i-1] {
			t.Errorf("events reported out of order:\n%s", got)
		}
	}

	// A second run starts from an empty event list.
	if again := inspect(t); strings.Contains(again, "[drag") {
		t.Errorf("events leaked into the next run:\n%s", again)
	}
}

func TestEventFlagRejectsBadNumbers(t *testing.T) {
	defer func() { events = nil }()
	if err := eventFlag("scroll").Set("abc"); err == nil {
		t.Error("scroll accepted a non-number")
	}
	if err := eventFlag("drag").Set("1:20"); err != nil {
		t.Errorf("drag: %v", err)
	}
	if len(events) != 1 || events[0] != (event{kind: "drag", value: "1:20"}) {
		t.Errorf("events = %v", events)
	}
}
