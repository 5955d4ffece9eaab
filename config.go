package vtable

import (
	"errors"
	"fmt"
	"time"
)

// Validation errors returned by New, SetData and Config.Validate.
var (
	ErrNoColumns        = errors.New("vtable: table has no columns")
	ErrRaggedColumns    = errors.New("vtable: columns have different row counts")
	ErrInvalidBlockSize = errors.New("vtable: block size must be positive")
	ErrInvalidViewport  = errors.New("vtable: viewport must have positive size")
	ErrDuplicateColumn  = errors.New("vtable: column names must be unique")
)

// Config holds the layout and interaction constants of a table.
type Config struct {
	// BlockSize is the number of rows per row block (the paging unit).
	BlockSize int `yaml:"blockSize"`

	// RowHeight is the estimated height of a row before it is measured.
	RowHeight float32 `yaml:"rowHeight"`

	// CellPad is the padding between a cell's border and its text.
	CellPad float32 `yaml:"cellPad"`

	// Overdrag is how far a dragged column may leave the table horizontally.
	Overdrag float32 `yaml:"overdrag"`

	// Uplift is the vertical lift of a column while it is dragged.
	Uplift float32 `yaml:"uplift"`

	// WheelStep converts one wheel notch into pixels.
	WheelStep float32 `yaml:"wheelStep"`

	// Scrollbar geometry.
	ScrollbarWidth        float32 `yaml:"scrollbarWidth"`
	ScrollbarOffset       float32 `yaml:"scrollbarOffset"`
	ScrollbarCaptureWidth float32 `yaml:"scrollbarCaptureWidth"`

	// Scrollbar fade-out after the last scroll event.
	ScrollbarHideDelay    time.Duration `yaml:"scrollbarHideDelay"`
	ScrollbarHideDuration time.Duration `yaml:"scrollbarHideDuration"`

	// Column animations.
	TransitionDuration        time.Duration `yaml:"transitionDuration"`
	ReleaseTransitionDuration time.Duration `yaml:"releaseTransitionDuration"`
}

// DefaultConfig returns the stock table constants.
func DefaultConfig() Config {
	return Config{
		BlockSize:                 20,
		RowHeight:                 20,
		CellPad:                   8,
		Overdrag:                  45,
		Uplift:                    5,
		WheelStep:                 30,
		ScrollbarWidth:            8,
		ScrollbarOffset:           5,
		ScrollbarCaptureWidth:     18,
		ScrollbarHideDelay:        time.Second,
		ScrollbarHideDuration:     time.Second,
		TransitionDuration:        100 * time.Millisecond,
		ReleaseTransitionDuration: 120 * time.Millisecond,
	}
}

// Validate checks that the configuration can drive a layout.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("block size %d: %w", c.BlockSize, ErrInvalidBlockSize)
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("row height %v must be positive", c.RowHeight)
	}
	if c.CellPad < 0 || c.Overdrag < 0 || c.Uplift < 0 {
		return errors.New("vtable: paddings must not be negative")
	}
	return nil
}

// seconds converts a duration to the float seconds used by Tick.
func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}
