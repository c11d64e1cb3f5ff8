package control

import (
	"fmt"
	"time"
)

// Kind identifies a user command.
type Kind int

const (
	KindToggleCell Kind = iota
	KindPlay
	KindPause
	KindTogglePlay
	KindStepOnce
	KindClear
	KindRandomize
	KindResize
	KindSetSpeed
	KindLoadPattern
)

var kindNames = [...]string{
	KindToggleCell:  "toggle-cell",
	KindPlay:        "play",
	KindPause:       "pause",
	KindTogglePlay:  "toggle-play",
	KindStepOnce:    "step",
	KindClear:       "clear",
	KindRandomize:   "randomize",
	KindResize:      "resize",
	KindSetSpeed:    "set-speed",
	KindLoadPattern: "load-pattern",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Command is a single user request. Only the fields relevant to Kind are
// read.
type Command struct {
	Kind Kind

	// PX, PY are display pixel coordinates for KindToggleCell.
	PX, PY float64

	W, H    int
	Density float64
	// UseDefault makes KindRandomize take the controller's density and
	// ignore Density.
	UseDefault bool
	Interval   time.Duration
	Pattern    string
}

// ToggleCell flips the cell under display pixel (px, py).
func ToggleCell(px, py float64) Command { return Command{Kind: KindToggleCell, PX: px, PY: py} }

func Play() Command       { return Command{Kind: KindPlay} }
func Pause() Command      { return Command{Kind: KindPause} }
func TogglePlay() Command { return Command{Kind: KindTogglePlay} }
func StepOnce() Command   { return Command{Kind: KindStepOnce} }
func Clear() Command      { return Command{Kind: KindClear} }

// Randomize refills the grid with the given live-cell probability, which
// must lie in [0, 1].
func Randomize(density float64) Command { return Command{Kind: KindRandomize, Density: density} }

// RandomizeDefault refills the grid using the controller's density setting.
func RandomizeDefault() Command { return Command{Kind: KindRandomize, UseDefault: true} }

// Resize reallocates the grid; overlapping cells keep their state.
func Resize(w, h int) Command { return Command{Kind: KindResize, W: w, H: h} }

// SetSpeed changes the step interval.
func SetSpeed(d time.Duration) Command { return Command{Kind: KindSetSpeed, Interval: d} }

// LoadPattern clears the grid and centres a pattern on it. name is resolved
// by pattern.Resolve.
func LoadPattern(name string) Command { return Command{Kind: KindLoadPattern, Pattern: name} }
