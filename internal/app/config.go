package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"gol-web/internal/core"
	"gol-web/internal/life"
	"gol-web/internal/render"
)

// Config represents the parameters shared by every frontend. Width, Height
// and Cell may be left at zero to size the grid from the window.
type Config struct {
	Width    int
	Height   int
	Cell     int
	Boundary string
	Fill     string
	Pattern  string
	// Interval is the step interval in milliseconds.
	Interval   int
	Density    float64
	Seed       int64
	TPS        int
	Workers    int
	Grid       bool
	HUD        bool
	StopStable bool
	MaxGen     int
	Live       string
	Dead       string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Boundary: "dead",
		Fill:     string(core.FillEmpty),
		Interval: 200,
		Density:  0.5,
		TPS:      60,
		Grid:     true,
		HUD:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells (0 sizes from the window)")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells (0 sizes from the window)")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels (0 sizes from the window)")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy: dead or wrap")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill: empty, random or pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern name, file or x,y;x,y list for -fill=pattern")
	fs.IntVar(&c.Interval, "interval", c.Interval, "step interval in milliseconds")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random fills")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fills (0 picks one)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the update loop")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands stepped in parallel")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw cell borders")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the control panel")
	fs.BoolVar(&c.StopStable, "stop-stable", c.StopStable, "pause once the grid stops changing")
	fs.IntVar(&c.MaxGen, "max-gen", c.MaxGen, "pause after this many generations (0 = no limit)")
	fs.StringVar(&c.Live, "live", c.Live, "live cell colour as #rrggbb")
	fs.StringVar(&c.Dead, "dead", c.Dead, "dead cell colour as #rrggbb")
}

// ApplyMap sets fields from flag-style key/value pairs, such as a page's
// query string. Keys are the flag names.
func (c *Config) ApplyMap(m map[string]string) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.Bind(fs)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var errs []error
	for _, k := range keys {
		if err := fs.Set(k, m[k]); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", k, m[k], err))
		}
	}
	return errors.Join(errs...)
}

// FromMap returns the default configuration updated from m.
func FromMap(m map[string]string) (*Config, error) {
	c := NewConfig()
	if err := c.ApplyMap(m); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("size %dx%d: %w", c.Width, c.Height, core.ErrInvalidDimensions))
	}
	if c.Cell < 0 {
		errs = append(errs, fmt.Errorf("cell %d: %w", c.Cell, core.ErrInvalidDimensions))
	}
	if _, err := life.ParseBoundary(c.Boundary); err != nil {
		errs = append(errs, err)
	}
	switch core.FillKind(c.Fill) {
	case core.FillEmpty, core.FillRandom:
	case core.FillPattern:
		if c.Pattern == "" {
			errs = append(errs, errors.New("fill=pattern needs a pattern"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown fill %q", c.Fill))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval %dms must be positive", c.Interval))
	}
	if err := core.CheckDensity(c.Density); err != nil {
		errs = append(errs, err)
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", c.Workers))
	}
	if c.MaxGen < 0 {
		errs = append(errs, fmt.Errorf("max-gen %d must not be negative", c.MaxGen))
	}
	if _, err := c.Palette(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// StepInterval returns the configured step interval.
func (c *Config) StepInterval() time.Duration {
	return time.Duration(c.Interval) * time.Millisecond
}

// Palette returns the default palette with any configured colour overrides.
func (c *Config) Palette() (render.Palette, error) {
	p := render.DefaultPalette
	if c.Live != "" {
		live, err := render.ParseHex(c.Live)
		if err != nil {
			return p, err
		}
		p.Live = live
	}
	if c.Dead != "" {
		dead, err := render.ParseHex(c.Dead)
		if err != nil {
			return p, err
		}
		p.Dead = dead
	}
	return p, nil
}

// GridSize returns the grid dimensions and cell size for a window of the
// given pixel size. Explicit settings win over the window-derived ones.
func (c *Config) GridSize(winW, winH float64) (w, h, cell int) {
	w, h, cell = ResponsiveSize(winW, winH)
	if c.Width > 0 {
		w = c.Width
	}
	if c.Height > 0 {
		h = c.Height
	}
	if c.Cell > 0 {
		cell = c.Cell
	}
	return w, h, cell
}

// Fallback window size used when none can be measured.
const (
	DefaultWindowW = 1280
	DefaultWindowH = 720
)

// breakpoints pick a cell size and maximum grid for a window width.
var breakpoints = []struct {
	below      float64
	cell       int
	maxW, maxH int
}{
	{640, 12, 25, 30},
	{768, 13, 25, 14},
	{1024, 13, 30, 18},
	{1280, 15, 45, 22},
	{1536, 16, 55, 28},
	{math.Inf(1), 17, 70, 36},
}

// ResponsiveSize fits a grid into a window: the cell size and an upper
// bound come from the window width, and 32px are left for padding. The
// grid is never smaller than 10x8.
func ResponsiveSize(winW, winH float64) (w, h, cell int) {
	if winW <= 0 || winH <= 0 || math.IsNaN(winW) || math.IsNaN(winH) {
		winW, winH = DefaultWindowW, DefaultWindowH
	}
	bp := breakpoints[len(breakpoints)-1]
	for _, b := range breakpoints {
		if winW < b.below {
			bp = b
			break
		}
	}
	w = int(math.Floor((winW - 32) / float64(bp.cell)))
	h = int(math.Floor((winH - 32) / float64(bp.cell)))
	return clampInt(w, 10, bp.maxW), clampInt(h, 8, bp.maxH), bp.cell
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
