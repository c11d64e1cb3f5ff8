package app

import (
	"bytes"
	"errors"
	"flag"
	"log"
	"strings"
	"testing"
	"time"

	"gol-web/internal/core"
	"gol-web/internal/life"
	"gol-web/internal/render"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-width=40", "-height=20", "-boundary=wrap", "-interval=50", "-grid=false", "-stop-stable"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 20 || cfg.Boundary != "wrap" || cfg.Interval != 50 || cfg.Grid || !cfg.StopStable {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.StepInterval() != 50*time.Millisecond {
		t.Fatalf("StepInterval = %v", cfg.StepInterval())
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{"width": "80", "boundary": "wrap", "density": "0.25", "hud": "false"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Boundary != "wrap" || cfg.Density != 0.25 || cfg.HUD {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Interval != 200 {
		t.Fatal("unset keys should keep their defaults")
	}

	_, err = FromMap(map[string]string{"width": "wide", "nope": "1"})
	if err == nil {
		t.Fatal("bad values should fail")
	}
	for _, want := range []string{"width", "nope"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	cases := []func(c *Config){
		func(c *Config) { c.Width = -1 },
		func(c *Config) { c.Cell = -2 },
		func(c *Config) { c.Boundary = "mirror" },
		func(c *Config) { c.Fill = "noise" },
		func(c *Config) { c.Fill = "pattern" },
		func(c *Config) { c.Interval = 0 },
		func(c *Config) { c.Density = 1.5 },
		func(c *Config) { c.TPS = 0 },
		func(c *Config) { c.Workers = -1 },
		func(c *Config) { c.MaxGen = -1 },
		func(c *Config) { c.Live = "purple" },
	}
	for i, mutate := range cases {
		c := NewConfig()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected an error for %+v", i, c)
		}
	}
	c := NewConfig()
	c.Density = -1
	if err := c.Validate(); !errors.Is(err, core.ErrInvalidDensity) {
		t.Fatalf("err = %v", err)
	}
}

func TestResponsiveSize(t *testing.T) {
	cases := []struct {
		winW, winH   float64
		w, h, cellPx int
	}{
		{375, 667, 25, 30, 12},
		{700, 900, 25, 14, 13},
		{900, 700, 30, 18, 13},
		{1100, 800, 45, 22, 15},
		{1280, 720, 55, 28, 16},
		{1920, 1080, 70, 36, 17},
		{200, 100, 14, 8, 12},
		{0, 0, 55, 28, 16},
	}
	for _, tc := range cases {
		w, h, cell := ResponsiveSize(tc.winW, tc.winH)
		if w != tc.w || h != tc.h || cell != tc.cellPx {
			t.Fatalf("ResponsiveSize(%v, %v) = %d, %d, %d; want %d, %d, %d", tc.winW, tc.winH, w, h, cell, tc.w, tc.h, tc.cellPx)
		}
	}
}

func TestGridSizePrefersExplicitValues(t *testing.T) {
	c := NewConfig()
	c.Width, c.Cell = 12, 5
	w, h, cell := c.GridSize(1920, 1080)
	if w != 12 || h != 36 || cell != 5 {
		t.Fatalf("GridSize = %d, %d, %d", w, h, cell)
	}
}

func TestPaletteOverrides(t *testing.T) {
	c := NewConfig()
	c.Dead = "#000000"
	p, err := c.Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p.Live != render.DefaultPalette.Live || p.Dead.R != 0 || p.Dead.A != 0xff {
		t.Fatalf("palette = %+v", p)
	}
}

func TestNewEngine(t *testing.T) {
	var buf bytes.Buffer
	c := NewConfig()
	c.Width, c.Height, c.Cell = 20, 10, 8
	c.Boundary = "wrap"
	c.Fill = "pattern"
	c.Pattern = "glider"
	e, err := NewEngine(c, 0, 0, log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if e.Sim.Population() != 5 || e.Sim.Boundary() != life.Toroidal {
		t.Fatalf("sim = pop %d, %v", e.Sim.Population(), e.Sim.Boundary())
	}
	if w, h := e.SurfaceSize(); w != 160 || h != 80 {
		t.Fatalf("surface = %dx%d", w, h)
	}
	if e.Seed == 0 {
		t.Fatal("a seed should be picked when none is configured")
	}
	if !strings.Contains(buf.String(), "grid 20 x 10") {
		t.Fatalf("log = %q", buf.String())
	}
}

func TestNewEngineRandomFillIsSeeded(t *testing.T) {
	c := NewConfig()
	c.Width, c.Height, c.Cell = 16, 16, 4
	c.Fill = "random"
	c.Seed = 7
	logger := log.New(&bytes.Buffer{}, "", 0)
	a, err := NewEngine(c, 0, 0, logger)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewEngine(c, 0, 0, logger)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Sim.Snapshot().Equal(b.Sim.Snapshot()) {
		t.Fatal("same seed should give the same soup")
	}
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	c := NewConfig()
	c.Fill = "pattern"
	c.Pattern = "no-such-thing"
	if _, err := NewEngine(c, 0, 0, log.New(&bytes.Buffer{}, "", 0)); err == nil {
		t.Fatal("unknown pattern should fail")
	}
	c = NewConfig()
	c.Interval = -5
	if _, err := NewEngine(c, 0, 0, log.New(&bytes.Buffer{}, "", 0)); err == nil {
		t.Fatal("negative interval should fail")
	}
}
