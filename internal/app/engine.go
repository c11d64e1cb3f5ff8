package app

import (
	"fmt"
	"log"
	"time"

	"gol-web/internal/control"
	"gol-web/internal/core"
	"gol-web/internal/life"
	"gol-web/internal/pattern"
	"gol-web/internal/render"
	"gol-web/internal/sched"
)

// Engine bundles one simulation with its scheduler and controller.
type Engine struct {
	Sim     *life.Life
	Sched   *sched.Scheduler
	Ctrl    *control.Controller
	Palette render.Palette
	CellPx  int
	Seed    int64
}

// NewEngine validates cfg and builds an Engine for a window of winW x winH
// pixels.
func NewEngine(cfg *Config, winW, winH float64, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	boundary, _ := life.ParseBoundary(cfg.Boundary)
	palette, _ := cfg.Palette()
	w, h, cell := cfg.GridSize(winW, winH)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fill, err := InitialFill(cfg, w, h, seed)
	if err != nil {
		return nil, err
	}

	sim, err := life.New(life.Options{Width: w, Height: h, Boundary: boundary, Fill: fill, Workers: cfg.Workers})
	if err != nil {
		return nil, err
	}
	s, err := sched.New(sim, sched.Options{
		Interval:       cfg.StepInterval(),
		StopWhenStable: cfg.StopStable,
		MaxGenerations: cfg.MaxGen,
	})
	if err != nil {
		return nil, err
	}
	ctrl, err := control.New(sim, s, control.Options{CellPx: cell, Density: cfg.Density, Seed: seed, Logger: logger})
	if err != nil {
		return nil, err
	}
	logger.Printf("grid %d x %d, %dpx cells, %v edges", w, h, cell, boundary)
	return &Engine{Sim: sim, Sched: s, Ctrl: ctrl, Palette: palette, CellPx: cell, Seed: seed}, nil
}

// InitialFill returns the fill policy cfg asks for on a w x h grid.
func InitialFill(cfg *Config, w, h int, seed int64) (core.FillFunc, error) {
	switch core.FillKind(cfg.Fill) {
	case core.FillRandom:
		return core.RandomFill(core.NewRNG(seed), cfg.Density)
	case core.FillPattern:
		p, err := pattern.Resolve(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		return p.Centered(w, h), nil
	default:
		return nil, nil
	}
}

// SurfaceSize returns the pixel size of the grid area.
func (e *Engine) SurfaceSize() (int, int) {
	return render.SurfaceSize(e.Sim.Size(), e.CellPx)
}
