// Package control turns user input into simulation and scheduler changes.
//
// Frontends translate clicks and key presses into Command values and Submit
// them; the commands are applied in order on whichever goroutine drains the
// queue, either once per frame with Drain or continuously with Run.
package control

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"sync"
	"time"

	"gol-web/internal/core"
	"gol-web/internal/life"
	"gol-web/internal/pattern"
	"gol-web/internal/sched"
)

var (
	// ErrQueueFull reports a Submit that found the command queue at capacity.
	ErrQueueFull = errors.New("command queue full")
	// ErrRunning reports a single step requested while the scheduler runs.
	ErrRunning = errors.New("cannot single-step while running")
)

// DefaultQueue is the command queue capacity used when Options.Queue is zero.
const DefaultQueue = 64

// Step interval bounds offered by the HUD and the speed keys.
const (
	IntervalStep = 20 * time.Millisecond
	MinInterval  = 20 * time.Millisecond
	MaxInterval  = 2 * time.Second
)

// NudgeInterval moves d one IntervalStep slower (direction > 0) or faster
// (direction < 0), staying within [MinInterval, MaxInterval].
func NudgeInterval(d time.Duration, direction int) time.Duration {
	switch {
	case direction > 0:
		d += IntervalStep
	case direction < 0:
		d -= IntervalStep
	}
	return min(max(d, MinInterval), MaxInterval)
}

// Options configure a Controller.
type Options struct {
	// CellPx is the on-screen size of one cell in display pixels.
	CellPx int
	// Density is the live-cell probability used by RandomizeDefault and shown
	// on the HUD.
	Density float64
	// Seed seeds the random soups.
	Seed   int64
	Queue  int
	Logger *log.Logger
}

// Controller applies user commands to one simulation and its scheduler.
type Controller struct {
	sim    *life.Life
	sched  *sched.Scheduler
	cellPx int
	log    *log.Logger
	cmds   chan Command

	mu      sync.Mutex
	density float64
	rng     *core.RNG
	pattern string
	about   string
}

// New builds a Controller. It fails if the cell size or density is invalid.
func New(sim *life.Life, s *sched.Scheduler, opts Options) (*Controller, error) {
	if opts.CellPx <= 0 {
		return nil, fmt.Errorf("cell size %d: %w", opts.CellPx, core.ErrInvalidDimensions)
	}
	if err := core.CheckDensity(opts.Density); err != nil {
		return nil, err
	}
	if opts.Queue <= 0 {
		opts.Queue = DefaultQueue
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		sim:     sim,
		sched:   s,
		cellPx:  opts.CellPx,
		log:     logger,
		cmds:    make(chan Command, opts.Queue),
		density: opts.Density,
		rng:     core.NewRNG(opts.Seed),
	}, nil
}

// Sim returns the controlled simulation.
func (c *Controller) Sim() *life.Life { return c.sim }

// Scheduler returns the controlled scheduler.
func (c *Controller) Scheduler() *sched.Scheduler { return c.sched }

// CellPx returns the on-screen cell size.
func (c *Controller) CellPx() int { return c.cellPx }

// CellAt converts display pixel coordinates to grid coordinates. ok is false
// when the point lies outside the grid.
func (c *Controller) CellAt(px, py float64) (x, y int, ok bool) {
	if math.IsNaN(px) || math.IsNaN(py) {
		return 0, 0, false
	}
	fx := math.Floor(px / float64(c.cellPx))
	fy := math.Floor(py / float64(c.cellPx))
	size := c.sim.Size()
	if fx < 0 || fy < 0 || fx >= float64(size.W) || fy >= float64(size.H) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Submit queues cmd without blocking.
func (c *Controller) Submit(cmd Command) error {
	select {
	case c.cmds <- cmd:
		return nil
	default:
		return fmt.Errorf("%v: %w", cmd.Kind, ErrQueueFull)
	}
}

// Drain applies every queued command and returns how many ran. Failures are
// logged and do not stop the drain.
func (c *Controller) Drain() int {
	n := 0
	for {
		select {
		case cmd := <-c.cmds:
			c.applyLogged(cmd)
			n++
		default:
			return n
		}
	}
}

// Run applies queued commands until ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-c.cmds:
			c.applyLogged(cmd)
		}
	}
}

func (c *Controller) applyLogged(cmd Command) {
	if err := c.Apply(cmd); err != nil {
		c.log.Printf("%v: %v", cmd.Kind, err)
	}
}

// Apply executes cmd immediately on the calling goroutine.
func (c *Controller) Apply(cmd Command) error {
	switch cmd.Kind {
	case KindToggleCell:
		x, y, ok := c.CellAt(cmd.PX, cmd.PY)
		if !ok {
			return nil
		}
		return c.sim.Toggle(x, y)
	case KindPlay:
		c.sched.Play()
		c.log.Print("start")
	case KindPause:
		c.sched.Pause()
		c.log.Print("stop")
	case KindTogglePlay:
		if c.sched.Toggle() == sched.Running {
			c.log.Print("start")
		} else {
			c.log.Print("stop")
		}
	case KindStepOnce:
		if !c.sched.StepOnce() {
			return ErrRunning
		}
	case KindClear:
		c.sim.Clear()
		c.log.Print("reset")
	case KindRandomize:
		return c.randomize(cmd.Density, cmd.UseDefault)
	case KindResize:
		if err := c.sim.Resize(cmd.W, cmd.H, nil); err != nil {
			return err
		}
		c.log.Printf("grid %d x %d", cmd.W, cmd.H)
	case KindSetSpeed:
		return c.sched.SetInterval(cmd.Interval)
	case KindLoadPattern:
		return c.loadPattern(cmd.Pattern)
	default:
		return fmt.Errorf("unknown command %v", cmd.Kind)
	}
	return nil
}

func (c *Controller) randomize(density float64, useDefault bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if useDefault {
		density = c.density
	}
	if err := core.CheckDensity(density); err != nil {
		return err
	}
	if err := c.sim.Randomize(density, c.rng); err != nil {
		return err
	}
	c.log.Print("random")
	return nil
}

func (c *Controller) loadPattern(name string) error {
	p, err := pattern.Resolve(name)
	if err != nil {
		return err
	}
	size := c.sim.Size()
	c.sim.Load(p.Centered(size.W, size.H))
	c.mu.Lock()
	c.pattern, c.about = p.Name, p.Descr
	c.mu.Unlock()
	c.log.Printf("pattern %s", p.Name)
	return nil
}

// Pattern returns the name and description of the last loaded pattern.
func (c *Controller) Pattern() (name, descr string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pattern, c.about
}

// Density returns the current randomize density.
func (c *Controller) Density() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.density
}

// Parameters reports the values shown on the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	size := c.sim.Size()
	c.mu.Lock()
	density, last, about := c.density, c.pattern, c.about
	c.mu.Unlock()
	if last == "" {
		last = "-"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.TextParam("generation", "Generation", strconv.FormatUint(c.sim.Generation(), 10)),
				core.IntParam("population", "Population", c.sim.Population()),
				core.TextParam("state", "State", c.sched.State().String()),
				core.TextParam("size", "Grid", fmt.Sprintf("%dx%d", size.W, size.H)),
				core.TextParam("boundary", "Boundary", c.sim.Boundary().String()),
				core.TextParam("pattern", "Pattern", last),
				core.TextParam("about", "About", about),
			},
		},
		{
			Name: "Controls",
			Params: []core.Parameter{
				core.IntParam("interval_ms", "Interval ms", int(c.sched.Interval()/time.Millisecond)),
				core.FloatParam("density", "Density", density),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key: "interval_ms", Label: "Interval ms", Type: core.ParamTypeInt,
			Step:   float64(IntervalStep / time.Millisecond),
			Min:    float64(MinInterval / time.Millisecond),
			Max:    float64(MaxInterval / time.Millisecond),
			HasMin: true, HasMax: true,
		},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a HUD change to an integer parameter.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key != "interval_ms" {
		return false
	}
	if err := c.sched.SetInterval(time.Duration(value) * time.Millisecond); err != nil {
		c.log.Printf("interval: %v", err)
		return false
	}
	return true
}

// SetFloatParameter applies a HUD change to a floating point parameter.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	if err := core.CheckDensity(value); err != nil {
		c.log.Printf("density: %v", err)
		return false
	}
	c.mu.Lock()
	c.density = value
	c.mu.Unlock()
	return true
}
