// Package sched drives a simulation at a fixed step interval, independently
// of how often frames are drawn.
package sched

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gol-web/internal/core"
)

// ErrInvalidInterval reports a non-positive step interval.
var ErrInvalidInterval = errors.New("step interval must be positive")

// RunState is the scheduler's play state.
type RunState int

const (
	Stopped RunState = iota
	Running
	// SteppingOnce is held while a single manual step executes.
	SteppingOnce
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case SteppingOnce:
		return "stepping"
	default:
		return "stopped"
	}
}

// Options tune a Scheduler.
type Options struct {
	Interval time.Duration
	// StopWhenStable pauses once a step changes nothing or leaves no live
	// cells.
	StopWhenStable bool
	// MaxGenerations pauses after this many steps since the last Play.
	// Zero means no limit.
	MaxGenerations int
	// OnStep is called after every step with the scheduler lock held; it
	// must not call back into the Scheduler.
	OnStep func(changed bool)
}

// DefaultInterval matches the browser page's 200ms timer.
const DefaultInterval = 200 * time.Millisecond

// Scheduler owns the run state of one simulation instance.
type Scheduler struct {
	sim core.Stepper

	mu       sync.Mutex
	state    RunState
	clock    *core.FixedStep
	opts     Options
	sinceRun int
	// kick is set by Play so Run steps without waiting a full interval.
	kick bool

	// wake nudges Run when play state or interval changes.
	wake chan struct{}
}

// New constructs a stopped Scheduler for sim.
func New(sim core.Stepper, opts Options) (*Scheduler, error) {
	if opts.Interval == 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Interval < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, opts.Interval)
	}
	return &Scheduler{
		sim:   sim,
		clock: core.NewFixedStep(opts.Interval),
		opts:  opts,
		wake:  make(chan struct{}, 1),
	}, nil
}

// State returns the current run state.
func (s *Scheduler) State() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Interval returns the current step interval.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Interval()
}

// Play starts continuous stepping. The first step is due immediately.
func (s *Scheduler) Play() {
	s.mu.Lock()
	if s.state != Running {
		s.state = Running
		s.sinceRun = 0
		s.kick = true
		s.clock.Restart()
	}
	s.mu.Unlock()
	s.nudge()
}

// Pause stops continuous stepping. Once Pause returns no further step
// starts; a step already executing has completed.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	s.state = Stopped
	s.kick = false
	s.mu.Unlock()
	s.nudge()
}

// Toggle flips between Running and Stopped and returns the new state.
func (s *Scheduler) Toggle() RunState {
	if s.State() == Running {
		s.Pause()
		return Stopped
	}
	s.Play()
	return Running
}

// StepOnce performs exactly one step when stopped and reports whether it
// did. It is rejected while the scheduler is running.
func (s *Scheduler) StepOnce() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Stopped {
		return false
	}
	s.state = SteppingOnce
	s.step()
	s.state = Stopped
	return true
}

// SetInterval changes the step interval; it applies from the next tick.
func (s *Scheduler) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, d)
	}
	s.mu.Lock()
	s.clock.SetInterval(d)
	s.mu.Unlock()
	s.nudge()
	return nil
}

// Tick is the cooperative driver: call it once per frame. It performs at
// most one step, and only when running and an interval has elapsed.
func (s *Scheduler) Tick(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running || !s.clock.Due(now) {
		return false
	}
	s.step()
	return true
}

// Run drives the scheduler from its own goroutine until ctx is done. The
// timer is only armed while running; an interval change re-arms it for
// the time left since the last step.
func (s *Scheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	armed := false
	var last time.Time
	for {
		var tick <-chan time.Time
		if armed {
			tick = timer.C
		}
		select {
		case <-ctx.Done():
			if armed {
				stopTimer(timer)
			}
			return ctx.Err()
		case <-s.wake:
			if armed {
				stopTimer(timer)
				armed = false
			}
			if s.takeKick() {
				s.fire()
				last = time.Now()
			}
		case <-tick:
			armed = false
			s.fire()
			last = time.Now()
		}
		if wait, ok := s.nextWait(last, time.Now()); ok {
			timer.Reset(wait)
			armed = true
		}
	}
}

// nextWait reports how long Run should sleep before the next step, and
// false when no step is due because the scheduler is not running.
func (s *Scheduler) nextWait(last, now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running {
		return 0, false
	}
	wait := s.clock.Interval()
	if !last.IsZero() {
		wait -= now.Sub(last)
	}
	return max(wait, 0), true
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

func (s *Scheduler) takeKick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := s.kick && s.state == Running
	s.kick = false
	return k
}

// fire runs one step if the scheduler is still running.
func (s *Scheduler) fire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running {
		return
	}
	s.step()
}

// step must be called with mu held.
func (s *Scheduler) step() {
	changed := s.sim.Step()
	if s.opts.OnStep != nil {
		s.opts.OnStep(changed)
	}
	if s.state != Running {
		return
	}
	s.sinceRun++
	if s.opts.MaxGenerations > 0 && s.sinceRun >= s.opts.MaxGenerations {
		s.state = Stopped
		return
	}
	if s.opts.StopWhenStable && (!changed || population(s.sim) == 0) {
		s.state = Stopped
	}
}

func (s *Scheduler) nudge() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func population(st core.Stepper) int {
	if p, ok := st.(interface{ Population() int }); ok {
		return p.Population()
	}
	return -1
}
