package core

import "time"

// maxBacklog bounds how many steps a FixedStep may owe after a stall.
const maxBacklog = 5

// FixedStep helps run simulation updates at a steady interval regardless of
// how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller that fires every interval.
// The first poll after construction or Restart fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.Restart()
	return fs
}

// SetInterval changes the step interval. Time already accumulated is kept
// and compared against the new interval on the next poll.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	f.step = interval
}

// Interval returns the current step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Restart forgets elapsed time so the next poll fires at once.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// Due reports whether one step should run at now. At most one step is
// reported per call; time owed beyond maxBacklog steps is dropped.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	if limit := f.step * maxBacklog; f.accumulator > limit {
		f.accumulator = limit
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
