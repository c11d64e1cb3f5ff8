package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	start := time.Unix(0, 0)

	if !fs.Due(start) {
		t.Fatal("first poll should fire immediately")
	}
	if fs.Due(start.Add(50 * time.Millisecond)) {
		t.Fatal("poll before the interval elapsed should not fire")
	}
	if !fs.Due(start.Add(100 * time.Millisecond)) {
		t.Fatal("poll after one interval should fire")
	}
}

func TestFixedStepStallReportsOneStepPerPoll(t *testing.T) {
	fs := NewFixedStep(10 * time.Millisecond)
	now := time.Unix(0, 0)
	fs.Due(now)

	now = now.Add(time.Second)
	fired := 0
	for i := 0; i < 20; i++ {
		if fs.Due(now) {
			fired++
		}
	}
	if fired != maxBacklog {
		t.Fatalf("stall should be capped at %d owed steps, fired %d", maxBacklog, fired)
	}
}

func TestFixedStepIntervalChangeAppliesOnNextPoll(t *testing.T) {
	fs := NewFixedStep(100 * time.Millisecond)
	now := time.Unix(0, 0)
	fs.Due(now)

	now = now.Add(30 * time.Millisecond)
	if fs.Due(now) {
		t.Fatal("30ms into a 100ms interval should not fire")
	}
	fs.SetInterval(20 * time.Millisecond)
	if fs.Interval() != 20*time.Millisecond {
		t.Fatalf("Interval() = %v", fs.Interval())
	}
	if !fs.Due(now) {
		t.Fatal("accumulated 30ms should satisfy the new 20ms interval")
	}
}
