package life

import (
	"sync"
	"sync/atomic"

	"gol-web/internal/core"
)

// Options configures a Life simulation.
type Options struct {
	Width    int
	Height   int
	Boundary Boundary
	// Fill seeds the first generation. nil starts all-dead.
	Fill core.FillFunc
	// Workers splits each step into row bands computed concurrently.
	// Values below 2 step on the calling goroutine.
	Workers int
}

// Result describes a completed step.
type Result struct {
	Generation uint64
	Population int
	// Changed is false when the new generation equals the previous one.
	Changed bool
	// Repeat is true when the new generation equals the one two steps back
	// (period 1 or 2), provided no edit happened in between.
	Repeat bool
}

// Life implements Conway's Game of Life over a double-buffered grid.
//
// Writers (steps, edits, resizes) are serialised by mu. Readers go through
// Read, which holds view shared; the buffer swap at the end of a step holds
// view exclusively, so a reader sees either the old or the new generation
// in full and a recycled buffer is never rewritten while a reader holds it.
type Life struct {
	boundary Boundary
	workers  int

	mu   sync.Mutex
	view sync.RWMutex
	cur  *core.Grid
	prev *core.Grid
	// prevValid reports whether prev still holds the generation before cur.
	prevValid bool

	gen atomic.Uint64
	pop atomic.Int64
}

// New returns a Life simulation with the provided options.
func New(opts Options) (*Life, error) {
	cur, err := core.NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	cur.Fill(opts.Fill)
	prev, _ := core.NewGrid(opts.Width, opts.Height)
	l := &Life{boundary: opts.Boundary, workers: opts.Workers, cur: cur, prev: prev}
	l.pop.Store(int64(cur.Population()))
	return l, nil
}

// Boundary returns the boundary policy fixed at construction.
func (l *Life) Boundary() Boundary { return l.boundary }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	l.view.RLock()
	defer l.view.RUnlock()
	return l.cur.Size()
}

// Generation returns the number of completed steps.
func (l *Life) Generation() uint64 { return l.gen.Load() }

// Population returns the number of live cells in the current generation.
func (l *Life) Population() int { return int(l.pop.Load()) }

// Read calls fn with the current generation. fn must not keep g after it
// returns or modify it.
func (l *Life) Read(fn func(g *core.Grid)) {
	l.view.RLock()
	defer l.view.RUnlock()
	fn(l.cur)
}

// Previous calls fn with the generation before the current one. ok is false
// when an edit since the last step made that generation meaningless.
func (l *Life) Previous(fn func(g *core.Grid)) (ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.prevValid {
		return false
	}
	fn(l.prev)
	return true
}

// Snapshot returns a copy of the current generation.
func (l *Life) Snapshot() *core.Grid {
	var out *core.Grid
	l.Read(func(g *core.Grid) { out = g.Clone() })
	return out
}

// Get reports whether the cell at (x, y) is alive.
func (l *Life) Get(x, y int) (alive bool, err error) {
	l.Read(func(g *core.Grid) { alive, err = g.Get(x, y) })
	return alive, err
}

// Step advances the simulation by one generation.
func (l *Life) Step() bool {
	return l.Advance().Changed
}

// Advance advances the simulation by one generation and reports details.
func (l *Life) Advance() Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	// prev is owned by the writer here: the last swap waited for every
	// reader that could still see it.
	r := stepBands(l.prev, l.cur, l.boundary, l.workers)

	l.view.Lock()
	l.cur, l.prev = l.prev, l.cur
	l.view.Unlock()

	repeat := r.repeat && l.prevValid
	l.prevValid = true
	gen := l.gen.Add(1)
	l.pop.Store(int64(r.live))
	return Result{Generation: gen, Population: r.live, Changed: r.changed, Repeat: repeat || !r.changed}
}

// Set marks the cell at (x, y) alive or dead. Edits are allowed while the
// simulation runs and take effect on the next step.
func (l *Life) Set(x, y int, alive bool) error {
	return l.edit(func(g *core.Grid) error {
		was, err := g.Get(x, y)
		if err != nil {
			return err
		}
		if was == alive {
			return nil
		}
		_ = g.Set(x, y, alive)
		if alive {
			l.pop.Add(1)
		} else {
			l.pop.Add(-1)
		}
		return nil
	})
}

// Toggle inverts the cell at (x, y).
func (l *Life) Toggle(x, y int) error {
	return l.edit(func(g *core.Grid) error {
		if err := g.Toggle(x, y); err != nil {
			return err
		}
		if g.Cells()[g.Index(x, y)] == 1 {
			l.pop.Add(1)
		} else {
			l.pop.Add(-1)
		}
		return nil
	})
}

// Clear kills every cell.
func (l *Life) Clear() {
	_ = l.edit(func(g *core.Grid) error {
		g.Clear()
		l.pop.Store(0)
		return nil
	})
}

// Randomize refills the grid with a random soup of the given density.
func (l *Life) Randomize(density float64, rng *core.RNG) error {
	if err := core.CheckDensity(density); err != nil {
		return err
	}
	return l.edit(func(g *core.Grid) error {
		_ = g.Randomize(density, rng)
		l.pop.Store(int64(g.Population()))
		return nil
	})
}

// Load replaces every cell with the value of fill.
func (l *Life) Load(fill core.FillFunc) {
	_ = l.edit(func(g *core.Grid) error {
		g.Fill(fill)
		l.pop.Store(int64(g.Population()))
		return nil
	})
}

// Resize reallocates both buffers with new dimensions. Cells present in
// both shapes keep their state; new cells take the value of fill.
func (l *Life) Resize(w, h int, fill core.FillFunc) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next, err := l.cur.Resized(w, h, fill)
	if err != nil {
		return err
	}
	scratch, _ := core.NewGrid(w, h)

	l.view.Lock()
	l.cur, l.prev = next, scratch
	l.view.Unlock()

	l.prevValid = false
	l.pop.Store(int64(next.Population()))
	return nil
}

// edit runs fn against the current grid with readers excluded.
func (l *Life) edit(fn func(g *core.Grid) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.view.Lock()
	defer l.view.Unlock()
	if err := fn(l.cur); err != nil {
		return err
	}
	l.prevValid = false
	return nil
}
