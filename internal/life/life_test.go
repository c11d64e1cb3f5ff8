package life

import (
	"errors"
	"sync"
	"testing"

	"gol-web/internal/core"
)

func newLife(t *testing.T, w, h int, b Boundary, live ...[2]int) *Life {
	t.Helper()
	l, err := New(Options{Width: w, Height: h, Boundary: b})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range live {
		if err := l.Set(p[0], p[1], true); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func assertLive(t *testing.T, l *Life, want ...[2]int) {
	t.Helper()
	expects := map[[2]int]bool{}
	for _, p := range want {
		expects[p] = true
	}
	l.Read(func(g *core.Grid) {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				alive, _ := g.Get(x, y)
				if alive != expects[[2]int{x, y}] {
					t.Fatalf("gen %d: cell (%d,%d) alive=%v, expected %v", l.Generation(), x, y, alive, expects[[2]int{x, y}])
				}
			}
		}
	})
}

func TestBlinkerOscillation(t *testing.T) {
	for _, b := range []Boundary{DeadBorder, Toroidal} {
		l := newLife(t, 5, 5, b, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

		if !l.Step() {
			t.Fatal("blinker step should report a change")
		}
		assertLive(t, l, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

		l.Step()
		assertLive(t, l, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

		if l.Generation() != 2 {
			t.Fatalf("%v: generation = %d, want 2", b, l.Generation())
		}
	}
}

func TestSingleCellDiesThenGridStaysEmpty(t *testing.T) {
	for _, b := range []Boundary{DeadBorder, Toroidal} {
		l := newLife(t, 5, 5, b, [2]int{2, 2})
		l.Step()
		assertLive(t, l)
		if l.Population() != 0 {
			t.Fatalf("%v: population = %d", b, l.Population())
		}
		if l.Step() {
			t.Fatalf("%v: stepping an empty grid must not change it", b)
		}
		assertLive(t, l)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	block := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	for _, b := range []Boundary{DeadBorder, Toroidal} {
		l := newLife(t, 4, 4, b, block...)
		for i := 0; i < 10; i++ {
			r := l.Advance()
			if r.Changed || !r.Repeat {
				t.Fatalf("%v: block changed at generation %d", b, r.Generation)
			}
		}
		assertLive(t, l, block...)
	}
}

func TestEdgeBlinkerDependsOnBoundary(t *testing.T) {
	top := [][2]int{{1, 0}, {2, 0}, {3, 0}}

	dead := newLife(t, 5, 5, DeadBorder, top...)
	dead.Step()
	assertLive(t, dead, [2]int{2, 0}, [2]int{2, 1})

	torus := newLife(t, 5, 5, Toroidal, top...)
	torus.Step()
	assertLive(t, torus, [2]int{2, 4}, [2]int{2, 0}, [2]int{2, 1})
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	l := newLife(t, 8, 8, Toroidal, glider...)
	start := l.Snapshot()
	// A glider moves one cell diagonally every 4 generations.
	for i := 0; i < 4*8; i++ {
		l.Step()
		if l.Population() != 5 {
			t.Fatalf("glider population %d at generation %d", l.Population(), l.Generation())
		}
	}
	if !l.Snapshot().Equal(start) {
		t.Fatal("glider should return to its start after crossing the torus")
	}
}

func TestAdvanceDetectsPeriodTwo(t *testing.T) {
	l := newLife(t, 5, 5, DeadBorder, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	if r := l.Advance(); r.Repeat {
		t.Fatal("first step has no generation n-2 to compare against")
	}
	if r := l.Advance(); !r.Repeat || !r.Changed {
		t.Fatalf("blinker second step: %+v", r)
	}

	// An edit invalidates the previous generation.
	_ = l.Toggle(0, 0)
	_ = l.Toggle(0, 0)
	if r := l.Advance(); r.Repeat {
		t.Fatal("repeat must not be reported right after an edit")
	}
}

func TestPreviousHoldsLastGeneration(t *testing.T) {
	l := newLife(t, 5, 5, DeadBorder, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	if l.Previous(func(*core.Grid) {}) {
		t.Fatal("no previous generation before the first step")
	}
	before := l.Snapshot()
	l.Step()
	var prev *core.Grid
	if !l.Previous(func(g *core.Grid) { prev = g.Clone() }) {
		t.Fatal("previous generation should be available after a step")
	}
	if !prev.Equal(before) {
		t.Fatal("previous generation mismatch")
	}
}

func TestEditsTrackPopulation(t *testing.T) {
	l := newLife(t, 4, 4, DeadBorder)
	_ = l.Set(1, 1, true)
	_ = l.Set(1, 1, true)
	_ = l.Toggle(2, 2)
	if l.Population() != 2 {
		t.Fatalf("population = %d, want 2", l.Population())
	}
	_ = l.Toggle(2, 2)
	_ = l.Set(1, 1, false)
	if l.Population() != 0 {
		t.Fatalf("population = %d, want 0", l.Population())
	}
	if err := l.Toggle(9, 9); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("Toggle outside err = %v", err)
	}
}

func TestResizeKeepsOverlapAndFillsNewCells(t *testing.T) {
	l := newLife(t, 3, 3, DeadBorder, [2]int{0, 0}, [2]int{2, 2})
	if err := l.Resize(5, 4, core.Alive); err != nil {
		t.Fatal(err)
	}
	if s := l.Size(); s.W != 5 || s.H != 4 {
		t.Fatalf("size after resize = %+v", s)
	}
	l.Read(func(g *core.Grid) {
		for y := 0; y < 4; y++ {
			for x := 0; x < 5; x++ {
				alive, _ := g.Get(x, y)
				want := true
				if x < 3 && y < 3 {
					want = (x == 0 && y == 0) || (x == 2 && y == 2)
				}
				if alive != want {
					t.Fatalf("cell (%d,%d) = %v, want %v", x, y, alive, want)
				}
			}
		}
	})
	if l.Population() != 2+(5*4-9) {
		t.Fatalf("population after resize = %d", l.Population())
	}
	if err := l.Resize(0, 4, nil); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("Resize(0,4) err = %v", err)
	}
	// Stepping after a resize must use the new shape for both buffers.
	l.Step()
	if s := l.Size(); s.W != 5 || s.H != 4 {
		t.Fatalf("size after step = %+v", s)
	}
}

func TestRandomizeValidatesDensity(t *testing.T) {
	l := newLife(t, 6, 6, DeadBorder, [2]int{3, 3})
	if err := l.Randomize(2, core.NewRNG(1)); !errors.Is(err, core.ErrInvalidDensity) {
		t.Fatalf("Randomize(2) err = %v", err)
	}
	assertLive(t, l, [2]int{3, 3})
	if err := l.Randomize(1, core.NewRNG(1)); err != nil {
		t.Fatal(err)
	}
	if l.Population() != 36 {
		t.Fatalf("density 1 population = %d", l.Population())
	}
	l.Clear()
	assertLive(t, l)
}

func TestReadersNeverSeeTornGenerations(t *testing.T) {
	// A blinker alternates between two shapes; any snapshot a reader takes
	// must be one of them.
	l := newLife(t, 5, 5, DeadBorder, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	l.workers = 3
	horizontal := l.Snapshot()
	vertical := Next(horizontal, DeadBorder)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errs := make(chan string, 1)
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				l.Read(func(g *core.Grid) {
					if !g.Equal(horizontal) && !g.Equal(vertical) {
						select {
						case errs <- "reader observed a mixed generation":
						default:
						}
					}
				})
			}
		}()
	}
	for i := 0; i < 500; i++ {
		l.Step()
	}
	close(stop)
	wg.Wait()
	select {
	case msg := <-errs:
		t.Fatal(msg)
	default:
	}
}

func TestEditsDuringSteppingStayConsistent(t *testing.T) {
	l := newLife(t, 10, 8, Toroidal)
	l.workers = 2
	if err := l.Randomize(0.4, core.NewRNG(7)); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	errs := make(chan string, 1)
	report := func(msg string) {
		select {
		case errs <- msg:
		default:
		}
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 400; i++ {
			l.Advance()
		}
	}()
	go func() {
		defer wg.Done()
		rng := core.NewRNG(3)
		for i := 0; i < 200; i++ {
			if err := l.Resize(8+i%5, 6+i%3, core.Alive); err != nil {
				report(err.Error())
				return
			}
			if err := l.Toggle(0, 0); err != nil {
				report(err.Error())
				return
			}
			if err := l.Randomize(0.3, rng); err != nil {
				report(err.Error())
				return
			}
			if i%7 == 0 {
				l.Clear()
			}
		}
	}()

	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			l.Read(func(g *core.Grid) {
				if len(g.Cells()) != g.W*g.H {
					report("reader observed a malformed grid")
				}
			})
			if s := l.Snapshot(); len(s.Cells()) != s.W*s.H {
				report("snapshot is malformed")
			}
		}
	}()

	wg.Wait()
	close(stop)
	readers.Wait()
	select {
	case msg := <-errs:
		t.Fatal(msg)
	default:
	}

	final := l.Snapshot()
	if got := l.Size(); got != final.Size() {
		t.Fatalf("size = %+v, grid is %dx%d", got, final.W, final.H)
	}
	if l.Population() != final.Population() {
		t.Fatalf("population counter = %d, grid holds %d", l.Population(), final.Population())
	}
	l.Advance()
	if l.Population() != l.Snapshot().Population() {
		t.Fatal("population counter drifted after a step following resizes")
	}
}
