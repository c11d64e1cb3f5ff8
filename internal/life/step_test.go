package life

import (
	"testing"

	"gol-web/internal/core"
)

func TestRuleThresholds(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Rule(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("live with %d neighbours: got %v want %v", n, got, want)
		}
		if got, want := Rule(false, n), n == 3; got != want {
			t.Fatalf("dead with %d neighbours: got %v want %v", n, got, want)
		}
	}
}

func TestToroidalCountsWithMultiplicity(t *testing.T) {
	one, _ := core.NewGrid(1, 1)
	_ = one.Set(0, 0, true)
	up, mid, down := neighborRows(0, 1, 1, Toroidal)
	if n := countEdge(one.Cells(), 0, 1, up, mid, down, Toroidal); n != 8 {
		t.Fatalf("1x1 torus: every offset lands on the cell itself, got %d neighbours", n)
	}
	if Next(one, Toroidal).Population() != 0 {
		t.Fatal("1x1 torus live cell has 8 neighbours and must die")
	}
	if Next(one, DeadBorder).Population() != 0 {
		t.Fatal("1x1 dead-border live cell has no neighbours and must die")
	}

	// On a 2x2 torus the left and right offsets hit the same column, so a
	// full grid counts 8 neighbours per cell and dies out; with a dead border
	// it is a block.
	full, _ := core.NewGrid(2, 2)
	full.Fill(core.Alive)
	if got := Next(full, Toroidal).Population(); got != 0 {
		t.Fatalf("2x2 full torus population after step = %d, want 0", got)
	}
	if got := Next(full, DeadBorder).Population(); got != 4 {
		t.Fatalf("2x2 full dead-border population after step = %d, want 4", got)
	}
}

func TestNextIsPure(t *testing.T) {
	src, _ := core.NewGrid(12, 9)
	_ = src.Randomize(0.4, core.NewRNG(3))
	before := src.Clone()
	a := Next(src, Toroidal)
	b := Next(src, Toroidal)
	if !src.Equal(before) {
		t.Fatal("Next must not modify its input")
	}
	if !a.Equal(b) {
		t.Fatal("Next must be deterministic")
	}
}

func TestParallelBandsMatchSerial(t *testing.T) {
	for _, b := range []Boundary{DeadBorder, Toroidal} {
		for _, workers := range []int{2, 3, 7, 64} {
			src, _ := core.NewGrid(37, 23)
			_ = src.Randomize(0.35, core.NewRNG(int64(workers)))
			serial, _ := core.NewGrid(37, 23)
			parallel, _ := core.NewGrid(37, 23)
			rs := stepBands(serial, src, b, 1)
			rp := stepBands(parallel, src, b, workers)
			if !serial.Equal(parallel) {
				t.Fatalf("%v with %d workers: grids differ", b, workers)
			}
			if rs.live != rp.live || rs.changed != rp.changed || rs.repeat != rp.repeat {
				t.Fatalf("%v with %d workers: results differ %+v vs %+v", b, workers, rs, rp)
			}
		}
	}
}

func TestParseBoundary(t *testing.T) {
	cases := map[string]Boundary{
		"":            DeadBorder,
		"dead":        DeadBorder,
		"dead-border": DeadBorder,
		"wrap":        Toroidal,
		"Toroidal":    Toroidal,
	}
	for in, want := range cases {
		got, err := ParseBoundary(in)
		if err != nil || got != want {
			t.Fatalf("ParseBoundary(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseBoundary("klein"); err == nil {
		t.Fatal("unknown policy should fail")
	}
}

func benchmarkStep(b *testing.B, size, workers int) {
	l, err := New(Options{Width: size, Height: size, Boundary: Toroidal, Workers: workers})
	if err != nil {
		b.Fatal(err)
	}
	if err := l.Randomize(0.3, core.NewRNG(1)); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Step()
	}
}

func BenchmarkStep256(b *testing.B)          { benchmarkStep(b, 256, 1) }
func BenchmarkStep1024(b *testing.B)         { benchmarkStep(b, 1024, 1) }
func BenchmarkStep1024Parallel(b *testing.B) { benchmarkStep(b, 1024, 8) }
