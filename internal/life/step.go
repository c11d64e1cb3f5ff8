package life

import (
	"golang.org/x/sync/errgroup"

	"gol-web/internal/core"
)

// Rule is the B3/S23 transition: a live cell survives with 2 or 3
// neighbours and a dead cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Next computes the generation following src into a freshly allocated grid.
func Next(src *core.Grid, b Boundary) *core.Grid {
	dst := src.Clone()
	stepRows(dst, src, b, 0, src.H)
	return dst
}

// bandResult summarises one computed row range.
type bandResult struct {
	changed bool
	// repeat is true when every written cell equals the value it overwrote,
	// i.e. the new generation matches the one before src.
	repeat bool
	live   int
}

func (r *bandResult) merge(o bandResult) {
	r.changed = r.changed || o.changed
	r.repeat = r.repeat && o.repeat
	r.live += o.live
}

// stepBands computes dst from src, splitting rows across workers when more
// than one is requested. dst and src must not alias.
func stepBands(dst, src *core.Grid, b Boundary, workers int) bandResult {
	workers = min(workers, src.H)
	if workers <= 1 {
		return stepRows(dst, src, b, 0, src.H)
	}

	band := (src.H + workers - 1) / workers
	results := make([]bandResult, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		y0 := i * band
		y1 := min(y0+band, src.H)
		if y0 >= y1 {
			results[i] = bandResult{repeat: true}
			continue
		}
		g.Go(func() error {
			results[i] = stepRows(dst, src, b, y0, y1)
			return nil
		})
	}
	_ = g.Wait()

	total := bandResult{repeat: true}
	for _, r := range results {
		total.merge(r)
	}
	return total
}

// stepRows writes rows [y0, y1) of the next generation into dst.
func stepRows(dst, src *core.Grid, b Boundary, y0, y1 int) bandResult {
	w, h := src.W, src.H
	s := src.Cells()
	d := dst.Cells()
	res := bandResult{repeat: true}

	write := func(idx, n int) {
		next := uint8(0)
		if Rule(s[idx] == 1, n) {
			next = 1
		}
		if next != s[idx] {
			res.changed = true
		}
		if next != d[idx] {
			res.repeat = false
		}
		d[idx] = next
		res.live += int(next)
	}

	for y := y0; y < y1; y++ {
		up, mid, down := neighborRows(y, w, h, b)
		interior := up >= 0 && down >= 0 && w >= 3
		for x := 0; x < w; x++ {
			if interior && x > 0 && x < w-1 {
				n := int(s[up+x-1]) + int(s[up+x]) + int(s[up+x+1]) +
					int(s[mid+x-1]) + int(s[mid+x+1]) +
					int(s[down+x-1]) + int(s[down+x]) + int(s[down+x+1])
				write(mid+x, n)
				continue
			}
			write(mid+x, countEdge(s, x, w, up, mid, down, b))
		}
	}
	return res
}

// neighborRows returns the row offsets above, at and below y. An offset of -1
// marks a row outside a dead border.
func neighborRows(y, w, h int, b Boundary) (up, mid, down int) {
	mid = y * w
	up, down = -1, -1
	switch {
	case y > 0:
		up = (y - 1) * w
	case b == Toroidal:
		up = (h - 1) * w
	}
	switch {
	case y < h-1:
		down = (y + 1) * w
	case b == Toroidal:
		down = 0
	}
	return up, mid, down
}

// countEdge counts the live neighbours of column x using the full offset
// walk. Under Toroidal every one of the 8 offsets is counted, even when
// several of them wrap onto the same cell on very small grids.
func countEdge(s []uint8, x, w, up, mid, down int, b Boundary) int {
	left, right := x-1, x+1
	if b == Toroidal {
		left = (left + w) % w
		right = right % w
	}
	cols := [3]int{left, x, right}
	rows := [3]int{up, mid, down}
	n := 0
	for ri, r := range rows {
		if r < 0 {
			continue
		}
		for ci, c := range cols {
			if ri == 1 && ci == 1 {
				continue
			}
			if c < 0 || c >= w {
				continue
			}
			n += int(s[r+c])
		}
	}
	return n
}
