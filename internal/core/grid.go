package core

import (
	"fmt"
	"math"
)

// Grid stores a 2D field of cells in row-major order. A cell holds 1 when it
// is alive and 0 when it is dead.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Dimensions
// are validated before anything is allocated.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	return g.data[g.Index(x, y)] != 0, nil
}

// Set marks the cell at (x, y) alive or dead.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	g.data[g.Index(x, y)] = boolToCell(alive)
	return nil
}

// Toggle inverts the cell at (x, y).
func (g *Grid) Toggle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	g.data[g.Index(x, y)] ^= 1
	return nil
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Fill sets every cell from fill. A nil fill clears the grid.
func (g *Grid) Fill(fill FillFunc) {
	if fill == nil {
		g.Clear()
		return
	}
	for y := 0; y < g.H; y++ {
		row := g.data[y*g.W : (y+1)*g.W]
		for x := range row {
			row[x] = boolToCell(fill(x, y))
		}
	}
}

// Randomize makes each cell independently alive with probability density.
// The grid is left untouched when density is outside [0, 1].
func (g *Grid) Randomize(density float64, rng *RNG) error {
	if err := CheckDensity(density); err != nil {
		return err
	}
	for i := range g.data {
		g.data[i] = boolToCell(rng.Chance(density))
	}
	return nil
}

// Resized returns a new w*h grid. Cells inside both the old and the new
// bounds keep their state; the remaining cells take the value of fill.
func (g *Grid) Resized(w, h int, fill FillFunc) (*Grid, error) {
	next, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	next.Fill(fill)
	cw := min(w, g.W)
	ch := min(h, g.H)
	for y := 0; y < ch; y++ {
		copy(next.data[y*w:y*w+cw], g.data[y*g.W:y*g.W+cw])
	}
	return next, nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &Grid{W: g.W, H: g.H, data: data}
}

// CopyFrom overwrites g with the contents of src. Both grids must share the
// same dimensions.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.W != g.W || src.H != g.H {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrInvalidDimensions, src.W, src.H, g.W, g.H)
	}
	copy(g.data, src.data)
	return nil
}

// Equal reports whether both grids have the same shape and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.data {
		if c != o.data[i] {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// CheckDensity validates a random fill probability.
func CheckDensity(density float64) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	return nil
}

func boolToCell(alive bool) uint8 {
	if alive {
		return 1
	}
	return 0
}
