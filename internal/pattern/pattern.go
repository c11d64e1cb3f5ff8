// Package pattern holds named seed patterns and the parsers that read them.
package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gol-web/internal/core"
)

// ErrUnknown reports a pattern name that is not registered.
var ErrUnknown = errors.New("unknown pattern")

// Pattern is a set of live cells normalised so the bounding box starts at
// (0, 0).
type Pattern struct {
	Name  string
	Descr string
	W, H  int
	Cells [][2]int
}

// New normalises coords into a Pattern.
func New(name string, coords [][2]int) Pattern {
	p := Pattern{Name: name}
	if len(coords) == 0 {
		return p
	}
	minX, minY := coords[0][0], coords[0][1]
	maxX, maxY := minX, minY
	for _, c := range coords[1:] {
		minX = min(minX, c[0])
		minY = min(minY, c[1])
		maxX = max(maxX, c[0])
		maxY = max(maxY, c[1])
	}
	seen := make(map[[2]int]bool, len(coords))
	for _, c := range coords {
		n := [2]int{c[0] - minX, c[1] - minY}
		if seen[n] {
			continue
		}
		seen[n] = true
		p.Cells = append(p.Cells, n)
	}
	p.W = maxX - minX + 1
	p.H = maxY - minY + 1
	return p
}

// At returns a FillFunc placing the pattern's top-left corner at (x0, y0).
// Cells falling outside the target grid are dropped.
func (p Pattern) At(x0, y0 int) core.FillFunc {
	live := make(map[[2]int]bool, len(p.Cells))
	for _, c := range p.Cells {
		live[[2]int{c[0] + x0, c[1] + y0}] = true
	}
	return func(x, y int) bool { return live[[2]int{x, y}] }
}

// Centered returns a FillFunc placing the pattern in the middle of a w*h grid.
func (p Pattern) Centered(w, h int) core.FillFunc {
	return p.At((w-p.W)/2, (h-p.H)/2)
}

// ParseCoords reads a "x,y;x,y" coordinate list.
func ParseCoords(name, s string) (Pattern, error) {
	var coords [][2]int
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		xs, ys, ok := strings.Cut(item, ",")
		if !ok {
			return Pattern{}, fmt.Errorf("pattern %s: bad coordinate %q", name, item)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern %s: bad x in %q: %w", name, item, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern %s: bad y in %q: %w", name, item, err)
		}
		coords = append(coords, [2]int{x, y})
	}
	if len(coords) == 0 {
		return Pattern{}, fmt.Errorf("pattern %s: no coordinates", name)
	}
	return New(name, coords), nil
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name, replacing any previous entry.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup finds a registered pattern.
func Lookup(name string) (Pattern, error) {
	p, ok := registry[strings.ToLower(name)]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return p, nil
}

// Names lists the registered patterns in a stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
