package life

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbours beyond the grid edge are treated.
type Boundary uint8

const (
	// DeadBorder treats every cell outside the grid as dead.
	DeadBorder Boundary = iota
	// Toroidal wraps coordinates modulo the grid dimensions.
	Toroidal
)

// ParseBoundary accepts the names used by flags and URL parameters.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dead", "dead-border", "border":
		return DeadBorder, nil
	case "wrap", "toroidal", "torus":
		return Toroidal, nil
	}
	return DeadBorder, fmt.Errorf("unknown boundary policy %q", s)
}

func (b Boundary) String() string {
	if b == Toroidal {
		return "toroidal"
	}
	return "dead-border"
}
