package core

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidDimensions reports a zero or negative width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidDensity reports a random fill density outside [0, 1].
	ErrInvalidDensity = errors.New("density must be within [0, 1]")
)
