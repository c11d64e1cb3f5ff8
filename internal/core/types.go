package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Stepper advances a simulation by exactly one generation and reports
// whether any cell changed.
type Stepper interface {
	Step() bool
}
