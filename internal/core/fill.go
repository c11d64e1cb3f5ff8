package core

// FillFunc decides the initial state of the cell at (x, y). It is used when a
// grid is created and for cells exposed by a resize. A nil FillFunc means
// every cell starts dead.
type FillFunc func(x, y int) bool

// FillKind names the initial fill policies accepted by the configuration.
type FillKind string

const (
	FillEmpty   FillKind = "empty"
	FillRandom  FillKind = "random"
	FillPattern FillKind = "pattern"
)

// Alive fills every cell live.
func Alive(int, int) bool { return true }

// RandomFill returns a FillFunc drawing each cell from rng with the given
// live probability.
func RandomFill(rng *RNG, density float64) (FillFunc, error) {
	if err := CheckDensity(density); err != nil {
		return nil, err
	}
	return func(int, int) bool { return rng.Chance(density) }, nil
}
