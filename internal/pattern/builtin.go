package pattern

import "strings"

// Plaintext sources for the built-in patterns, in keyboard order (1-9).
var builtins = []struct {
	name, descr, cells string
}{
	{"glider", "c/4 diagonal spaceship", `
.O.
..O
OOO`},
	{"blinker", "period 2 oscillator", `
OOO`},
	{"block", "still life", `
OO
OO`},
	{"toad", "period 2 oscillator", `
.OOO
OOO.`},
	{"beacon", "period 2 oscillator", `
OO..
O...
...O
..OO`},
	{"lwss", "lightweight spaceship", `
.O..O
O....
O...O
OOOO.`},
	{"r-pentomino", "methuselah, stabilises after 1103 generations", `
.OO
OO.
.O.`},
	{"acorn", "methuselah, stabilises after 5206 generations", `
.O.....
...O...
OO..OOO`},
	{"gosper-gun", "glider gun, period 30", `
........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`},
}

// Builtin returns the n-th built-in pattern name (0-based), used for the
// number-key shortcuts.
func Builtin(n int) (string, bool) {
	if n < 0 || n >= len(builtins) {
		return "", false
	}
	return builtins[n].name, true
}

func init() {
	for _, b := range builtins {
		p, err := ParsePlaintext(b.name, strings.NewReader(strings.TrimPrefix(b.cells, "\n")))
		if err != nil {
			panic(err)
		}
		p.Descr = b.descr
		Register(p)
	}
}
