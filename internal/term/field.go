// Package term is the terminal frontend: a gocui screen with the grid, a
// status panel and key bindings mirroring the graphical build.
package term

import (
	"strings"

	"gol-web/internal/core"
)

// cropNotice replaces the last visible row when the grid does not fit.
const cropNotice = "The field size is larger than the viewing area"

// FieldText renders g one character per cell, cropped to maxW x maxH.
// When cropping happens the last visible row is replaced by notice.
func FieldText(g *core.Grid, maxW, maxH int, live, dead, notice string) string {
	if maxW <= 0 || maxH <= 0 {
		return ""
	}
	crop := g.W > maxW || g.H > maxH
	cells := g.Cells()
	var b strings.Builder
	for y := 0; y < g.H && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(notice)
			break
		}
		row := cells[y*g.W : (y+1)*g.W]
		for x, c := range row {
			if x >= maxW {
				break
			}
			if c != 0 {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}
