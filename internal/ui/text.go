package ui

import (
	"image/color"
	"strings"

	"gol-web/internal/core"
)

// History is a simulation that can lend out its current and previous
// generations.
type History interface {
	Read(fn func(g *core.Grid))
	Previous(fn func(g *core.Grid)) bool
}

// HelpLines lists the key bindings shown by the help overlay.
var HelpLines = []string{
	"Space  play / pause",
	"N      step once",
	"C      clear",
	"R      randomize",
	"1-9    load pattern",
	"+ -    faster / slower",
	"G      grid lines",
	"D      show births and deaths",
	"H      toggle this help",
	"Q Esc  quit",
	"Click a cell to toggle it.",
}

// StatusLine summarises the simulation part of a parameter snapshot on one
// line.
func StatusLine(s core.ParameterSnapshot) string {
	var parts []string
	for _, key := range []string{"state", "generation", "population", "size"} {
		p, ok := s.Lookup(key)
		if !ok {
			continue
		}
		if key == "state" {
			parts = append(parts, p.Value)
			continue
		}
		parts = append(parts, strings.ToLower(p.Label)+" "+p.Value)
	}
	return strings.Join(parts, "  ")
}

// fillDiffRGBA marks cells that came alive (born) or died between prev and
// cur; unchanged cells are transparent.
func fillDiffRGBA(buf []byte, prev, cur []uint8, born, died color.RGBA) {
	for i := range cur {
		base := i * 4
		var c color.RGBA
		switch {
		case cur[i] != 0 && prev[i] == 0:
			c = born
		case cur[i] == 0 && prev[i] != 0:
			c = died
		}
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
