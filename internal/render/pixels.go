package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gol-web/internal/core"
)

// Palette holds the colours used to draw a grid.
type Palette struct {
	Live color.RGBA
	Dead color.RGBA
	Line color.RGBA
}

// DefaultPalette is indigo cells on a light grey field with grey borders.
var DefaultPalette = Palette{
	Live: color.RGBA{R: 0x37, G: 0x30, B: 0xa3, A: 0xff},
	Dead: color.RGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff},
	Line: color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff},
}

// SurfaceSize returns the pixel size needed to draw a grid of the given
// dimensions with square cells of cellPx pixels.
func SurfaceSize(size core.Size, cellPx int) (w, h int) {
	return size.W * cellPx, size.H * cellPx
}

// ParseHex reads a "#rrggbb" or "#rgb" colour. The leading '#' is optional.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
