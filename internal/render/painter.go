//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gol-web/internal/core"
)

// GridSource is anything that lends out its current grid for reading.
type GridSource interface {
	Read(fn func(g *core.Grid))
}

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
	// Lines draws a one pixel border around every cell when the cells are
	// large enough to show it.
	Lines bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{palette: palette}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Draw rasterises the current grid of src and draws it scaled by cellPx.
// The painter follows grid resizes before drawing.
func (gp *GridPainter) Draw(dst *ebiten.Image, src GridSource, cellPx int) {
	src.Read(func(g *core.Grid) {
		if g.W != gp.w || g.H != gp.h {
			gp.resize(g.W, g.H)
		}
		fillBinaryRGBA(gp.buf, g.Cells(), gp.palette.Live, gp.palette.Dead)
	})
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellPx), float64(cellPx))
	dst.DrawImage(gp.img, op)

	if gp.Lines && cellPx >= 4 {
		gp.drawLines(dst, cellPx)
	}
}

func (gp *GridPainter) drawLines(dst *ebiten.Image, cellPx int) {
	w, h := SurfaceSize(core.Size{W: gp.w, H: gp.h}, cellPx)
	for x := 0; x <= gp.w; x++ {
		fx := float32(x*cellPx) + 0.5
		vector.StrokeLine(dst, fx, 0, fx, float32(h), 1, gp.palette.Line, false)
	}
	for y := 0; y <= gp.h; y++ {
		fy := float32(y*cellPx) + 0.5
		vector.StrokeLine(dst, 0, fy, float32(w), fy, 1, gp.palette.Line, false)
	}
}
