//go:build ebiten

package ui

import (
	"image/color"

	"gol-web/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the status line, the key help and the births/deaths layer
// on top of the grid.
type Overlay struct {
	sim   History
	panel core.ParameterSource
	scale int

	showHelp bool
	showDiff bool

	diffImg *ebiten.Image
	diffBuf []byte
	pixel   *ebiten.Image
}

var (
	bornColor = color.RGBA{R: 34, G: 197, B: 94, A: 150}
	diedColor = color.RGBA{R: 239, G: 68, B: 68, A: 110}
)

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim History, panel core.ParameterSource, scale int) *Overlay {
	o := &Overlay{sim: sim, panel: panel, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// ToggleHelp shows or hides the key help.
func (o *Overlay) ToggleHelp() { o.showHelp = !o.showHelp }

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.ToggleHelp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDiff = !o.showDiff
	}
}

// Draw renders the overlay onto the provided screen. width and height are
// the grid's pixel size.
func (o *Overlay) Draw(screen *ebiten.Image, width, height int) {
	if o.showDiff {
		o.drawDiff(screen)
	}
	if o.panel != nil {
		line := StatusLine(o.panel.Parameters())
		if line != "" {
			o.drawBox(screen, []string{line}, 4, height-4-boxLine-2*boxPadding)
		}
	}
	if o.showHelp {
		o.drawBox(screen, HelpLines, 4, 4)
	}
}

func (o *Overlay) drawDiff(screen *ebiten.Image) {
	ok := o.sim.Previous(func(prev *core.Grid) {
		o.sim.Read(func(cur *core.Grid) {
			if prev.W != cur.W || prev.H != cur.H {
				return
			}
			total := cur.W * cur.H
			if o.diffImg == nil || o.diffImg.Bounds().Dx() != cur.W || o.diffImg.Bounds().Dy() != cur.H {
				if o.diffImg != nil {
					o.diffImg.Dispose()
				}
				o.diffImg = ebiten.NewImage(cur.W, cur.H)
				o.diffBuf = make([]byte, 4*total)
			}
			fillDiffRGBA(o.diffBuf, prev.Cells(), cur.Cells(), bornColor, diedColor)
		})
	})
	if !ok || o.diffImg == nil {
		return
	}
	o.diffImg.WritePixels(o.diffBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.diffImg, op)
}

func (o *Overlay) drawBox(screen *ebiten.Image, lines []string, x, y int) {
	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	boxW := width + 2*boxPadding
	boxH := len(lines)*boxLine + 2*boxPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(boxW), float64(boxH))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(16.0/255.0, 16.0/255.0, 20.0/255.0, 200.0/255.0)
	screen.DrawImage(o.pixel, op)

	for i, l := range lines {
		text.Draw(screen, l, face, x+boxPadding, y+boxPadding+(i+1)*boxLine-3, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

const (
	boxPadding = 6
	boxLine    = 16
)
