//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"log"
	"strconv"

	"gol-web/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	headerBaseline = 18
	buttonHeight   = 24
	buttonSize     = 24
	buttonGap      = 6
	lineHeight     = 36
	labelBaseline  = 24
	statusSpacing  = 18
	charWidth      = 7
	controlsGap    = 10
	actionsTop     = panelPadding + headerBaseline + 12
	controlsTop    = actionsTop + 2*(buttonHeight+buttonGap) + controlsGap
	hudTitle       = "Game of Life"
)

var (
	panelBg     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	labelColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFg    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffBg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonOffFg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	startBg     = color.RGBA{R: 55, G: 48, B: 163, A: 255}
)

type hudControl struct {
	ctrl  core.ParameterControl
	value float64
	known bool
	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// HUD renders the control panel to the right of the grid: command buttons,
// the interval and density controls and a read-only status list.
type HUD struct {
	src   Panel
	log   *log.Logger
	width int

	panel *ebiten.Image
	pixel *ebiten.Image

	snapshot core.ParameterSnapshot
	running  bool
	actions  []image.Rectangle
	controls []hudControl
	offsetX  int
}

// NewHUD lays out a panel of the given width for src.
func NewHUD(src Panel, width int, logger *log.Logger) *HUD {
	if logger == nil {
		logger = log.Default()
	}
	h := &HUD{src: src, log: logger, width: max(width, 0)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)

	half := (h.width - 2*panelPadding - buttonGap) / 2
	for i := range actionButtons(false) {
		x := panelPadding + (i%2)*(half+buttonGap)
		y := actionsTop + (i/2)*(buttonHeight+buttonGap)
		h.actions = append(h.actions, image.Rect(x, y, x+half, y+buttonHeight))
	}

	top := controlsTop
	for _, ctrl := range src.ParameterControls() {
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		h.controls = append(h.controls, hudControl{ctrl: ctrl, top: top, minus: minus, plus: plus})
		top += lineHeight
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the values and handles clicks on the panel, which sits
// at panelOffsetX on screen. It reports whether a click was consumed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	state, _ := h.snapshot.Lookup("state")
	h.running = state.Value == "running"
	for i := range h.controls {
		c := &h.controls[i]
		p, ok := h.snapshot.Lookup(c.ctrl.Key)
		v, err := strconv.ParseFloat(p.Value, 64)
		c.value, c.known = v, ok && err == nil
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return false
	}
	pt := image.Pt(mx-h.offsetX, my)
	for i, action := range actionButtons(h.running) {
		if pt.In(h.actions[i]) {
			if err := h.src.Submit(action.cmd); err != nil {
				h.log.Print(err)
			}
			return true
		}
	}
	for i := range h.controls {
		c := &h.controls[i]
		if !c.known {
			continue
		}
		if pt.In(c.minus) {
			h.adjust(c, -1)
		} else if pt.In(c.plus) {
			h.adjust(c, 1)
		}
	}
	return true
}

func (h *HUD) adjust(c *hudControl, direction int) {
	target, ok := nudgeControl(c.ctrl, c.value, direction)
	if !ok {
		return
	}
	var applied bool
	if c.ctrl.Type == core.ParamTypeInt {
		applied = h.src.SetIntParameter(c.ctrl.Key, int(target))
	} else {
		applied = h.src.SetFloatParameter(c.ctrl.Key, target)
	}
	if applied {
		c.value = target
	}
}

// Draw paints the panel at offsetX, height pixels tall.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)
	face := basicfont.Face7x13
	text.Draw(h.panel, hudTitle, face, panelPadding, panelPadding+headerBaseline, titleColor)

	for i, action := range actionButtons(h.running) {
		bg := buttonBg
		if i == 0 && !h.running {
			bg = startBg
		}
		h.drawButton(h.actions[i], action.label, bg, buttonFg)
	}

	y := controlsTop
	for i := range h.controls {
		c := &h.controls[i]
		labelY := c.top + labelBaseline
		text.Draw(h.panel, c.ctrl.Label, face, panelPadding, labelY, valueColor)
		value := "--"
		if c.known {
			value = formatControl(c.ctrl, c.value)
		}
		bounds := text.BoundString(face, value)
		text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-bounds.Dx(), labelY, valueColor)
		for _, b := range []struct {
			rect  image.Rectangle
			label string
			dir   int
		}{{c.minus, "-", -1}, {c.plus, "+", 1}} {
			_, ok := nudgeControl(c.ctrl, c.value, b.dir)
			if c.known && ok {
				h.drawButton(b.rect, b.label, buttonBg, buttonFg)
			} else {
				h.drawButton(b.rect, b.label, buttonOffBg, buttonOffFg)
			}
		}
		y = c.top + lineHeight
	}

	h.drawStatus(y + statusSpacing)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus(y int) {
	face := basicfont.Face7x13
	skip := map[string]bool{}
	for _, c := range h.controls {
		skip[c.ctrl.Key] = true
	}
	for _, row := range statusRows(h.snapshot, skip, (h.width-2*panelPadding)/charWidth) {
		if row.label != "" {
			text.Draw(h.panel, row.label, face, panelPadding, y, labelColor)
		}
		if row.value != "" {
			x := h.width - panelPadding - text.BoundString(face, row.value).Dx()
			if row.label == "" {
				x = panelPadding
			}
			text.Draw(h.panel, row.value, face, x, y, valueColor)
		}
		y += statusSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, bg, fg color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
