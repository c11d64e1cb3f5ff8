//go:build ebiten

package app

import (
	"log"
	"runtime"
	"time"

	"gol-web/internal/control"
	"gol-web/internal/pattern"
	"gol-web/internal/render"
	"gol-web/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the control panel drawn right of the grid.
const HUDWidth = 220

// Game adapts an Engine to the ebiten.Game interface. Input becomes
// controller commands, and the scheduler is ticked once per update.
type Game struct {
	eng     *Engine
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *log.Logger

	touches []ebiten.TouchID
}

var patternKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// New constructs a Game for the provided engine.
func New(eng *Engine, cfg *Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	size := eng.Sim.Size()
	gp := render.NewGridPainter(size.W, size.H, eng.Palette)
	gp.Lines = cfg.Grid
	g := &Game{
		eng:     eng,
		painter: gp,
		overlay: ui.NewOverlay(eng.Sim, eng.Ctrl, eng.CellPx),
		log:     logger,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(eng.Ctrl, HUDWidth, logger)
	}
	return g
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if runtime.GOOS != "js" && (inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		return ebiten.Termination
	}
	g.handleKeys()

	gridW, _ := g.eng.SurfaceSize()
	if !g.hud.Update(gridW) {
		g.handlePointer(gridW)
	}
	g.overlay.Update()

	g.eng.Ctrl.Drain()
	g.eng.Sched.Tick(time.Now())
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.submit(control.TogglePlay())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.submit(control.StepOnce())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.submit(control.Clear())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.submit(control.RandomizeDefault())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.painter.Lines = !g.painter.Lines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.submit(control.SetSpeed(control.NudgeInterval(g.eng.Sched.Interval(), -1)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.submit(control.SetSpeed(control.NudgeInterval(g.eng.Sched.Interval(), 1)))
	}
	for i, key := range patternKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if name, ok := pattern.Builtin(i); ok {
			g.submit(control.LoadPattern(name))
		}
	}
}

func (g *Game) handlePointer(gridW int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x < gridW {
			g.submit(control.ToggleCell(float64(x), float64(y)))
		}
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		x, y := ebiten.TouchPosition(id)
		if x < gridW {
			g.submit(control.ToggleCell(float64(x), float64(y)))
		}
	}
}

func (g *Game) submit(cmd control.Command) {
	if err := g.eng.Ctrl.Submit(cmd); err != nil {
		g.log.Print(err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.eng.Sim, g.eng.CellPx)
	w, h := g.eng.SurfaceSize()
	g.overlay.Draw(screen, w, h)
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.eng.SurfaceSize()
	return w + g.hud.Width(), h
}
