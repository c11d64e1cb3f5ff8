//go:build !js

package term

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"gol-web/internal/control"
	"gol-web/internal/core"
	"gol-web/internal/pattern"
	"gol-web/internal/sched"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console drives a controller from a terminal.
type Console struct {
	ctrl *control.Controller
	g    *gocui.Gui
	keys []keyBinding
	log  *log.Logger

	liveFiller string
	deadFiller string
	refresh    time.Duration
}

var stateDescr = map[sched.RunState]string{
	sched.Stopped:      aurora.Colorize("stopped", aurora.BlueFg).String(),
	sched.SteppingOnce: "stepping",
	sched.Running:      aurora.Colorize("running", aurora.CyanFg).String(),
}

// NewConsole opens the terminal screen. The controller's cell size must be
// 1 so that view coordinates map straight to cells.
func NewConsole(ctrl *control.Controller, logger *log.Logger) (*Console, error) {
	if logger == nil {
		logger = log.Default()
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Mouse = true
	t := &Console{
		ctrl:       ctrl,
		g:          g,
		log:        logger,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		refresh:    50 * time.Millisecond,
	}
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "Space", "Run/Stop", t.submitter(control.TogglePlay()), ""},
		{'n', "N", "Next step", t.submitter(control.StepOnce()), ""},
		{'r', "R", "Run", t.submitter(control.Play()), ""},
		{'s', "S", "Stop", t.submitter(control.Pause()), ""},
		{'c', "C", "Clear", t.submitter(control.Clear()), ""},
		{'w', "W", "Settle with random", t.submitter(control.RandomizeDefault()), ""},
		{'+', "+", "Faster", t.cmdSpeed(-1), ""},
		{'-', "-", "Slower", t.cmdSpeed(1), ""},
		{gocui.MouseLeft, "MOUSE", "Toggle the cell", t.cmdMouseClick, "field"},
	}
	for i := 0; i < 9; i++ {
		name, ok := pattern.Builtin(i)
		if !ok {
			break
		}
		t.keys = append(t.keys, keyBinding{rune('1' + i), "", "", t.submitter(control.LoadPattern(name)), ""})
	}
	g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return t, nil
}

func (t *Console) initKeyBindings() error {
	for _, kb := range t.keys {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return err
		}
	}
	return nil
}

// Run shows the screen until the user quits or ctx is done. The scheduler
// and the command queue are driven from their own goroutines meanwhile.
func (t *Console) Run(ctx context.Context) error {
	defer t.g.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() { _ = t.ctrl.Scheduler().Run(ctx) }()
	go func() { _ = t.ctrl.Run(ctx) }()
	go t.refreshLoop(ctx)

	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (t *Console) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(t.refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			t.Refresh()
		}
	}
}

// Refresh redraws every panel.
func (t *Console) Refresh() {
	t.g.Update(func(g *gocui.Gui) error {
		t.renderField(g)
		t.renderConfiguration(g)
		t.renderStatus(g)
		return nil
	})
}

func (t *Console) renderField(g *gocui.Gui) {
	v, err := g.View("field")
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	notice := aurora.Red(cropNotice).BgBlack().String()
	t.ctrl.Sim().Read(func(grid *core.Grid) {
		_, _ = fmt.Fprint(v, FieldText(grid, maxW, maxH, t.liveFiller, t.deadFiller, notice))
	})
}

func (t *Console) renderStatus(g *gocui.Gui) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	sim := t.ctrl.Sim()
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", sim.Generation()))
	_, _ = fmt.Fprintln(v, renderProp("Live cells", "%v", sim.Population()))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", stateDescr[t.ctrl.Scheduler().State()]))
	if name, descr := t.ctrl.Pattern(); name != "" {
		_, _ = fmt.Fprintln(v, renderProp("Pattern", "%v", name))
		if descr != "" {
			_, _ = fmt.Fprintln(v, " "+descr)
		}
	}
}

func (t *Console) renderConfiguration(g *gocui.Gui) {
	v, err := g.View("configuration")
	if err != nil {
		return
	}
	sim := t.ctrl.Sim()
	size := sim.Size()
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", size.W, size.H))
	_, _ = fmt.Fprintln(v, renderProp("Boundary", "%v", sim.Boundary()))
	_, _ = fmt.Fprintln(v, renderProp("Interval", "%v", t.ctrl.Scheduler().Interval()))
	_, _ = fmt.Fprintln(v, renderProp("Density", "%.2f", t.ctrl.Density()))
}

func renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil && err != gocui.ErrUnknownView {
		return err
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}
	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		v.Wrap = true
	}
	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}
	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		_, _ = fmt.Fprintln(v, t.helpText())
	}
	t.renderField(g)
	t.renderConfiguration(g)
	t.renderStatus(g)
	return nil
}

func (t *Console) helpText() string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	first := true
	for _, k := range t.keys {
		if k.name == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	b.WriteString(", ")
	b.WriteString(aurora.Green("1-9").String())
	b.WriteString(": Patterns")
	return b.String()
}

func (t *Console) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := max((maxX-len(text))/2, 0)
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return v, err
}

func (t *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *Console) submitter(cmd control.Command) func(*gocui.View) error {
	return func(*gocui.View) error {
		t.submit(cmd)
		return nil
	}
}

func (t *Console) submit(cmd control.Command) {
	if err := t.ctrl.Submit(cmd); err != nil {
		t.log.Print(err)
	}
}

func (t *Console) cmdSpeed(direction int) func(*gocui.View) error {
	return func(*gocui.View) error {
		t.submit(control.SetSpeed(control.NudgeInterval(t.ctrl.Scheduler().Interval(), direction)))
		return nil
	}
}

func (t *Console) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	cell := float64(t.ctrl.CellPx())
	t.submit(control.ToggleCell(float64(cx+ox)*cell, float64(cy+oy)*cell))
	return nil
}
