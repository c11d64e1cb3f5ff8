package ui

import (
	"math"
	"strconv"
	"strings"

	"gol-web/internal/control"
	"gol-web/internal/core"
)

// Panel is the controller surface behind the HUD: it reports values, takes
// +/- adjustments and accepts the button commands.
type Panel interface {
	core.ParameterSource
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
	Submit(cmd control.Command) error
}

// hudAction is one of the panel's command buttons.
type hudAction struct {
	label string
	cmd   control.Command
}

// actionButtons returns the command buttons in layout order. The first one
// follows the run state.
func actionButtons(running bool) []hudAction {
	first := hudAction{"Start", control.Play()}
	if running {
		first = hudAction{"Stop", control.Pause()}
	}
	return []hudAction{
		first,
		{"Step", control.StepOnce()},
		{"Random", control.RandomizeDefault()},
		{"Reset", control.Clear()},
	}
}

// nudgeControl moves value one step in direction and clamps it to the
// control's bounds. ok is false when the value cannot move that way.
func nudgeControl(ctrl core.ParameterControl, value float64, direction int) (target float64, ok bool) {
	if direction == 0 || ctrl.Step <= 0 {
		return value, false
	}
	target = value + float64(direction)*ctrl.Step
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if ctrl.HasMin {
		target = max(target, ctrl.Min)
	}
	if ctrl.HasMax {
		target = min(target, ctrl.Max)
	}
	return target, math.Abs(target-value) > 1e-9
}

// formatControl renders a control value the way the HUD shows it.
func formatControl(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// statusRow is one line of the read-only list. A row without a label
// continues the value of the row above it.
type statusRow struct {
	label, value string
}

// statusRows lists every parameter not in skip. Values too long to share a
// line with their label wrap onto lines of at most maxChars.
func statusRows(s core.ParameterSnapshot, skip map[string]bool, maxChars int) []statusRow {
	var rows []statusRow
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if skip[p.Key] || p.Value == "" {
				continue
			}
			if len(p.Label)+1+len(p.Value) <= maxChars {
				rows = append(rows, statusRow{p.Label, p.Value})
				continue
			}
			rows = append(rows, statusRow{label: p.Label})
			for _, line := range wrapWords(p.Value, maxChars) {
				rows = append(rows, statusRow{value: line})
			}
		}
	}
	return rows
}

func wrapWords(s string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
