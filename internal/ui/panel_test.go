package ui

import (
	"testing"

	"gol-web/internal/control"
	"gol-web/internal/core"
)

var _ Panel = (*control.Controller)(nil)

func TestActionButtonsFollowRunState(t *testing.T) {
	stopped := actionButtons(false)
	if stopped[0].label != "Start" || stopped[0].cmd.Kind != control.KindPlay {
		t.Fatalf("first stopped button = %+v", stopped[0])
	}
	running := actionButtons(true)
	if running[0].label != "Stop" || running[0].cmd.Kind != control.KindPause {
		t.Fatalf("first running button = %+v", running[0])
	}
	want := []control.Kind{control.KindStepOnce, control.KindRandomize, control.KindClear}
	for i, kind := range want {
		if running[i+1].cmd.Kind != kind {
			t.Fatalf("button %d = %v, want %v", i+1, running[i+1].cmd.Kind, kind)
		}
	}
	if !running[2].cmd.UseDefault {
		t.Fatal("Random should use the controller's density")
	}
}

func TestNudgeControl(t *testing.T) {
	interval := core.ParameterControl{Key: "interval_ms", Type: core.ParamTypeInt, Step: 20, Min: 20, Max: 2000, HasMin: true, HasMax: true}
	density := core.ParameterControl{Key: "density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true}
	cases := []struct {
		ctrl   core.ParameterControl
		value  float64
		dir    int
		want   float64
		wantOK bool
	}{
		{interval, 200, 1, 220, true},
		{interval, 200, -1, 180, true},
		{interval, 30, -1, 20, true},
		{interval, 20, -1, 20, false},
		{interval, 2000, 1, 2000, false},
		{density, 0.5, 1, 0.55, true},
		{density, 0.98, 1, 1, true},
		{density, 0, -1, 0, false},
		{density, 0.5, 0, 0.5, false},
	}
	for _, tc := range cases {
		got, ok := nudgeControl(tc.ctrl, tc.value, tc.dir)
		if ok != tc.wantOK || got < tc.want-1e-9 || got > tc.want+1e-9 {
			t.Fatalf("nudge %s %v by %d = %v, %v; want %v, %v", tc.ctrl.Key, tc.value, tc.dir, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestFormatControl(t *testing.T) {
	if got := formatControl(core.ParameterControl{Type: core.ParamTypeInt}, 180); got != "180" {
		t.Fatalf("int = %q", got)
	}
	if got := formatControl(core.ParameterControl{Type: core.ParamTypeFloat}, 0.55); got != "0.55" {
		t.Fatalf("float = %q", got)
	}
}

func TestStatusRowsWrapLongValues(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Params: []core.Parameter{
			core.TextParam("generation", "Generation", "7"),
			core.TextParam("about", "About", "methuselah, stabilises after 1103 generations"),
			core.TextParam("empty", "Empty", ""),
			core.FloatParam("density", "Density", 0.5),
		},
	}}}
	rows := statusRows(snap, map[string]bool{"density": true}, 20)
	want := []statusRow{
		{"Generation", "7"},
		{label: "About"},
		{value: "methuselah,"},
		{value: "stabilises after"},
		{value: "1103 generations"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v", rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}
