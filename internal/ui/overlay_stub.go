//go:build !ebiten

package ui

import "gol-web/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(History, core.ParameterSource, int) *Overlay { return &Overlay{} }

// ToggleHelp is a no-op in headless builds.
func (o *Overlay) ToggleHelp() {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int) {}
