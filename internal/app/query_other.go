//go:build !js

package app

// PageQuery is empty outside the browser.
func PageQuery() string { return "" }

// WindowSize has no viewport to measure outside the browser.
func WindowSize() (w, h float64, ok bool) { return 0, 0, false }
