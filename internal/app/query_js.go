//go:build js

package app

import "syscall/js"

// PageQuery returns the query string of the page hosting the program.
func PageQuery() string {
	return js.Global().Get("location").Get("search").String()
}

// WindowSize reports the browser viewport size in CSS pixels.
func WindowSize() (w, h float64, ok bool) {
	win := js.Global()
	w = win.Get("innerWidth").Float()
	h = win.Get("innerHeight").Float()
	return w, h, w > 0 && h > 0
}
