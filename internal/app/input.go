package app

import "sandfall/internal/core"

// pointerInput maps a cursor position in screen pixels onto grid cells. A
// cursor outside the grid requests no spawn.
func pointerInput(mx, my, scale int, size core.Size, spawn, drain bool) core.Input {
	in := core.Input{Drain: drain}
	if !spawn || scale <= 0 || mx < 0 || my < 0 {
		return in
	}
	x, y := mx/scale, my/scale
	if x >= size.W || y >= size.H {
		return in
	}
	in.Spawn = true
	in.X, in.Y = x, y
	return in
}
