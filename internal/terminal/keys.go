// Package terminal plays a simulation interactively in a tcell screen.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"playermove/internal/geom"
)

type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
)

// KeyVector maps a key press to a movement vector. Arrows and WASD latch a
// unit direction, space latches zero, Esc, Ctrl-C and q quit.
func KeyVector(key tcell.Key, r rune) (geom.Vec2, Action) {
	switch key {
	case tcell.KeyUp:
		return geom.V(0, 1), ActionMove
	case tcell.KeyDown:
		return geom.V(0, -1), ActionMove
	case tcell.KeyLeft:
		return geom.V(-1, 0), ActionMove
	case tcell.KeyRight:
		return geom.V(1, 0), ActionMove
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return geom.Zero, ActionQuit
	case tcell.KeyRune:
	default:
		return geom.Zero, ActionNone
	}

	switch r {
	case 'w', 'W':
		return geom.V(0, 1), ActionMove
	case 's', 'S':
		return geom.V(0, -1), ActionMove
	case 'a', 'A':
		return geom.V(-1, 0), ActionMove
	case 'd', 'D':
		return geom.V(1, 0), ActionMove
	case ' ':
		return geom.Zero, ActionMove
	case 'q', 'Q':
		return geom.Zero, ActionQuit
	}
	return geom.Zero, ActionNone
}
