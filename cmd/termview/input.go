package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/dontescape/nav"
)

// holdTicks is how long a key press keeps steering. Terminals only report
// presses and repeats, never releases.
const holdTicks = 8

// keyInput turns tcell key events into the per-tick input the sim polls.
type keyInput struct {
	dir    nav.Direction
	hold   int
	action bool
}

// handle applies a key event and reports whether the viewer should quit.
func (k *keyInput) handle(ev *tcell.EventKey) (quit bool) {
	var dir nav.Direction
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		dir.Left()
	case tcell.KeyRight:
		dir.Right()
	case tcell.KeyUp:
		dir.Up()
	case tcell.KeyDown:
		dir.Down()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'a':
			dir.Left()
		case 'd':
			dir.Right()
		case 'w':
			dir.Up()
		case 's':
			dir.Down()
		case ' ':
			k.action = true
			return false
		default:
			return false
		}
	default:
		return false
	}
	k.dir = dir
	k.hold = holdTicks
	return false
}

// endTick consumes the action and lets a held direction decay.
func (k *keyInput) endTick() {
	k.action = false
	if k.hold > 0 {
		k.hold--
		if k.hold == 0 {
			k.dir = nav.Direction{}
		}
	}
}

func (k *keyInput) Direction() nav.Direction { return k.dir }

func (k *keyInput) ActionPressed() bool { return k.action }
