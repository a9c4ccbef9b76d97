package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Pointer remembers whether the primary button is down, so the press that
// starts a drag can be told apart from the motion that follows it.
type Pointer struct {
	held bool
}

// Drag converts a mouse event into an arena pointer position. Only events
// with the primary button held since a previous event count, and only
// inside the court. The press itself and hover moves are ignored.
func (p *Pointer) Drag(ev *tcell.EventMouse, vp Viewport) (x, y float64, ok bool) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasHeld := p.held
	p.held = pressed
	if !pressed || !wasHeld {
		return 0, 0, false
	}

	col, row := ev.Position()
	if !vp.InCourt(col, row) {
		return 0, 0, false
	}
	x, y = vp.ToArena(col, row)
	return x, y, true
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
