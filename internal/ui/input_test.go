package ui

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func testViewport() Viewport {
	return Viewport{ScreenW: 80, ScreenH: 24, ArenaW: 800, ArenaH: 600}
}

func TestPointer_Drag(t *testing.T) {
	vp := testViewport()

	tests := []struct {
		name    string
		x, y    int
		buttons tcell.ButtonMask
		wantOK  bool
		wantX   float64
	}{
		{"left band drag", 2, 10, tcell.Button1, true, 25},
		{"right band drag", 78, 10, tcell.Button1, true, 785},
		{"release", 2, 10, tcell.ButtonNone, false, 0},
		{"secondary button", 2, 10, tcell.Button2, false, 0},
		{"scoreboard row", 2, 0, tcell.Button1, false, 0},
		{"status row", 2, 23, tcell.Button1, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pointer{held: true}
			ev := tcell.NewEventMouse(tt.x, tt.y, tt.buttons, tcell.ModNone)
			x, _, ok := p.Drag(ev, vp)
			if ok != tt.wantOK {
				t.Fatalf("Drag ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(x-tt.wantX) > 1e-9 {
				t.Errorf("expected arena x=%f, got %f", tt.wantX, x)
			}
		})
	}
}

func TestPointer_PressIsNotADrag(t *testing.T) {
	vp := testViewport()
	var p Pointer

	steps := []struct {
		name    string
		y       int
		buttons tcell.ButtonMask
		wantOK  bool
	}{
		{"hover", 5, tcell.ButtonNone, false},
		{"press", 5, tcell.Button1, false},
		{"drag", 6, tcell.Button1, true},
		{"drag again", 7, tcell.Button1, true},
		{"release", 7, tcell.ButtonNone, false},
		{"press again", 8, tcell.Button1, false},
	}

	for _, s := range steps {
		ev := tcell.NewEventMouse(2, s.y, s.buttons, tcell.ModNone)
		if _, _, ok := p.Drag(ev, vp); ok != s.wantOK {
			t.Errorf("%s: expected ok=%v, got %v", s.name, s.wantOK, ok)
		}
	}
}

func TestPointer_DragIntoCourt(t *testing.T) {
	vp := testViewport()
	var p Pointer

	// Pressing on the scoreboard still starts a drag
	p.Drag(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone), vp)
	_, y, ok := p.Drag(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone), vp)
	if !ok {
		t.Fatal("expected drag into the court to count")
	}
	if y <= 0 {
		t.Errorf("expected y inside the arena, got %f", y)
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'x') {
		t.Error("'x' should not be quit key")
	}
}
