package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/touchpong/internal/protocol"
)

const (
	BallChar   = '\u25CF' // ●
	PaddleChar = '\u2588' // █
)

var (
	courtStyle      = tcell.StyleDefault.Background(tcell.ColorBlack)
	lineStyle       = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray)
	ballStyle       = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	player1Style    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed)
	player2Style    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlue)
	scoreboardStyle = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	statusStyle     = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
)

// Renderer draws snapshots of the court
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the mapping for the current terminal size
func (r *Renderer) Viewport(arenaW, arenaH float64) Viewport {
	w, h := r.screen.Size()
	return Viewport{ScreenW: w, ScreenH: h, ArenaW: arenaW, ArenaH: arenaH}
}

// RenderGame displays one frame
func (r *Renderer) RenderGame(state protocol.Snapshot) {
	r.screen.Clear()
	vp := r.Viewport(state.ArenaWidth, state.ArenaHeight)

	r.screen.FillRect(0, courtTop, vp.ScreenW, vp.courtRows(), courtStyle, ' ')

	// Dashed centre line, also marking the pointer dead zone's middle
	centerX := vp.ScreenW / 2
	for y := courtTop; y < courtTop+vp.courtRows(); y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.drawBox(vp, state.Player1.X, state.Player1.Y, state.Player1.W, state.Player1.H, player1Style, PaddleChar)
	r.drawBox(vp, state.Player2.X, state.Player2.Y, state.Player2.W, state.Player2.H, player2Style, PaddleChar)
	r.drawBox(vp, state.Ball.X, state.Ball.Y, state.Ball.W, state.Ball.H, ballStyle, BallChar)

	r.renderScoreboard(state, vp.ScreenW)

	statusY := vp.ScreenH - 1
	for x := 0; x < vp.ScreenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	statusText := fmt.Sprintf(" Tick: %d | drag in the outer quarters to move | q to quit", state.Tick)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

// drawBox fills the cells an arena box covers, clipped to the court
func (r *Renderer) drawBox(vp Viewport, x, y, w, h float64, style tcell.Style, ch rune) {
	col, row, cols, rows := vp.RectToScreen(x, y, w, h)
	for dy := 0; dy < rows; dy++ {
		for dx := 0; dx < cols; dx++ {
			if vp.InCourt(col+dx, row+dy) {
				r.screen.SetCell(col+dx, row+dy, style, ch)
			}
		}
	}
}

// renderScoreboard draws "[ P1 3 - 2 P2 ]" centred on the top row
func (r *Renderer) renderScoreboard(state protocol.Snapshot, screenW int) {
	left := fmt.Sprintf("[ P1 %d", state.Player1.Score)
	right := fmt.Sprintf("%d P2 ]", state.Player2.Score)
	text := left + " - " + right
	x := (screenW - len(text)) / 2

	r.screen.DrawText(x, 0, text, scoreboardStyle)
	r.screen.DrawText(x+2, 0, "P1", scoreboardStyle.Foreground(tcell.ColorRed))
	r.screen.DrawText(x+len(text)-4, 0, "P2", scoreboardStyle.Foreground(tcell.ColorBlue))
}
