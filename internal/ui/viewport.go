package ui

import "math"

// Rows reserved above and below the court for the scoreboard and status bar
const (
	courtTop    = 1
	courtMargin = 2
)

// Viewport maps between terminal cells and arena coordinates. The court
// fills every column and all rows except the scoreboard and status bar.
type Viewport struct {
	ScreenW, ScreenH int
	ArenaW, ArenaH   float64
}

func (v Viewport) courtRows() int {
	rows := v.ScreenH - courtMargin
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (v Viewport) scaleX() float64 { return float64(v.ScreenW) / v.ArenaW }
func (v Viewport) scaleY() float64 { return float64(v.courtRows()) / v.ArenaH }

// InCourt reports whether a cell lies inside the court area
func (v Viewport) InCourt(col, row int) bool {
	return col >= 0 && col < v.ScreenW && row >= courtTop && row < courtTop+v.courtRows()
}

// ToArena returns the arena point at the centre of a cell
func (v Viewport) ToArena(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) / v.scaleX()
	y = (float64(row-courtTop) + 0.5) / v.scaleY()
	return x, y
}

// ToScreen returns the cell containing an arena point
func (v Viewport) ToScreen(x, y float64) (col, row int) {
	col = int(math.Floor(x * v.scaleX()))
	row = int(math.Floor(y*v.scaleY())) + courtTop
	return col, row
}

// RectToScreen returns the cells covered by an arena box, at least one cell
// in each direction so small pieces stay visible.
func (v Viewport) RectToScreen(x, y, w, h float64) (col, row, cols, rows int) {
	col, row = v.ToScreen(x, y)
	endCol := int(math.Ceil((x + w) * v.scaleX()))
	endRow := int(math.Ceil((y+h)*v.scaleY())) + courtTop
	cols = endCol - col
	rows = endRow - row
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return col, row, cols, rows
}
