package game

import "math"

// Vector2 is an (x, y) pair used for positions, sizes and velocities.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rotate returns v rotated counter-clockwise about the origin by the given
// angle in degrees.
func (v Vector2) Rotate(degrees float64) Vector2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Length returns the euclidean magnitude of v
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}
