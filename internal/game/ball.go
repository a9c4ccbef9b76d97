package game

const (
	DefaultBallSize = 50.0
	ServeSpeed      = 4.0 // Velocity magnitude of every serve
)

type Ball struct {
	Position Vector2
	Size     Vector2
	Velocity Vector2
}

func NewBall(position, size Vector2) *Ball {
	return &Ball{Position: position, Size: size}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.Position = b.Position.Add(b.Velocity)
}

// Rect returns the ball's bounding box
func (b *Ball) Rect() Rect {
	return Rect{Position: b.Position, Size: b.Size}
}
