package game

const (
	DefaultPaddleWidth  = 25.0
	DefaultPaddleHeight = 200.0
	BounceFactor        = -1.1 // Applied to the ball's horizontal velocity on every hit
)

type Paddle struct {
	Position Vector2
	Size     Vector2
	Score    int
}

func NewPaddle(position, size Vector2) *Paddle {
	return &Paddle{Position: position, Size: size}
}

// BounceBall reverses and speeds up the ball when it overlaps the paddle.
// Hits compound, so every rally gets a little faster.
func (p *Paddle) BounceBall(ball *Ball) bool {
	if !p.Rect().Overlaps(ball.Rect()) {
		return false
	}
	ball.Velocity.X *= BounceFactor
	return true
}

func (p *Paddle) Rect() Rect {
	return Rect{Position: p.Position, Size: p.Size}
}

func (p *Paddle) CenterY() float64 {
	return p.Position.Y + p.Size.Y/2
}

// SetCenterY moves the paddle vertically so its centre sits at y
func (p *Paddle) SetCenterY(y float64) {
	p.Position.Y = y - p.Size.Y/2
}
