package game

import (
	"math/rand/v2"
	"time"

	"github.com/diegok/touchpong/internal/protocol"
)

// Pointer bands: drags left of LeftBand move player1, right of RightBand
// move player2. Everything in between is ignored.
const (
	LeftBand  = 0.25
	RightBand = 0.75
)

// Rand is the random source used to pick serve angles. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Options tunes a new game. Zero fields fall back to the defaults.
type Options struct {
	BallSize   Vector2
	PaddleSize Vector2
	Rand       Rand
}

// GameState owns the ball and both paddles and advances them one step per
// Update. It is not safe for concurrent use; the host serializes calls.
type GameState struct {
	Width   float64
	Height  float64
	Tick    int
	ball    *Ball
	player1 *Paddle
	player2 *Paddle
	rng     Rand
}

// NewGameState lays out a width x height arena with the ball at the centre
// and a paddle flush against each side. Dimensions must be positive. The
// ball is not moving until ServeBall is called.
func NewGameState(width, height float64, opts Options) *GameState {
	ballSize := opts.BallSize
	if ballSize == (Vector2{}) {
		ballSize = Vector2{X: DefaultBallSize, Y: DefaultBallSize}
	}
	paddleSize := opts.PaddleSize
	if paddleSize == (Vector2{}) {
		paddleSize = Vector2{X: DefaultPaddleWidth, Y: DefaultPaddleHeight}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	gs := &GameState{
		Width:   width,
		Height:  height,
		ball:    NewBall(Vector2{X: width / 2, Y: height / 2}, ballSize),
		player1: NewPaddle(Vector2{X: 0}, paddleSize),
		player2: NewPaddle(Vector2{X: width - paddleSize.X}, paddleSize),
		rng:     rng,
	}
	gs.player1.SetCenterY(height / 2)
	gs.player2.SetCenterY(height / 2)
	return gs
}

func (gs *GameState) Ball() *Ball      { return gs.ball }
func (gs *GameState) Player1() *Paddle { return gs.player1 }
func (gs *GameState) Player2() *Paddle { return gs.player2 }

// Center returns the arena's geometric centre
func (gs *GameState) Center() Vector2 {
	return Vector2{X: gs.Width / 2, Y: gs.Height / 2}
}

// ServeBall puts the ball back at the centre of the arena and launches it
// at ServeSpeed in a random whole-degree direction.
func (gs *GameState) ServeBall() {
	gs.ball.Position = gs.Center()
	angle := float64(gs.rng.IntN(360))
	gs.ball.Velocity = Vector2{X: ServeSpeed}.Rotate(angle)
}

// Update runs one simulation step. The step size is fixed; dt is accepted
// so hosts can pass their frame delta but does not scale movement.
func (gs *GameState) Update(dt time.Duration) {
	gs.Tick++
	ball := gs.ball

	ball.Move()

	// Top and bottom walls. No clamping: a ball that stays out of bounds
	// flips again on the next step.
	if ball.Position.Y < 0 || ball.Position.Y > gs.Height-ball.Size.Y {
		ball.Velocity.Y = -ball.Velocity.Y
	}

	// Left exit
	if ball.Position.X < 0 {
		ball.Velocity.X = -ball.Velocity.X
		gs.player1.Score++
		gs.ServeBall()
	}

	// Right exit
	if ball.Position.X > gs.Width-ball.Size.X {
		ball.Velocity.X = -ball.Velocity.X
		gs.player2.Score++
		gs.ServeBall()
	}

	gs.player1.BounceBall(ball)
	gs.player2.BounceBall(ball)
}

// OnPointerMove handles a pointer drag at arena coordinates (x, y). Drags in
// the outer quarters set the vertical centre of that side's paddle.
func (gs *GameState) OnPointerMove(x, y float64) {
	if x < gs.Width*LeftBand {
		gs.player1.SetCenterY(y)
	}
	if x > gs.Width*RightBand {
		gs.player2.SetCenterY(y)
	}
}

// Snapshot copies the observable state into its serializable form
func (gs *GameState) Snapshot() protocol.Snapshot {
	return protocol.Snapshot{
		Tick:        gs.Tick,
		ArenaWidth:  gs.Width,
		ArenaHeight: gs.Height,
		Ball: protocol.BallState{
			X: gs.ball.Position.X, Y: gs.ball.Position.Y,
			W: gs.ball.Size.X, H: gs.ball.Size.Y,
			VX: gs.ball.Velocity.X, VY: gs.ball.Velocity.Y,
		},
		Player1: paddleState(gs.player1),
		Player2: paddleState(gs.player2),
	}
}

func paddleState(p *Paddle) protocol.PaddleState {
	return protocol.PaddleState{
		X: p.Position.X, Y: p.Position.Y,
		W: p.Size.X, H: p.Size.Y,
		Score: p.Score,
	}
}
