package protocol

import (
	"encoding/gob"
)

// MessageType identifies the type of a trace record
type MessageType int

const (
	MsgTraceHeader MessageType = iota
	MsgSnapshot
)

// Message is the wrapper for all trace records
type Message struct {
	Type    MessageType
	Payload interface{}
}

// TraceHeader opens every trace and describes the session that produced it
type TraceHeader struct {
	Session     string
	Seed        int64
	ArenaWidth  float64
	ArenaHeight float64
	TickRate    int
}

// BallState represents the ball's box and velocity
type BallState struct {
	X  float64
	Y  float64
	W  float64
	H  float64
	VX float64
	VY float64
}

// PaddleState represents a paddle's box and its player's score
type PaddleState struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Score int
}

// Snapshot is the observable game state after an update
type Snapshot struct {
	Tick        int
	ArenaWidth  float64
	ArenaHeight float64
	Ball        BallState
	Player1     PaddleState
	Player2     PaddleState
}

func init() {
	// Register all payload types with gob for trace serialization
	gob.Register(TraceHeader{})
	gob.Register(BallState{})
	gob.Register(PaddleState{})
	gob.Register(Snapshot{})
}
