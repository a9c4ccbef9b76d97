package app

import (
	"github.com/diegok/touchpong/internal/audio"
	"github.com/diegok/touchpong/internal/protocol"
)

// DetectEvents compares two consecutive snapshots and reports what happened
// between them. A point re-serves the ball with a fresh velocity, so velocity
// flips are only read as bounces when nobody scored.
func DetectEvents(prev, cur protocol.Snapshot) []audio.Event {
	var events []audio.Event

	if cur.Player1.Score > prev.Player1.Score || cur.Player2.Score > prev.Player2.Score {
		return append(events, audio.Score)
	}

	if flipped(prev.Ball.VY, cur.Ball.VY) {
		events = append(events, audio.WallBounce)
	}
	if flipped(prev.Ball.VX, cur.Ball.VX) {
		events = append(events, audio.PaddleHit)
	}
	return events
}

func flipped(before, after float64) bool {
	return (before > 0 && after < 0) || (before < 0 && after > 0)
}
