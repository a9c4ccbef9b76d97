package protocol

import (
	"bytes"
	"encoding/gob"
	"testing"
)

func TestGobRegistration(t *testing.T) {
	// Test that every payload type can travel inside a Message
	testCases := []struct {
		name    string
		message Message
	}{
		{
			name: "TraceHeader",
			message: Message{
				Type:    MsgTraceHeader,
				Payload: TraceHeader{Session: "s-1", Seed: 99, ArenaWidth: 800, ArenaHeight: 600, TickRate: 60},
			},
		},
		{
			name: "BallState",
			message: Message{
				Type:    MsgSnapshot,
				Payload: BallState{X: 10.5, Y: 20.5, W: 50, H: 50, VX: 1.0, VY: -0.5},
			},
		},
		{
			name: "PaddleState",
			message: Message{
				Type:    MsgSnapshot,
				Payload: PaddleState{X: 775, Y: 200, W: 25, H: 200, Score: 4},
			},
		},
		{
			name: "Snapshot",
			message: Message{
				Type: MsgSnapshot,
				Payload: Snapshot{
					Tick:        100,
					ArenaWidth:  800,
					ArenaHeight: 600,
					Ball:        BallState{X: 400, Y: 300, W: 50, H: 50, VX: 4},
					Player1:     PaddleState{X: 0, Y: 200, W: 25, H: 200, Score: 3},
					Player2:     PaddleState{X: 775, Y: 200, W: 25, H: 200, Score: 5},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := gob.NewEncoder(&buf).Encode(&tc.message); err != nil {
				t.Fatalf("failed to encode %s: %v", tc.name, err)
			}

			var decoded Message
			if err := gob.NewDecoder(&buf).Decode(&decoded); err != nil {
				t.Fatalf("failed to decode %s: %v", tc.name, err)
			}

			if decoded.Type != tc.message.Type {
				t.Errorf("expected type %d, got %d", tc.message.Type, decoded.Type)
			}
			if decoded.Payload != tc.message.Payload {
				t.Errorf("expected payload %+v, got %+v", tc.message.Payload, decoded.Payload)
			}
		})
	}
}

func TestMessageTypes(t *testing.T) {
	if MsgTraceHeader == MsgSnapshot {
		t.Errorf("duplicate message type value: %d", MsgTraceHeader)
	}
}
