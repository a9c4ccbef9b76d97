package protocol

import (
	"bytes"
	"testing"
)

func TestCodec_EncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	dec := NewDecoder(&buf)

	original := &Message{
		Type: MsgSnapshot,
		Payload: Snapshot{
			Tick: 42,
			Ball: BallState{X: 10.5, Y: 20.3, W: 50, H: 50, VX: 1.0, VY: -0.5},
		},
	}

	if err := enc.Encode(original); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := dec.Decode()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.Type != original.Type {
		t.Errorf("type mismatch: got %v, want %v", decoded.Type, original.Type)
	}

	state, ok := decoded.Payload.(Snapshot)
	if !ok {
		t.Fatalf("payload type mismatch")
	}

	if state.Tick != 42 {
		t.Errorf("tick mismatch: got %d, want 42", state.Tick)
	}
	if state.Ball.VY != -0.5 {
		t.Errorf("ball VY mismatch: got %f, want -0.5", state.Ball.VY)
	}
}

func TestReadTrace(t *testing.T) {
	var buf bytes.Buffer
	codec := NewEncoder(&buf)

	header := TraceHeader{Session: "abc", Seed: 7, ArenaWidth: 800, ArenaHeight: 600, TickRate: 60}
	if err := codec.WriteHeader(header); err != nil {
		t.Fatalf("write header failed: %v", err)
	}
	for i := 1; i <= 3; i++ {
		snap := Snapshot{Tick: i, Player2: PaddleState{Score: i - 1}}
		if err := codec.WriteSnapshot(snap); err != nil {
			t.Fatalf("write snapshot %d failed: %v", i, err)
		}
	}

	gotHeader, frames, err := ReadTrace(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHeader != header {
		t.Errorf("expected header %+v, got %+v", header, gotHeader)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Tick != i+1 {
			t.Errorf("frame %d: expected Tick=%d, got %d", i, i+1, f.Tick)
		}
	}
	if frames[2].Player2.Score != 2 {
		t.Errorf("expected last frame score 2, got %d", frames[2].Player2.Score)
	}
}

func TestReadTrace_MissingHeader(t *testing.T) {
	var buf bytes.Buffer
	codec := NewEncoder(&buf)
	if err := codec.WriteSnapshot(Snapshot{Tick: 1}); err != nil {
		t.Fatalf("write snapshot failed: %v", err)
	}

	if _, _, err := ReadTrace(&buf); err == nil {
		t.Error("expected error for trace without header")
	}
}

func TestReadTrace_Empty(t *testing.T) {
	if _, _, err := ReadTrace(&bytes.Buffer{}); err == nil {
		t.Error("expected error for empty trace")
	}
}
