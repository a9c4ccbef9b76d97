package protocol

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

// Codec handles message encoding/decoding. A trace is written through an
// encoder-only codec and read back through a decoder-only one.
type Codec struct {
	enc *gob.Encoder
	dec *gob.Decoder
}

// NewEncoder creates an encoder-only codec
func NewEncoder(w io.Writer) *Codec {
	return &Codec{
		enc: gob.NewEncoder(w),
	}
}

// NewDecoder creates a decoder-only codec
func NewDecoder(r io.Reader) *Codec {
	return &Codec{
		dec: gob.NewDecoder(r),
	}
}

// Encode writes a message
func (c *Codec) Encode(msg *Message) error {
	return c.enc.Encode(msg)
}

// Decode reads a message
func (c *Codec) Decode() (*Message, error) {
	var msg Message
	if err := c.dec.Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// WriteHeader encodes the record that opens a trace
func (c *Codec) WriteHeader(h TraceHeader) error {
	return c.Encode(&Message{Type: MsgTraceHeader, Payload: h})
}

// WriteSnapshot encodes one frame of a trace
func (c *Codec) WriteSnapshot(s Snapshot) error {
	return c.Encode(&Message{Type: MsgSnapshot, Payload: s})
}

// ReadTrace decodes a whole trace: the header followed by every snapshot up
// to EOF.
func ReadTrace(r io.Reader) (TraceHeader, []Snapshot, error) {
	codec := NewDecoder(r)

	msg, err := codec.Decode()
	if err != nil {
		return TraceHeader{}, nil, fmt.Errorf("failed to read trace header: %w", err)
	}
	header, ok := msg.Payload.(TraceHeader)
	if msg.Type != MsgTraceHeader || !ok {
		return TraceHeader{}, nil, fmt.Errorf("expected trace header, got message type %d", msg.Type)
	}

	var frames []Snapshot
	for {
		msg, err := codec.Decode()
		if errors.Is(err, io.EOF) {
			return header, frames, nil
		}
		if err != nil {
			return header, frames, fmt.Errorf("failed to read frame %d: %w", len(frames), err)
		}

		snap, ok := msg.Payload.(Snapshot)
		if msg.Type != MsgSnapshot || !ok {
			return header, frames, fmt.Errorf("unexpected message type %d in trace", msg.Type)
		}
		frames = append(frames, snap)
	}
}
