package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// Event is something on the court worth a sound
type Event int

const (
	PaddleHit Event = iota
	WallBounce
	Score
)

// note is one square-wave tone of a cue
type note struct {
	freq     float64
	duration time.Duration
}

// cues maps each event to the notes played for it, in order
var cues = map[Event][]note{
	PaddleHit:  {{880, 50 * time.Millisecond}},
	WallBounce: {{440, 30 * time.Millisecond}},
	Score: {
		{660, 100 * time.Millisecond},
		{440, 100 * time.Millisecond},
		{330, 150 * time.Millisecond},
	},
}

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// cue chains the notes of an event into a single streamer
func cue(notes []note) beep.Streamer {
	streamers := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		streamers[i] = squareWave(n.freq, n.duration)
	}
	return beep.Seq(streamers...)
}

// Play plays the cue for an event. It is a no-op until Init succeeds.
func Play(ev Event) {
	if !initialized {
		return
	}
	notes, ok := cues[ev]
	if !ok {
		return
	}
	speaker.Play(cue(notes))
}
