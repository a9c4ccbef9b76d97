package audio

import (
	"testing"
	"time"
)

func drain(t *testing.T, s interface {
	Stream(samples [][2]float64) (int, bool)
}) int {
	t.Helper()
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSquareWave_Length(t *testing.T) {
	got := drain(t, squareWave(440, 30*time.Millisecond))
	want := sampleRate.N(30 * time.Millisecond)

	if got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestSquareWave_Amplitude(t *testing.T) {
	buf := make([][2]float64, 256)
	n, _ := squareWave(880, 50*time.Millisecond).Stream(buf)

	for i := 0; i < n; i++ {
		v := buf[i][0]
		if v != volume && v != -volume {
			t.Fatalf("sample %d: expected +/-%f, got %f", i, volume, v)
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d: channels differ", i)
		}
	}
}

func TestCue_ScoreIsSequential(t *testing.T) {
	got := drain(t, cue(cues[Score]))
	want := sampleRate.N(100*time.Millisecond)*2 + sampleRate.N(150*time.Millisecond)

	if got != want {
		t.Errorf("expected %d samples for score cue, got %d", want, got)
	}
}

func TestCues_CoverEveryEvent(t *testing.T) {
	for _, ev := range []Event{PaddleHit, WallBounce, Score} {
		if len(cues[ev]) == 0 {
			t.Errorf("event %d has no cue", ev)
		}
	}
}

func TestPlay_NoopWithoutInit(t *testing.T) {
	// Must not touch the speaker when audio was never initialized
	Play(Score)
	Play(Event(99))
}
