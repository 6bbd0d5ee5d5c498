package tty

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short sine tones through the system speaker.
type Sound struct {
	initialized bool
	muted       bool
}

// NewSound initializes the speaker. The returned Sound is usable even when
// err is non-nil; it simply stays silent.
func NewSound(enabled bool) (*Sound, error) {
	s := &Sound{muted: !enabled}
	if !enabled {
		return s, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return s, err
	}
	s.initialized = true
	return s, nil
}

func (s *Sound) tone(freq float64, d time.Duration) {
	if s == nil || !s.initialized || s.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Eat plays the food pickup tone.
func (s *Sound) Eat() { s.tone(880, 60*time.Millisecond) }

// GameOver plays the end-of-session tone.
func (s *Sound) GameOver() { s.tone(220, 400*time.Millisecond) }

// Toggle flips mute.
func (s *Sound) Toggle() {
	if s != nil {
		s.muted = !s.muted
	}
}

// Muted reports whether tones are suppressed.
func (s *Sound) Muted() bool { return s == nil || s.muted || !s.initialized }

// Close releases the speaker.
func (s *Sound) Close() {
	if s != nil && s.initialized {
		speaker.Close()
		s.initialized = false
	}
}
