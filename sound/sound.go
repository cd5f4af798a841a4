// Package sound plays short tones for game events
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Tone frequencies and lengths
const (
	eatFreq      = 880.0
	eatLength    = 50 * time.Millisecond
	resetFreq    = 220.0
	resetLength  = 200 * time.Millisecond
	toneVolume   = -1.5 // base 2, quieter than full scale
	bufferLength = 100 * time.Millisecond
)

// Player mixes game sounds into the speaker. A Player that failed to
// initialize stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return errors.Wrap(err, "opening audio device")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayEat plays a short high blip
func (p *Player) PlayEat() {
	p.play(eatFreq, eatLength)
}

// PlayReset plays a longer low tone
func (p *Player) PlayReset() {
	p.play(resetFreq, resetLength)
}

func (p *Player) play(freq float64, length time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Tone(freq, length)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Tone returns a sine wave of the given frequency and length
func Tone(freq float64, length time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "tone %.0fHz", freq)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(length), sine),
		Base:     2,
		Volume:   toneVolume,
	}, nil
}

// Close silences everything still playing
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	speaker.Clear()
	p.initialized = false
	return nil
}
