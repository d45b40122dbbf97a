// Package audio plays the short tones that accompany the path replay.
// Audio is optional: a Player that failed to initialize stays silent.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	pathFreq = 880.0
	pathLen  = 40 * time.Millisecond

	unreachableFreq = 220.0
	unreachableLen  = 300 * time.Millisecond
)

// Tone returns a sine tone of the given frequency cut to d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(d), sine), nil
}

// Player owns the speaker for one run.
type Player struct {
	mu          sync.Mutex
	initialized bool
	play        func(...beep.Streamer)
}

// NewPlayer returns a silent Player; call Initialize to open the speaker.
func NewPlayer() *Player {
	return &Player{play: speaker.Play}
}

// Initialize opens the speaker. On error the Player stays silent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

// PlayPath plays the short high tone for one path cell.
func (p *Player) PlayPath() { p.tone(pathFreq, pathLen) }

// PlayUnreachable plays the long low tone for a failed search.
func (p *Player) PlayUnreachable() { p.tone(unreachableFreq, unreachableLen) }

func (p *Player) tone(freq float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Tone(sampleRate, freq, d)
	if err != nil {
		return
	}
	p.play(s)
}
