// Package audio plays the short tones that accompany taps and completed
// words. Playback failures never reach the caller.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

const (
	sampleRate = beep.SampleRate(44100)

	// ToneDuration is how long a cue sounds.
	ToneDuration = 100 * time.Millisecond
	// PeakGain is the amplitude at the start of a cue.
	PeakGain = 0.3
	// FloorGain is the amplitude reached at the end of a cue.
	FloorGain = 0.01
)

// Tone frequencies for the game's cues, in Hz.
const (
	ToneButton   = 440.0
	ToneSelect   = 523.0
	ToneDeselect = 392.0
	ToneSuccess  = 659.0
)

// Player plays a short tone at the given frequency.
type Player interface {
	PlayTone(freq float64)
}

// Nop is a Player that stays silent.
type Nop struct{}

// PlayTone does nothing.
func (Nop) PlayTone(float64) {}

// device is the audio output a SpeakerPlayer queues tones on. Lock and
// Unlock guard Add against the playback goroutine.
type device interface {
	Init() error
	Lock()
	Unlock()
	Add(s beep.Streamer)
	Clear()
}

// speakerDevice plays a mixer through beep's speaker.
type speakerDevice struct {
	mixer *beep.Mixer
}

func (d *speakerDevice) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(d.mixer)
	return nil
}

func (d *speakerDevice) Lock()               { speaker.Lock() }
func (d *speakerDevice) Unlock()             { speaker.Unlock() }
func (d *speakerDevice) Add(s beep.Streamer) { d.mixer.Add(s) }
func (d *speakerDevice) Clear()              { speaker.Clear() }

// SpeakerPlayer plays tones through the system audio device.
type SpeakerPlayer struct {
	mu          sync.Mutex
	dev         device
	initialized bool
}

// NewSpeakerPlayer creates a player. Call Initialize before use.
func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{dev: &speakerDevice{mixer: &beep.Mixer{}}}
}

// Initialize opens the audio device and starts the mixer.
func (p *SpeakerPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := p.dev.Init(); err != nil {
		return err
	}

	p.initialized = true
	return nil
}

// PlayTone queues a decaying sine tone. It is a no-op until Initialize
// succeeds, and recovers from any panic raised by the audio backend.
func (p *SpeakerPlayer) PlayTone(freq float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Float64("freq", freq).Msg("tone playback failed")
		}
	}()

	p.dev.Lock()
	defer p.dev.Unlock()
	p.dev.Add(NewToneGenerator(sampleRate, freq, ToneDuration))
}

// Close stops all queued tones.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.dev.Clear()
	p.initialized = false
}

// Envelope returns the gain t seconds into a tone of the given duration: an
// instant attack to PeakGain followed by exponential decay to FloorGain.
func Envelope(t time.Duration, duration time.Duration) float64 {
	if t < 0 || t > duration {
		return 0
	}
	progress := t.Seconds() / duration.Seconds()
	return PeakGain * math.Pow(FloorGain/PeakGain, progress)
}

// ToneGenerator streams a sine wave shaped by Envelope.
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
	length  time.Duration
}

// NewToneGenerator creates a tone generator for a single cue.
func NewToneGenerator(sr beep.SampleRate, freq float64, length time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(length),
		length:  length,
	}
}

// Stream fills samples until the tone has finished.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		t := g.sr.D(g.pos)
		sample := Envelope(t, g.length) * math.Sin(2*math.Pi*g.freq*t.Seconds())

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *ToneGenerator) Err() error {
	return nil
}
