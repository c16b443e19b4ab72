package audio

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestEnvelope(t *testing.T) {
	if got := Envelope(0, ToneDuration); got != PeakGain {
		t.Errorf("Expected gain %f at attack, got %f", PeakGain, got)
	}
	if got := Envelope(ToneDuration, ToneDuration); math.Abs(got-FloorGain) > 1e-9 {
		t.Errorf("Expected gain %f at end, got %f", FloorGain, got)
	}
	if got := Envelope(-time.Millisecond, ToneDuration); got != 0 {
		t.Errorf("Expected silence before start, got %f", got)
	}
	if got := Envelope(ToneDuration+time.Millisecond, ToneDuration); got != 0 {
		t.Errorf("Expected silence after end, got %f", got)
	}

	prev := Envelope(0, ToneDuration)
	for ms := 10; ms <= 100; ms += 10 {
		got := Envelope(time.Duration(ms)*time.Millisecond, ToneDuration)
		if got >= prev {
			t.Fatalf("Expected decaying gain at %dms, got %f after %f", ms, got, prev)
		}
		prev = got
	}
}

func TestToneGeneratorLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	g := NewToneGenerator(sr, ToneSelect, ToneDuration)

	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := g.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > PeakGain {
				t.Fatalf("sample %d exceeds peak gain: %f", total-n+i, buf[i][0])
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("Expected identical channels, got %f and %f", buf[i][0], buf[i][1])
			}
		}
		if !ok {
			break
		}
	}

	if want := sr.N(ToneDuration); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if g.Err() != nil {
		t.Errorf("Expected nil error, got %v", g.Err())
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewSpeakerPlayer()
	// Must not touch the audio device or panic.
	p.PlayTone(ToneSuccess)
	p.Close()

	var nop Nop
	nop.PlayTone(ToneButton)
}

type fakeDevice struct {
	mu       sync.Mutex
	initErr  error
	panicAdd bool
	added    int
	cleared  bool
}

func (d *fakeDevice) Init() error { return d.initErr }
func (d *fakeDevice) Lock()       { d.mu.Lock() }
func (d *fakeDevice) Unlock()     { d.mu.Unlock() }
func (d *fakeDevice) Clear()      { d.cleared = true }

func (d *fakeDevice) Add(s beep.Streamer) {
	if d.panicAdd {
		panic("device lost")
	}
	d.added++
}

func TestPlayToneSurvivesBackendPanic(t *testing.T) {
	dev := &fakeDevice{panicAdd: true}
	p := &SpeakerPlayer{dev: dev}
	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	p.PlayTone(ToneSelect)

	// The device lock must have been released, so later tones still play.
	dev.panicAdd = false
	done := make(chan struct{})
	go func() {
		p.PlayTone(ToneDeselect)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PlayTone blocked after a backend panic")
	}
	if dev.added != 1 {
		t.Errorf("Expected 1 queued tone, got %d", dev.added)
	}

	p.Close()
	if !dev.cleared {
		t.Error("Expected Close to clear the device")
	}
}

func TestInitializeFailureKeepsPlayerSilent(t *testing.T) {
	dev := &fakeDevice{initErr: errors.New("no audio device")}
	p := &SpeakerPlayer{dev: dev}

	if err := p.Initialize(); err == nil {
		t.Fatal("Expected Initialize to fail")
	}
	p.PlayTone(ToneSuccess)
	if dev.added != 0 {
		t.Errorf("Expected no tones queued, got %d", dev.added)
	}
}
