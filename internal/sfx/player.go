package sfx

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/tomz197/splitfleet/internal/event"
)

// SampleRate is the rate effects are synthesized at.
const SampleRate = beep.SampleRate(44100)

// maxVoices caps how many effects play at once; further events are dropped.
const maxVoices = 8

// Player plays event sounds on the speaker. The zero value is not usable;
// create one with NewPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at volume vol (0..1). It stays silent until
// Init succeeds.
func NewPlayer(vol float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: min(max(vol, 0), 1),
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for e. It never waits for playback.
func (p *Player) Play(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Effect(e.Type, p.volume, SampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

// Close stops every sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
