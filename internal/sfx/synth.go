// Package sfx synthesizes short sound effects for match events and plays
// them through the system speaker.
package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/tomz197/splitfleet/internal/event"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// oscillator streams a fixed number of samples of one wave.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	total    int
	wave     Wave
	rate     beep.SampleRate
}

// Tone returns a streamer playing freq Hz for d.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, total: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case Sine:
			val = math.Sin(2 * math.Pi * o.phase)
		case Square:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case Saw:
			val = 2 * (o.phase - 0.5)
		case Noise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// Shape applies a linear attack and release to s, which lasts d.
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := max(e.total-e.release, e.attack)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales s linearly. Zero or less is silence.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a shaped tone with a short attack and a release over its second half.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Effect builds the sound for an event type at volume vol (0..1). It
// returns nil for events that make no sound.
func Effect(t event.Type, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch t {
	case event.Fired:
		s = note(880, 60*time.Millisecond, Square, rate)
	case event.Boosted:
		s = gain(note(0, 150*time.Millisecond, Noise, rate), 0.5)
	case event.ShipHit:
		s = note(150, 120*time.Millisecond, Saw, rate)
	case event.ShipsCollided:
		s = note(90, 100*time.Millisecond, Sine, rate)
	case event.ShipDestroyed:
		s = beep.Mix(
			gain(note(0, 400*time.Millisecond, Noise, rate), 0.6),
			gain(note(60, 400*time.Millisecond, Sine, rate), 0.6),
		)
	case event.MineTriggered:
		s = beep.Seq(
			note(1200, 50*time.Millisecond, Square, rate),
			note(1200, 50*time.Millisecond, Square, rate),
		)
	case event.MineExploded:
		s = note(0, 600*time.Millisecond, Noise, rate)
	case event.ShipsMerged:
		s = beep.Seq(
			note(523.25, 70*time.Millisecond, Sine, rate),
			note(783.99, 90*time.Millisecond, Sine, rate),
		)
	case event.ShipSplit:
		s = beep.Seq(
			note(783.99, 70*time.Millisecond, Sine, rate),
			note(523.25, 90*time.Millisecond, Sine, rate),
		)
	case event.PowerupAcquired:
		s = beep.Mix(
			gain(note(880, 250*time.Millisecond, Sine, rate), 0.7),
			gain(note(1760, 250*time.Millisecond, Sine, rate), 0.3),
		)
	case event.MatchOver:
		s = beep.Seq(
			note(523.25, 120*time.Millisecond, Square, rate),
			note(659.25, 120*time.Millisecond, Square, rate),
			note(783.99, 240*time.Millisecond, Square, rate),
		)
	default:
		return nil
	}
	return gain(s, vol)
}
