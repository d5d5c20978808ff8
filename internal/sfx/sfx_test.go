package sfx

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/splitfleet/internal/event"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			require.NoError(t, s.Err())
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	for _, wave := range []Wave{Sine, Square, Saw, Noise} {
		n, peak := drain(t, Tone(440, 100*time.Millisecond, wave, SampleRate))
		assert.Equal(t, SampleRate.N(100*time.Millisecond), n)
		assert.LessOrEqual(t, peak, 1.0)
		assert.Greater(t, peak, 0.0)
	}
}

func TestShapeFadesEnds(t *testing.T) {
	d := 20 * time.Millisecond
	s := Shape(Tone(0, d, Square, SampleRate), d, 5*time.Millisecond, 5*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(d))
	n, _ := s.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.InDelta(t, 0, buf[0][0], 1e-9, "attack starts silent")
	assert.InDelta(t, 1, buf[n/2][0], 1e-9, "sustain is full level")
	assert.Less(t, math.Abs(buf[n-1][0]), 0.01, "release ends near silence")
}

func TestEffectVolume(t *testing.T) {
	_, loud := drain(t, Effect(event.Fired, 1, SampleRate))
	_, quiet := drain(t, Effect(event.Fired, 0.25, SampleRate))
	_, silent := drain(t, Effect(event.Fired, 0, SampleRate))

	assert.InDelta(t, 1, loud, 1e-6)
	assert.InDelta(t, 0.25, quiet, 1e-6)
	assert.Zero(t, silent)
}

func TestEffectSequenceLength(t *testing.T) {
	n, _ := drain(t, Effect(event.MineTriggered, 1, SampleRate))
	assert.Equal(t, 2*SampleRate.N(50*time.Millisecond), n)
}

func TestEffectCoverage(t *testing.T) {
	sounding := []event.Type{
		event.Fired, event.Boosted, event.ShipHit, event.ShipsCollided,
		event.ShipDestroyed, event.MineTriggered, event.MineExploded,
		event.ShipsMerged, event.ShipSplit, event.PowerupAcquired, event.MatchOver,
	}
	for _, typ := range sounding {
		t.Run(typ.String(), func(t *testing.T) {
			s := Effect(typ, 1, SampleRate)
			require.NotNil(t, s)
			n, _ := drain(t, s)
			assert.Positive(t, n)
		})
	}

	assert.Nil(t, Effect(event.PowerupSpawned, 1, SampleRate))
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer(2)
	assert.Equal(t, 1.0, p.volume)

	p.Play(event.Event{Type: event.Fired})
	assert.Zero(t, p.mixer.Len())

	p.Close()
}
