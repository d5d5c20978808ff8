package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/fleet"
)

func testStream() *Stream {
	return newStream(config.Default())
}

func TestApplyPlayerKeys(t *testing.T) {
	s := testStream()
	now := time.Now()

	// P1: up (fire) twice, down (split), right (switch). P2: w, S, d, d.
	in := s.apply([]byte("\x1b[A\x1b[A\x1b[B\x1b[CwSdd"), now)

	assert.Equal(t, PlayerInput{Fire: 2, Split: 1, Switch: 1}, in.Players[0])
	assert.Equal(t, PlayerInput{Fire: 1, Split: 1, Switch: 2}, in.Players[1])
	assert.False(t, in.Quit)
}

func TestRotateHold(t *testing.T) {
	s := testStream()
	now := time.Now()

	in := s.apply([]byte("\x1b[D"), now)
	assert.True(t, in.Players[0].Rotate)
	assert.False(t, in.Players[1].Rotate)

	in = s.apply(nil, now.Add(60*time.Millisecond))
	assert.True(t, in.Players[0].Rotate, "still held between auto-repeats")

	in = s.apply(nil, now.Add(200*time.Millisecond))
	assert.False(t, in.Players[0].Rotate)

	in = s.apply([]byte("A"), now.Add(300*time.Millisecond))
	assert.True(t, in.Players[1].Rotate)
}

func TestHoldWindow(t *testing.T) {
	tests := []struct {
		doublePress float64
		want        time.Duration
	}{
		{0.2, 100 * time.Millisecond},
		{0.5, 120 * time.Millisecond},
		{0.05, 40 * time.Millisecond},
		{0, 40 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, holdWindow(tt.doublePress), "threshold %v", tt.doublePress)
	}
}

func TestDoubleTapWithinThreshold(t *testing.T) {
	settings := config.Default()
	s := newStream(settings)
	var tr Tracker
	now := time.Now()

	// Two taps 150ms apart: the first hold lapses before the second tap,
	// and both presses land inside the 200ms double press threshold.
	var got []fleet.Action
	for _, ms := range []int{0, 50, 100, 150} {
		var buf []byte
		if ms == 0 || ms == 150 {
			buf = []byte("\x1b[D")
		}
		in := s.apply(buf, now.Add(time.Duration(ms)*time.Millisecond))
		got = tr.Actions(got, 1, in.Players[0])
	}
	assert.Equal(t, []fleet.Action{fleet.RotateHoldOn, fleet.RotateHoldOff, fleet.RotateHoldOn}, got)
	assert.Less(t, 0.15, settings.DoublePressThreshold)
}

func TestMenuKeys(t *testing.T) {
	s := testStream()
	now := time.Now()

	in := s.apply([]byte("q \r"), now)
	assert.True(t, in.Quit)
	assert.True(t, in.Space)
	assert.True(t, in.Enter)

	in = s.apply(nil, now.Add(time.Second))
	assert.False(t, in.Quit)
	assert.False(t, in.Space)
}

func TestBoundKeyWinsOverMenuKey(t *testing.T) {
	settings := config.Default()
	settings.Players[1].Fire = "q"
	s := newStream(settings)

	in := s.apply([]byte("q"), time.Now())
	assert.False(t, in.Quit)
	assert.Equal(t, 1, in.Players[1].Fire)
}

func TestReset(t *testing.T) {
	s := testStream()
	now := time.Now()
	s.apply([]byte("a"), now)
	s.Reset()
	in := s.apply(nil, now)
	assert.False(t, in.Players[1].Rotate)
}

func TestStreamClosesOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")), config.Default())

	var in Input
	require.Eventually(t, func() bool {
		in = ReadInput(s)
		return in.Closed
	}, time.Second, time.Millisecond)

	// Later reads stay closed and do not block.
	assert.True(t, ReadInput(s).Closed)
}

// endless never runs out of key presses.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 'x'
	}
	return len(p), nil
}

func TestStopReleasesReader(t *testing.T) {
	s := StartStream(bufio.NewReader(endless{}), config.Default())

	// Nobody drains, so the reader fills the buffer and waits.
	require.Eventually(t, func() bool { return len(s.ch) == cap(s.ch) }, time.Second, time.Millisecond)

	s.Stop()
	s.Stop()
	select {
	case <-s.finished:
	case <-time.After(time.Second):
		t.Fatal("reader goroutine still blocked after Stop")
	}
}

func TestTracker(t *testing.T) {
	var tr Tracker

	got := tr.Actions(nil, 1, PlayerInput{Rotate: true, Fire: 2})
	assert.Equal(t, []fleet.Action{fleet.RotateHoldOn, fleet.Fire, fleet.Fire}, got)

	got = tr.Actions(nil, 1, PlayerInput{Rotate: true})
	assert.Empty(t, got, "held rotate is not pressed again")

	got = tr.Actions(nil, 2, PlayerInput{Switch: 1})
	assert.Equal(t, []fleet.Action{fleet.Switch}, got, "players are tracked separately")

	got = tr.Actions(nil, 1, PlayerInput{Split: 1})
	assert.Equal(t, []fleet.Action{fleet.RotateHoldOff, fleet.Split}, got)

	tr.Actions(nil, 2, PlayerInput{Rotate: true})
	tr.Reset()
	got = tr.Actions(nil, 2, PlayerInput{Rotate: true})
	assert.Equal(t, []fleet.Action{fleet.RotateHoldOn}, got)
}
