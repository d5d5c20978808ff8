package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/event"
	"github.com/tomz197/splitfleet/internal/fleet"
	"github.com/tomz197/splitfleet/internal/game"
	"github.com/tomz197/splitfleet/internal/object"
	"github.com/tomz197/splitfleet/internal/physics"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestSession(keys string, w io.Writer) *Session {
	return NewSession(bufio.NewReader(strings.NewReader(keys)), w, Options{
		TermSizeFunc: fixedSize(120, 40),
		Rand:         rand.New(rand.NewSource(1)),
	})
}

type recordingSound struct {
	events []event.Event
}

func (r *recordingSound) Play(e event.Event) {
	r.events = append(r.events, e)
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
		wantCol       int
		wantRow       int
	}{
		{"fits", 100, 40, 100, 40, 0, 0},
		{"too wide", 200, 40, 160, 40, 20, 0},
		{"too tall", 100, 80, 100, 60, 0, 10},
		{"both", 181, 61, 160, 60, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, col, row := clampTermSize(tt.width, tt.height)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.wantRow, row)
		})
	}
}

func TestSessionStopsWhenInputEnds(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession("", &out)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop after the input ended")
	}
	assert.False(t, s.state.Running)
	assert.Contains(t, out.String(), "\033[?25h", "cursor is shown again")
}

func TestSessionStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s := NewSession(bufio.NewReader(pr), io.Discard, Options{TermSizeFunc: fixedSize(80, 24)})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session ignored the cancelled context")
	}
}

func TestSpaceStartsMatchAgainstComputer(t *testing.T) {
	s := newTestSession(" ", io.Discard)
	require.NoError(t, s.Run(context.Background()))

	require.NotNil(t, s.match)
	assert.Equal(t, GameStatePlaying, s.state.GameState)
	assert.False(t, s.match.Computer(1))
	assert.True(t, s.match.Computer(2))
}

func TestTwoPlayerSessionHasNoComputer(t *testing.T) {
	s := NewSession(bufio.NewReader(strings.NewReader("")), io.Discard, Options{
		TermSizeFunc: fixedSize(80, 24),
		TwoPlayer:    true,
	})
	s.startMatch()
	assert.False(t, s.match.Computer(1))
	assert.False(t, s.match.Computer(2))
}

func TestFinishMatchTallies(t *testing.T) {
	settings := config.Default()
	settings.NumStartSpaceships = 1
	settings.PowerupSpawnInterval = 1e9
	s := NewSession(bufio.NewReader(strings.NewReader("")), io.Discard, Options{
		Settings:     settings,
		TermSizeFunc: fixedSize(80, 24),
		TwoPlayer:    true,
	})
	s.startMatch()

	// Two value-1 ships on top of each other: the bounce destroys both.
	a := s.match.Fleet(1).Ships()[0]
	b := s.match.Fleet(2).Ships()[0]
	a.Value, b.Value = 1, 1
	b.Pos = a.Pos

	for i := 0; i < 10 && s.state.GameState == GameStatePlaying; i++ {
		s.updatePlayingState(1.0 / 60)
	}

	require.Equal(t, GameStateResult, s.state.GameState)
	assert.Equal(t, game.Stalemate, s.match.Status())
	assert.Equal(t, 1, s.state.Stalemates)
	assert.Equal(t, [2]int{0, 0}, s.state.Wins)
	assert.InDelta(t, 1.0, s.state.resultTimer, 1e-9)
}

func TestResultScreenWaitsBeforeRestart(t *testing.T) {
	s := newTestSession("", io.Discard)
	s.startMatch()
	first := s.match
	s.finishMatch()

	s.state.Input.Space = true
	s.updateResultState(0.5)
	assert.Same(t, first, s.match, "input is ignored during the delay")

	s.updateResultState(0.6)
	s.updateResultState(0.1)
	assert.NotSame(t, first, s.match)
	assert.Equal(t, GameStatePlaying, s.state.GameState)
}

func TestEventsReachSound(t *testing.T) {
	sound := &recordingSound{}
	s := NewSession(bufio.NewReader(strings.NewReader("")), io.Discard, Options{
		TermSizeFunc: fixedSize(80, 24),
		Sound:        sound,
		TwoPlayer:    true,
	})
	s.startMatch()
	s.match.Handle(1, fleet.Fire)
	s.updatePlayingState(1.0 / 60)

	require.NotEmpty(t, sound.events)
	assert.Equal(t, event.Fired, sound.events[0].Type)
}

func TestEffectsHandle(t *testing.T) {
	var fx effects
	pos := physics.Vector2{X: 100, Y: 100}

	fx.handle(event.Event{Type: event.ShipDestroyed, Player: 1, Pos: pos})
	assert.Len(t, fx.particles, 14)

	fx.handle(event.Event{Type: event.ShipHit, Player: 2, Pos: pos, Value: 3})
	fx.handle(event.Event{Type: event.ShipsMerged, Player: 2, Pos: pos, Value: 5})
	fx.handle(event.Event{Type: event.PowerupAcquired, Player: 1, Pos: pos, Kind: object.KindPlus})
	fx.handle(event.Event{Type: event.PowerupAcquired, Player: 1, Pos: pos, Kind: object.KindLaserBeam})
	fx.handle(event.Event{Type: event.ShipsCollided, Pos: pos})

	require.Len(t, fx.labels, 4)
	assert.Equal(t, "3", fx.labels[0].Value)
	assert.Equal(t, "=5", fx.labels[1].Value)
	assert.Equal(t, "+1", fx.labels[2].Value)
	assert.Equal(t, object.KindLaserBeam.String(), fx.labels[3].Value)
}

func TestEffectsExpire(t *testing.T) {
	var fx effects
	fx.handle(event.Event{Type: event.ShipDestroyed, Player: 1})
	fx.handle(event.Event{Type: event.ShipHit, Player: 1, Value: 2})
	require.NotEmpty(t, fx.particles)
	require.NotEmpty(t, fx.labels)

	fx.update(0.1)
	assert.NotEmpty(t, fx.labels)

	fx.update(2)
	assert.Empty(t, fx.particles)
	assert.Empty(t, fx.labels)
}

func TestDrawFrameScreens(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession("", &out)

	require.NoError(t, s.drawFrame())
	assert.Contains(t, out.String(), "Controls")
	assert.Contains(t, out.String(), "vs Computer")
	assert.Contains(t, out.String(), "Q to quit")

	s.startMatch()
	out.Reset()
	s.updatePlayingState(1.0 / 60)
	require.NoError(t, s.drawFrame())
	assert.Contains(t, out.String(), "P1 ships")
	assert.Contains(t, out.String(), "CPU")

	s.finishMatch()
	s.state.resultTimer = 0
	out.Reset()
	require.NoError(t, s.drawFrame())
	assert.Contains(t, out.String(), "Press SPACE for a rematch")
}
