// Package game runs a match between two fleets: it feeds player and AI
// actions to the fleets, resolves every kind of collision in a fixed order
// each tick, applies force fields, spawns powerups and decides the winner.
package game

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/event"
	"github.com/tomz197/splitfleet/internal/fleet"
	"github.com/tomz197/splitfleet/internal/object"
	"github.com/tomz197/splitfleet/internal/physics"
)

// Status is the state of a match.
type Status int

const (
	Playing Status = iota
	Player1Wins
	Player2Wins
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// DefaultEventBuffer is the capacity of the event channel when Options
// leaves it unset.
const DefaultEventBuffer = 256

// Options configures a match. The zero value is a two-human match with a
// random seed and no logging.
type Options struct {
	Rand   *rand.Rand
	Logger *log.Logger

	// Strategies drive computer-controlled players, indexed by player-1.
	// A nil entry is a human player.
	Strategies [2]fleet.Strategy

	EventBuffer int
}

// Match is a single game between player 1 and player 2. It is not safe for
// concurrent use; the frontend that owns it calls Handle and Tick from one
// goroutine.
type Match struct {
	ID string

	settings   *config.Settings
	arena      physics.Bounds
	fleets     [2]*fleet.Fleet
	strategies [2]fleet.Strategy
	powerups   []*object.Powerup
	spawner    *object.PowerupSpawner
	forces     []Force
	status     Status
	elapsed    float64

	logger  *log.Logger
	events  chan event.Event
	dropped int
}

// New sets up both starting fleets.
func New(settings *config.Settings, opts Options) *Match {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	buffer := opts.EventBuffer
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}

	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Match{
		ID:         id,
		settings:   settings,
		arena:      physics.Bounds{Width: settings.Width, Height: settings.Height},
		strategies: opts.Strategies,
		spawner:    object.NewPowerupSpawner(settings.PowerupSpawnInterval, settings.PowerupRadius, rng),
		forces:     NewForces(settings.Forces),
		logger:     logger.With("match", id[:8]),
		events:     make(chan event.Event, buffer),
	}
	m.fleets[0] = fleet.New(1, settings, m.emit)
	m.fleets[1] = fleet.New(2, settings, m.emit)

	m.logger.Info("match started",
		"ships", settings.NumStartSpaceships,
		"ai", m.strategies[1] != nil,
		"forces", len(m.forces))
	return m
}

func (m *Match) Settings() *config.Settings { return m.settings }
func (m *Match) Arena() physics.Bounds      { return m.arena }
func (m *Match) Status() Status             { return m.status }
func (m *Match) Elapsed() float64           { return m.elapsed }
func (m *Match) Forces() []Force            { return m.forces }

// Running reports whether the match still accepts input and ticks.
func (m *Match) Running() bool {
	return m.status == Playing
}

// Winner is 1 or 2 once a player has won, 0 otherwise.
func (m *Match) Winner() int {
	switch m.status {
	case Player1Wins:
		return 1
	case Player2Wins:
		return 2
	default:
		return 0
	}
}

// Fleet returns player's fleet, or nil for an unknown player.
func (m *Match) Fleet(player int) *fleet.Fleet {
	if player < 1 || player > 2 {
		return nil
	}
	return m.fleets[player-1]
}

// Fleets returns both fleets, player 1 first.
func (m *Match) Fleets() [2]*fleet.Fleet {
	return m.fleets
}

// Powerups returns the powerups lying in the arena.
func (m *Match) Powerups() []*object.Powerup {
	return slices.Clone(m.powerups)
}

// Computer reports whether player is driven by a strategy.
func (m *Match) Computer(player int) bool {
	return player >= 1 && player <= 2 && m.strategies[player-1] != nil
}

// Events delivers what happened during Handle and Tick. Frontends drain it
// once per frame; events that do not fit in the buffer are dropped.
func (m *Match) Events() <-chan event.Event {
	return m.events
}

// Handle passes a player action to that player's fleet. It is ignored once
// the match is over or while either fleet has no ships.
func (m *Match) Handle(player int, a fleet.Action) {
	f := m.Fleet(player)
	if f == nil || !m.Running() || m.fleets[0].Empty() || m.fleets[1].Empty() {
		return
	}
	f.Handle(a)
}

// Tick advances the match by dt seconds.
func (m *Match) Tick(dt float64) {
	if !m.Running() {
		return
	}
	m.elapsed += dt

	for i, s := range m.strategies {
		if s == nil {
			continue
		}
		for _, a := range s.Next(dt) {
			m.Handle(i+1, a)
		}
	}

	m.resolveProjectiles()
	m.resolveAdversarial()
	m.resolveMerges(m.fleets[0])
	m.resolveMerges(m.fleets[1])
	m.resolvePowerups()

	for _, force := range m.forces {
		for _, f := range m.fleets {
			force.Apply(dt, f.Ships(), f.Projectiles())
		}
	}

	for _, f := range m.fleets {
		f.Update(dt)
	}

	if m.updateStatus() {
		return
	}

	if p, ok := m.spawner.Update(dt, m.arena); ok {
		m.powerups = append(m.powerups, p)
		m.emit(event.Event{Type: event.PowerupSpawned, Kind: p.Kind, Pos: p.Pos})
	}
}

// updateStatus ends the match when a fleet is gone. It reports whether the
// match is over.
func (m *Match) updateStatus() bool {
	empty1, empty2 := m.fleets[0].Empty(), m.fleets[1].Empty()
	switch {
	case empty1 && empty2:
		m.status = Stalemate
	case empty1:
		m.status = Player2Wins
	case empty2:
		m.status = Player1Wins
	default:
		return false
	}

	m.emit(event.Event{Type: event.MatchOver, Value: m.Winner()})
	m.logger.Info("match over",
		"result", m.status,
		"elapsed", m.elapsed,
		"dropped_events", m.dropped)
	return true
}

func (m *Match) emit(e event.Event) {
	switch e.Type {
	case event.ShipDestroyed, event.ShipsMerged, event.ShipSplit, event.MineExploded:
		m.logger.Debug(e.Type.String(), "player", e.Player, "ship", e.ShipID, "value", e.Value)
	}

	select {
	case m.events <- e:
	default:
		m.dropped++
	}
}
