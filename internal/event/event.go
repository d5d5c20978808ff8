// Package event defines the notifications the simulation emits for
// frontends: effects, sounds and logs.
package event

import (
	"github.com/tomz197/splitfleet/internal/object"
	"github.com/tomz197/splitfleet/internal/physics"
)

// Type identifies what happened.
type Type int

const (
	Fired Type = iota
	Boosted
	ShipHit
	ShipDestroyed
	ShipsCollided
	ShipsMerged
	ShipSplit
	MineTriggered
	MineExploded
	PowerupSpawned
	PowerupAcquired
	MatchOver
)

func (t Type) String() string {
	switch t {
	case Fired:
		return "fired"
	case Boosted:
		return "boosted"
	case ShipHit:
		return "ship hit"
	case ShipDestroyed:
		return "ship destroyed"
	case ShipsCollided:
		return "ships collided"
	case ShipsMerged:
		return "ships merged"
	case ShipSplit:
		return "ship split"
	case MineTriggered:
		return "mine triggered"
	case MineExploded:
		return "mine exploded"
	case PowerupSpawned:
		return "powerup spawned"
	case PowerupAcquired:
		return "powerup acquired"
	case MatchOver:
		return "match over"
	default:
		return "unknown"
	}
}

// Event is a single notification. Fields not relevant to Type are zero.
type Event struct {
	Type   Type
	Player int // owning player, 0 when not tied to one
	ShipID int
	Kind   object.Kind
	Pos    physics.Vector2
	Angle  float64 // ship facing, set for Fired and Boosted
	Value  int     // ship value after the event, or the winner for MatchOver
}

// Sink receives events as they happen.
type Sink func(Event)

// Discard is a Sink that drops everything.
func Discard(Event) {}
