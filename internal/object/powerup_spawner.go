package object

import (
	"math/rand"

	"github.com/tomz197/splitfleet/internal/physics"
)

// PowerupSpawner drops a random powerup at a random spot once per interval.
type PowerupSpawner struct {
	interval float64
	radius   float64
	timer    float64
	rng      *rand.Rand
}

// NewPowerupSpawner creates a spawner. A nil rng uses a time-seeded source.
func NewPowerupSpawner(interval, radius float64, rng *rand.Rand) *PowerupSpawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &PowerupSpawner{
		interval: interval,
		radius:   radius,
		rng:      rng,
	}
}

// Update advances the timer and returns a new powerup when the interval has
// elapsed. The powerup lies fully inside arena.
func (s *PowerupSpawner) Update(dt float64, arena physics.Bounds) (*Powerup, bool) {
	s.timer += dt
	if s.timer <= s.interval {
		return nil, false
	}
	s.timer = 0

	pos := physics.Vector2{
		X: s.radius + s.rng.Float64()*(arena.Width-2*s.radius),
		Y: s.radius + s.rng.Float64()*(arena.Height-2*s.radius),
	}
	kind := PowerupKinds[s.rng.Intn(len(PowerupKinds))]
	return NewPowerup(pos, s.radius, kind), true
}
