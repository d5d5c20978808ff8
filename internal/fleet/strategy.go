package fleet

import (
	"math/rand"
)

// Strategy decides the actions of a computer-controlled fleet. It issues the
// same actions a human player does, so the same rules apply to both.
type Strategy interface {
	// Next returns the actions to apply this tick.
	Next(dt float64) []Action
}

// RandomStrategy plays by chance. At every decision it picks one of boost,
// fire, switch or split with equal odds, and holds the rotate key about half
// of the time.
type RandomStrategy struct {
	interval float64
	timer    float64
	holding  bool
	rng      *rand.Rand
	buf      []Action
}

// NewRandomStrategy makes a decision every interval seconds. A nil rng uses a
// time-seeded source.
func NewRandomStrategy(interval float64, rng *rand.Rand) *RandomStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &RandomStrategy{interval: interval, rng: rng}
}

// Next implements Strategy. The returned slice is reused between calls.
func (s *RandomStrategy) Next(dt float64) []Action {
	s.buf = s.buf[:0]
	s.timer += dt
	if s.timer < s.interval {
		return s.buf
	}
	s.timer = 0

	switch s.rng.Intn(4) {
	case 0:
		// Two quick presses trigger the boost.
		s.release()
		s.buf = append(s.buf, RotateHoldOn, RotateHoldOff, RotateHoldOn, RotateHoldOff)
		return s.buf
	case 1:
		s.buf = append(s.buf, Fire)
	case 2:
		s.buf = append(s.buf, Switch)
	case 3:
		s.buf = append(s.buf, Split)
	}

	if s.rng.Intn(2) == 0 {
		if !s.holding {
			s.holding = true
			s.buf = append(s.buf, RotateHoldOn)
		}
	} else {
		s.release()
	}
	return s.buf
}

func (s *RandomStrategy) release() {
	if s.holding {
		s.holding = false
		s.buf = append(s.buf, RotateHoldOff)
	}
}
