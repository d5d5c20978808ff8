package game

import (
	"github.com/tomz197/splitfleet/internal/event"
	"github.com/tomz197/splitfleet/internal/fleet"
	"github.com/tomz197/splitfleet/internal/object"
	"github.com/tomz197/splitfleet/internal/physics"
)

// Each pass works on snapshots taken when it starts. Structural changes
// (merges, removals) happen after a pass has seen every pair; dead ships
// are pruned by the fleet update at the end of the tick.

// resolveProjectiles runs projectiles against enemy ships, lets enemy
// bullets set off dormant mines, and finally lets exploding mines destroy
// every ship in range regardless of side.
func (m *Match) resolveProjectiles() {
	for i, f := range m.fleets {
		targets := m.fleets[1-i].Ships()
		for _, p := range f.Projectiles() {
			for _, ship := range targets {
				if p.EndOfLife() {
					break
				}
				if ship.Alive() && p.IsCollidingWith(ship.Shape()) {
					m.projectileHit(p, ship)
				}
			}
		}
	}

	for i, f := range m.fleets {
		m.triggerMines(f.Projectiles(), m.fleets[1-i].Projectiles())
	}

	var ships []*object.Spaceship
	for _, f := range m.fleets {
		ships = append(ships, f.Ships()...)
	}
	for _, f := range m.fleets {
		for _, p := range f.Projectiles() {
			mine, ok := p.(*object.Mine)
			if !ok || !mine.Exploding() {
				continue
			}
			for _, ship := range ships {
				if ship.Alive() && mine.IsCollidingWith(ship.Shape()) {
					ship.Value = 0
					m.emit(event.Event{Type: event.ShipHit, Player: ship.Player, ShipID: ship.ID, Kind: object.KindMine, Pos: ship.Pos})
				}
			}
		}
	}
}

func (m *Match) projectileHit(p object.Projectile, ship *object.Spaceship) {
	switch p := p.(type) {
	case *object.Bullet:
		ship.Value = max(ship.Value-1, 0)
		p.Expire()
	case *object.Mine:
		if p.Activated() {
			return
		}
		p.Activate()
		m.emit(event.Event{Type: event.MineTriggered, Player: p.Owner(), Kind: object.KindMine, Pos: p.Pos})
		return
	default:
		ship.Value = 0
	}
	m.emit(event.Event{Type: event.ShipHit, Player: ship.Player, ShipID: ship.ID, Kind: p.Kind(), Pos: ship.Pos, Value: ship.Value})
}

// triggerMines activates dormant mines hit by an enemy bullet. The bullet is
// spent.
func (m *Match) triggerMines(mines, bullets []object.Projectile) {
	for _, p := range mines {
		mine, ok := p.(*object.Mine)
		if !ok || mine.Phase() != object.MineDormant {
			continue
		}
		body := physics.Circle{Center: mine.Pos, Radius: mine.Size / 2}
		for _, q := range bullets {
			bullet, ok := q.(*object.Bullet)
			if !ok || bullet.EndOfLife() || !bullet.IsCollidingWith(body) {
				continue
			}
			bullet.Expire()
			mine.Activate()
			m.emit(event.Event{Type: event.MineTriggered, Player: mine.Owner(), Kind: object.KindMine, Pos: mine.Pos})
			break
		}
	}
}

// resolveAdversarial bounces overlapping enemy ships off each other. Each
// loses one value. A ship only bounces again after a tick without contact.
func (m *Match) resolveAdversarial() {
	a, b := m.fleets[0].Ships(), m.fleets[1].Ships()
	contactsA := make([]int, len(a))
	contactsB := make([]int, len(b))

	for i, s1 := range a {
		for j, s2 := range b {
			if !s1.Alive() || !s2.Alive() || !s1.Shape().Collides(s2.Shape()) {
				continue
			}
			contactsA[i]++
			contactsB[j]++
			if s1.ReadyForOppositeSide && s2.ReadyForOppositeSide {
				bounce(s1, s2)
				m.emit(event.Event{Type: event.ShipsCollided, ShipID: s1.ID, Pos: s1.Pos.Add(s2.Pos).Scale(0.5)})
			}
		}
	}

	rearm(a, contactsA, func(s *object.Spaceship) { s.ReadyForOppositeSide = true })
	rearm(b, contactsB, func(s *object.Spaceship) { s.ReadyForOppositeSide = true })
}

// bounce pushes both ships away from each other and gives them the same
// speed.
func bounce(s1, s2 *object.Spaceship) {
	s1.Value = max(s1.Value-1, 0)
	s2.Value = max(s2.Value-1, 0)

	away := s1.Pos.Sub(s2.Pos)
	s1.Velocity = s1.Velocity.Add(away.Scale(s1.Speed)).NormalizeOr(s1.Velocity)
	s2.Velocity = s2.Velocity.Add(away.Scale(-s2.Speed)).NormalizeOr(s2.Velocity)

	speed := (s1.Speed + s2.Speed) / 2
	s1.Speed, s2.Speed = speed, speed

	s1.ReadyForOppositeSide = false
	s2.ReadyForOppositeSide = false
}

// resolveMerges merges overlapping ships of one fleet. Pairs are collected
// first and merged in order; a pair whose ship was already merged away is
// skipped by the fleet.
func (m *Match) resolveMerges(f *fleet.Fleet) {
	ships := f.Ships()
	contacts := make([]int, len(ships))
	var pairs [][2]int

	for i, s1 := range ships {
		for j := i + 1; j < len(ships); j++ {
			s2 := ships[j]
			if !s1.Alive() || !s2.Alive() || !s1.Shape().Collides(s2.Shape()) {
				continue
			}
			contacts[i]++
			contacts[j]++
			if s1.ReadyForSameSide && s2.ReadyForSameSide {
				pairs = append(pairs, [2]int{s1.ID, s2.ID})
			}
		}
	}

	rearm(ships, contacts, func(s *object.Spaceship) { s.ReadyForSameSide = true })

	for _, p := range pairs {
		f.Merge(p[0], p[1])
	}
}

func rearm(ships []*object.Spaceship, contacts []int, fn func(*object.Spaceship)) {
	for i, s := range ships {
		if contacts[i] == 0 {
			fn(s)
		}
	}
}

// resolvePowerups hands each powerup to the first live ship touching it,
// player 1's ships first.
func (m *Match) resolvePowerups() {
	var ships []*object.Spaceship
	for _, f := range m.fleets {
		ships = append(ships, f.Ships()...)
	}

	kept := m.powerups[:0]
	for _, p := range m.powerups {
		for _, ship := range ships {
			if !ship.Alive() || !ship.Shape().Collides(p.Shape()) {
				continue
			}
			if p.Acquire(ship) {
				m.emit(event.Event{Type: event.PowerupAcquired, Player: ship.Player, ShipID: ship.ID, Kind: p.Kind, Pos: p.Pos, Value: ship.Value})
			}
			break
		}
		if !p.Acquired() {
			kept = append(kept, p)
		}
	}
	clear(m.powerups[len(kept):])
	m.powerups = kept
}
