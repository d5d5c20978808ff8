// Package fleet implements a player's fleet: its ships, the projectiles they
// fired, the active ship the player steers, and the actions a player (human
// or AI) can issue.
package fleet

import (
	"math"
	"slices"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/event"
	"github.com/tomz197/splitfleet/internal/object"
	"github.com/tomz197/splitfleet/internal/physics"
)

// Action is a discrete player input.
type Action int

const (
	RotateHoldOn  Action = iota // rotate key went down
	RotateHoldOff               // rotate key went up
	Fire
	Split
	Switch
)

func (a Action) String() string {
	switch a {
	case RotateHoldOn:
		return "rotate-on"
	case RotateHoldOff:
		return "rotate-off"
	case Fire:
		return "fire"
	case Split:
		return "split"
	case Switch:
		return "switch"
	default:
		return "unknown"
	}
}

// Fleet owns one player's ships and projectiles. Exactly one ship is active
// while the fleet is not empty.
type Fleet struct {
	Player int

	settings    *config.Settings
	sink        event.Sink
	ships       []*object.Spaceship
	projectiles []object.Projectile
	active      int

	// Simulation clock and double-press detection for the rotate key.
	clock      float64
	holding    bool
	lastPress  float64
	pressCount int
}

// New creates the starting fleet for player (1 or 2): NumStartSpaceships
// ships in a column on the player's side of the arena, the first one active.
// A nil sink discards events.
func New(player int, settings *config.Settings, sink event.Sink) *Fleet {
	if sink == nil {
		sink = event.Discard
	}
	f := &Fleet{
		Player:   player,
		settings: settings,
		sink:     sink,
	}

	x := settings.Width / 8
	facing := 0.0
	if player == 2 {
		x = settings.Width * 7 / 8
		facing = 180
	}
	n := settings.NumStartSpaceships
	for i := 1; i <= n; i++ {
		y := settings.Height / float64(n+1) * float64(i)
		ship := object.NewSpaceship(player, physics.Vector2{X: x, Y: y}, settings)
		ship.Rotate(facing)
		f.ships = append(f.ships, ship)
	}
	if len(f.ships) > 0 {
		f.ships[0].Active = true
	}
	return f
}

// Ships returns a snapshot of the fleet's ships in fleet order.
func (f *Fleet) Ships() []*object.Spaceship {
	return slices.Clone(f.ships)
}

// Projectiles returns a snapshot of the fleet's live projectiles.
func (f *Fleet) Projectiles() []object.Projectile {
	return slices.Clone(f.projectiles)
}

// Len is the number of ships in the fleet.
func (f *Fleet) Len() int {
	return len(f.ships)
}

// Empty reports whether every ship has been destroyed.
func (f *Fleet) Empty() bool {
	return len(f.ships) == 0
}

// TotalValue sums the value of all ships.
func (f *Fleet) TotalValue() int {
	total := 0
	for _, s := range f.ships {
		total += max(s.Value, 0)
	}
	return total
}

// Active returns the ship the player currently controls, or nil.
func (f *Fleet) Active() *object.Spaceship {
	if len(f.ships) == 0 {
		return nil
	}
	return f.ships[f.active]
}

// Ship looks a ship up by id.
func (f *Fleet) Ship(id int) (*object.Spaceship, bool) {
	i := f.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return f.ships[i], true
}

func (f *Fleet) indexOf(id int) int {
	return slices.IndexFunc(f.ships, func(s *object.Spaceship) bool { return s.ID == id })
}

// AddProjectile hands a projectile to the fleet.
func (f *Fleet) AddProjectile(p object.Projectile) {
	f.projectiles = append(f.projectiles, p)
}

// Handle applies a player action. Actions on an empty fleet are ignored.
func (f *Fleet) Handle(a Action) {
	if len(f.ships) == 0 {
		return
	}
	switch a {
	case RotateHoldOn:
		f.pressRotate()
	case RotateHoldOff:
		f.holding = false
	case Fire:
		f.Fire()
	case Split:
		f.Split()
	case Switch:
		f.Switch()
	}
}

// pressRotate starts a rotation hold. A second press within the double-press
// threshold kicks the active ship: a fixed turn plus a boost.
func (f *Fleet) pressRotate() {
	if f.holding {
		return
	}
	f.holding = true

	if f.pressCount > 0 && f.clock-f.lastPress <= f.settings.DoublePressThreshold {
		f.pressCount++
	} else {
		f.pressCount = 1
	}
	f.lastPress = f.clock

	if f.pressCount >= 2 {
		f.pressCount = 0
		ship := f.Active()
		ship.Rotate(f.settings.RotBoostDeg)
		ship.ApplyBoost()
		f.emit(event.Event{Type: event.Boosted, ShipID: ship.ID, Pos: ship.Pos, Angle: ship.Angle, Value: ship.Value})
	}
}

// Holding reports whether the rotate key is held.
func (f *Fleet) Holding() bool {
	return f.holding
}

// Fire shoots from the active ship. It reports whether a projectile was fired.
func (f *Fleet) Fire() bool {
	ship := f.Active()
	if ship == nil {
		return false
	}
	p, ok := ship.Fire()
	if !ok {
		return false
	}
	f.projectiles = append(f.projectiles, p)
	f.emit(event.Event{Type: event.Fired, ShipID: ship.ID, Kind: p.Kind(), Pos: p.Position(), Angle: ship.Angle})
	return true
}

// Switch hands control to the next ship, wrapping around.
func (f *Fleet) Switch() {
	if len(f.ships) == 0 {
		return
	}
	f.ships[f.active].Active = false
	f.active = (f.active + 1) % len(f.ships)
	f.ships[f.active].Active = true
}

// Split divides the active ship in two. The new ship takes half the value
// (rounded down), half the speed, the mirrored heading and the opposite
// direction of travel; the original keeps the rest of the value and speeds
// up by half. The new ship cannot merge back until it has separated.
// Ships of value below 2 cannot split.
func (f *Fleet) Split() (*object.Spaceship, bool) {
	ship := f.Active()
	if ship == nil || ship.Value < 2 {
		return nil, false
	}

	child := object.NewSpaceship(f.Player, ship.Pos, f.settings)
	child.Velocity = ship.Velocity.Scale(-1)
	child.Speed = ship.Speed / 2
	child.Angle = physics.NormalizeAngle(-ship.Angle)
	child.Value = ship.Value / 2
	child.ReadyForSameSide = false

	ship.Value -= child.Value
	ship.Speed *= 1.5

	f.ships = append(f.ships, child)
	f.emit(event.Event{Type: event.ShipSplit, ShipID: child.ID, Pos: child.Pos, Value: child.Value})
	return child, true
}

// Merge replaces the ships idA and idB with a single ship at their midpoint
// carrying their combined value. If either was active the merged ship
// becomes active; otherwise the active ship stays the same. Unknown ids, or
// idA == idB, leave the fleet unchanged.
func (f *Fleet) Merge(idA, idB int) (*object.Spaceship, bool) {
	ia, ib := f.indexOf(idA), f.indexOf(idB)
	if ia < 0 || ib < 0 || ia == ib {
		return nil, false
	}
	a, b := f.ships[ia], f.ships[ib]
	activeID := f.ships[f.active].ID

	merged := object.NewSpaceship(f.Player, a.Pos.Add(b.Pos).Scale(0.5), f.settings)
	momentum := a.Velocity.Scale(a.Speed).Add(b.Velocity.Scale(b.Speed))
	merged.Velocity = momentum.NormalizeOr(a.Velocity)
	merged.Speed = (a.Speed + b.Speed) / 2
	merged.Angle = physics.NormalizeAngle(math.Abs(a.Angle-b.Angle) / 2)
	merged.Value = a.Value + b.Value

	f.ships = slices.DeleteFunc(f.ships, func(s *object.Spaceship) bool {
		return s.ID == idA || s.ID == idB
	})
	f.ships = append(f.ships, merged)

	if activeID == idA || activeID == idB {
		f.active = len(f.ships) - 1
		merged.Active = true
	} else {
		f.active = f.indexOf(activeID)
	}

	f.emit(event.Event{Type: event.ShipsMerged, ShipID: merged.ID, Pos: merged.Pos, Value: merged.Value})
	return merged, true
}

// Destroy removes the ship with the given id. If it was the active ship,
// control passes to the ship that took its place, wrapping to the first
// ship. It reports false for unknown ids.
func (f *Fleet) Destroy(id int) bool {
	i := f.indexOf(id)
	if i < 0 {
		return false
	}
	ship := f.ships[i]
	wasActive := i == f.active

	f.ships = slices.Delete(f.ships, i, i+1)
	if i < f.active {
		f.active--
	}
	switch {
	case len(f.ships) == 0:
		f.active = 0
		f.holding = false
	case wasActive:
		if f.active >= len(f.ships) {
			f.active = 0
		}
		f.ships[f.active].Active = true
	}

	f.emit(event.Event{Type: event.ShipDestroyed, ShipID: ship.ID, Pos: ship.Pos})
	return true
}

// Update advances the fleet by dt seconds: rotation hold, ship and
// projectile integration, then removal of dead ships and spent projectiles.
func (f *Fleet) Update(dt float64) {
	f.clock += dt

	if ship := f.Active(); ship != nil && f.holding {
		ship.Rotate(-f.settings.RotationSpeed * dt)
	}

	for _, s := range f.ships {
		s.Update(dt)
	}
	for _, p := range f.projectiles {
		mine, isMine := p.(*object.Mine)
		wasExploding := isMine && mine.Exploding()
		p.Update(dt)
		if isMine && !wasExploding && mine.Exploding() {
			f.emit(event.Event{Type: event.MineExploded, Kind: object.KindMine, Pos: mine.Pos})
		}
	}

	var dead []int
	for _, s := range f.ships {
		if !s.Alive() {
			dead = append(dead, s.ID)
		}
	}
	for _, id := range dead {
		f.Destroy(id)
	}

	f.projectiles = slices.DeleteFunc(f.projectiles, func(p object.Projectile) bool {
		return p.EndOfLife()
	})
}

func (f *Fleet) emit(e event.Event) {
	e.Player = f.Player
	f.sink(e)
}
