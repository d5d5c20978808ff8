package object

import (
	"math"
	"strconv"
	"sync/atomic"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/physics"
)

// shipIDs hands out ids that stay unique for the lifetime of the process,
// across every match running in it.
var shipIDs atomic.Int64

// Spaceship is one ship of a fleet. Its Value is its hit points and what it
// contributes when merging; at zero the ship is destroyed.
type Spaceship struct {
	ID     int
	Player int
	Value  int

	Pos      physics.Vector2
	Velocity physics.Vector2 // unit direction of travel
	Speed    float64
	Angle    float64 // facing in degrees, [0, 360)

	Active               bool
	ReadyForSameSide     bool // may merge with a ship of its own fleet
	ReadyForOppositeSide bool // may collide with an enemy ship

	Weapon *Weapon

	settings *config.Settings
	arena    physics.Bounds
}

// NewSpaceship creates a ship of value 1 at rest, facing right.
func NewSpaceship(player int, pos physics.Vector2, settings *config.Settings) *Spaceship {
	return &Spaceship{
		ID:                   int(shipIDs.Add(1)),
		Player:               player,
		Value:                1,
		Pos:                  pos,
		Velocity:             physics.Vector2{X: 1},
		ReadyForSameSide:     true,
		ReadyForOppositeSide: true,
		Weapon:               NewWeapon(settings),
		settings:             settings,
		arena:                physics.Bounds{Width: settings.Width, Height: settings.Height},
	}
}

// Radius is the radius of the ship's collision circle.
func (s *Spaceship) Radius() float64 {
	return s.settings.SpaceshipSize / 2
}

// Shape returns the collision circle.
func (s *Spaceship) Shape() physics.Circle {
	return physics.Circle{Center: s.Pos, Radius: s.Radius()}
}

// Alive reports whether the ship still has value left.
func (s *Spaceship) Alive() bool {
	return s.Value > 0
}

// Rotate turns the ship by deg degrees. The direction of travel follows the
// new facing.
func (s *Spaceship) Rotate(deg float64) {
	s.Angle = physics.NormalizeAngle(s.Angle + deg)
	s.Velocity = physics.FromAngle(s.Angle)
}

// ApplyForce pushes the ship along its facing, setting its speed to mag.
func (s *Spaceship) ApplyForce(mag float64) {
	s.Speed = mag
	s.Velocity = s.Velocity.Add(physics.FromAngle(s.Angle).Scale(mag)).NormalizeOr(physics.FromAngle(s.Angle))
}

// Push adds an external impulse to the direction of travel, which stays a
// unit vector.
func (s *Spaceship) Push(impulse physics.Vector2) {
	s.Velocity = s.Velocity.Add(impulse).NormalizeOr(s.Velocity)
}

// ApplyBoost applies the configured boost force.
func (s *Spaceship) ApplyBoost() {
	s.ApplyForce(s.settings.ForceBoost)
}

// Update integrates position, applies drag, keeps the ship inside the arena
// and ticks the weapon.
func (s *Spaceship) Update(dt float64) {
	s.Pos = s.Pos.Add(s.Velocity.Scale(s.Speed * dt))
	s.Speed *= s.settings.Drag
	s.Pos, _ = s.arena.ClampCircle(s.Pos, s.Radius())
	s.Weapon.Update(dt)
}

// Fire shoots the current loadout from the ship's center along its facing.
func (s *Spaceship) Fire() (Projectile, bool) {
	return s.Weapon.Fire(s.Player, s.Pos, s.Angle)
}

// PickUp applies a powerup: Plus adds value, anything else goes to the weapon.
func (s *Spaceship) PickUp(kind Kind) {
	if kind == KindPlus {
		s.Value++
		return
	}
	s.Weapon.PickUp(kind)
}

// Draw renders the ship as a triangle pointing along its facing, filled when
// it is the fleet's active ship.
func (s *Spaceship) Draw(ctx DrawContext) error {
	r := s.Radius()
	rad := physics.DegToRad(s.Angle)

	triangle := ctx.Canvas.BorrowPoints(3)
	triangle[0] = draw.Point{X: s.Pos.X + math.Cos(rad)*r, Y: s.Pos.Y + math.Sin(rad)*r}
	triangle[1] = draw.Point{X: s.Pos.X + math.Cos(rad+2.5)*r*0.8, Y: s.Pos.Y + math.Sin(rad+2.5)*r*0.8}
	triangle[2] = draw.Point{X: s.Pos.X + math.Cos(rad-2.5)*r*0.8, Y: s.Pos.Y + math.Sin(rad-2.5)*r*0.8}

	ctx.Canvas.SetColor(PlayerColor(s.Player))
	ctx.Canvas.DrawPolygon(triangle, s.Active)
	return nil
}

// DrawLabel prints the ship's value, plus the initial of a loaded laser or
// mine, next to the ship. Call it after the canvas has been rendered.
func (s *Spaceship) DrawLabel(ctx DrawContext) {
	if ctx.Writer == nil {
		return
	}
	label := strconv.Itoa(s.Value)
	if s.Weapon.Loadout != KindBullet {
		label += string(s.Weapon.Loadout.String()[0])
	}
	r := s.Radius()
	col, row := ctx.Canvas.LogicalToTerminal(s.Pos.X+r, s.Pos.Y-r)
	if col < 1 || row < 1 || col+len(label) > ctx.Canvas.TerminalWidth() || row > ctx.Canvas.TerminalHeight() {
		return
	}
	ctx.Writer.WriteColorAt(col, row, PlayerColor(s.Player), label)
	// The canvas repaints these cells next frame so stale labels vanish.
	ctx.Canvas.MarkTextDirty(col, row, len(label))
}
