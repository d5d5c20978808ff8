package game

import (
	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/object"
	"github.com/tomz197/splitfleet/internal/physics"
)

// Force is a circular field that pulls bodies towards its center or pushes
// them away. Its strength fades linearly to zero at the edge.
type Force struct {
	Kind     config.ForceKind
	Strength float64
	Radius   float64
	Pos      physics.Vector2
}

// NewForces builds the force fields described by the settings.
func NewForces(settings []config.ForceSettings) []Force {
	forces := make([]Force, 0, len(settings))
	for _, s := range settings {
		forces = append(forces, Force{
			Kind:     s.Kind,
			Strength: s.Strength,
			Radius:   s.Radius,
			Pos:      physics.Vector2{X: s.X, Y: s.Y},
		})
	}
	return forces
}

// At returns the direction the field acts in at pos and its magnitude there.
// ok is false outside the field and at its exact center.
func (f Force) At(pos physics.Vector2) (dir physics.Vector2, magnitude float64, ok bool) {
	d := pos.Distance(f.Pos)
	if d >= f.Radius || d == 0 {
		return physics.Vector2{}, 0, false
	}
	dir = f.Pos.Sub(pos).Normalize()
	if f.Kind == config.Repulsion {
		dir = dir.Scale(-1)
	}
	return dir, f.Strength * (1 - d/f.Radius), true
}

// Apply acts on ships and projectiles for dt seconds. Ships are turned
// towards the pull, bullets are re-aimed along it at the local strength,
// mines are dragged.
func (f Force) Apply(dt float64, ships []*object.Spaceship, projectiles []object.Projectile) {
	for _, s := range ships {
		if dir, mag, ok := f.At(s.Pos); ok {
			s.Push(dir.Scale(mag * dt))
		}
	}
	for _, p := range projectiles {
		dir, mag, ok := f.At(p.Position())
		if !ok {
			continue
		}
		switch p := p.(type) {
		case *object.Bullet:
			p.Steer(dir, mag)
		case *object.Mine:
			p.Drag(dir.Scale(mag * dt))
		}
	}
}

// Draw outlines the field.
func (f Force) Draw(ctx object.DrawContext) error {
	ctx.Canvas.SetColor(draw.ColorRed)
	if f.Kind == config.Attraction {
		ctx.Canvas.SetColor(draw.ColorBlue)
	}
	ctx.Canvas.DrawCircle(draw.Point{X: f.Pos.X, Y: f.Pos.Y}, f.Radius, false)
	return nil
}
