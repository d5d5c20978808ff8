package object

import (
	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/physics"
)

// PowerupKinds are the kinds a powerup can spawn as.
var PowerupKinds = []Kind{KindLaserBeam, KindMine, KindPlus}

// Powerup is a pickup lying in the arena until a ship touches it.
type Powerup struct {
	Pos    physics.Vector2
	Radius float64
	Kind   Kind

	acquired bool
}

func NewPowerup(pos physics.Vector2, radius float64, kind Kind) *Powerup {
	return &Powerup{Pos: pos, Radius: radius, Kind: kind}
}

func (p *Powerup) Shape() physics.Circle {
	return physics.Circle{Center: p.Pos, Radius: p.Radius}
}

// Acquire hands the powerup to ship. It reports false if it was already taken.
func (p *Powerup) Acquire(ship *Spaceship) bool {
	if p.acquired {
		return false
	}
	p.acquired = true
	ship.PickUp(p.Kind)
	return true
}

func (p *Powerup) Acquired() bool {
	return p.acquired
}

func (p *Powerup) Draw(ctx DrawContext) error {
	var col draw.Color
	switch p.Kind {
	case KindLaserBeam:
		col = draw.ColorYellow
	case KindMine:
		col = draw.ColorRed
	default:
		col = draw.ColorGreen
	}
	ctx.Canvas.SetColor(col)
	center := toPoint(p.Pos)
	ctx.Canvas.DrawCircle(center, p.Radius, false)

	// Plus is drawn as a cross, the others get an inner dot.
	if p.Kind == KindPlus {
		ctx.Canvas.DrawLine(draw.Point{X: p.Pos.X - p.Radius/2, Y: p.Pos.Y}, draw.Point{X: p.Pos.X + p.Radius/2, Y: p.Pos.Y})
		ctx.Canvas.DrawLine(draw.Point{X: p.Pos.X, Y: p.Pos.Y - p.Radius/2}, draw.Point{X: p.Pos.X, Y: p.Pos.Y + p.Radius/2})
	} else {
		ctx.Canvas.DrawCircle(center, p.Radius/3, true)
	}
	return nil
}
