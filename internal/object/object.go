// Package object holds the simulated entities: spaceships, their weapons,
// projectiles and powerups, plus the purely visual particles.
package object

import (
	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/physics"
)

// Kind tags weapon loadouts, projectiles and powerups.
type Kind int

const (
	KindBullet Kind = iota
	KindLaserBeam
	KindMine
	KindPlus // powerup only: +1 ship value
)

func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindLaserBeam:
		return "laser"
	case KindMine:
		return "mine"
	case KindPlus:
		return "plus"
	default:
		return "unknown"
	}
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas      // High-resolution canvas (2x vertical)
	Writer *draw.ChunkWriter // Text overlay, written after the canvas
}

// Drawable is anything that can render itself onto the terminal canvas.
type Drawable interface {
	Draw(ctx DrawContext) error
}

// Projectile is a live shot owned by a fleet.
type Projectile interface {
	Drawable

	// Update advances the projectile by dt seconds.
	Update(dt float64)
	// IsCollidingWith reports whether target is hit by the projectile right now.
	IsCollidingWith(target physics.Circle) bool
	// EndOfLife reports whether the projectile should be removed.
	EndOfLife() bool
	Kind() Kind
	Position() physics.Vector2
	// Owner is the player (1 or 2) whose fleet fired it.
	Owner() int
}

// PlayerColor is the canvas color of everything owned by player.
func PlayerColor(player int) draw.Color {
	if player == 2 {
		return draw.ColorMagenta
	}
	return draw.ColorCyan
}

func toPoint(v physics.Vector2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}

// ShouldRenderBlink returns true if an object with remaining countdown time
// should be rendered this frame (for blinking effect).
// Returns true always if remainingTime <= 0.
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
