package object

import (
	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/physics"
)

// MinePhase is the lifecycle stage of a mine.
type MinePhase int

const (
	// MineDormant waits for an enemy to come close.
	MineDormant MinePhase = iota
	// MineArmed has been triggered and counts down to the explosion.
	MineArmed
	MineExploding
	MineSpent
)

func (p MinePhase) String() string {
	switch p {
	case MineDormant:
		return "dormant"
	case MineArmed:
		return "armed"
	case MineExploding:
		return "exploding"
	default:
		return "spent"
	}
}

// Mine sits where it was dropped. An enemy entering its active radius
// triggers a countdown; the explosion then destroys every ship in range,
// friend or foe.
type Mine struct {
	Pos             physics.Vector2
	Size            float64
	ActiveRadius    float64
	ExplosionRadius float64

	player            int
	activated         bool
	exploding         bool
	eol               bool
	activationTimer   float64
	explosionTimer    float64
	activationLength  float64
	explosionDuration float64
}

// NewMine drops a dormant mine at pos.
func NewMine(player int, pos physics.Vector2, size, activationDuration, activeRadius, explosionRadius, explosionDuration float64) *Mine {
	return &Mine{
		Pos:               pos,
		Size:              size,
		ActiveRadius:      activeRadius,
		ExplosionRadius:   explosionRadius,
		player:            player,
		activationLength:  activationDuration,
		explosionDuration: explosionDuration,
	}
}

// Activate starts the countdown. Repeated calls do not restart it.
func (m *Mine) Activate() {
	if m.activated {
		return
	}
	m.activated = true
	m.activationTimer = m.activationLength
}

// Update runs the countdown and the explosion timer.
func (m *Mine) Update(dt float64) {
	switch {
	case m.eol || !m.activated:
		return
	case m.exploding:
		m.explosionTimer -= dt
		if m.explosionTimer <= 0 {
			m.exploding = false
			m.eol = true
		}
	default:
		m.activationTimer -= dt
		if m.activationTimer <= 0 {
			m.exploding = true
			m.explosionTimer = m.explosionDuration
		}
	}
}

// IsCollidingWith depends on the phase: a dormant mine reacts to ships inside
// its active radius (and within blast range), an armed one ignores
// everything, an exploding one hits everything within the blast radius.
func (m *Mine) IsCollidingWith(target physics.Circle) bool {
	switch m.Phase() {
	case MineDormant:
		active := physics.Circle{Center: m.Pos, Radius: m.ActiveRadius}
		return target.Collides(active) && target.Center.Distance(m.Pos) <= m.ExplosionRadius
	case MineExploding:
		return target.Collides(physics.Circle{Center: m.Pos, Radius: m.ExplosionRadius})
	default:
		return false
	}
}

// Phase reports the current lifecycle stage.
func (m *Mine) Phase() MinePhase {
	switch {
	case m.eol:
		return MineSpent
	case m.exploding:
		return MineExploding
	case m.activated:
		return MineArmed
	default:
		return MineDormant
	}
}

func (m *Mine) Activated() bool { return m.activated }
func (m *Mine) Exploding() bool { return m.exploding }

// Countdown is the time left before the explosion while armed.
func (m *Mine) Countdown() float64 {
	if m.Phase() != MineArmed {
		return 0
	}
	return m.activationTimer
}

func (m *Mine) EndOfLife() bool           { return m.eol }
func (m *Mine) Kind() Kind                { return KindMine }
func (m *Mine) Position() physics.Vector2 { return m.Pos }
func (m *Mine) Owner() int                { return m.player }

// Drag moves the mine by offset.
func (m *Mine) Drag(offset physics.Vector2) {
	m.Pos = m.Pos.Add(offset)
}

func (m *Mine) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	center := toPoint(m.Pos)
	switch m.Phase() {
	case MineDormant:
		c.SetColor(PlayerColor(m.player))
		c.DrawCircle(center, m.Size/2, true)
	case MineArmed:
		if ShouldRenderBlink(m.activationTimer, 8) {
			c.SetColor(draw.ColorRed)
			c.DrawCircle(center, m.Size/2, true)
		}
		c.SetColor(draw.ColorGray)
		c.DrawCircle(center, m.ExplosionRadius, false)
	case MineExploding:
		c.SetColor(draw.ColorYellow)
		c.DrawCircle(center, m.ExplosionRadius, false)
		c.SetColor(draw.ColorRed)
		c.DrawCircle(center, m.ExplosionRadius*0.6, false)
	}
	return nil
}
