package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Spawner receives particles created by effect helpers.
type Spawner interface {
	Spawn(p *Particle)
}

// Particle is a short-lived visual effect. It takes no part in the simulation.
type Particle struct {
	Pos         physics.Vector2
	Vel         physics.Vector2
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Color       draw.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel physics.Vector2, lifetime float64, color draw.Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Color = color
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates particles in a circular burst pattern.
func SpawnExplosion(pos physics.Vector2, count int, speed, lifetime float64, color draw.Color, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := rand.Float64() * 360
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rand.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime * (0.5 + rand.Float64()*0.5)

		spawner.Spawn(NewParticle(pos, physics.FromAngle(angle).Scale(spd), life, color))
	}
}

// SpawnThrust creates particles behind a boosting ship facing angle degrees.
func SpawnThrust(pos physics.Vector2, angle float64, color draw.Color, spawner Spawner) {
	if spawner == nil {
		return
	}

	count := 3 + rand.Intn(3)
	for i := 0; i < count; i++ {
		// Opposite direction of ship facing, with spread
		thrustAngle := angle + 180 + (rand.Float64()-0.5)*40
		speed := 150 + rand.Float64()*100
		lifetime := 0.15 + rand.Float64()*0.15

		p := NewParticle(pos, physics.FromAngle(thrustAngle).Scale(speed), lifetime, color)
		p.Drag = 0.85
		spawner.Spawn(p)
	}
}

// Update moves the particle. It returns true once the particle has expired.
func (p *Particle) Update(dt float64) bool {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.Vel = p.Vel.Scale(dragFactor)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	return false
}

// Draw renders the particle as a pixel on the canvas.
func (p *Particle) Draw(ctx DrawContext) error {
	// Skip faded particles (< 25% lifetime)
	if p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
		return nil
	}
	ctx.Canvas.SetColor(p.Color)
	ctx.Canvas.SetFloat(p.Pos.X, p.Pos.Y)
	return nil
}
