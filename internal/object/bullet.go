package object

import (
	"github.com/tomz197/splitfleet/internal/physics"
)

// Bullet flies in a straight line and bounces off the arena borders until
// its lifetime runs out or it hits something.
type Bullet struct {
	Pos    physics.Vector2
	Angle  float64 // degrees
	Speed  float64
	Radius float64

	player      int
	lifeTime    float64
	maxLifeTime float64
	eol         bool
	arena       physics.Bounds
}

// NewBullet creates a bullet fired by player.
func NewBullet(player int, pos physics.Vector2, angle, speed, radius, maxLifeTime float64, arena physics.Bounds) *Bullet {
	return &Bullet{
		Pos:         pos,
		Angle:       physics.NormalizeAngle(angle),
		Speed:       speed,
		Radius:      radius,
		player:      player,
		maxLifeTime: maxLifeTime,
		arena:       arena,
	}
}

// Update moves the bullet and reflects it off any border it crossed.
func (b *Bullet) Update(dt float64) {
	b.lifeTime += dt
	b.Pos = b.Pos.Add(physics.FromAngle(b.Angle).Scale(b.Speed * dt))

	switch {
	case b.Pos.X < 0:
		b.Pos.X = 0
		b.Angle = physics.ReflectAngle(b.Angle, physics.SideLeft)
	case b.Pos.X > b.arena.Width:
		b.Pos.X = b.arena.Width
		b.Angle = physics.ReflectAngle(b.Angle, physics.SideRight)
	}
	switch {
	case b.Pos.Y < 0:
		b.Pos.Y = 0
		b.Angle = physics.ReflectAngle(b.Angle, physics.SideTop)
	case b.Pos.Y > b.arena.Height:
		b.Pos.Y = b.arena.Height
		b.Angle = physics.ReflectAngle(b.Angle, physics.SideBottom)
	}
}

func (b *Bullet) IsCollidingWith(target physics.Circle) bool {
	return target.Collides(physics.Circle{Center: b.Pos, Radius: b.Radius})
}

// Expire marks the bullet as spent; it is removed on the next fleet update.
func (b *Bullet) Expire() {
	b.eol = true
}

func (b *Bullet) EndOfLife() bool {
	return b.eol || b.lifeTime >= b.maxLifeTime
}

func (b *Bullet) Kind() Kind                { return KindBullet }
func (b *Bullet) Position() physics.Vector2 { return b.Pos }
func (b *Bullet) Owner() int                { return b.player }

// Steer re-aims the bullet along dir at the given speed.
func (b *Bullet) Steer(dir physics.Vector2, speed float64) {
	if dir == (physics.Vector2{}) {
		return
	}
	b.Angle = dir.Angle()
	b.Speed = speed
}

// Draw renders the bullet as a small filled dot.
func (b *Bullet) Draw(ctx DrawContext) error {
	ctx.Canvas.SetColor(PlayerColor(b.player))
	ctx.Canvas.DrawCircle(toPoint(b.Pos), b.Radius/2, true)
	return nil
}
