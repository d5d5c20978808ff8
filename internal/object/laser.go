package object

import (
	"math"

	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/physics"
)

// LaserBeam is an instantaneous beam that lives for a short time. It hits
// anything near the line through its origin, and anything near the line of
// its single reflection off the border it exits through.
type LaserBeam struct {
	Pos   physics.Vector2
	Angle float64 // degrees
	Width float64

	player      int
	lifeTime    float64
	maxLifeTime float64

	exitSide     physics.Side
	exitPoint    physics.Vector2
	reflectAngle float64
	reflectEnd   physics.Vector2
}

// NewLaserBeam fires a beam from pos. The reflection is computed once, the
// arena never changes during a match.
func NewLaserBeam(player int, pos physics.Vector2, angle, width, maxLifeTime float64, arena physics.Bounds) *LaserBeam {
	l := &LaserBeam{
		Pos:         pos,
		Angle:       physics.NormalizeAngle(angle),
		Width:       width,
		player:      player,
		maxLifeTime: maxLifeTime,
	}
	l.exitSide, l.exitPoint = arena.RayIntersectionBorder(pos, l.Angle)
	if l.exitSide != physics.SideNone {
		l.reflectAngle = physics.ReflectAngle(l.Angle, l.exitSide)
		_, l.reflectEnd = arena.RayIntersectionBorder(l.exitPoint, l.reflectAngle)
	}
	return l
}

func (l *LaserBeam) Update(dt float64) {
	l.lifeTime += dt
}

// IsCollidingWith tests the target against the direct beam and its reflection.
func (l *LaserBeam) IsCollidingWith(target physics.Circle) bool {
	if lineHits(l.Pos, l.Angle, target, l.Width) {
		return true
	}
	return l.exitSide != physics.SideNone && lineHits(l.exitPoint, l.reflectAngle, target, l.Width)
}

// lineHits reports whether target lies within width/2 of the infinite line
// through origin at angle degrees.
func lineHits(origin physics.Vector2, angle float64, target physics.Circle, width float64) bool {
	sin, cos := math.Sincos(physics.DegToRad(angle))
	dist := math.Abs((target.Center.X-origin.X)*sin - (target.Center.Y-origin.Y)*cos)
	return dist <= target.Radius+width/2
}

func (l *LaserBeam) EndOfLife() bool {
	return l.lifeTime >= l.maxLifeTime
}

func (l *LaserBeam) Kind() Kind                { return KindLaserBeam }
func (l *LaserBeam) Position() physics.Vector2 { return l.Pos }
func (l *LaserBeam) Owner() int                { return l.player }

// Segments returns the visible beam: origin to exit point, then the reflection.
func (l *LaserBeam) Segments() [][2]physics.Vector2 {
	if l.exitSide == physics.SideNone {
		return nil
	}
	return [][2]physics.Vector2{
		{l.Pos, l.exitPoint},
		{l.exitPoint, l.reflectEnd},
	}
}

func (l *LaserBeam) Draw(ctx DrawContext) error {
	ctx.Canvas.SetColor(draw.ColorYellow)
	for _, seg := range l.Segments() {
		ctx.Canvas.DrawLine(toPoint(seg[0]), toPoint(seg[1]))
	}
	return nil
}
