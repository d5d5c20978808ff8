// Package physics provides the vector math, circle collision and arena
// border geometry used by the simulation.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeAngle wraps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-15 + 360 rounds to 360
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// Circle is a collision shape.
type Circle struct {
	Center Vector2
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Vector2) bool {
	return DistanceSquared(c.Center.X, c.Center.Y, p.X, p.Y) <= c.Radius*c.Radius
}

// Collides reports whether two circles touch or overlap.
// Tangent circles count as colliding.
func (c Circle) Collides(o Circle) bool {
	minDist := c.Radius + o.Radius
	return DistanceSquared(c.Center.X, c.Center.Y, o.Center.X, o.Center.Y) <= minDist*minDist
}
