package physics

import "math"

// Side identifies one of the four arena borders.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Vertical reports whether s is the left or right border.
func (s Side) Vertical() bool {
	return s == SideLeft || s == SideRight
}

// Bounds is the rectangular arena [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// Contains reports whether p lies inside the arena, borders included.
func (b Bounds) Contains(p Vector2) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// ClampCircle teleports a circle of the given radius back inside the arena.
// The returned side is the last border that was hit, or SideNone.
func (b Bounds) ClampCircle(pos Vector2, radius float64) (Vector2, Side) {
	side := SideNone
	if pos.X-radius < 0 {
		pos.X = radius
		side = SideLeft
	} else if pos.X+radius > b.Width {
		pos.X = b.Width - radius
		side = SideRight
	}
	if pos.Y-radius < 0 {
		pos.Y = radius
		side = SideTop
	} else if pos.Y+radius > b.Height {
		pos.Y = b.Height - radius
		side = SideBottom
	}
	return pos, side
}

// RayIntersectionBorder casts a ray from pos at angle degrees and returns the
// first border it crosses together with the crossing point. Only borders the
// ray moves toward are considered, so a ray starting on a border and heading
// inward exits through the opposite side. SideNone is returned when no border
// lies ahead (a ray starting outside the arena and pointing away from it).
func (b Bounds) RayIntersectionBorder(pos Vector2, angle float64) (Side, Vector2) {
	dir := FromAngle(angle)
	best := math.Inf(1)
	side := SideNone

	consider := func(t float64, s Side) {
		if t >= 0 && t < best {
			best = t
			side = s
		}
	}

	switch {
	case dir.X < 0:
		consider(-pos.X/dir.X, SideLeft)
	case dir.X > 0:
		consider((b.Width-pos.X)/dir.X, SideRight)
	}
	switch {
	case dir.Y < 0:
		consider(-pos.Y/dir.Y, SideTop)
	case dir.Y > 0:
		consider((b.Height-pos.Y)/dir.Y, SideBottom)
	}

	if side == SideNone {
		return SideNone, pos
	}
	return side, pos.Add(dir.Scale(best))
}

// ReflectAngle mirrors a direction in degrees off the given border.
// Left/right borders flip the horizontal component, top/bottom the vertical one.
func ReflectAngle(angle float64, side Side) float64 {
	switch side {
	case SideLeft, SideRight:
		return NormalizeAngle(180 - angle)
	case SideTop, SideBottom:
		return NormalizeAngle(-angle)
	default:
		return NormalizeAngle(angle)
	}
}
