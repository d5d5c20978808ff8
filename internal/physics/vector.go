package physics

import "math"

// Vector2 is a 2D vector in arena coordinates (x right, y down).
type Vector2 struct {
	X, Y float64
}

// FromAngle returns the unit vector pointing at angle degrees.
func FromAngle(deg float64) Vector2 {
	rad := DegToRad(deg)
	return Vector2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. Division by zero yields the zero vector.
func (v Vector2) Div(s float64) Vector2 {
	if s == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / s, Y: v.Y / s}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	return v.NormalizeOr(Vector2{})
}

// NormalizeOr returns v scaled to unit length, or fallback when v has no direction.
func (v Vector2) NormalizeOr(fallback Vector2) Vector2 {
	m := v.Magnitude()
	if m == 0 || math.IsNaN(m) {
		return fallback
	}
	return Vector2{X: v.X / m, Y: v.Y / m}
}

// Distance returns the distance between the points v and o.
func (v Vector2) Distance(o Vector2) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// AngleBetween returns the unsigned angle between v and o in degrees.
// Zero vectors yield 0.
func (v Vector2) AngleBetween(o Vector2) float64 {
	a, b := v.Normalize(), o.Normalize()
	if a == (Vector2{}) || b == (Vector2{}) {
		return 0
	}
	cos := math.Max(-1, math.Min(1, a.Dot(b)))
	return RadToDeg(math.Acos(cos))
}

// Rotate returns v rotated by deg degrees (clockwise on screen, since y grows down).
func (v Vector2) Rotate(deg float64) Vector2 {
	rad := DegToRad(deg)
	sin, cos := math.Sincos(rad)
	return Vector2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Angle returns the direction of v in degrees, normalized to [0, 360).
func (v Vector2) Angle() float64 {
	return NormalizeAngle(RadToDeg(math.Atan2(v.Y, v.X)))
}
