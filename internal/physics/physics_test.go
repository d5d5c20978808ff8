package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vector2
		want Vector2
	}{
		{"axis", Vector2{X: 5}, Vector2{X: 1}},
		{"diagonal", Vector2{X: 3, Y: 4}, Vector2{X: 0.6, Y: 0.8}},
		{"zero stays zero", Vector2{}, Vector2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
			assert.False(t, math.IsNaN(got.X) || math.IsNaN(got.Y))
		})
	}
}

func TestNormalizeOrFallback(t *testing.T) {
	fallback := Vector2{X: 0, Y: 1}
	assert.Equal(t, fallback, Vector2{}.NormalizeOr(fallback))
	assert.InDelta(t, 1.0, Vector2{X: -2, Y: 7}.NormalizeOr(fallback).Magnitude(), eps)
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 90.0, Vector2{X: 1}.AngleBetween(Vector2{Y: 3}), eps)
	assert.InDelta(t, 180.0, Vector2{X: 1}.AngleBetween(Vector2{X: -1}), eps)
	assert.InDelta(t, 0.0, Vector2{X: 2, Y: 2}.AngleBetween(Vector2{X: 1, Y: 1}), 1e-6)
	assert.Equal(t, 0.0, Vector2{}.AngleBetween(Vector2{X: 1}))
}

func TestRotateAndFromAngle(t *testing.T) {
	v := Vector2{X: 1}.Rotate(90)
	assert.InDelta(t, 0.0, v.X, eps)
	assert.InDelta(t, 1.0, v.Y, eps)

	d := FromAngle(180)
	assert.InDelta(t, -1.0, d.X, eps)
	assert.InDelta(t, 0.0, d.Y, eps)

	assert.InDelta(t, 270.0, Vector2{X: 0, Y: -1}.Angle(), eps)
}

func TestRotateThenUnrotate(t *testing.T) {
	v := Vector2{X: 3, Y: -4}
	for _, deg := range []float64{0, 17, 90, 181, 270.5, 359, 720, -45, -123.5} {
		got := v.Rotate(deg).Rotate(-deg)
		assert.InDelta(t, v.X, got.X, 1e-9, "rotate by %v", deg)
		assert.InDelta(t, v.Y, got.Y, 1e-9, "rotate by %v", deg)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-1e-15, 0},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeAngle(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestCircleCollides(t *testing.T) {
	a := Circle{Center: Vector2{X: 0, Y: 0}, Radius: 5}
	tests := []struct {
		name string
		b    Circle
		want bool
	}{
		{"overlap", Circle{Center: Vector2{X: 7}, Radius: 5}, true},
		{"tangent counts", Circle{Center: Vector2{X: 10}, Radius: 5}, true},
		{"apart", Circle{Center: Vector2{X: 10.01}, Radius: 5}, false},
		{"concentric", Circle{Radius: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Collides(tt.b))
			assert.Equal(t, tt.want, tt.b.Collides(a))
		})
	}
}

func TestCircleContains(t *testing.T) {
	c := Circle{Center: Vector2{X: 10, Y: 10}, Radius: 2}
	assert.True(t, c.Contains(Vector2{X: 12, Y: 10}))
	assert.False(t, c.Contains(Vector2{X: 12.5, Y: 10}))
}

func TestClampCircle(t *testing.T) {
	b := Bounds{Width: 100, Height: 50}

	pos, side := b.ClampCircle(Vector2{X: -20, Y: 25}, 5)
	assert.Equal(t, Vector2{X: 5, Y: 25}, pos)
	assert.Equal(t, SideLeft, side)

	pos, side = b.ClampCircle(Vector2{X: 50, Y: 80}, 5)
	assert.Equal(t, Vector2{X: 50, Y: 45}, pos)
	assert.Equal(t, SideBottom, side)

	pos, side = b.ClampCircle(Vector2{X: 50, Y: 25}, 5)
	assert.Equal(t, Vector2{X: 50, Y: 25}, pos)
	assert.Equal(t, SideNone, side)
}

func TestRayIntersectionBorder(t *testing.T) {
	b := Bounds{Width: 1200, Height: 900}
	tests := []struct {
		name     string
		pos      Vector2
		angle    float64
		wantSide Side
		want     Vector2
	}{
		{"right", Vector2{X: 600, Y: 450}, 0, SideRight, Vector2{X: 1200, Y: 450}},
		{"left", Vector2{X: 600, Y: 450}, 180, SideLeft, Vector2{X: 0, Y: 450}},
		{"bottom", Vector2{X: 600, Y: 450}, 90, SideBottom, Vector2{X: 600, Y: 900}},
		{"top", Vector2{X: 600, Y: 450}, 270, SideTop, Vector2{X: 600, Y: 0}},
		{"diagonal hits top first", Vector2{X: 100, Y: 100}, 315, SideTop, Vector2{X: 200, Y: 0}},
		{"from left border inward", Vector2{X: 0, Y: 450}, 0, SideRight, Vector2{X: 1200, Y: 450}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, p := b.RayIntersectionBorder(tt.pos, tt.angle)
			assert.Equal(t, tt.wantSide, side)
			assert.InDelta(t, tt.want.X, p.X, 1e-6)
			assert.InDelta(t, tt.want.Y, p.Y, 1e-6)
		})
	}
}

func TestReflectAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		side  Side
		want  float64
	}{
		{"right wall", 30, SideRight, 150},
		{"left wall", 150, SideLeft, 30},
		{"bottom wall", 30, SideBottom, 330},
		{"top wall", 300, SideTop, 60},
		{"none", 45, SideNone, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ReflectAngle(tt.angle, tt.side), eps)
		})
	}
}
