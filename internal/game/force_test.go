package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/object"
	"github.com/tomz197/splitfleet/internal/physics"
)

func TestForceAt(t *testing.T) {
	pull := Force{Kind: config.Attraction, Strength: 100, Radius: 400, Pos: physics.Vector2{X: 600, Y: 450}}
	push := pull
	push.Kind = config.Repulsion

	tests := []struct {
		name    string
		force   Force
		pos     physics.Vector2
		wantDir physics.Vector2
		wantMag float64
		wantOK  bool
	}{
		{"attraction pulls in", pull, physics.Vector2{X: 500, Y: 450}, physics.Vector2{X: 1}, 75, true},
		{"repulsion pushes out", push, physics.Vector2{X: 600, Y: 250}, physics.Vector2{Y: -1}, 50, true},
		{"outside radius", pull, physics.Vector2{X: 100, Y: 450}, physics.Vector2{}, 0, false},
		{"on the edge", pull, physics.Vector2{X: 200, Y: 450}, physics.Vector2{}, 0, false},
		{"at the center", pull, physics.Vector2{X: 600, Y: 450}, physics.Vector2{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, mag, ok := tt.force.At(tt.pos)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantDir.X, dir.X, 1e-9)
			assert.InDelta(t, tt.wantDir.Y, dir.Y, 1e-9)
			assert.InDelta(t, tt.wantMag, mag, 1e-9)
		})
	}
}

func TestForceApply(t *testing.T) {
	settings := config.Default()
	arena := physics.Bounds{Width: settings.Width, Height: settings.Height}
	f := Force{Kind: config.Attraction, Strength: 100, Radius: 400, Pos: physics.Vector2{X: 600, Y: 450}}

	ship := object.NewSpaceship(1, physics.Vector2{X: 500, Y: 450}, settings)
	ship.Rotate(90) // travelling down
	bullet := object.NewBullet(1, physics.Vector2{X: 600, Y: 350}, 0, 500, 8, 2, arena)
	mine := object.NewMine(2, physics.Vector2{X: 700, Y: 450}, 10, 1, 100, 150, 0.2)
	farBullet := object.NewBullet(1, physics.Vector2{X: 50, Y: 50}, 0, 500, 8, 2, arena)

	f.Apply(0.5, []*object.Spaceship{ship}, []object.Projectile{bullet, mine, farBullet})

	assert.Greater(t, ship.Velocity.X, 0.0, "pulled towards the center")
	assert.InDelta(t, 1.0, ship.Velocity.Magnitude(), 1e-9)

	assert.InDelta(t, 90.0, bullet.Angle, 1e-9)
	assert.InDelta(t, 75.0, bullet.Speed, 1e-9)

	assert.InDelta(t, 700-37.5, mine.Pos.X, 1e-9)
	assert.InDelta(t, 450.0, mine.Pos.Y, 1e-9)

	assert.Equal(t, 0.0, farBullet.Angle)
	assert.Equal(t, 500.0, farBullet.Speed)
}

func TestMatchAppliesConfiguredForces(t *testing.T) {
	s := testSettings(1)
	s.Forces = []config.ForceSettings{{Kind: config.Repulsion, Strength: 1000, Radius: 300, X: 150, Y: 300}}
	m := New(s, Options{})
	require.Len(t, m.Forces(), 1)

	ship := m.Fleet(1).Active()
	before := ship.Velocity
	m.Tick(tick)

	assert.NotEqual(t, before, ship.Velocity)
	assert.Greater(t, ship.Velocity.Y, 0.0, "pushed away from a field above")
	assert.InDelta(t, 1.0, ship.Velocity.Magnitude(), 1e-9)
}
