package loop

import (
	"strconv"

	"github.com/tomz197/splitfleet/internal/draw"
	"github.com/tomz197/splitfleet/internal/event"
	"github.com/tomz197/splitfleet/internal/loop/config"
	"github.com/tomz197/splitfleet/internal/object"
)

// effects holds the purely visual objects spawned from match events.
// Implements object.Spawner.
type effects struct {
	particles []*object.Particle
	labels    []*object.Label
}

var _ object.Spawner = (*effects)(nil)

func (fx *effects) Spawn(p *object.Particle) {
	fx.particles = append(fx.particles, p)
}

// handle turns a match event into particles and floating labels.
func (fx *effects) handle(e event.Event) {
	color := object.PlayerColor(e.Player)
	switch e.Type {
	case event.ShipDestroyed:
		object.SpawnExplosion(e.Pos, config.ExplosionParticles, config.ExplosionSpeed, config.ExplosionLifetime, color, fx)
	case event.MineExploded:
		object.SpawnExplosion(e.Pos, config.MineBlastParticles, config.ExplosionSpeed*1.5, config.ExplosionLifetime, draw.ColorRed, fx)
	case event.Boosted:
		object.SpawnThrust(e.Pos, e.Angle, draw.ColorYellow, fx)
	case event.ShipHit:
		fx.label(e, strconv.Itoa(e.Value), color)
	case event.ShipsMerged:
		fx.label(e, "="+strconv.Itoa(e.Value), color)
	case event.PowerupAcquired:
		text := "+1"
		if e.Kind != object.KindPlus {
			text = e.Kind.String()
		}
		fx.label(e, text, draw.ColorGreen)
	}
}

func (fx *effects) label(e event.Event, text string, color draw.Color) {
	fx.labels = append(fx.labels, &object.Label{
		Pos:      e.Pos,
		Value:    text,
		Color:    color,
		Lifetime: config.LabelLifetime,
	})
}

// update advances every effect and drops the expired ones.
func (fx *effects) update(dt float64) {
	kept := fx.particles[:0]
	for _, p := range fx.particles {
		if p.Update(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(fx.particles[len(kept):])
	fx.particles = kept

	labels := fx.labels[:0]
	for _, l := range fx.labels {
		if !l.Update(dt) {
			labels = append(labels, l)
		}
	}
	clear(fx.labels[len(labels):])
	fx.labels = labels
}

// drawParticles draws onto the canvas; drawLabels writes text and must run
// after the canvas has been rendered.
func (fx *effects) drawParticles(ctx object.DrawContext) error {
	for _, p := range fx.particles {
		if err := p.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (fx *effects) drawLabels(ctx object.DrawContext) error {
	for _, l := range fx.labels {
		if err := l.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (fx *effects) reset() {
	for _, p := range fx.particles {
		p.Release()
	}
	fx.particles = fx.particles[:0]
	fx.labels = fx.labels[:0]
}
