package object

import (
	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/physics"
)

// Weapon is the gun mounted on a spaceship. Its default loadout fires
// bullets from a regenerating magazine; a laser or mine pickup replaces the
// loadout for exactly one shot.
type Weapon struct {
	Loadout       Kind
	Cooldown      float64 // seconds per regenerated bullet
	BulletAmmo    int
	MaxBulletAmmo int

	cooldownTimer float64
	settings      *config.Settings
	arena         physics.Bounds
}

// NewWeapon returns a bullet weapon with a full magazine.
func NewWeapon(settings *config.Settings) *Weapon {
	return &Weapon{
		Loadout:       KindBullet,
		Cooldown:      settings.BulletCooldown,
		BulletAmmo:    settings.MaxBulletAmmo,
		MaxBulletAmmo: settings.MaxBulletAmmo,
		settings:      settings,
		arena:         physics.Bounds{Width: settings.Width, Height: settings.Height},
	}
}

// Update regenerates one bullet per cooldown period while the bullet
// loadout is equipped.
func (w *Weapon) Update(dt float64) {
	if w.Loadout != KindBullet {
		return
	}
	w.cooldownTimer -= dt
	if w.cooldownTimer < 0 {
		w.cooldownTimer = w.Cooldown
		w.BulletAmmo = min(w.BulletAmmo+1, w.MaxBulletAmmo)
	}
}

// Fire shoots from pos towards angle degrees for player's fleet. It reports
// false when the magazine is empty.
func (w *Weapon) Fire(player int, pos physics.Vector2, angle float64) (Projectile, bool) {
	s := w.settings
	switch w.Loadout {
	case KindLaserBeam:
		w.Loadout = KindBullet
		return NewLaserBeam(player, pos, angle, s.LaserBeamWidth, s.LaserBeamLifeTime, w.arena), true
	case KindMine:
		w.Loadout = KindBullet
		return NewMine(player, pos, s.MineSize, s.MineActivationDuration, s.MineActiveRadius,
			s.MineExplosionRadius, s.MineExplosionDuration), true
	default:
		if w.BulletAmmo <= 0 {
			return nil, false
		}
		w.BulletAmmo--
		return NewBullet(player, pos, angle, s.BulletSpeed, s.BulletRadius, s.BulletLifeTime, w.arena), true
	}
}

// PickUp equips a laser or mine. Other kinds leave the weapon untouched.
func (w *Weapon) PickUp(kind Kind) {
	if kind == KindLaserBeam || kind == KindMine {
		w.Loadout = kind
	}
}
