// Package config centralizes the tunables of the terminal frontend. Match
// rules live in the top-level config package.
package config

// Render resolution limits. Larger terminals get a centered, bordered
// play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Result screen
const (
	ResultInputDelaySeconds = 1.0  // Ignore SPACE right after the match ends
	ResultBlinkFrequency    = 10.0 // Hz, result banner while input is ignored
)

// Effects
const (
	ExplosionParticles = 14
	ExplosionSpeed     = 220.0 // Arena units per second
	ExplosionLifetime  = 0.6
	MineBlastParticles = 40
	LabelLifetime      = 0.8
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
