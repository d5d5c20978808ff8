package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ForceKind selects how an external force field acts on bodies inside it.
type ForceKind string

const (
	Attraction ForceKind = "attraction"
	Repulsion  ForceKind = "repulsion"
)

// ForceSettings places an external force field in the arena.
type ForceSettings struct {
	Kind     ForceKind `json:"kind"`
	Strength float64   `json:"strength"`
	Radius   float64   `json:"radius"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
}

// PlayerKeys names the four keys a player controls their fleet with.
// Names are single letters or digits, or one of "left", "right", "up", "down".
type PlayerKeys struct {
	Rotate string `json:"rotate"`
	Fire   string `json:"fire"`
	Split  string `json:"split"`
	Switch string `json:"switch"`
}

// Settings holds every tunable of a match. Build it once with Default or Load
// and pass it by pointer; nothing mutates it afterwards.
type Settings struct {
	Title  string  `json:"title"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	FPS    int     `json:"fps"`

	Players [2]PlayerKeys `json:"players"`

	NumStartSpaceships   int     `json:"numStartSpaceships"`
	DoublePressThreshold float64 `json:"doublePressThreshold"`
	PowerupSpawnInterval float64 `json:"powerupSpawnInterval"`
	PowerupRadius        float64 `json:"powerupRadius"`

	SpaceshipSize float64 `json:"spaceshipSize"`
	RotationSpeed float64 `json:"rotationSpeed"` // degrees per second
	ForceBoost    float64 `json:"forceBoost"`
	Drag          float64 `json:"drag"` // speed multiplier per update
	RotBoostDeg   float64 `json:"rotBoostDeg"`

	BulletSpeed    float64 `json:"bulletSpeed"`
	BulletRadius   float64 `json:"bulletRadius"`
	BulletLifeTime float64 `json:"bulletLifeTime"`
	BulletCooldown float64 `json:"bulletCooldown"`
	MaxBulletAmmo  int     `json:"maxBulletAmmo"`

	LaserBeamLifeTime float64 `json:"laserBeamLifeTime"`
	LaserBeamWidth    float64 `json:"laserBeamWidth"`

	MineActivationDuration float64 `json:"mineActivationDuration"`
	MineActiveRadius       float64 `json:"mineActiveRadius"`
	MineExplosionRadius    float64 `json:"mineExplosionRadius"`
	MineExplosionDuration  float64 `json:"mineExplosionDuration"`
	MineSize               float64 `json:"mineSize"`

	AIDecisionInterval float64 `json:"aiDecisionInterval"`

	Forces []ForceSettings `json:"forces"`
}

// Default returns the stock settings.
func Default() *Settings {
	return &Settings{
		Title:  "Split Fleet",
		Width:  1200,
		Height: 900,
		FPS:    60,
		Players: [2]PlayerKeys{
			{Rotate: "left", Fire: "up", Split: "down", Switch: "right"},
			{Rotate: "a", Fire: "w", Split: "s", Switch: "d"},
		},
		NumStartSpaceships:     3,
		DoublePressThreshold:   0.2,
		PowerupSpawnInterval:   2.0,
		PowerupRadius:          16,
		SpaceshipSize:          32,
		RotationSpeed:          270,
		ForceBoost:             300,
		Drag:                   0.99,
		RotBoostDeg:            -90,
		BulletSpeed:            500,
		BulletRadius:           8,
		BulletLifeTime:         2,
		BulletCooldown:         1,
		MaxBulletAmmo:          2,
		LaserBeamLifeTime:      0.1,
		LaserBeamWidth:         6,
		MineActivationDuration: 1,
		MineActiveRadius:       100,
		MineExplosionRadius:    150,
		MineExplosionDuration:  0.2,
		MineSize:               10,
		AIDecisionInterval:     0.25,
	}
}

// Load reads a JSON settings file and overlays it onto Default. Fields absent
// from the file keep their default value. An empty path returns the defaults.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading settings %s", path)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, errors.Wrapf(err, "parsing settings %s", path)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid settings %s", path)
	}
	return s, nil
}

// Validate checks that the settings describe a playable match.
func (s *Settings) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(s.Width > 0 && s.Height > 0, "arena size must be positive")
	check(s.FPS > 0, "fps must be positive")
	check(s.NumStartSpaceships > 0, "numStartSpaceships must be positive")
	check(s.SpaceshipSize > 0, "spaceshipSize must be positive")
	check(s.SpaceshipSize < s.Width && s.SpaceshipSize < s.Height, "spaceshipSize must fit the arena")
	check(s.Drag > 0 && s.Drag <= 1, "drag must be in (0, 1]")
	check(s.DoublePressThreshold >= 0, "doublePressThreshold must not be negative")
	check(s.PowerupSpawnInterval > 0, "powerupSpawnInterval must be positive")
	check(s.PowerupRadius > 0 && 2*s.PowerupRadius < s.Width && 2*s.PowerupRadius < s.Height, "powerupRadius must fit the arena")
	check(s.BulletRadius > 0 && s.BulletLifeTime > 0, "bullet radius and lifetime must be positive")
	check(s.BulletCooldown > 0, "bulletCooldown must be positive")
	check(s.MaxBulletAmmo >= 0, "maxBulletAmmo must not be negative")
	check(s.LaserBeamLifeTime > 0 && s.LaserBeamWidth >= 0, "laser lifetime must be positive and width not negative")
	check(s.MineActivationDuration >= 0 && s.MineExplosionDuration >= 0, "mine durations must not be negative")
	check(s.MineActiveRadius >= 0 && s.MineExplosionRadius >= 0, "mine radii must not be negative")
	check(s.AIDecisionInterval > 0, "aiDecisionInterval must be positive")

	bound := map[string]bool{}
	for i, p := range s.Players {
		player := "player " + string(rune('1'+i))
		for _, k := range []string{p.Rotate, p.Fire, p.Split, p.Switch} {
			check(validKeyName(k), player+": unknown key "+strings.TrimSpace(k))
			check(!bound[k], player+": key "+k+" is bound twice")
			bound[k] = true
		}
	}
	for _, f := range s.Forces {
		check(f.Kind == Attraction || f.Kind == Repulsion, "force kind must be attraction or repulsion")
		check(f.Radius > 0, "force radius must be positive")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// validKeyName reports whether name is a key the frontends know how to bind.
func validKeyName(name string) bool {
	switch name {
	case "left", "right", "up", "down":
		return true
	}
	if len(name) != 1 {
		return false
	}
	c := name[0]
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
