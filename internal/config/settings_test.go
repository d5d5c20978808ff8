package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, 1200.0, s.Width)
	assert.Equal(t, 900.0, s.Height)
	assert.Equal(t, 3, s.NumStartSpaceships)
	assert.Equal(t, -90.0, s.RotBoostDeg)
	assert.Equal(t, 2, s.MaxBulletAmmo)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "settings.json", `{
		"numStartSpaceships": 5,
		"bulletSpeed": 650,
		"forces": [{"kind": "attraction", "strength": 200, "radius": 150, "x": 600, "y": 450}]
	}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, s.NumStartSpaceships)
	assert.Equal(t, 650.0, s.BulletSpeed)
	assert.Equal(t, 1200.0, s.Width, "untouched fields keep defaults")
	require.Len(t, s.Forces, 1)
	assert.Equal(t, Attraction, s.Forces[0].Kind)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"width": `},
		{"unknown field", `{"gravity": 9.81}`},
		{"invalid drag", `{"drag": 1.5}`},
		{"bad force kind", `{"forces": [{"kind": "vortex", "radius": 10}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "settings.json", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateKeyNames(t *testing.T) {
	s := Default()
	s.Players[1].Fire = "space"
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key space")
}

func TestValidateDuplicateKeys(t *testing.T) {
	s := Default()
	s.Players[1].Fire = s.Players[0].Rotate
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player 2: key left is bound twice")

	s = Default()
	s.Players[0].Split = s.Players[0].Fire
	err = s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player 1: key up is bound twice")
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "SPLITFLEET_TEST_VALUE=from-file\n")
	t.Setenv("SPLITFLEET_TEST_VALUE", "")
	os.Unsetenv("SPLITFLEET_TEST_VALUE")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", GetEnv("SPLITFLEET_TEST_VALUE", "fallback"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "none.env")))
}

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("SPLITFLEET_SURELY_UNSET", "fallback"))
}
