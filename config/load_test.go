package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotConfig(t *testing.T) {
	t.Helper()
	origC := *C
	origPlayer := Player
	origRender := Render
	t.Cleanup(func() {
		*C = origC
		Player = origPlayer
		Render = origRender
	})
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	snapshotConfig(t)
	before := Player.MoveSpeed

	fc, err := Load(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, err)
	assert.Nil(t, fc)
	assert.Equal(t, before, Player.MoveSpeed)
}

func TestLoadAppliesOnlyPresentFields(t *testing.T) {
	snapshotConfig(t)
	origWidth := C.Width
	origSens := Player.LookSensitivity
	origFog := Render.FogDensity

	path := writeConfig(t, `
player:
  moveSpeed: 4.5
render:
  fovDegrees: 90
`)

	fc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, fc)

	assert.Equal(t, 4.5, Player.MoveSpeed)
	assert.InDelta(t, math.Pi/2, Render.FOV, 1e-9)

	// Fields absent from the file keep their defaults
	assert.Equal(t, origWidth, C.Width)
	assert.Equal(t, origSens, Player.LookSensitivity)
	assert.Equal(t, origFog, Render.FogDensity)
}

func TestLoadFullOverride(t *testing.T) {
	snapshotConfig(t)

	path := writeConfig(t, `
window:
  width: 800
  height: 450
player:
  moveSpeed: 3
  lookSensitivity: 0.01
render:
  fovDegrees: 75
  fogDensity: 0.1
  maxViewDistance: 16
logging:
  level: debug
`)

	fc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, fc)

	assert.Equal(t, 800, C.Width)
	assert.Equal(t, 450, C.Height)
	assert.Equal(t, 3.0, Player.MoveSpeed)
	assert.Equal(t, 0.01, Player.LookSensitivity)
	assert.InDelta(t, 75*math.Pi/180, Render.FOV, 1e-9)
	assert.Equal(t, 0.1, Render.FogDensity)
	assert.Equal(t, 16.0, Render.MaxViewDistance)
	assert.Equal(t, "debug", fc.Logging.Level)
}

func TestLoadZeroValuesDoNotOverride(t *testing.T) {
	snapshotConfig(t)
	before := Player.MoveSpeed

	path := writeConfig(t, `
player:
  moveSpeed: 0
`)

	_, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, before, Player.MoveSpeed)
}

func TestLoadMalformedYAML(t *testing.T) {
	snapshotConfig(t)

	path := writeConfig(t, "player: [not: a mapping")

	_, err := Load(path)
	assert.Error(t, err)
}
