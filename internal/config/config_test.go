package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
grid:
  width: 6
  height: 4
placement:
  separation: 0.5
  position: {x: 1, y: 0, z: 2}
log:
  level: debug
  encoding: json
items:
  - name: Nanoforge Unit
    category: module
    width: 3
    height: 2
script:
  - aim: {x: 1.5, y: 0, z: 2.5}
    place: true
  - aim: {x: 1.5, y: 0, z: 2.5}
    remove: true
`

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Grid.Width)
	assert.Equal(t, 4, cfg.Grid.Height)
	assert.Equal(t, 4, cfg.Grid.Capacity)
	assert.Equal(t, 0.5, cfg.Placement.Separation)
	assert.Equal(t, Vec3{X: 1, Z: 2}, cfg.Placement.Position)
	assert.Equal(t, Vec3{Z: 1}, cfg.Placement.Up)
	assert.Equal(t, Vec3{X: 1}, cfg.Placement.Right)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
	require.Len(t, cfg.Items, 1)
	assert.Equal(t, ItemConfig{Name: "Nanoforge Unit", Category: "module", Width: 3, Height: 2}, cfg.Items[0])
	require.Len(t, cfg.Script, 2)
	assert.True(t, cfg.Script[0].Place)
	assert.True(t, cfg.Script[1].Remove)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("GRIDVENTORY_GRID_WIDTH", "10")
	t.Setenv("GRIDVENTORY_SEPARATION", "0.25")
	t.Setenv("GRIDVENTORY_LOG_LEVEL", "warn")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Grid.Width)
	assert.Equal(t, 4, cfg.Grid.Height)
	assert.Equal(t, 0.25, cfg.Placement.Separation)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidationFailures(t *testing.T) {
	tests := map[string]string{
		"negative width":   "grid: {width: -2}",
		"bad separation":   "placement: {separation: -1}",
		"skewed basis":     "placement: {up: {x: 1, y: 0, z: 1}}",
		"parallel basis":   "placement: {up: {x: 1}, right: {x: 1}}",
		"bad encoding":     "log: {encoding: xml}",
		"unnamed item":     "items: [{width: 1, height: 1}]",
		"empty item shape": "items: [{name: a, width: 0, height: 1}]",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Grid.Width)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Parse([]byte("grid: [not, a, map]"))
	require.Error(t, err)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.Grid.Width)
	assert.Equal(t, 0.1, cfg.Placement.Separation)
}
