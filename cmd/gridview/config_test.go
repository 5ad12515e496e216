package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
	"github.com/lixenwraith/tilegrid/pathfind"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigEmptyPath(t *testing.T) {
	t.Setenv("TILEGRID_CONFIG", "")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
map:
  kind: maze
  width: 41
  seed: 7
  four_way: true
view:
  heuristic: manhattan
chasers:
  count: 1
  max_depth: 25
sound: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "maze", cfg.Map.Kind)
	assert.Equal(t, 41, cfg.Map.Width)
	assert.Equal(t, 40, cfg.Map.Height, "unset keys keep defaults")
	assert.Equal(t, uint64(7), cfg.Map.Seed)
	assert.Equal(t, 1, cfg.Chasers.Count)
	assert.Equal(t, 6, cfg.Chasers.StepEvery)
	assert.False(t, cfg.Sound)

	opts := cfg.GridOptions()
	assert.Equal(t, gridmap.Connectivity4, opts.Connectivity)
	assert.Equal(t, geom.Manhattan, opts.Heuristic)
	assert.Equal(t, float32(25), cfg.ChaserDepth())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TILEGRID_CONFIG", writeConfig(t, "map:\n  kind: caves\n"))
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "caves", cfg.Map.Kind)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "map: [unterminated"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "map:\n  kind: dungeon\n"))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown kind", func(c *Config) { c.Map.Kind = "forest" }},
		{"tiny map", func(c *Config) { c.Map.Width = 2 }},
		{"braiding", func(c *Config) { c.Map.Braiding = 1.5 }},
		{"fov radius", func(c *Config) { c.View.FOVRadius = -1 }},
		{"heuristic", func(c *Config) { c.View.Heuristic = "taxicab" }},
		{"tick", func(c *Config) { c.View.TickMs = 0 }},
		{"chaser count", func(c *Config) { c.Chasers.Count = -2 }},
		{"dirty distance", func(c *Config) { c.Chasers.DirtyDistance = 0 }},
		{"step every", func(c *Config) { c.Chasers.StepEvery = 0 }},
		{"max depth", func(c *Config) { c.Chasers.MaxDepth = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestChaserDepthUnlimited(t *testing.T) {
	assert.Equal(t, pathfind.MaxDepthUnlimited, DefaultConfig().ChaserDepth())
}
