package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tilegrid/geom"
	"github.com/lixenwraith/tilegrid/gridmap"
	"github.com/lixenwraith/tilegrid/mapgen"
	"github.com/lixenwraith/tilegrid/pathfind"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the viewer configuration, loaded from YAML over DefaultConfig
type Config struct {
	Map     MapConfig    `yaml:"map"`
	View    ViewConfig   `yaml:"view"`
	Chasers ChaserConfig `yaml:"chasers"`
	Sound   bool         `yaml:"sound"`
}

type MapConfig struct {
	Kind          string  `yaml:"kind"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Seed          uint64  `yaml:"seed"`
	Braiding      float64 `yaml:"braiding"`
	FourWay       bool    `yaml:"four_way"`
	CornerCutting bool    `yaml:"corner_cutting"`
	Doors         bool    `yaml:"doors"`
}

type ViewConfig struct {
	FOVRadius int    `yaml:"fov_radius"`
	Heuristic string `yaml:"heuristic"`
	TickMs    int    `yaml:"tick_ms"`
}

type ChaserConfig struct {
	Count         int     `yaml:"count"`
	MinTicks      int     `yaml:"min_ticks"`      // Minimum ticks between distance map rebuilds
	DirtyDistance int     `yaml:"dirty_distance"` // Player move that forces a rebuild
	MaxDepth      float32 `yaml:"max_depth"`      // Chasers beyond this cost idle, 0 = unlimited
	StepEvery     int     `yaml:"step_every"`     // Ticks per chaser move
}

func DefaultConfig() *Config {
	return &Config{
		Map: MapConfig{
			Kind:     string(mapgen.KindRooms),
			Width:    80,
			Height:   40,
			Braiding: 0.2,
			Doors:    true,
		},
		View: ViewConfig{
			FOVRadius: 8,
			Heuristic: geom.Pythagoras.String(),
			TickMs:    50,
		},
		Chasers: ChaserConfig{
			Count:         3,
			MinTicks:      4,
			DirtyDistance: 3,
			StepEvery:     6,
		},
		Sound: true,
	}
}

// LoadConfig reads a YAML file over the defaults
// An empty path falls back to TILEGRID_CONFIG, and to the defaults if that is unset too
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv("TILEGRID_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the viewer cannot run with
func (c *Config) Validate() error {
	switch mapgen.Kind(c.Map.Kind) {
	case mapgen.KindMaze, mapgen.KindRooms, mapgen.KindCaves:
	default:
		return errors.Wrapf(ErrInvalidConfig, "map kind %q", c.Map.Kind)
	}
	if c.Map.Width < 3 || c.Map.Height < 3 {
		return errors.Wrapf(ErrInvalidConfig, "map size %dx%d", c.Map.Width, c.Map.Height)
	}
	if c.Map.Braiding < 0 || c.Map.Braiding > 1 {
		return errors.Wrapf(ErrInvalidConfig, "braiding %.2f outside 0..1", c.Map.Braiding)
	}
	if c.View.FOVRadius < 0 {
		return errors.Wrapf(ErrInvalidConfig, "fov radius %d", c.View.FOVRadius)
	}
	if _, err := geom.ParseDistanceAlg(c.View.Heuristic); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.View.TickMs <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick %dms", c.View.TickMs)
	}
	if c.Chasers.Count < 0 || c.Chasers.MinTicks < 0 || c.Chasers.DirtyDistance < 1 || c.Chasers.StepEvery < 1 {
		return errors.Wrapf(ErrInvalidConfig, "chasers %+v", c.Chasers)
	}
	if c.Chasers.MaxDepth < 0 {
		return errors.Wrapf(ErrInvalidConfig, "chaser max depth %.1f", c.Chasers.MaxDepth)
	}
	return nil
}

// GridOptions derives movement rules for generated maps
func (c *Config) GridOptions() gridmap.Options {
	opts := gridmap.DefaultOptions()
	if c.Map.FourWay {
		opts.Connectivity = gridmap.Connectivity4
	}
	opts.CornerCutting = c.Map.CornerCutting
	if h, err := geom.ParseDistanceAlg(c.View.Heuristic); err == nil {
		opts.Heuristic = h
	}
	return opts
}

// ChaserDepth maps the configured cap onto the distance map sentinel
func (c *Config) ChaserDepth() float32 {
	if c.Chasers.MaxDepth <= 0 {
		return pathfind.MaxDepthUnlimited
	}
	return c.Chasers.MaxDepth
}
