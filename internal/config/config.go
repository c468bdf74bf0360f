package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all gridventory configuration
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Placement PlacementConfig `yaml:"placement"`
	Log       LogConfig       `yaml:"log"`
	Items     []ItemConfig    `yaml:"items"`
	Script    []FrameConfig   `yaml:"script"`
}

// GridConfig holds inventory grid dimensions
type GridConfig struct {
	Width    int `yaml:"width" env:"GRIDVENTORY_GRID_WIDTH"`
	Height   int `yaml:"height" env:"GRIDVENTORY_GRID_HEIGHT"`
	Capacity int `yaml:"capacity" env:"GRIDVENTORY_GRID_CAPACITY"` // preallocated item slots
}

// PlacementConfig places the inventory and the viewing camera in world space
type PlacementConfig struct {
	Separation float64 `yaml:"separation" env:"GRIDVENTORY_SEPARATION"` // world distance between tile centers
	Position   Vec3    `yaml:"position"`
	Up         Vec3    `yaml:"up"`
	Right      Vec3    `yaml:"right"`
	Camera     Vec3    `yaml:"camera"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `yaml:"level" env:"GRIDVENTORY_LOG_LEVEL"`
	Encoding    string `yaml:"encoding" env:"GRIDVENTORY_LOG_ENCODING"` // "json" or "console"
	Development bool   `yaml:"development" env:"GRIDVENTORY_LOG_DEVELOPMENT"`
}

// ItemConfig describes one catalog item
type ItemConfig struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// FrameConfig is one scripted frame of pointer input. Aim is the world point
// the camera looks at.
type FrameConfig struct {
	Aim    Vec3 `yaml:"aim"`
	Rotate bool `yaml:"rotate"`
	Place  bool `yaml:"place"`
	Remove bool `yaml:"remove"`
}

// Vec3 is a YAML friendly world vector
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// R3 converts to a gonum vector.
func (v Vec3) R3() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file, then applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, fills defaults, applies environment
// overrides and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	applyDefaults(&cfg)

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Grid.Width == 0 {
		cfg.Grid.Width = 8
	}
	if cfg.Grid.Height == 0 {
		cfg.Grid.Height = 8
	}
	if cfg.Grid.Capacity == 0 {
		cfg.Grid.Capacity = 4
	}
	if cfg.Placement.Separation == 0 {
		cfg.Placement.Separation = 0.1
	}
	// The grid lies flat on the XZ plane by default, facing +Y.
	if cfg.Placement.Up == (Vec3{}) {
		cfg.Placement.Up = Vec3{Z: 1}
	}
	if cfg.Placement.Right == (Vec3{}) {
		cfg.Placement.Right = Vec3{X: 1}
	}
	if cfg.Placement.Camera == (Vec3{}) {
		cfg.Placement.Camera = Vec3{X: 0.4, Y: 1, Z: 0.4}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = "console"
	}
}

// Validate checks that the configuration describes a usable inventory.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidConfig)
	}
	if !(c.Placement.Separation > 0) || math.IsInf(c.Placement.Separation, 1) {
		return fmt.Errorf("%w: separation must be positive, got %v", ErrInvalidConfig, c.Placement.Separation)
	}

	up, right := c.Placement.Up.R3(), c.Placement.Right.R3()
	if math.Abs(r3.Norm(up)-1) > 1e-6 || math.Abs(r3.Norm(right)-1) > 1e-6 {
		return fmt.Errorf("%w: up and right must be unit vectors", ErrInvalidConfig)
	}
	if math.Abs(r3.Dot(up, right)) > 1e-6 {
		return fmt.Errorf("%w: up and right must be orthogonal", ErrInvalidConfig)
	}

	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown log encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}

	for i, it := range c.Items {
		if it.Name == "" {
			return fmt.Errorf("%w: item %d has no name", ErrInvalidConfig, i)
		}
		if it.Width <= 0 || it.Height <= 0 {
			return fmt.Errorf("%w: item %q must have a positive size", ErrInvalidConfig, it.Name)
		}
	}
	return nil
}
