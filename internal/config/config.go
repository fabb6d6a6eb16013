// Package config holds the tunable surface of the simulation: grid shape,
// physics coefficients, and interaction radius. Values load from YAML with
// the original demo's constants as defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/clothlab/internal/cloth"
)

const (
	DefaultRows       = 20
	DefaultCols       = 30
	DefaultSpacing    = 20.0
	DefaultOriginX    = 100.0
	DefaultOriginY    = 50.0
	DefaultGravity    = 980.0
	DefaultDamping    = 0.99
	DefaultDt         = 0.016
	DefaultIterations = 5
	DefaultPickRadius = 20.0
	DefaultWidth      = 800
	DefaultHeight     = 600
)

type Config struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Spacing    float64 `yaml:"spacing"`
	OriginX    float64 `yaml:"origin_x"`
	OriginY    float64 `yaml:"origin_y"`
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"`
	Dt         float64 `yaml:"dt"`
	Iterations int     `yaml:"iterations"`
	PickRadius float64 `yaml:"pick_radius"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		Spacing:    DefaultSpacing,
		OriginX:    DefaultOriginX,
		OriginY:    DefaultOriginY,
		Gravity:    DefaultGravity,
		Damping:    DefaultDamping,
		Dt:         DefaultDt,
		Iterations: DefaultIterations,
		PickRadius: DefaultPickRadius,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("spacing must be positive, got %f", c.Spacing)
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("damping must be in (0, 1], got %f", c.Damping)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.Iterations)
	}
	if c.PickRadius <= 0 {
		return fmt.Errorf("pick radius must be positive, got %f", c.PickRadius)
	}
	return nil
}

// Params converts the config to per-tick physics coefficients.
func (c *Config) Params() cloth.Params {
	return cloth.Params{
		Gravity:    c.Gravity,
		Damping:    c.Damping,
		Dt:         c.Dt,
		Iterations: c.Iterations,
	}
}

// Origin is the world position of the top-left particle.
func (c *Config) Origin() cloth.Vec2 {
	return cloth.Vec2{X: c.OriginX, Y: c.OriginY}
}

// Mesh builds a fresh mesh from the configured grid.
func (c *Config) Mesh() *cloth.Mesh {
	return cloth.New(c.Rows, c.Cols, c.Spacing, c.Origin())
}
