// Package config provides YAML-based configuration loading for the game.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DinoConfig contains all tunables for Dino Run.
type DinoConfig struct {
	Grid      DinoGrid      `yaml:"grid"`
	Player    DinoPlayer    `yaml:"player"`
	Physics   DinoPhysics   `yaml:"physics"`
	Obstacles DinoObstacles `yaml:"obstacles"`
	Timing    DinoTiming    `yaml:"timing"`
}

// DinoGrid defines the playfield size in cells.
type DinoGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DinoPlayer defines where the dino stands.
type DinoPlayer struct {
	X int `yaml:"x"` // Fixed column
	Y int `yaml:"y"` // Ground row
}

// DinoPhysics defines the jump arc and double-jump timing.
type DinoPhysics struct {
	MaxJumpHeight         int      `yaml:"max_jump_height"`
	DoubleJumpCooldown    Duration `yaml:"double_jump_cooldown"`     // Measured from last activation
	MaxDoubleJumpDuration Duration `yaml:"max_double_jump_duration"` // Hard cap on a double-jump
}

// DinoObstacles defines the vertical band moving obstacles bounce within.
type DinoObstacles struct {
	BandMin int `yaml:"band_min"`
	BandMax int `yaml:"band_max"`
}

// DinoTiming defines the loop cadence.
type DinoTiming struct {
	TickInterval Duration `yaml:"tick_interval"`
}

// Duration is a time.Duration that reads and writes as "100ms", "1s".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"100ms\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Validate checks the config for values the game cannot run with.
func (c DinoConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("config: grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	case c.Player.X < 1 || c.Player.X >= c.Grid.Width:
		return fmt.Errorf("config: player.x %d outside grid columns 1..%d", c.Player.X, c.Grid.Width-1)
	case c.Player.Y < 0 || c.Player.Y >= c.Grid.Height:
		return fmt.Errorf("config: player.y %d outside grid rows 0..%d", c.Player.Y, c.Grid.Height-1)
	case c.Physics.MaxJumpHeight <= 0:
		return fmt.Errorf("config: max_jump_height must be positive")
	case c.Player.Y-c.Physics.MaxJumpHeight < 0:
		return fmt.Errorf("config: jump apex row %d leaves the grid", c.Player.Y-c.Physics.MaxJumpHeight)
	case c.Physics.DoubleJumpCooldown < 0 || c.Physics.MaxDoubleJumpDuration <= 0:
		return fmt.Errorf("config: double-jump timings must be positive")
	case c.Obstacles.BandMin < 0 || c.Obstacles.BandMax >= c.Grid.Height || c.Obstacles.BandMin >= c.Obstacles.BandMax:
		return fmt.Errorf("config: obstacle band [%d, %d] invalid for grid height %d",
			c.Obstacles.BandMin, c.Obstacles.BandMax, c.Grid.Height)
	case c.Timing.TickInterval <= 0:
		return fmt.Errorf("config: tick_interval must be positive")
	}
	return nil
}
