package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in Dino Run configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Grid: DinoGrid{
			Width:  80,
			Height: 20,
		},
		Player: DinoPlayer{
			X: 5,
			Y: 10,
		},
		Physics: DinoPhysics{
			MaxJumpHeight:         5,
			DoubleJumpCooldown:    Duration(time.Second),
			MaxDoubleJumpDuration: Duration(3 * time.Second),
		},
		Obstacles: DinoObstacles{
			BandMin: 5,
			BandMax: 15,
		},
		Timing: DinoTiming{
			TickInterval: Duration(100 * time.Millisecond),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
