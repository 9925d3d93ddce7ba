package config

import (
	_ "embed"
)

//go:embed defaults/wumpus.yaml
var defaultWumpusYAML []byte

// DefaultWumpusConfig returns the built-in configuration, matching the
// embedded defaults/wumpus.yaml.
func DefaultWumpusConfig() WumpusConfig {
	return WumpusConfig{
		Board: BoardConfig{
			Size: 10,
		},
		Generation: GenerationConfig{
			Empty:    0.70,
			Hole:     0.20,
			Hazard:   0.05,
			Treasure: 0.05,
		},
		Player: PlayerConfig{
			StartX:  0,
			StartY:  0,
			Heading: "up",
			Ammo:    3,
		},
	}
}
