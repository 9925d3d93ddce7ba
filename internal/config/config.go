// Package config provides YAML-based configuration loading and preset
// management for the simulation's construction parameters.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// probabilityEpsilon tolerates float rounding when weights sum to 1.
const probabilityEpsilon = 1e-9

// WumpusConfig contains all construction parameters of a simulation.
type WumpusConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Generation GenerationConfig `yaml:"generation"`
	Player     PlayerConfig     `yaml:"player"`
}

// BoardConfig defines the board dimension.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// GenerationConfig defines the per-tile content probabilities.
// Any mass not covered by the four weights produces empty tiles.
type GenerationConfig struct {
	Empty    float64 `yaml:"empty"`
	Hole     float64 `yaml:"hole"`
	Hazard   float64 `yaml:"hazard"`
	Treasure float64 `yaml:"treasure"`
}

// Sum returns the total of all weights.
func (g GenerationConfig) Sum() float64 {
	return g.Empty + g.Hole + g.Hazard + g.Treasure
}

// PlayerConfig defines the player's starting state.
type PlayerConfig struct {
	StartX  int    `yaml:"start_x"`
	StartY  int    `yaml:"start_y"`
	Heading string `yaml:"heading"`
	Ammo    int    `yaml:"ammo"`
}

// Validate checks the configuration for values the simulation cannot use.
func (c WumpusConfig) Validate() error {
	if c.Board.Size < 1 {
		return fmt.Errorf("%w: board.size must be at least 1, got %d", ErrInvalid, c.Board.Size)
	}

	weights := []struct {
		name  string
		value float64
	}{
		{"empty", c.Generation.Empty},
		{"hole", c.Generation.Hole},
		{"hazard", c.Generation.Hazard},
		{"treasure", c.Generation.Treasure},
	}
	for _, w := range weights {
		if math.IsNaN(w.value) || w.value < 0 || w.value > 1 {
			return fmt.Errorf("%w: generation.%s must be within [0, 1], got %v", ErrInvalid, w.name, w.value)
		}
	}
	if sum := c.Generation.Sum(); sum > 1+probabilityEpsilon {
		return fmt.Errorf("%w: generation weights sum to %v, must not exceed 1", ErrInvalid, sum)
	}

	if c.Player.Ammo < 0 {
		return fmt.Errorf("%w: player.ammo must not be negative, got %d", ErrInvalid, c.Player.Ammo)
	}
	if c.Player.StartX < 0 || c.Player.StartX >= c.Board.Size ||
		c.Player.StartY < 0 || c.Player.StartY >= c.Board.Size {
		return fmt.Errorf("%w: player start (%d,%d) is outside a %dx%d board",
			ErrInvalid, c.Player.StartX, c.Player.StartY, c.Board.Size, c.Board.Size)
	}
	switch strings.ToLower(strings.TrimSpace(c.Player.Heading)) {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: player.heading must be up, down, left or right, got %q", ErrInvalid, c.Player.Heading)
	}

	return nil
}
