package config

import (
	"fmt"
	"strings"
)

// Preset names a predefined set of generation parameters.
type Preset string

const (
	PresetNone   Preset = ""
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetLegacy Preset = "legacy"
)

// Presets returns all named presets in display order.
func Presets() []Preset {
	return []Preset{PresetEasy, PresetNormal, PresetHard, PresetLegacy}
}

// ParsePreset converts a string to a Preset. An empty string yields PresetNone.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(s))); p {
	case PresetNone, PresetEasy, PresetNormal, PresetHard, PresetLegacy:
		return p, nil
	default:
		return PresetNone, fmt.Errorf("%w: unknown preset %q (use easy, normal, hard or legacy)", ErrInvalid, s)
	}
}

// Description returns a one-line summary of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetEasy:
		return "8x8 cave, fewer holes, more gold, 5 arrows"
	case PresetNormal:
		return "10x10 cave, 70/20/5/5 split, 3 arrows"
	case PresetHard:
		return "14x14 cave, more holes and wumpuses, 2 arrows"
	case PresetLegacy:
		return "20x20 cave, 50% empty / 40% hole / 10% gold, no wumpus"
	default:
		return "configuration file values"
	}
}

// ApplyPreset overrides board size, generation weights and ammo. The start
// tile and heading are kept, clamped into the new board.
func ApplyPreset(cfg *WumpusConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Board.Size = 8
		cfg.Generation = GenerationConfig{Empty: 0.80, Hole: 0.10, Hazard: 0.03, Treasure: 0.07}
		cfg.Player.Ammo = 5
	case PresetNormal:
		def := DefaultWumpusConfig()
		cfg.Board.Size = def.Board.Size
		cfg.Generation = def.Generation
		cfg.Player.Ammo = def.Player.Ammo
	case PresetHard:
		cfg.Board.Size = 14
		cfg.Generation = GenerationConfig{Empty: 0.62, Hole: 0.25, Hazard: 0.08, Treasure: 0.05}
		cfg.Player.Ammo = 2
	case PresetLegacy:
		cfg.Board.Size = 20
		cfg.Generation = GenerationConfig{Empty: 0.50, Hole: 0.40, Hazard: 0, Treasure: 0.10}
		cfg.Player.Ammo = 3
	default:
		return
	}

	if cfg.Player.StartX >= cfg.Board.Size {
		cfg.Player.StartX = cfg.Board.Size - 1
	}
	if cfg.Player.StartY >= cfg.Board.Size {
		cfg.Player.StartY = cfg.Board.Size - 1
	}
}
