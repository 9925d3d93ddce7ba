package wumpus

import (
	"fmt"

	"github.com/vovakirdan/tui-wumpus/internal/config"
)

// ParamsFromConfig validates cfg and converts it into simulation parameters.
// name labels the runs produced with these parameters.
func ParamsFromConfig(cfg config.WumpusConfig, name string) (Params, error) {
	if err := cfg.Validate(); err != nil {
		return Params{}, err
	}

	heading, ok := ParseDirection(cfg.Player.Heading)
	if !ok {
		return Params{}, fmt.Errorf("%w: heading %q", config.ErrInvalid, cfg.Player.Heading)
	}
	if name == "" {
		name = "custom"
	}

	return Params{
		Name: name,
		Size: cfg.Board.Size,
		Probabilities: Probabilities{
			Empty:    cfg.Generation.Empty,
			Hole:     cfg.Generation.Hole,
			Hazard:   cfg.Generation.Hazard,
			Treasure: cfg.Generation.Treasure,
		},
		StartAmmo: cfg.Player.Ammo,
		Start:     C(cfg.Player.StartX, cfg.Player.StartY),
		Heading:   heading,
	}, nil
}
