package wumpus

// Hint is a sensory cue perceivable on a tile.
type Hint uint8

const (
	HintStench  Hint = iota // a hazard is orthogonally adjacent
	HintWind                // a hole is orthogonally adjacent
	HintGlitter             // the tile itself holds treasure
)

// AllHints lists hints in display order.
func AllHints() []Hint {
	return []Hint{HintStench, HintWind, HintGlitter}
}

// String returns the hint name.
func (h Hint) String() string {
	switch h {
	case HintStench:
		return "Stench"
	case HintWind:
		return "Wind"
	case HintGlitter:
		return "Glitter"
	default:
		return "Unknown"
	}
}

// Rune returns the single-character marker for the hint.
func (h Hint) Rune() rune {
	switch h {
	case HintStench:
		return 'S'
	case HintWind:
		return 'W'
	case HintGlitter:
		return 'G'
	default:
		return '?'
	}
}
