package wumpus

import (
	"github.com/zyedidia/generic/mapset"
)

// Content is the payload of a tile. Exactly one variant is present at a time.
type Content uint8

const (
	Empty Content = iota
	Hole
	Hazard
	Treasure
)

// String returns the content name.
func (c Content) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Hole:
		return "Hole"
	case Hazard:
		return "Hazard"
	case Treasure:
		return "Treasure"
	default:
		return "Unknown"
	}
}

// IsFatal reports whether entering a tile with this content ends the run.
func (c Content) IsFatal() bool {
	return c == Hole || c == Hazard
}

// Rune returns the glyph used to draw the content.
func (c Content) Rune() rune {
	switch c {
	case Hole:
		return 'O'
	case Hazard:
		return 'M'
	case Treasure:
		return '$'
	default:
		return '·'
	}
}

// Tile is one cell of the board. Hints are derived from the tile's own
// content and its neighbours, and are rebuilt by Board.RecomputeAllHints.
type Tile struct {
	Content    Content
	Discovered bool
	hints      mapset.Set[Hint]
}

func newTile(c Content) Tile {
	return Tile{Content: c, hints: mapset.New[Hint]()}
}

// HasHint reports whether the hint is active on the tile.
func (t Tile) HasHint(h Hint) bool {
	return t.hints.Has(h)
}

// HintCount returns the number of active hints.
func (t Tile) HintCount() int {
	return t.hints.Size()
}

// Hints returns the active hints in display order.
func (t Tile) Hints() []Hint {
	hints := make([]Hint, 0, t.hints.Size())
	for _, h := range AllHints() {
		if t.hints.Has(h) {
			hints = append(hints, h)
		}
	}
	return hints
}
