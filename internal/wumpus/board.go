package wumpus

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Probabilities are the generation weights for each tile content.
// They are consumed as cumulative thresholds in the order
// Empty, Hole, Hazard, Treasure; any residual mass falls back to Empty.
type Probabilities struct {
	Empty    float64
	Hole     float64
	Hazard   float64
	Treasure float64
}

// DefaultProbabilities returns the standard four-outcome thresholds.
func DefaultProbabilities() Probabilities {
	return Probabilities{
		Empty:    0.70,
		Hole:     0.20,
		Hazard:   0.05,
		Treasure: 0.05,
	}
}

// Pick maps a uniform sample in [0, 1) to a content variant.
func (p Probabilities) Pick(sample float64) Content {
	threshold := p.Empty
	if sample < threshold {
		return Empty
	}
	threshold += p.Hole
	if sample < threshold {
		return Hole
	}
	threshold += p.Hazard
	if sample < threshold {
		return Hazard
	}
	threshold += p.Treasure
	if sample < threshold {
		return Treasure
	}
	return Empty
}

// Source yields uniform samples in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Board is a square grid of tiles stored in row-major order: index = y*Size + x.
type Board struct {
	size  int
	tiles []Tile
}

// NewBoard creates a size x size board of undiscovered empty tiles.
// Panics if size < 1.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("wumpus: board size %d must be at least 1", size))
	}
	b := &Board{
		size:  size,
		tiles: make([]Tile, size*size),
	}
	for i := range b.tiles {
		b.tiles[i] = newTile(Empty)
	}
	return b
}

// Generate fills a new board by drawing one sample per tile, row by row from
// y = 0, and then derives all hints.
func Generate(size int, p Probabilities, src Source) *Board {
	b := NewBoard(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			b.tiles[b.index(C(x, y))].Content = p.Pick(src.Float64())
		}
	}
	b.RecomputeAllHints()
	return b
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// InBounds returns true if the coordinate addresses a tile.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

// index converts a coordinate to a flat array index, panicking when the
// coordinate is outside the board.
func (b *Board) index(c Coord) int {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("wumpus: coordinate %v outside %dx%d board", c, b.size, b.size))
	}
	return c.Y*b.size + c.X
}

// Tile returns the tile at c.
func (b *Board) Tile(c Coord) Tile {
	return b.tiles[b.index(c)]
}

// Content returns the content at c.
func (b *Board) Content(c Coord) Content {
	return b.tiles[b.index(c)].Content
}

// SetContent replaces the content at c. Hints are not touched; call
// RecomputeAllHints once all edits are done.
func (b *Board) SetContent(c Coord, content Content) {
	b.tiles[b.index(c)].Content = content
}

// Discover marks the tile at c as visited. Discovery is never undone.
func (b *Board) Discover(c Coord) {
	b.tiles[b.index(c)].Discovered = true
}

// Neighbors returns the in-bounds orthogonal neighbours of c in the order
// left, right, up, down.
func (b *Board) Neighbors(c Coord) []Coord {
	candidates := [4]Coord{
		c.Step(DirLeft),
		c.Step(DirRight),
		c.Step(DirUp),
		c.Step(DirDown),
	}
	out := make([]Coord, 0, len(candidates))
	for _, n := range candidates {
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// RecomputeAllHints rebuilds every tile's hint set from scratch:
// Glitter on treasure, Wind next to a hole, Stench next to a hazard.
func (b *Board) RecomputeAllHints() {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			c := C(x, y)
			hints := mapset.New[Hint]()
			if b.Content(c) == Treasure {
				hints.Put(HintGlitter)
			}
			for _, n := range b.Neighbors(c) {
				switch b.Content(n) {
				case Hole:
					hints.Put(HintWind)
				case Hazard:
					hints.Put(HintStench)
				}
			}
			b.tiles[b.index(c)].hints = hints
		}
	}
}

// Collect removes the treasure at c, leaving the tile empty.
// Returns false if there was no treasure to collect.
func (b *Board) Collect(c Coord) bool {
	if b.Content(c) != Treasure {
		return false
	}
	b.SetContent(c, Empty)
	b.RecomputeAllHints()
	return true
}

// Count returns how many tiles currently hold the given content.
func (b *Board) Count(content Content) int {
	count := 0
	for _, t := range b.tiles {
		if t.Content == content {
			count++
		}
	}
	return count
}

// TreasureCount returns the number of treasure tiles currently on the board.
func (b *Board) TreasureCount() int {
	return b.Count(Treasure)
}

// DiscoveredCount returns the number of tiles the player has visited.
func (b *Board) DiscoveredCount() int {
	count := 0
	for _, t := range b.tiles {
		if t.Discovered {
			count++
		}
	}
	return count
}
