package wumpus

// StateType summarizes the session for display.
type StateType string

const (
	StatePlaying StateType = "playing"
	StateWon     StateType = "won"
)

// TileView is the read-only view of one tile.
type TileView struct {
	Content    Content
	Hints      []Hint
	Discovered bool
}

// HasHint reports whether the view carries the hint.
func (v TileView) HasHint(h Hint) bool {
	for _, have := range v.Hints {
		if have == h {
			return true
		}
	}
	return false
}

// Snapshot captures everything a renderer may read. Its tiles are copies,
// so it can be drawn after further input arrives.
type Snapshot struct {
	RunID      string
	Preset     string
	Size       int
	Tiles      []TileView // row-major, index = y*Size + x
	Player     Player
	Score      int
	TotalScore int
	Resets     int
	ShotsFired int
	Moves      int
	Last       Result
	State      StateType
}

// At returns the tile view at c. Panics if c is outside the board.
func (s Snapshot) At(c Coord) TileView {
	if c.X < 0 || c.X >= s.Size || c.Y < 0 || c.Y >= s.Size {
		panic("wumpus: snapshot coordinate " + c.String() + " outside the board")
	}
	return s.Tiles[c.Y*s.Size+c.X]
}

// Snapshot returns the current state for rendering and determinism checks.
func (s *Simulation) Snapshot() Snapshot {
	size := s.board.Size()
	tiles := make([]TileView, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := s.board.Tile(C(x, y))
			tiles = append(tiles, TileView{
				Content:    t.Content,
				Hints:      t.Hints(),
				Discovered: t.Discovered,
			})
		}
	}

	state := StatePlaying
	if s.IsWon() {
		state = StateWon
	}

	return Snapshot{
		RunID:      s.runID,
		Preset:     s.params.Name,
		Size:       size,
		Tiles:      tiles,
		Player:     s.player,
		Score:      s.score,
		TotalScore: s.totalScore,
		Resets:     s.resets,
		ShotsFired: s.shotsFired,
		Moves:      s.moves,
		Last:       s.last,
		State:      state,
	}
}
