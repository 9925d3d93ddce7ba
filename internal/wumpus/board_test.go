package wumpus

import (
	"math/rand"
	"strings"
	"testing"
)

// seqSource replays fixed samples, cycling when exhausted.
type seqSource struct {
	samples []float64
	i       int
}

func (s *seqSource) Float64() float64 {
	v := s.samples[s.i%len(s.samples)]
	s.i++
	return v
}

// boardFrom builds a board from rows drawn top-down, so rows[0] is y = N-1.
// '.' empty, 'O' hole, 'M' hazard, '$' treasure.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	n := len(rows)
	b := NewBoard(n)
	for i, row := range rows {
		if len(row) != n {
			t.Fatalf("row %d has width %d, want %d", i, len(row), n)
		}
		y := n - 1 - i
		for x, ch := range row {
			var c Content
			switch ch {
			case '.':
				c = Empty
			case 'O':
				c = Hole
			case 'M':
				c = Hazard
			case '$':
				c = Treasure
			default:
				t.Fatalf("unknown tile %q", ch)
			}
			b.SetContent(C(x, y), c)
		}
	}
	b.RecomputeAllHints()
	return b
}

// checkHints verifies that every hint on the board matches its derivation.
func checkHints(t *testing.T, b *Board) {
	t.Helper()
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			c := C(x, y)
			tile := b.Tile(c)

			wantGlitter := tile.Content == Treasure
			wantWind, wantStench := false, false
			for _, n := range b.Neighbors(c) {
				switch b.Content(n) {
				case Hole:
					wantWind = true
				case Hazard:
					wantStench = true
				}
			}

			if tile.HasHint(HintGlitter) != wantGlitter {
				t.Errorf("%v glitter = %v, want %v", c, tile.HasHint(HintGlitter), wantGlitter)
			}
			if tile.HasHint(HintWind) != wantWind {
				t.Errorf("%v wind = %v, want %v", c, tile.HasHint(HintWind), wantWind)
			}
			if tile.HasHint(HintStench) != wantStench {
				t.Errorf("%v stench = %v, want %v", c, tile.HasHint(HintStench), wantStench)
			}
		}
	}
}

func TestProbabilitiesPick(t *testing.T) {
	p := DefaultProbabilities()

	tests := []struct {
		sample float64
		want   Content
	}{
		{0.0, Empty},
		{0.69, Empty},
		{0.70, Hole},
		{0.89, Hole},
		{0.90, Hazard},
		{0.949, Hazard},
		{0.95, Treasure},
		{0.999, Treasure},
		{1.0, Empty}, // residual mass
	}

	for _, tt := range tests {
		if got := p.Pick(tt.sample); got != tt.want {
			t.Errorf("Pick(%v) = %v, want %v", tt.sample, got, tt.want)
		}
	}
}

func TestProbabilitiesPickResidual(t *testing.T) {
	// Weights summing to less than 1 leave the remainder to Empty
	p := Probabilities{Empty: 0.1, Hole: 0.1, Hazard: 0.1, Treasure: 0.1}
	if got := p.Pick(0.35); got != Treasure {
		t.Errorf("Pick(0.35) = %v, want Treasure", got)
	}
	if got := p.Pick(0.5); got != Empty {
		t.Errorf("Pick(0.5) = %v, want Empty", got)
	}
}

func TestProbabilitiesPickLegacy(t *testing.T) {
	p := Probabilities{Empty: 0.5, Hole: 0.4, Hazard: 0, Treasure: 0.1}
	if got := p.Pick(0.9); got != Treasure {
		t.Errorf("Pick(0.9) = %v, want Treasure", got)
	}
	for _, s := range []float64{0, 0.49, 0.5, 0.89, 0.9, 0.99} {
		if p.Pick(s) == Hazard {
			t.Errorf("Pick(%v) = Hazard with zero hazard weight", s)
		}
	}
}

func TestGenerateRowMajorFromBottom(t *testing.T) {
	// One sample per tile: (0,0), (1,0), (0,1), (1,1)
	src := &seqSource{samples: []float64{0.95, 0.75, 0.92, 0.1}}
	b := Generate(2, DefaultProbabilities(), src)

	want := map[Coord]Content{
		C(0, 0): Treasure,
		C(1, 0): Hole,
		C(0, 1): Hazard,
		C(1, 1): Empty,
	}
	for c, content := range want {
		if got := b.Content(c); got != content {
			t.Errorf("Content(%v) = %v, want %v", c, got, content)
		}
	}
	if src.i != 4 {
		t.Errorf("samples drawn = %d, want 4", src.i)
	}
	checkHints(t, b)
}

func TestGenerateHintInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := Generate(12, DefaultProbabilities(), rng)
		checkHints(t, b)

		for _, tile := range b.tiles {
			if tile.Discovered {
				t.Fatalf("seed %d: freshly generated tile is discovered", seed)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(10, DefaultProbabilities(), rand.New(rand.NewSource(99)))
	b := Generate(10, DefaultProbabilities(), rand.New(rand.NewSource(99)))

	for i := range a.tiles {
		if a.tiles[i].Content != b.tiles[i].Content {
			t.Fatalf("tile %d differs between same-seed boards", i)
		}
	}
}

func TestBoardOneByOne(t *testing.T) {
	b := boardFrom(t, "$")

	if n := b.Neighbors(C(0, 0)); len(n) != 0 {
		t.Errorf("Neighbors((0,0)) = %v, want none", n)
	}
	tile := b.Tile(C(0, 0))
	if tile.HasHint(HintWind) || tile.HasHint(HintStench) {
		t.Errorf("1x1 tile has neighbour hints: %v", tile.Hints())
	}
	if !tile.HasHint(HintGlitter) {
		t.Error("1x1 treasure tile has no glitter")
	}
	if b.TreasureCount() != 1 {
		t.Errorf("TreasureCount() = %d, want 1", b.TreasureCount())
	}
}

func TestNewBoardRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBoard(0) did not panic")
		}
	}()
	NewBoard(0)
}

func TestBoardNeighborsOrder(t *testing.T) {
	b := NewBoard(3)

	tests := []struct {
		c    Coord
		want []Coord
	}{
		{C(1, 1), []Coord{C(0, 1), C(2, 1), C(1, 2), C(1, 0)}},
		{C(0, 0), []Coord{C(1, 0), C(0, 1)}},
		{C(2, 2), []Coord{C(1, 2), C(2, 1)}},
		{C(0, 2), []Coord{C(1, 2), C(0, 1)}},
		{C(2, 1), []Coord{C(1, 1), C(2, 2), C(2, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			got := b.Neighbors(tt.c)
			if len(got) != len(tt.want) {
				t.Fatalf("Neighbors(%v) = %v, want %v", tt.c, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Neighbors(%v) = %v, want %v", tt.c, got, tt.want)
					break
				}
			}
		})
	}
}

func TestBoardOutOfBoundsPanics(t *testing.T) {
	b := NewBoard(4)

	for _, c := range []Coord{C(-1, 0), C(0, -1), C(4, 0), C(0, 4)} {
		t.Run(c.String(), func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Content(%v) did not panic", c)
				}
				if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "wumpus:") {
					t.Errorf("panic = %v, want a wumpus: message", r)
				}
			}()
			b.Content(c)
		})
	}
}

func TestRecomputeAllHintsIdempotent(t *testing.T) {
	b := boardFrom(t,
		"..M.",
		".O..",
		"$...",
		"..O$",
	)
	before := make([][]Hint, len(b.tiles))
	for i, tile := range b.tiles {
		before[i] = tile.Hints()
	}

	b.RecomputeAllHints()
	b.RecomputeAllHints()

	for i, tile := range b.tiles {
		after := tile.Hints()
		if len(after) != len(before[i]) {
			t.Fatalf("tile %d hints changed: %v -> %v", i, before[i], after)
		}
		for j := range after {
			if after[j] != before[i][j] {
				t.Fatalf("tile %d hints changed: %v -> %v", i, before[i], after)
			}
		}
	}
	checkHints(t, b)
}

func TestBoardHintsAfterContentChange(t *testing.T) {
	b := boardFrom(t,
		"...",
		".M.",
		"...",
	)
	if !b.Tile(C(1, 0)).HasHint(HintStench) {
		t.Fatal("tile below hazard has no stench")
	}

	b.SetContent(C(1, 1), Hole)
	b.RecomputeAllHints()

	for _, n := range b.Neighbors(C(1, 1)) {
		tile := b.Tile(n)
		if tile.HasHint(HintStench) {
			t.Errorf("%v still has stench after hazard removed", n)
		}
		if !tile.HasHint(HintWind) {
			t.Errorf("%v has no wind next to a hole", n)
		}
	}
	checkHints(t, b)
}

func TestBoardCollect(t *testing.T) {
	b := boardFrom(t,
		"..",
		"$.",
	)

	if b.Collect(C(1, 0)) {
		t.Error("Collect on empty tile returned true")
	}
	if !b.Collect(C(0, 0)) {
		t.Fatal("Collect on treasure returned false")
	}
	if got := b.Content(C(0, 0)); got != Empty {
		t.Errorf("Content after collect = %v, want Empty", got)
	}
	if b.Tile(C(0, 0)).HasHint(HintGlitter) {
		t.Error("glitter remains after collect")
	}
	if b.TreasureCount() != 0 {
		t.Errorf("TreasureCount() = %d, want 0", b.TreasureCount())
	}
}

func TestBoardCounts(t *testing.T) {
	b := boardFrom(t,
		"$OM",
		"O..",
		"..$",
	)

	if got := b.Count(Hole); got != 2 {
		t.Errorf("Count(Hole) = %d, want 2", got)
	}
	if got := b.Count(Hazard); got != 1 {
		t.Errorf("Count(Hazard) = %d, want 1", got)
	}
	if got := b.TreasureCount(); got != 2 {
		t.Errorf("TreasureCount() = %d, want 2", got)
	}

	b.Discover(C(0, 0))
	b.Discover(C(0, 0))
	b.Discover(C(1, 0))
	if got := b.DiscoveredCount(); got != 2 {
		t.Errorf("DiscoveredCount() = %d, want 2", got)
	}
}

func TestTileHintsDisplayOrder(t *testing.T) {
	b := boardFrom(t,
		"M..",
		"$O.",
		"...",
	)
	// (0,1) holds treasure, sits below a hazard and left of a hole
	got := b.Tile(C(0, 1)).Hints()
	want := []Hint{HintStench, HintWind, HintGlitter}
	if len(got) != len(want) {
		t.Fatalf("Hints() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Hints() = %v, want %v", got, want)
			break
		}
	}
	if n := b.Tile(C(0, 1)).HintCount(); n != 3 {
		t.Errorf("HintCount() = %d, want 3", n)
	}
}
