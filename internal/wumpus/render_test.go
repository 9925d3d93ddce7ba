package wumpus

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-wumpus/internal/core"
)

func TestMinScreenSize(t *testing.T) {
	tests := []struct {
		size  int
		wantW int
		wantH int
	}{
		{1, minHUDW, 3 + 3 + 3},
		{10, minHUDW, 3 + 12 + 3},
		{20, 82, 3 + 22 + 3},
	}

	for _, tt := range tests {
		w, h := MinScreenSize(tt.size)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("MinScreenSize(%d) = %dx%d, want %dx%d", tt.size, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := newTestSim(t, boardFrom(t, "..", ".."), C(0, 0), DirUp, 3)
	screen := core.NewScreen(20, 6)

	Render(screen, s.Snapshot(), RenderOptions{})

	out := screen.String()
	if !strings.Contains(out, "Window too small") {
		t.Errorf("expected size warning, got:\n%s", out)
	}
}

func TestRenderFogAndPlayer(t *testing.T) {
	s := newTestSim(t, boardFrom(t,
		"M.",
		"..",
	), C(0, 0), DirUp, 3)
	screen := core.NewScreen(60, 12)

	Render(screen, s.Snapshot(), RenderOptions{})

	// Board box is centered at x=25, tiles start one cell inside.
	const originX, top, bottom = 26, 4, 5

	if got := screen.Get(originX, bottom); got != '▲' {
		t.Errorf("player glyph = %q, want '▲'", got)
	}
	if got := screen.Get(originX+1, bottom); got != 'S' {
		t.Errorf("stench marker = %q, want 'S'", got)
	}
	cell := screen.GetCell(originX, top)
	if cell.Rune != '░' || cell.Color != core.ColorGray {
		t.Errorf("undiscovered tile = %+v, want gray fog", cell)
	}
	if got := screen.Get(originX+cellWidth, bottom); got != '░' {
		t.Errorf("undiscovered neighbour = %q, want fog", got)
	}

	if !strings.Contains(screen.Row(0), "Hunt the Wumpus") {
		t.Errorf("title row = %q", screen.Row(0))
	}
	out := screen.String()
	for _, want := range []string{"Treasure 0/0", "Arrows 3", "M wumpus"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReveal(t *testing.T) {
	s := newTestSim(t, boardFrom(t,
		"M.",
		"..",
	), C(0, 0), DirUp, 3)
	screen := core.NewScreen(60, 12)

	Render(screen, s.Snapshot(), RenderOptions{Reveal: true})

	cell := screen.GetCell(26, 4)
	if cell.Rune != 'M' || cell.Color != core.ColorBrightRed {
		t.Errorf("revealed hazard = %+v, want red 'M'", cell)
	}
	if s.Tile(C(0, 1)).Discovered {
		t.Error("reveal discovered a tile")
	}
}

func TestRenderLastMessage(t *testing.T) {
	s := newTestSim(t, boardFrom(t,
		"..",
		".$",
	), C(0, 0), DirUp, 0)
	s.HandleInput(Fire())
	screen := core.NewScreen(60, 12)

	Render(screen, s.Snapshot(), RenderOptions{})

	if out := screen.String(); !strings.Contains(out, "out of arrows") {
		t.Errorf("screen missing dry fire message:\n%s", out)
	}
}
