package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wumpus/internal/config"
	"github.com/vovakirdan/tui-wumpus/internal/core"
	"github.com/vovakirdan/tui-wumpus/internal/storage"
)

func newTestSession(t *testing.T, opts SessionOptions) SessionModel {
	t.Helper()
	opts.Base = config.DefaultWumpusConfig()
	opts.Config = core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 42}
	m, err := NewSessionModel(opts)
	if err != nil {
		t.Fatalf("NewSessionModel() error = %v", err)
	}
	return m
}

func sendKeys(m SessionModel, keys ...string) (SessionModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyPress(k))
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestParamsFor(t *testing.T) {
	base := config.DefaultWumpusConfig()

	tests := []struct {
		item     MenuItem
		wantName string
		wantSize int
	}{
		{menuItemFor(config.PresetEasy), "easy", 8},
		{menuItemFor(config.PresetHard), "hard", 14},
		{menuItemFor(config.PresetLegacy), "legacy", 20},
		{menuItemFor(config.PresetNone), "custom", base.Board.Size},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			p, err := ParamsFor(base, tt.item)
			if err != nil {
				t.Fatalf("ParamsFor() error = %v", err)
			}
			if p.Name != tt.wantName || p.Size != tt.wantSize {
				t.Errorf("ParamsFor() = %s/%d, want %s/%d", p.Name, p.Size, tt.wantName, tt.wantSize)
			}
		})
	}

	bad := base
	bad.Player.Heading = "north"
	if _, err := ParamsFor(bad, menuItemFor(config.PresetNone)); err == nil {
		t.Error("ParamsFor() accepted an invalid heading")
	}
}

func TestSessionSkipMenu(t *testing.T) {
	m := newTestSession(t, SessionOptions{Preset: config.PresetHard, SkipMenu: true})

	if m.Game() == nil {
		t.Fatal("Game() = nil with SkipMenu")
	}
	if got := m.Game().Simulation().Params(); got.Name != "hard" || got.Size != 14 {
		t.Errorf("Params() = %s/%d, want hard/14", got.Name, got.Size)
	}
}

func TestSessionSkipMenuInvalidConfig(t *testing.T) {
	opts := SessionOptions{SkipMenu: true, Config: core.RuntimeConfig{Seed: 1}}
	opts.Base = config.DefaultWumpusConfig()
	opts.Base.Board.Size = 0

	if _, err := NewSessionModel(opts); err == nil {
		t.Error("NewSessionModel() accepted an invalid configuration")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, SessionOptions{})
	if m.Game() != nil {
		t.Fatal("Game() set before a selection")
	}

	m, _ = sendKeys(m, "down", "enter")
	if m.Game() == nil {
		t.Fatal("Game() = nil after selecting a preset")
	}
	if got := m.Game().Simulation().Params().Name; got != "normal" {
		t.Errorf("preset = %q, want normal", got)
	}

	m, _ = sendKeys(m, "esc")
	if m.Game() != nil {
		t.Error("Game() still set after going back")
	}
	if m.current != screenMenu {
		t.Errorf("current = %v, want menu", m.current)
	}
}

func TestSessionScoresRoundTrip(t *testing.T) {
	m := newTestSession(t, SessionOptions{Preset: config.PresetEasy, SkipMenu: true})
	runID := m.Game().Simulation().RunID()

	m, _ = sendKeys(m, "tab")
	if m.current != screenScores {
		t.Fatalf("current = %v, want scores", m.current)
	}
	if got := m.scores.currentPreset(); got != "easy" {
		t.Errorf("scoreboard preset = %q, want easy", got)
	}

	m, _ = sendKeys(m, "esc")
	if m.current != screenGame {
		t.Fatalf("current = %v, want game", m.current)
	}
	if m.Game().Simulation().RunID() != runID {
		t.Error("visiting the run history replaced the run")
	}
	if m.Game().WantsScoreboard() {
		t.Error("scoreboard request was not cleared")
	}
}

func TestSessionQuitFromScoresRecordsRun(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/runs.db")
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	m := newTestSession(t, SessionOptions{Preset: config.PresetNone, SkipMenu: true, Store: store})
	m, _ = sendKeys(m, "d")
	m, _ = sendKeys(m, "d")
	runID := m.Game().Simulation().RunID()
	moved := m.Game().Simulation().Summary().Moves > 0

	m, cmd := sendKeys(m, "tab", "q")
	if cmd == nil || m.View() != "" {
		t.Error("q in the run history did not quit")
	}

	rec, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() error = %v", err)
	}
	if moved && rec == nil {
		t.Error("run in progress was not recorded on quit")
	}
}

func TestSessionWindowSize(t *testing.T) {
	m := newTestSession(t, SessionOptions{Preset: config.PresetEasy, SkipMenu: true})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(SessionModel)

	if m.config.ScreenW != 120 || m.menu.width != 120 {
		t.Errorf("sizes = %d/%d, want 120", m.config.ScreenW, m.menu.width)
	}
	if w, _ := m.Game().screenSize(); w != 120 {
		t.Errorf("game width = %d, want 120", w)
	}
}
