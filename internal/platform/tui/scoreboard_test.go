package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-wumpus/internal/storage"
)

func seedStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir() + "/runs.db")
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.RunRecord{
		{RunID: "h1", Preset: "hard", BoardSize: 14, Score: 1, TotalScore: 9, Cause: "hole", Moves: 12},
		{RunID: "h2", Preset: "hard", BoardSize: 14, Score: 4, TotalScore: 4, Won: true, Moves: 40},
		{RunID: "l1", Preset: "legacy", BoardSize: 20, Score: 2, TotalScore: 30, Cause: "hazard", Moves: 7},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}
	return store
}

func TestScoreboardLoadsStartPreset(t *testing.T) {
	m := NewScoreboardModel(seedStore(t), 120, 40, "hard")

	runs := m.Runs()
	if len(runs) != 2 {
		t.Fatalf("len(Runs()) = %d, want 2", len(runs))
	}
	if runs[0].RunID != "h2" {
		t.Errorf("Runs()[0] = %s, want the win first", runs[0].RunID)
	}
	if !strings.Contains(m.View(), "RUN HISTORY - HARD") {
		t.Error("View() missing preset title")
	}
}

func TestScoreboardCyclesPresets(t *testing.T) {
	m := NewScoreboardModel(seedStore(t), 80, 30, "hard")

	next, _ := m.Update(keyPress("tab"))
	m = next.(ScoreboardModel)
	if m.currentPreset() != "legacy" {
		t.Fatalf("currentPreset() = %q, want legacy", m.currentPreset())
	}
	if len(m.Runs()) != 1 {
		t.Errorf("len(Runs()) = %d, want 1", len(m.Runs()))
	}

	next, _ = m.Update(keyPress("left"))
	next, _ = next.(ScoreboardModel).Update(keyPress("left"))
	m = next.(ScoreboardModel)
	if m.currentPreset() != "normal" {
		t.Errorf("currentPreset() = %q, want normal", m.currentPreset())
	}
	if len(m.Runs()) != 0 {
		t.Errorf("len(Runs()) = %d, want 0", len(m.Runs()))
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 30, "unknown")

	if m.currentPreset() != "easy" {
		t.Errorf("currentPreset() = %q, want easy", m.currentPreset())
	}
	if len(m.Runs()) != 0 {
		t.Errorf("len(Runs()) = %d, want 0", len(m.Runs()))
	}
	if m.View() == "" {
		t.Error("View() is empty")
	}

	next, _ := m.Update(keyPress("esc"))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("IsGoingBack() = false after esc")
	}
}

func TestRunResult(t *testing.T) {
	tests := []struct {
		rec  storage.RunRecord
		want string
	}{
		{storage.RunRecord{Won: true, Cause: "quit"}, "won"},
		{storage.RunRecord{Cause: "hole"}, "fell"},
		{storage.RunRecord{Cause: "hazard"}, "eaten"},
		{storage.RunRecord{Cause: "restart"}, "restart"},
	}

	for _, tt := range tests {
		if got := runResult(tt.rec); got != tt.want {
			t.Errorf("runResult(%+v) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}
