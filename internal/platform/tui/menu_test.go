package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wumpus/internal/config"
	"github.com/vovakirdan/tui-wumpus/internal/core"
)

func TestMenuItems(t *testing.T) {
	items := MenuItems()

	if len(items) != len(config.Presets())+1 {
		t.Fatalf("len(MenuItems()) = %d, want %d", len(items), len(config.Presets())+1)
	}
	if items[0].Name() != "easy" || items[0].Title != "Easy" {
		t.Errorf("items[0] = %+v, want Easy", items[0])
	}
	last := items[len(items)-1]
	if last.Preset != config.PresetNone || last.Name() != "custom" {
		t.Errorf("last item = %+v, want custom", last)
	}
}

func updateMenu(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyPress(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want config.Preset
	}{
		{"first", []string{"enter"}, config.PresetEasy},
		{"down", []string{"down", "enter"}, config.PresetNormal},
		{"space selects", []string{"j", "j", "space"}, config.PresetHard},
		{"clamped top", []string{"up", "up", "enter"}, config.PresetEasy},
		{"clamped bottom", []string{"down", "down", "down", "down", "down", "down", "enter"}, config.PresetNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := updateMenu(NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}), tt.keys...)
			got := m.Selected()
			if got == nil {
				t.Fatal("Selected() = nil")
			}
			if got.Preset != tt.want {
				t.Errorf("Selected().Preset = %q, want %q", got.Preset, tt.want)
			}
		})
	}
}

func TestMenuRequests(t *testing.T) {
	m := updateMenu(NewMenuModel(core.RuntimeConfig{}), "tab")
	if !m.WantsScoreboard() {
		t.Error("WantsScoreboard() = false after tab")
	}
	if m.Selected() != nil {
		t.Error("Selected() set without a selection")
	}

	next, cmd := NewMenuModel(core.RuntimeConfig{}).Update(keyPress("q"))
	m = next.(MenuModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit the menu")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 100, ScreenH: 24})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	view := next.(MenuModel).View()

	for _, item := range MenuItems() {
		if !strings.Contains(view, item.Title) {
			t.Errorf("View() missing %q", item.Title)
		}
	}
}
