package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wumpus/internal/config"
	"github.com/vovakirdan/tui-wumpus/internal/core"
)

// MenuItem represents a selectable cave preset in the menu.
type MenuItem struct {
	Preset      config.Preset // PresetNone plays the loaded configuration as is
	Title       string
	Description string
}

// Name returns the label recorded with runs played from this item.
func (i MenuItem) Name() string {
	if i.Preset == config.PresetNone {
		return "custom"
	}
	return string(i.Preset)
}

// MenuItems returns the named presets followed by the loaded configuration.
func MenuItems() []MenuItem {
	items := make([]MenuItem, 0, len(config.Presets())+1)
	for _, p := range config.Presets() {
		items = append(items, MenuItem{
			Preset:      p,
			Title:       strings.ToUpper(string(p[:1])) + string(p[1:]),
			Description: p.Description(),
		})
	}
	return append(items, MenuItem{
		Preset:      config.PresetNone,
		Title:       "Custom",
		Description: config.PresetNone.Description(),
	})
}

// MenuModel is the Bubble Tea model for the preset picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	keys           KeyMap
	quitting       bool
	selected       *MenuItem // Set when user selects a preset
	openScoreboard bool      // True if user pressed Tab for run history
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  MenuItems(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Shoot):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("H U N T   T H E   W U M P U S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a cave", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s %s", item.Title, dimStyle.Render(item.Description))
		if i == m.cursor {
			line = cursorStyle.Render("> "+fmt.Sprintf("%-8s", item.Title)) + " " + item.Description
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Runs  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the run history.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
