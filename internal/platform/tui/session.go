package tui

import (
	"io"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-wumpus/internal/config"
	"github.com/vovakirdan/tui-wumpus/internal/core"
	"github.com/vovakirdan/tui-wumpus/internal/storage"
	"github.com/vovakirdan/tui-wumpus/internal/wumpus"
)

// screen identifies which sub-model a session is showing.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionOptions configures a play session.
type SessionOptions struct {
	Base     config.WumpusConfig // loaded configuration, before presets
	Preset   config.Preset       // preset to start with when SkipMenu is set
	SkipMenu bool                // start playing immediately
	Store    *storage.Store      // nil disables run history
	Logger   *log.Logger
	Tracer   trace.Tracer
	Config   core.RuntimeConfig
	Reveal   bool
}

// SessionModel manages the full session flow: menu -> game -> menu, with
// the run history reachable from both. It is the top-level model for local
// play and for each SSH session.
type SessionModel struct {
	opts     SessionOptions
	rng      *rand.Rand
	config   core.RuntimeConfig
	current  screen
	previous screen
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	preset   string // name of the preset last played
	quitting bool
}

// NewSessionModel creates a new session. All boards of the session are drawn
// from one RNG seeded with Config.Seed, or the clock when it is 0.
func NewSessionModel(opts SessionOptions) (SessionModel, error) {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := SessionModel{
		opts:   opts,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		config: cfg,
		menu:   NewMenuModel(cfg),
		preset: string(config.PresetNormal),
	}

	if opts.SkipMenu {
		if err := m.startGame(menuItemFor(opts.Preset)); err != nil {
			return m, err
		}
	}
	return m, nil
}

// menuItemFor returns the menu entry of a preset.
func menuItemFor(p config.Preset) MenuItem {
	for _, item := range MenuItems() {
		if item.Preset == p {
			return item
		}
	}
	return MenuItem{Preset: config.PresetNone}
}

// ParamsFor builds simulation parameters from a base configuration and a
// menu entry.
func ParamsFor(base config.WumpusConfig, item MenuItem) (wumpus.Params, error) {
	cfg := base
	config.ApplyPreset(&cfg, item.Preset)
	return wumpus.ParamsFromConfig(cfg, item.Name())
}

// startGame switches the session to a fresh play screen.
func (m *SessionModel) startGame(item MenuItem) error {
	params, err := ParamsFor(m.opts.Base, item)
	if err != nil {
		return err
	}

	var recorder wumpus.RunRecorder
	if m.opts.Store != nil {
		recorder = m.opts.Store
	}

	game := NewModel(ModelOptions{
		Params:   params,
		Rand:     m.rng,
		Recorder: recorder,
		Logger:   m.opts.Logger,
		Tracer:   m.opts.Tracer,
		Config:   m.config,
		Reveal:   m.opts.Reveal,
	})
	m.game = &game
	m.preset = item.Name()
	m.current = screenGame
	m.opts.Logger.Info("game started", "preset", params.Name, "size", params.Size, "run", game.Simulation().RunID())
	return nil
}

// openScores switches to the run history, remembering where to return.
func (m *SessionModel) openScores() {
	sb := NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH, m.preset)
	m.scores = &sb
	m.previous = m.current
	m.current = screenScores
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		// Keep hidden screens in sync so they lay out correctly when shown
		newMenu, _ := m.menu.Update(msg)
		m.menu = newMenu.(MenuModel)
		if m.game != nil {
			newGame, _ := m.game.Update(msg)
			game := newGame.(Model)
			m.game = &game
		}
		if m.scores != nil {
			newScores, _ := m.scores.Update(msg)
			scores := newScores.(ScoreboardModel)
			m.scores = &scores
		}
		return m, nil
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.menu = NewMenuModel(m.config)
		m.openScores()
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		m.menu = NewMenuModel(m.config)
		if err := m.startGame(*selected); err != nil {
			m.opts.Logger.Error("could not start game", "preset", selected.Name(), "error", err)
		}
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.game = nil
		m.current = screenMenu
		return m, nil

	case m.game.WantsScoreboard():
		m.game.clearRequests()
		m.openScores()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the run history is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		// Record the run in progress, as quitting from the game would
		if m.game != nil {
			m.game.finish(wumpus.CauseQuit)
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.scores = nil
		m.current = m.previous
		if m.current == screenGame && m.game == nil {
			m.current = screenMenu
		}
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenScores:
		if m.scores != nil {
			return m.scores.View()
		}
	}
	return m.menu.View()
}

// Game returns the active play screen, or nil when none is running.
func (m SessionModel) Game() *Model {
	return m.game
}

// Run starts a local Bubble Tea program for one session.
func Run(opts SessionOptions) error {
	model, err := NewSessionModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
