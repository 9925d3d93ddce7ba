// Package tui provides the Bubble Tea integration for the game: the play
// screen, the preset menu, the run history table and the SSH server.
package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-wumpus/internal/core"
	"github.com/vovakirdan/tui-wumpus/internal/telemetry"
	"github.com/vovakirdan/tui-wumpus/internal/wumpus"
)

// Model is the Bubble Tea model for one play screen. It owns a single
// Simulation and is its only caller, so input and rendering never overlap.
type Model struct {
	sim      *wumpus.Simulation
	screen   *core.Screen
	recorder wumpus.RunRecorder
	logger   *log.Logger
	tracer   trace.Tracer
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	reveal   bool

	recordedWin string // run ID of the last win already saved

	quitting        bool
	backToMenu      bool
	wantsScoreboard bool
}

// ModelOptions holds the collaborators of a play screen. Only Params is required.
type ModelOptions struct {
	Params   wumpus.Params
	Rand     *rand.Rand         // nil seeds from Config.Seed, or the clock when that is 0
	Recorder wumpus.RunRecorder // nil disables run history
	Logger   *log.Logger
	Tracer   trace.Tracer
	Config   core.RuntimeConfig
	Reveal   bool
}

// NewModel creates a play screen and generates its first board.
func NewModel(opts ModelOptions) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		sim: wumpus.New(opts.Params, rng,
			wumpus.WithLogger(logger),
			wumpus.WithTracer(tracer),
		),
		recorder: opts.Recorder,
		logger:   logger,
		tracer:   tracer,
		keys:     DefaultKeyMap(),
		help:     h,
		config:   cfg,
		reveal:   opts.Reveal,
	}
	m.screen = core.NewScreen(m.screenSize())
	return m
}

// Init implements tea.Model. The game is turn-based, so there is no tick loop.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.screenSize())
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.finish(wumpus.CauseQuit)
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.finish(wumpus.CauseQuit)
		m.backToMenu = true
		return m, nil

	case core.ActionRestart:
		m.record(m.sim.Reset())
		return m, nil

	case core.ActionReveal:
		m.reveal = !m.reveal
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.screenSize())
		return m, nil

	case core.ActionScoreboard:
		m.wantsScoreboard = true
		return m, nil
	}

	ev := wumpus.EventForAction(action)
	if ev.Kind == wumpus.EventNone {
		return m, nil
	}
	m.apply(action, ev)
	return m, nil
}

// apply feeds one event to the simulation and records any finished run.
func (m *Model) apply(action core.Action, ev wumpus.Event) {
	_, span := m.tracer.Start(context.Background(), "wumpus.input")
	defer span.End()

	res := m.sim.HandleInput(ev)
	span.SetAttributes(
		attribute.String("input.action", action.String()),
		attribute.String("result.kind", res.Kind.String()),
		attribute.Bool("result.reset", res.Outcome == wumpus.OutcomeReset),
		attribute.Int("score", m.sim.Score()),
	)

	if res.Ended != nil {
		m.record(*res.Ended)
	}
	if m.sim.IsWon() && m.sim.RunID() != m.recordedWin {
		m.recordedWin = m.sim.RunID()
		m.record(m.sim.Summary())
		m.logger.Info("run won", "run", m.sim.RunID(), "score", m.sim.Score())
	}
}

// finish records the current run as abandoned with the given cause.
func (m *Model) finish(cause wumpus.Cause) {
	sum := m.sim.Summary()
	if !sum.Won {
		sum.Cause = cause
	}
	m.record(sum)
}

// record saves a finished run. Runs the player never touched are skipped.
func (m *Model) record(sum wumpus.RunSummary) {
	if m.recorder == nil || (sum.Moves == 0 && sum.ShotsFired == 0) {
		return
	}
	if err := m.recorder.RecordRun(sum); err != nil {
		m.logger.Warn("could not record run", "run", sum.RunID, "error", err)
	}
}

// screenSize returns the board area: the window minus the help footer.
func (m Model) screenSize() (int, int) {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	return core.Max(m.config.ScreenW, 0), core.Max(m.config.ScreenH-helpLines, 0)
}

// saveScreenshot saves the current board to a text file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".wumpus", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("wumpus_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

func (m Model) draw() {
	wumpus.Render(m.screen, m.sim.Snapshot(), wumpus.RenderOptions{Reveal: m.reveal})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Simulation exposes the running simulation for inspection.
func (m Model) Simulation() *wumpus.Simulation {
	return m.sim
}

// Revealing reports whether undiscovered tiles are drawn.
func (m Model) Revealing() bool {
	return m.reveal
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the preset menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// WantsScoreboard returns true if user asked for the run history.
func (m Model) WantsScoreboard() bool {
	return m.wantsScoreboard
}

// clearRequests drops navigation requests once the session acted on them.
func (m *Model) clearRequests() {
	m.backToMenu = false
	m.wantsScoreboard = false
}
