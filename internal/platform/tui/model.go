package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jerrys-quest/internal/core"
	"github.com/vovakirdan/jerrys-quest/internal/registry"
)

// maxTickDT caps the seconds one tick can cover after a stall.
const maxTickDT = 0.1

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	canvas    *Canvas
	keys      *KeyMapper
	help      help.Model
	holds     *HoldTracker
	logger    *log.Logger
	config    core.RuntimeConfig
	width     int
	height    int
	lastTick  time.Time
	gameState core.GameState
	paused    bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the logical size the game simulates;
// the terminal size arrives with the first resize message.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}

	const width, height = 80, 24
	screen := core.NewScreen(width, height-1)

	return Model{
		game:   game,
		screen: screen,
		canvas: NewCanvas(screen, float64(cfg.ScreenW), float64(cfg.ScreenH)),
		keys:   NewKeyMapper(),
		help:   help.New(),
		holds:  NewHoldTracker(DefaultHoldWindow),
		logger: logger,
		config: cfg,
		width:  width,
		height: height,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Shot) {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionPause:
		m.paused = !m.paused
		m.holds.Release()
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil
	case m.paused:
		return m, nil
	}

	m.holds.Observe(action, now)
	return m, nil
}

// layout sizes the game area to the terminal minus the help footer.
func (m *Model) layout() {
	footer := 1
	if m.help.ShowAll {
		for _, col := range m.keys.Keys.FullHelp() {
			footer = max(footer, len(col))
		}
	}
	m.help.Width = m.width
	m.screen.Resize(max(m.width, 1), max(m.height-footer, 1))
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = core.ClampF(now.Sub(m.lastTick).Seconds(), 0, maxTickDT)
	}
	m.lastTick = now

	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	clk := core.FixedClock{
		DT: dt,
		W:  float64(m.config.ScreenW),
		H:  float64(m.config.ScreenH),
	}
	prev := m.gameState
	result := m.game.Step(m.holds.Frame(now), clk)
	m.gameState = result.State

	if prev.Phase != "" && prev.Phase != m.gameState.Phase {
		m.logger.Debug("state changed",
			"game", m.game.ID(),
			"from", prev.Phase,
			"to", m.gameState.Phase,
			"score", m.gameState.Score,
		)
		if m.gameState.Finished() {
			m.logger.Info("run ended",
				"game", m.game.ID(),
				"phase", m.gameState.Phase,
				"score", m.gameState.Score,
				"highscore", m.gameState.HighScore,
			)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text to ~/.quest/screenshots.
func (m Model) saveScreenshot() {
	m.game.Draw(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".quest", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.canvas)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorYellow)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
