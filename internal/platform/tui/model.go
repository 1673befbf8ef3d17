package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// sessionIdentifier is implemented by games that carry a session id.
type sessionIdentifier interface {
	SessionID() string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	held       *holdLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	if s, ok := game.(sessionIdentifier); ok {
		logger = logger.With("session", s.SessionID())
	}
	logger.Info("game ready", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		held:       newHoldLatch(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit requested")
		return m, tea.Quit
	case holdable(action):
		m.held.Press(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The field is drawn through a viewport, so the match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Info(ev.Kind(), ev.Attrs()...)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.held.Release()
		m.quitting = true
		m.logger.Info("game over", "left", m.gameState.ScoreLeft, "right", m.gameState.ScoreRight)
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
