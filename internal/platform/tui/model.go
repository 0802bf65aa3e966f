package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pyramid/internal/config"
	"github.com/vovakirdan/pyramid/internal/core"
	"github.com/vovakirdan/pyramid/internal/pyramid"
)

// helpRows is the height of the key help line under the game.
const helpRows = 1

// Model is the Bubble Tea model for running Pyramid of Doom.
type Model struct {
	game       *pyramid.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame *core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	reloads    <-chan config.PyramidConfig
	logger     *log.Logger
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithReloads feeds configuration changes into the running game.
func WithReloads(reloads <-chan config.PyramidConfig) ModelOption {
	return func(m *Model) { m.reloads = reloads }
}

// WithModelLogger sets the logger for front-end events.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *pyramid.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	if cfg.TickRate <= 0 {
		cfg.TickRate = pyramid.TickRate
	}

	frame := core.NewInputFrame()
	m := Model{
		game:       game,
		screen:     core.NewScreen(80, 24-helpRows),
		config:     cfg,
		inputFrame: &frame,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Reset here so the first frame already shows the home screen
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop and the config listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.reloads))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.viewport(), m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigMsg:
		m.game.Reconfigure(config.PyramidConfig(msg))
		m.logger.Info("config reloaded, applies on next run")
		return m, waitForConfig(m.reloads)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, m.inputFrame) {
		// Let the game see the quit before the program exits
		m.game.Step(*m.inputFrame)
		m.quitting = true
		return m, tea.Quit
	}

	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The world is rescaled to the
// new size; the run itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(*m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// viewport returns the cell layout of the game area.
func (m Model) viewport() pyramid.Viewport {
	return m.game.Viewport(m.screen.Width(), m.screen.Height())
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".pyramid", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program with the given model.
func Run(game *pyramid.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks press the on-screen buttons
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
