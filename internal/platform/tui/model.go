package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shaft/internal/config"
	"github.com/vovakirdan/tui-shaft/internal/core"
	"github.com/vovakirdan/tui-shaft/internal/registry"
	"github.com/vovakirdan/tui-shaft/internal/storage"
)

// ControlSource is implemented by games that carry their own key aliases.
type ControlSource interface {
	Controls() config.ControlsConfig
}

// Options configures a play session.
type Options struct {
	Store  *storage.Store // Nil disables score saving
	Logger *log.Logger    // Nil discards logs
	Mode   string         // Difficulty preset recorded with scores
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	mode       string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       *core.KeyState
	inputFrame core.InputFrame
	gameState  core.GameState
	mouseKey   string // Virtual button held by the mouse
	quitting   bool
	back       bool // Return to the menu instead of exiting
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	controls := config.DefaultShaftConfig().Controls
	if src, ok := game.(ControlSource); ok {
		controls = src.Controls()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	mode := opts.Mode
	if mode == "" {
		mode = string(config.DifficultyNormal)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		mode:       mode,
		config:     cfg,
		keyMapper:  NewKeyMapper(controls, cfg.TicksFor(controls.HoldMS)),
		keys:       core.NewKeyState(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session ready", "game", m.game.ID(), "mode", m.mode, "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keyMapper.Apply(msg, m.keys, &m.inputFrame) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Leaving mid-run would throw the run away.
		if !m.gameState.Running {
			m.back = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleMouse turns presses on virtual buttons into held keys.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	layout, ok := m.game.(registry.ButtonLayout)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for _, b := range layout.VirtualButtons() {
			if b.Area.Contains(msg.X, msg.Y) {
				m.keys.Press(b.Key)
				m.mouseKey = b.Key
				break
			}
		}

	case tea.MouseActionRelease:
		if m.mouseKey != "" {
			m.keys.Release(m.mouseKey)
			m.mouseKey = ""
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keyMapper.BuildFrame(m.keys, &m.inputFrame)

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Running && !prev.Running {
		m.logger.Info("run started", "mode", m.mode)
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.logger.Info("game over", "depth", m.gameState.Score, "lives", m.gameState.Lives)
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	m.keys.Tick()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run. Failures are logged and ignored.
func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	id, err := m.store.SaveScore(m.game.ID(), m.mode, m.gameState.Score)
	if err != nil {
		m.logger.Warn("score not saved", "err", err)
		return
	}
	m.logger.Debug("score saved", "id", id, "score", m.gameState.Score, "mode", m.mode)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".shaft", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// WantsMenu reports whether the player asked to return to the menu.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Virtual buttons
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.WantsMenu(), nil
}
