package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
	"github.com/vovakirdan/road-racer/internal/registry"
	"github.com/vovakirdan/road-racer/internal/storage"
)

// EndQuit marks runs abandoned with the quit key.
const EndQuit = "quit"

// Options carry the collaborators a game model hands to its game.
type Options struct {
	Audio     engine.AudioManager // Nil means silence
	Logger    *log.Logger         // Nil discards
	SessionID string              // Recorded with saved runs
	AllowBack bool                // B returns to the menu after game over or pause
}

// Optional game capabilities, detected at runtime.
type (
	audioSetter interface {
		SetAudio(engine.AudioManager)
	}
	loggerSetter interface {
		SetLogger(*log.Logger)
	}
	elapsedReporter interface {
		Elapsed() time.Duration
	}
)

// GameModel is the Bubble Tea model for a single game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	clock      frameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if a, ok := game.(audioSetter); ok && opts.Audio != nil {
		a.SetAudio(opts.Audio)
	}
	if l, ok := game.(loggerSetter); ok {
		l.SetLogger(logger)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world is projected onto whatever size the terminal has,
		// so a resize never restarts the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun(EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	if m.opts.AllowBack && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveRun(EndQuit)
		m.backToMenu = true
	}

	return m, nil
}

// handleTick runs one frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.advance(now)

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.clock.reset()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun(m.gameState.EndReason)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Runs without a score are not kept.
func (m *GameModel) saveRun(reason string) {
	if m.runSaved || m.gameState.Score == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:     m.game.ID(),
		SessionID:  m.opts.SessionID,
		Seed:       m.config.Seed,
		Score:      m.gameState.Score,
		HealthLeft: m.gameState.Health,
		EndReason:  reason,
	}
	if e, ok := m.game.(elapsedReporter); ok {
		run.Duration = e.Elapsed()
	}

	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run", id, "score", run.Score, "reason", reason)
}

// saveScreenshot writes the current screen to ~/.racer/screenshots.
func (m *GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".racer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
