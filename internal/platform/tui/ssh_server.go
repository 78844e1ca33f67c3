package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/registry"
	"github.com/vovakirdan/road-racer/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.racer/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the frame rate offered to every session.
	TickRate int

	// Logger receives server and session logs. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
	}
}

// SSHServer wraps a Wish SSH server so players can race over ssh.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "racer-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".racer", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionKey stores the per-connection run session ID in the SSH context.
type sessionKey struct{}

// sessionIDFor returns the session's UUID, assigning one on first use.
func sessionIDFor(sshSession ssh.Session) string {
	ctx := sshSession.Context()
	if id, ok := ctx.Value(sessionKey{}).(string); ok {
		return id
	}
	id := uuid.NewString()
	ctx.SetValue(sessionKey{}, id)
	return id
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	sessionID := sessionIDFor(sshSession)
	logger := s.logger.With("session", sessionID, "user", sshSession.User())

	// Create session model that handles menu + game flow
	model := NewSessionModel(s.store, cfg, sessionID, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		sessionID := sessionIDFor(sshSession)
		start := time.Now()
		s.logger.Info("session started",
			"session", sessionID,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"session", sessionID,
			"user", sshSession.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionView is the screen a session is on.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> race -> menu, with
// the scoreboard reachable from the menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	sessionID  string
	logger     *log.Logger
	view       sessionView
	menu       MenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, sessionID string, logger *log.Logger) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		sessionID: sessionID,
		logger:    logger,
		menu:      NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
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
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scoreboard.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.logger.Error("cannot create game", "game", selected.GameID, "error", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}

		m.config = m.menu.Config() // Get possibly updated config from resize
		gameModel := NewGameModel(game, m.store, m.config, Options{
			Logger:    m.logger,
			SessionID: m.sessionID,
			AllowBack: true,
		})
		m.gameModel = &gameModel
		m.view = viewGame
		m.logger.Info("race started", "game", selected.GameID)

		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.logger.Info("race finished", "score", m.gameModel.State().Score)
		return m.backToMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
