package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/brick-duel/internal/config"
	"github.com/vovakirdan/brick-duel/internal/session"
	"github.com/vovakirdan/brick-duel/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.brickduel/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every hosted session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHDeps are shared by every hosted session.
type SSHDeps struct {
	Game    config.Config
	Scores  session.ScoreKeeper   // Required
	Matches session.MatchRecorder // Optional
	Logger  *log.Logger
}

// SSHServer serves the hotseat game over SSH: both players share the
// remote keyboard, exactly as in a local terminal. Sessions are silent.
type SSHServer struct {
	config SSHServerConfig
	deps   SSHDeps
	scores *sharedScores
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, deps SSHDeps) (*SSHServer, error) {
	if deps.Scores == nil {
		return nil, errors.New("tui: ssh server needs a score keeper")
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("ssh")

	srv := &SSHServer{
		config: cfg,
		deps:   deps,
		scores: newSharedScores(deps.Scores),
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".brickduel", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler starts a fresh session for each SSH connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	sess := session.New(session.Options{
		Config:  s.deps.Game,
		Seed:    time.Now().UnixNano(),
		Scores:  s.scores.view(),
		Matches: s.deps.Matches,
		Logger:  s.logger.With("user", sshSession.User()),
	})

	model := NewModel(sess, Options{
		TickRate: s.config.TickRate,
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		return fmt.Errorf("tui: ssh server: %w", err)
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sharedScores serializes high-score updates from concurrent sessions.
// Each session sees the table as it was when the session began; on save
// only the scores that session added are merged into the shared table.
type sharedScores struct {
	mu     sync.Mutex
	keeper session.ScoreKeeper
	table  []int
}

func newSharedScores(keeper session.ScoreKeeper) *sharedScores {
	return &sharedScores{keeper: keeper, table: keeper.LoadHighScores()}
}

func (s *sharedScores) view() *scoreView {
	return &scoreView{shared: s}
}

// merge inserts every score in next that is not accounted for in seen.
func (s *sharedScores) merge(seen, next []int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rest := slices.Clone(seen)
	for _, sc := range next {
		if i := slices.Index(rest, sc); i >= 0 {
			rest = slices.Delete(rest, i, i+1)
			continue
		}
		s.table = storage.InsertHighScore(s.table, sc)
	}
	return slices.Clone(s.table), s.keeper.SaveHighScores(s.table)
}

func (s *sharedScores) snapshot() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.table)
}

// scoreView is one session's handle on the shared table.
type scoreView struct {
	shared *sharedScores
	seen   []int
}

func (v *scoreView) LoadHighScores() []int {
	v.seen = v.shared.snapshot()
	return slices.Clone(v.seen)
}

func (v *scoreView) SaveHighScores(scores []int) error {
	table, err := v.shared.merge(v.seen, scores)
	v.seen = table
	return err
}
