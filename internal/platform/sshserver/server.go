// Package sshserver serves the snake game over SSH via Wish. Every
// connection with a PTY gets its own game session.
package sshserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/session"
)

// Config holds configuration for the SSH server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the configuration every session starts from.
	Game config.Config
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
	}
}

// Server wraps a Wish SSH server for the game.
type Server struct {
	config Config
	server *ssh.Server
	logger *log.Logger
}

// New creates a new SSH server with the given configuration. A nil logger
// logs to stderr.
func New(cfg Config, logger *log.Logger) (*Server, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		config: cfg,
		logger: logger,
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("sshserver: create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults the key to ~/.snake/host_key and makes sure
// its directory exists.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("sshserver: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".snake", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("sshserver: cannot create host key directory: %w", err)
	}
	return path, nil
}

// gameMiddleware runs a game session on the SSH channel.
func (s *Server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, windows, _ := sess.Pty()
		logger := s.logger.With("user", sess.User())

		game, err := session.New(session.Options{
			Config:  s.config.Game,
			Input:   sess,
			Output:  sess,
			Term:    pty.Term,
			Columns: pty.Window.Width,
			Rows:    pty.Window.Height,
			Profile: termenv.ANSI256,
			Logger:  logger,
		})
		if err != nil {
			logger.Warn("cannot start game", "err", err)
			wish.Fatalln(sess, err)
			return
		}

		go forwardWindowChanges(sess.Context(), windows, game)

		if err := game.Run(); err != nil {
			logger.Error("game ended with error", "err", err)
		}
		next(sess)
	}
}

// resizer receives terminal size changes.
type resizer interface {
	Resize(columns, rows int)
	Close() error
}

// forwardWindowChanges posts PTY window changes as resize events until the
// connection ends, then closes the game so its loop stops.
func forwardWindowChanges(ctx context.Context, windows <-chan ssh.Window, game resizer) {
	defer game.Close() //nolint:errcheck // connection is gone

	for {
		select {
		case w, ok := <-windows:
			if !ok {
				return
			}
			game.Resize(w.Width, w.Height)
		case <-ctx.Done():
			return
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *Server) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until interrupted.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("sshserver: listen: %w", err)
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
