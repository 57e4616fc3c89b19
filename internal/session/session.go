// Package session assembles a playable game: it wires an input reader, an
// ANSI renderer and the game loop with the title, settings and snake scenes.
// Local play and every SSH connection each run their own Session.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/engine"
	"github.com/vovakirdan/term-snake/internal/games"
	"github.com/vovakirdan/term-snake/internal/games/settings"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/games/title"
	"github.com/vovakirdan/term-snake/internal/input"
	"github.com/vovakirdan/term-snake/internal/render"
)

// ErrWindowSize is returned for a zero or negative screen size.
var ErrWindowSize = errors.New("session: invalid window size")

// Options configures a Session.
type Options struct {
	Config config.Config

	Input  io.Reader
	Output io.Writer
	// Term is the client's $TERM, used to pick key sequences.
	Term string

	// TTY, when set, is switched to raw mode while the game runs. Remote
	// sessions leave it nil.
	TTY *os.File

	Columns int
	Rows    int
	Profile termenv.Profile

	// Seed drives food placement. Zero picks a time based seed.
	Seed int64

	Logger *log.Logger
}

// Session is one running game bound to a terminal.
type Session struct {
	cfg      *config.Config
	reader   *input.Reader
	renderer *render.Renderer
	loop     *engine.Loop
	logger   *log.Logger
}

// New validates the options and builds the scenes.
func New(opts Options) (*Session, error) {
	if opts.Columns <= 0 || opts.Rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrWindowSize, opts.Columns, opts.Rows)
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	reader, err := input.NewReader(opts.Input, opts.Term)
	if err != nil {
		return nil, err
	}

	devOpts := []render.DeviceOption{render.WithProfile(opts.Profile)}
	if opts.TTY != nil {
		devOpts = append(devOpts, render.WithRawModeFd(int(opts.TTY.Fd())))
	}
	renderer := render.NewRenderer(render.NewANSIDevice(opts.Output, devOpts...), opts.Rows, opts.Columns)

	s := &Session{
		cfg:      &cfg,
		reader:   reader,
		renderer: renderer,
		logger:   logger,
	}
	s.loop = engine.NewLoop(renderer, reader, engine.LoopConfig{
		FrameRate:     cfg.Engine.FrameRate,
		InputPollRate: cfg.Engine.InputPoll(),
		Logger:        logger,
	})
	s.loop.
		Register(games.TitleScene, title.New(opts.Columns, opts.Rows)).
		Register(games.SettingsScene, settings.New(s.cfg, opts.Columns, opts.Rows)).
		Register(games.SnakeScene, snake.New(s.cfg, opts.Columns, opts.Rows, seed))

	logger.Debug("session created",
		"size", fmt.Sprintf("%dx%d", opts.Columns, opts.Rows),
		"fps", cfg.Engine.FrameRate,
		"seed", seed,
	)
	return s, nil
}

// Config returns the settings shared by the scenes.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Run plays until the player quits or the input ends, starting at the
// title screen. The input reader is closed on return.
func (s *Session) Run() error {
	return s.RunScene(games.TitleScene)
}

// RunScene is Run starting at the given scene.
func (s *Session) RunScene(id engine.SceneID) error {
	defer s.reader.Close() //nolint:errcheck // nothing left to read

	err := s.loop.Run(id)
	if errors.Is(err, input.ErrClosed) {
		s.logger.Debug("input closed")
		return nil
	}
	return err
}

// Resize reports a new terminal size. Safe to call from any goroutine.
func (s *Session) Resize(columns, rows int) {
	if columns <= 0 || rows <= 0 {
		return
	}
	s.reader.Post(input.ResizeEvent(columns, rows))
}

// Close stops reading input, ending a running session.
func (s *Session) Close() error {
	return s.reader.Close()
}
