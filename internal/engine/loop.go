package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/input"
	"github.com/vovakirdan/term-snake/internal/render"
)

// Default loop settings.
const (
	DefaultFrameRate     = 60
	DefaultInputPollRate = 5 * time.Millisecond
)

// Display is the output side of the loop. *render.Renderer implements it.
type Display interface {
	Start() error
	Stop() error
	Draw(instructions []render.Instruction) error
}

// resizer is implemented by displays that can change their grid size.
type resizer interface {
	Resize(rows, columns int) error
}

// InputSource delivers input events. *input.Reader implements it.
type InputSource interface {
	// Poll waits up to timeout for an event. A true result means the next
	// Read returns without blocking.
	Poll(timeout time.Duration) (bool, error)
	Read() (input.Event, error)
}

// LoopConfig configures a Loop. Zero fields take defaults.
type LoopConfig struct {
	// FrameRate is the number of fixed updates per second.
	FrameRate int
	// InputPollRate bounds how long each iteration waits for input.
	InputPollRate time.Duration
	// Clock is sampled for frame timing. Defaults to SystemClock.
	Clock Clock
	// Sleep waits out the rest of a frame. Defaults to time.Sleep.
	Sleep func(time.Duration)
	// Logger receives loop diagnostics. Defaults to a discarding logger.
	Logger *log.Logger
}

// Loop drives scenes at a fixed update rate, independent of how fast frames
// can be drawn.
type Loop struct {
	display Display
	input   InputSource
	scenes  *SceneManager

	frameRate   int
	pollRate    time.Duration
	msPerUpdate time.Duration
	clock       Clock
	sleep       func(time.Duration)
	logger      *log.Logger

	lag    time.Duration
	active SceneID
}

// NewLoop creates a loop drawing to display and reading from in.
func NewLoop(display Display, in InputSource, cfg LoopConfig) *Loop {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultFrameRate
	}
	if cfg.InputPollRate <= 0 {
		cfg.InputPollRate = DefaultInputPollRate
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return &Loop{
		display:     display,
		input:       in,
		scenes:      NewSceneManager(),
		frameRate:   cfg.FrameRate,
		pollRate:    cfg.InputPollRate,
		msPerUpdate: time.Second / time.Duration(cfg.FrameRate),
		clock:       cfg.Clock,
		sleep:       cfg.Sleep,
		logger:      cfg.Logger,
	}
}

// Register adds a scene to the loop. Registering an id again replaces the
// previous scene.
func (l *Loop) Register(id SceneID, scene Scene) *Loop {
	l.scenes.Register(id, scene)
	return l
}

// Scenes returns the loop's scene manager.
func (l *Loop) Scenes() *SceneManager {
	return l.scenes
}

// UpdateInterval returns the fixed simulation step.
func (l *Loop) UpdateInterval() time.Duration {
	return l.msPerUpdate
}

// Lag returns the simulation time not yet consumed by updates.
func (l *Loop) Lag() time.Duration {
	return l.lag
}

// Active returns the id of the scene currently being run.
func (l *Loop) Active() SceneID {
	return l.active
}

// Run starts the display and runs scenes, beginning with initial, until a
// scene signals Stop or an error occurs. The display is stopped on every exit
// path. If both the loop and the display restore fail, the loop error is
// returned and the restore error is logged.
func (l *Loop) Run(initial SceneID) (err error) {
	scene, err := l.scenes.Load(initial)
	if err != nil {
		return err
	}
	l.active = initial
	l.lag = 0

	defer func() {
		stopErr := l.display.Stop()
		if stopErr == nil {
			return
		}
		if err != nil {
			l.logger.Error("failed to restore terminal", "err", stopErr)
			return
		}
		err = stopErr
	}()

	if err := l.display.Start(); err != nil {
		return err
	}

	l.logger.Debug("loop started", "scene", initial, "fps", l.frameRate, "poll", l.pollRate)
	enter(scene)

	ts := NewTimestep(l.clock)
	var (
		next    SceneID
		pending bool
	)

	for {
		if pending {
			scene, err = l.scenes.Load(next)
			if err != nil {
				return err
			}
			l.logger.Debug("scene loaded", "from", l.active, "to", next)
			l.active = next
			pending = false
			enter(scene)
		}

		ready, err := l.input.Poll(l.pollRate)
		if err != nil {
			return fmt.Errorf("engine: poll input: %w", err)
		}
		if ready {
			ev, err := l.input.Read()
			if err != nil {
				return fmt.Errorf("engine: read input: %w", err)
			}
			if err := l.resize(ev); err != nil {
				return err
			}

			sig, err := scene.ProcessInput(ev)
			if err != nil {
				return fmt.Errorf("engine: scene %q: process input: %w", l.active, err)
			}
			switch sig.Kind {
			case SignalStop:
				l.logger.Debug("stop requested", "scene", l.active)
				return nil
			case SignalLoad:
				next, pending = sig.Scene, true
			}
		}

		l.lag += ts.Delta()
		for l.lag >= l.msPerUpdate {
			l.lag -= l.msPerUpdate

			sig, err := scene.Update(l.msPerUpdate)
			if err != nil {
				return fmt.Errorf("engine: scene %q: update: %w", l.active, err)
			}
			switch sig.Kind {
			case SignalStop:
				l.logger.Debug("stop requested", "scene", l.active)
				return nil
			case SignalLoad:
				next, pending = sig.Scene, true
			}
		}

		if err := l.display.Draw(scene.Draw(ts)); err != nil {
			return fmt.Errorf("engine: draw: %w", err)
		}

		if remaining := l.msPerUpdate - ts.ElapsedTime(); remaining > 0 {
			l.sleep(remaining)
		}

		if fps, ok := ts.TrackFrame(); ok {
			l.logger.Debug("frame rate", "fps", fps, "scene", l.active)
		}
	}
}

func enter(scene Scene) {
	if e, ok := scene.(Enterable); ok {
		e.Enter()
	}
}

func (l *Loop) resize(ev input.Event) error {
	if ev.Type != input.EventResize {
		return nil
	}
	if r, ok := l.display.(resizer); ok {
		if err := r.Resize(ev.Height, ev.Width); err != nil {
			return fmt.Errorf("engine: resize: %w", err)
		}
	}

	for _, id := range l.scenes.IDs() {
		scene, err := l.scenes.Load(id)
		if err != nil {
			continue
		}
		if r, ok := scene.(Resizable); ok {
			r.Resize(ev.Width, ev.Height)
		}
	}
	return nil
}
