// Package snake implements the snake game scene.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/engine"
	"github.com/vovakirdan/term-snake/internal/games"
	"github.com/vovakirdan/term-snake/internal/games/ui"
	"github.com/vovakirdan/term-snake/internal/input"
	"github.com/vovakirdan/term-snake/internal/render"
)

// State is the play state of the game.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
	StateTooSmall
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateTooSmall:
		return "too_small"
	default:
		return "unknown"
	}
}

var stateLabels = map[State]string{
	StatePaused:   "PAUSED",
	StateGameOver: "GAME OVER",
	StateTooSmall: "Terminal too small",
}

var (
	_ engine.Scene     = (*Game)(nil)
	_ engine.Resizable = (*Game)(nil)
)

// Game is the snake scene. Settings are read from the shared config on
// every Reset.
type Game struct {
	cfg        *config.Config
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	world World
	snake *Snake
	food  Food
	state State
	ticks int

	score  *ui.Score
	fps    *ui.Text
	status *ui.Text
}

// New creates a game for a screen of the given size. The seed makes food
// placement reproducible across runs.
func New(cfg *config.Config, columns, rows int, seed int64) *Game {
	g := &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		world:  World{Width: columns, Height: rows},
		score:  ui.NewScore(core.Pt(2, 0), render.Style{Fg: core.ColorWhite}),
		fps:    ui.NewText("", core.Point{}, render.Style{Fg: core.ColorWhite}),
		status: ui.NewText("", core.Point{}, render.Style{Fg: core.ColorWhite}),
	}
	g.Reset()
	return g
}

// Reset starts a new round with the current settings.
func (g *Game) Reset() {
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.ticks = 0
	g.score.Reset()
	g.snake = NewSnake(g.world.Start(), g.cfg.Snake.Size, g.cfg.Snake.Speed, g.cfg.Snake.Style)

	if !g.world.Fits(g.cfg.Snake.Size) {
		g.setState(StateTooSmall)
		return
	}
	g.food.Respawn(g.world, g.rng, g.snake)
	g.setState(StatePlaying)
}

// State returns the current play state.
func (g *Game) State() State {
	return g.state
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score.Value()
}

func (g *Game) setState(s State) {
	g.state = s
	label, ok := stateLabels[s]
	if !ok {
		g.status.Hide()
		return
	}
	g.status.SetValue(label)
	g.status.CenterOn(g.world.Center())
	g.status.Show()
}

// Enter implements engine.Enterable. Coming from the title screen always
// starts a new round, picking up changes made on the settings screen.
func (g *Game) Enter() {
	g.Reset()
}

// Resize implements engine.Resizable. The round restarts on the new field.
func (g *Game) Resize(columns, rows int) {
	g.world = World{Width: columns, Height: rows}
	g.Reset()
}

// ProcessInput implements engine.Scene.
func (g *Game) ProcessInput(ev input.Event) (engine.Signal, error) {
	switch input.MapKey(ev) {
	case core.ActionQuit:
		return engine.Stop(), nil
	case core.ActionBack:
		g.Reset()
		return engine.LoadScene(games.TitleScene), nil
	case core.ActionPause:
		switch g.state {
		case StatePlaying:
			g.setState(StatePaused)
		case StatePaused:
			g.setState(StatePlaying)
		}
	case core.ActionRestart:
		if g.state == StateGameOver {
			g.Reset()
		}
	case core.ActionUp:
		g.turn(DirUp)
	case core.ActionDown:
		g.turn(DirDown)
	case core.ActionLeft:
		g.turn(DirLeft)
	case core.ActionRight:
		g.turn(DirRight)
	}
	return engine.Run(), nil
}

func (g *Game) turn(d Direction) {
	if g.state == StatePlaying {
		g.snake.Turn(d)
	}
}

// Update implements engine.Scene.
func (g *Game) Update(elapsed time.Duration) (engine.Signal, error) {
	if g.state != StatePlaying {
		return engine.Run(), nil
	}

	g.ticks++
	g.snake.SetSpeed(g.difficulty.Speed(g.cfg.Snake.Speed, g.score.Value(), g.ticks))

	for moves := g.snake.Advance(elapsed); moves > 0 && g.state == StatePlaying; moves-- {
		g.step()
	}
	return engine.Run(), nil
}

// step moves the snake once and resolves collisions.
func (g *Game) step() {
	next := g.snake.NextHead()
	if g.world.Collides(next) || g.snake.Occupies(next) {
		g.setState(StateGameOver)
		return
	}

	g.snake.Move()
	if next == g.food.Position {
		g.score.Increment(1)
		g.snake.Grow(g.cfg.Snake.GrowRate)
		g.food.Respawn(g.world, g.rng, g.snake)
	}
}

// Draw implements engine.Scene.
func (g *Game) Draw(ts *engine.Timestep) []render.Instruction {
	var out []render.Instruction
	if g.cfg.Display.ShowBorder {
		out = append(out, g.world.Border())
	}
	if g.state != StateTooSmall {
		out = append(out, g.food.Instructions()...)
		out = append(out, g.snake.Instructions()...)
	}
	out = append(out, g.score.Instructions()...)

	if g.cfg.Display.ShowFrameRate && ts != nil {
		label := fmt.Sprintf(" FPS: %d ", ts.FrameRate())
		g.fps.SetValue(label)
		g.fps.Position = core.Pt(g.world.Width-(len(label)+6), 0)
		out = append(out, g.fps.Instructions()...)
	}

	return append(out, g.status.Instructions()...)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticks: %d, Score: %d, State: %s\n", g.ticks, g.score.Value(), g.state)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Speed: %.2f\n", g.snake.Len(), g.snake.Direction(), g.snake.Speed())
	head := g.snake.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, g.food.Position.X, g.food.Position.Y)
	return b.String()
}
