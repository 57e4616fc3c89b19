// Package title implements the main menu shown before a game starts.
package title

import (
	"time"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/engine"
	"github.com/vovakirdan/term-snake/internal/games"
	"github.com/vovakirdan/term-snake/internal/games/ui"
	"github.com/vovakirdan/term-snake/internal/input"
	"github.com/vovakirdan/term-snake/internal/render"
)

const logo = `███████ ███    ██  █████  ██   ██ ███████
██      ████   ██ ██   ██ ██  ██  ██
███████ ██ ██  ██ ███████ █████   █████
     ██ ██  ██ ██ ██   ██ ██  ██  ██
███████ ██   ████ ██   ██ ██   ██ ███████`

const snakeArt = `  ▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄
 █▀              ▀█▄▄▄▄▄▄▄
 ▀█▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▀▀`

const foodGlyph = "⬤"

// Option is a menu entry.
type Option int

const (
	OptionNewGame Option = iota
	OptionSettings
	OptionExit
)

var optionLabels = []string{
	"    NEW GAME    ",
	"    SETTINGS    ",
	"      EXIT      ",
}

var (
	normalStyle   = render.Style{Fg: core.ColorYellow}
	selectedStyle = render.Style{Fg: core.ColorBlack, Bg: core.ColorYellow}
)

var (
	_ engine.Scene     = (*Scene)(nil)
	_ engine.Resizable = (*Scene)(nil)
)

// Scene is the title menu.
type Scene struct {
	selected Option
	logo     *ui.Text
	art      *ui.Text
	food     *ui.Text
	options  []*ui.Text
}

// New creates the title scene laid out for a screen of the given size.
func New(columns, rows int) *Scene {
	s := &Scene{
		logo: ui.NewText(logo, core.Point{}, render.Style{Fg: core.ColorYellow}),
		art:  ui.NewText(snakeArt, core.Point{}, render.Style{Fg: core.ColorGreen}),
		food: ui.NewText(foodGlyph, core.Point{}, render.Style{Fg: core.ColorRed}),
	}
	for _, label := range optionLabels {
		s.options = append(s.options, ui.NewText(label, core.Point{}, normalStyle))
	}
	s.layout(columns, rows)
	return s
}

// Selected returns the highlighted option.
func (s *Scene) Selected() Option {
	return s.selected
}

func (s *Scene) layout(columns, rows int) {
	center := core.Pt(columns/2, rows/2)
	s.logo.CenterOn(center.Sub(core.Pt(0, 15)))
	s.art.CenterOn(center.Sub(core.Pt(0, 8)))
	s.food.Position = s.art.Position.Add(core.Pt(s.art.Width()+2, 1))
	for i, opt := range s.options {
		opt.CenterOn(center.Sub(core.Pt(0, 3-2*i)))
	}
}

// Resize implements engine.Resizable.
func (s *Scene) Resize(columns, rows int) {
	s.layout(columns, rows)
}

// Draw implements engine.Scene.
func (s *Scene) Draw(_ *engine.Timestep) []render.Instruction {
	var out []render.Instruction
	out = append(out, s.logo.Instructions()...)
	out = append(out, s.art.Instructions()...)
	out = append(out, s.food.Instructions()...)
	for i, opt := range s.options {
		opt.Style = normalStyle
		if Option(i) == s.selected {
			opt.Style = selectedStyle
		}
		out = append(out, opt.Instructions()...)
	}
	return out
}

// Update implements engine.Scene. The menu is static.
func (s *Scene) Update(_ time.Duration) (engine.Signal, error) {
	return engine.Run(), nil
}

// ProcessInput implements engine.Scene.
func (s *Scene) ProcessInput(ev input.Event) (engine.Signal, error) {
	switch input.MapKey(ev) {
	case core.ActionUp:
		n := Option(len(s.options))
		s.selected = (s.selected + n - 1) % n
	case core.ActionDown:
		s.selected = (s.selected + 1) % Option(len(s.options))
	case core.ActionConfirm:
		return s.choose(), nil
	case core.ActionQuit:
		return engine.Stop(), nil
	}
	return engine.Run(), nil
}

func (s *Scene) choose() engine.Signal {
	switch s.selected {
	case OptionNewGame:
		return engine.LoadScene(games.SnakeScene)
	case OptionSettings:
		return engine.LoadScene(games.SettingsScene)
	default:
		return engine.Stop()
	}
}
