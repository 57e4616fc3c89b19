// Package settings implements the in-game settings screen. Changes are
// written straight into the shared config and picked up by the snake scene
// the next time it resets.
package settings

import (
	"fmt"
	"time"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/engine"
	"github.com/vovakirdan/term-snake/internal/games"
	"github.com/vovakirdan/term-snake/internal/games/ui"
	"github.com/vovakirdan/term-snake/internal/input"
	"github.com/vovakirdan/term-snake/internal/render"
)

// Speed limits reachable from the menu.
const (
	MinSpeed = 1
	MaxSpeed = 40
)

// Item is a settings entry.
type Item int

const (
	ItemFrameRate Item = iota
	ItemBorder
	ItemStyle
	ItemSpeed
	itemCount
)

var (
	normalStyle   = render.Style{Fg: core.ColorYellow}
	selectedStyle = render.Style{Fg: core.ColorBlack, Bg: core.ColorYellow}
)

var (
	_ engine.Scene     = (*Scene)(nil)
	_ engine.Resizable = (*Scene)(nil)
)

// Scene is the settings menu.
type Scene struct {
	cfg      *config.Config
	selected Item
	heading  *ui.Text
	hint     *ui.Text
	items    [itemCount]*ui.Text
}

// New creates the settings scene editing cfg.
func New(cfg *config.Config, columns, rows int) *Scene {
	s := &Scene{
		cfg:     cfg,
		heading: ui.NewText("SETTINGS", core.Point{}, render.Style{Fg: core.ColorGreen}),
		hint:    ui.NewText("←/→ change · enter toggle · esc back", core.Point{}, render.Style{Fg: core.ColorGray}),
	}
	for i := range s.items {
		s.items[i] = ui.NewText("", core.Point{}, normalStyle)
	}
	s.refresh()
	s.layout(columns, rows)
	return s
}

// Selected returns the highlighted item.
func (s *Scene) Selected() Item {
	return s.selected
}

// Label returns the rendered text of an item, e.g. "Border: on".
func (s *Scene) Label(item Item) string {
	switch item {
	case ItemFrameRate:
		return "Show FPS: " + onOff(s.cfg.Display.ShowFrameRate)
	case ItemBorder:
		return "Border: " + onOff(s.cfg.Display.ShowBorder)
	case ItemStyle:
		return "Style: " + string(s.cfg.Snake.Style)
	case ItemSpeed:
		return fmt.Sprintf("Speed: %g", s.cfg.Snake.Speed)
	default:
		return ""
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s *Scene) refresh() {
	for i, txt := range s.items {
		txt.SetValue(fmt.Sprintf("  %-18s  ", s.Label(Item(i))))
	}
}

func (s *Scene) layout(columns, rows int) {
	center := core.Pt(columns/2, rows/2)
	s.heading.CenterOn(center.Sub(core.Pt(0, 6)))
	for i, txt := range s.items {
		txt.CenterOn(center.Sub(core.Pt(0, 3-2*i)))
	}
	s.hint.CenterOn(center.Add(core.Pt(0, 6)))
}

// Resize implements engine.Resizable.
func (s *Scene) Resize(columns, rows int) {
	s.layout(columns, rows)
}

// Draw implements engine.Scene.
func (s *Scene) Draw(_ *engine.Timestep) []render.Instruction {
	out := s.heading.Instructions()
	for i, txt := range s.items {
		txt.Style = normalStyle
		if Item(i) == s.selected {
			txt.Style = selectedStyle
		}
		out = append(out, txt.Instructions()...)
	}
	return append(out, s.hint.Instructions()...)
}

// Update implements engine.Scene.
func (s *Scene) Update(_ time.Duration) (engine.Signal, error) {
	return engine.Run(), nil
}

// ProcessInput implements engine.Scene.
func (s *Scene) ProcessInput(ev input.Event) (engine.Signal, error) {
	switch input.MapKey(ev) {
	case core.ActionUp:
		s.selected = (s.selected + itemCount - 1) % itemCount
	case core.ActionDown:
		s.selected = (s.selected + 1) % itemCount
	case core.ActionLeft:
		s.change(-1)
	case core.ActionRight, core.ActionConfirm:
		s.change(1)
	case core.ActionBack:
		return engine.LoadScene(games.TitleScene), nil
	case core.ActionQuit:
		return engine.Stop(), nil
	}
	return engine.Run(), nil
}

// change adjusts the selected item. Toggles flip regardless of delta.
func (s *Scene) change(delta int) {
	switch s.selected {
	case ItemFrameRate:
		s.cfg.Display.ShowFrameRate = !s.cfg.Display.ShowFrameRate
	case ItemBorder:
		s.cfg.Display.ShowBorder = !s.cfg.Display.ShowBorder
	case ItemStyle:
		if s.cfg.Snake.Style == config.StyleFlash {
			s.cfg.Snake.Style = config.StyleSolid
		} else {
			s.cfg.Snake.Style = config.StyleFlash
		}
	case ItemSpeed:
		s.cfg.Snake.Speed = core.ClampF(s.cfg.Snake.Speed+float64(delta), MinSpeed, MaxSpeed)
	}
	s.refresh()
}
