package title

import (
	"testing"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/engine"
	"github.com/vovakirdan/term-snake/internal/games"
	"github.com/vovakirdan/term-snake/internal/input"
	"github.com/vovakirdan/term-snake/internal/render"
)

func press(t *testing.T, s *Scene, ev input.Event) engine.Signal {
	t.Helper()
	sig, err := s.ProcessInput(ev)
	if err != nil {
		t.Fatalf("ProcessInput(%v) error: %v", ev, err)
	}
	return sig
}

func TestMenuNavigation(t *testing.T) {
	s := New(80, 40)

	press(t, s, input.KeyEvent(input.KeyUp))
	if s.Selected() != OptionExit {
		t.Errorf("up on first option should wrap, Selected() = %d, expected %d", s.Selected(), OptionExit)
	}

	press(t, s, input.KeyEvent(input.KeyDown))
	press(t, s, input.RuneEvent('s'))
	press(t, s, input.KeyEvent(input.KeyDown))
	if s.Selected() != OptionExit {
		t.Errorf("Selected() = %d, expected %d", s.Selected(), OptionExit)
	}

	press(t, s, input.KeyEvent(input.KeyDown))
	if s.Selected() != OptionNewGame {
		t.Errorf("down on last option should wrap, Selected() = %d", s.Selected())
	}

	press(t, s, input.RuneEvent('s'))
	press(t, s, input.RuneEvent('w'))
	if s.Selected() != OptionNewGame {
		t.Errorf("Selected() = %d, expected %d", s.Selected(), OptionNewGame)
	}
}

func TestMenuConfirm(t *testing.T) {
	tests := []struct {
		name     string
		downs    int
		expected engine.Signal
	}{
		{"new game", 0, engine.LoadScene(games.SnakeScene)},
		{"settings", 1, engine.LoadScene(games.SettingsScene)},
		{"exit", 2, engine.Stop()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(80, 40)
			for range tc.downs {
				press(t, s, input.KeyEvent(input.KeyDown))
			}
			if sig := press(t, s, input.KeyEvent(input.KeyEnter)); sig != tc.expected {
				t.Errorf("ProcessInput(enter) = %v, expected %v", sig, tc.expected)
			}
		})
	}
}

func TestQuitStops(t *testing.T) {
	s := New(80, 40)
	if sig := press(t, s, input.RuneEvent('q')); sig != engine.Stop() {
		t.Errorf("ProcessInput(q) = %v, expected Stop", sig)
	}
}

func TestSelectedOptionHighlighted(t *testing.T) {
	s := New(80, 40)
	press(t, s, input.KeyEvent(input.KeyDown))

	fb := render.NewFrameBuffer(40, 80)
	for _, ins := range s.Draw(nil) {
		ins.Apply(fb)
	}

	for i, opt := range s.options {
		c := fb.At(opt.Position.Add(core.Pt(4, 0)))
		want := normalStyle
		if Option(i) == OptionSettings {
			want = selectedStyle
		}
		if c.Style() != want {
			t.Errorf("option %d style = %+v, expected %+v", i, c.Style(), want)
		}
	}
}

func TestResizeRecenters(t *testing.T) {
	s := New(80, 40)
	before := s.options[0].Position

	s.Resize(120, 50)
	after := s.options[0].Position

	if after.X-before.X != 20 || after.Y-before.Y != 5 {
		t.Errorf("option moved by (%d, %d), expected (20, 5)", after.X-before.X, after.Y-before.Y)
	}
}
