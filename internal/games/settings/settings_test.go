package settings

import (
	"testing"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/engine"
	"github.com/vovakirdan/term-snake/internal/games"
	"github.com/vovakirdan/term-snake/internal/input"
)

func newScene(t *testing.T) (*Scene, *config.Config) {
	t.Helper()
	cfg := config.Default()
	return New(&cfg, 80, 24), &cfg
}

func send(t *testing.T, s *Scene, events ...input.Event) engine.Signal {
	t.Helper()
	sig := engine.Run()
	for _, ev := range events {
		var err error
		sig, err = s.ProcessInput(ev)
		if err != nil {
			t.Fatalf("ProcessInput(%v) error: %v", ev, err)
		}
	}
	return sig
}

func TestToggles(t *testing.T) {
	s, cfg := newScene(t)
	showFPS, border := cfg.Display.ShowFrameRate, cfg.Display.ShowBorder

	send(t, s, input.KeyEvent(input.KeyEnter))
	if cfg.Display.ShowFrameRate == showFPS {
		t.Error("enter on first item should toggle ShowFrameRate")
	}

	send(t, s, input.KeyEvent(input.KeyDown), input.KeyEvent(input.KeyLeft))
	if cfg.Display.ShowBorder == border {
		t.Error("left on border item should toggle ShowBorder")
	}
	if s.Label(ItemBorder) != "Border: "+onOff(!border) {
		t.Errorf("Label(ItemBorder) = %q", s.Label(ItemBorder))
	}

	send(t, s, input.KeyEvent(input.KeyDown), input.KeyEvent(input.KeyRight))
	if cfg.Snake.Style != config.StyleFlash {
		t.Errorf("Style = %q, expected %q", cfg.Snake.Style, config.StyleFlash)
	}
	send(t, s, input.KeyEvent(input.KeyRight))
	if cfg.Snake.Style != config.StyleSolid {
		t.Errorf("Style = %q, expected %q", cfg.Snake.Style, config.StyleSolid)
	}
}

func TestSpeedClamped(t *testing.T) {
	s, cfg := newScene(t)
	for range ItemSpeed {
		send(t, s, input.KeyEvent(input.KeyDown))
	}
	if s.Selected() != ItemSpeed {
		t.Fatalf("Selected() = %d, expected %d", s.Selected(), ItemSpeed)
	}

	cfg.Snake.Speed = MaxSpeed - 1
	send(t, s, input.KeyEvent(input.KeyRight), input.KeyEvent(input.KeyRight))
	if cfg.Snake.Speed != MaxSpeed {
		t.Errorf("Speed = %g, expected %d", cfg.Snake.Speed, MaxSpeed)
	}

	cfg.Snake.Speed = MinSpeed
	send(t, s, input.KeyEvent(input.KeyLeft))
	if cfg.Snake.Speed != MinSpeed {
		t.Errorf("Speed = %g, expected %d", cfg.Snake.Speed, MinSpeed)
	}
	if s.Label(ItemSpeed) != "Speed: 1" {
		t.Errorf("Label(ItemSpeed) = %q, expected %q", s.Label(ItemSpeed), "Speed: 1")
	}
}

func TestNavigationWraps(t *testing.T) {
	s, _ := newScene(t)
	send(t, s, input.KeyEvent(input.KeyUp))
	if s.Selected() != ItemSpeed {
		t.Errorf("up on first item: Selected() = %d, expected %d", s.Selected(), ItemSpeed)
	}
	for range itemCount {
		send(t, s, input.KeyEvent(input.KeyDown))
	}
	if s.Selected() != ItemSpeed {
		t.Errorf("Selected() = %d after full cycle, expected %d", s.Selected(), ItemSpeed)
	}
}

func TestBackAndQuit(t *testing.T) {
	s, _ := newScene(t)
	if sig := send(t, s, input.KeyEvent(input.KeyEscape)); sig != engine.LoadScene(games.TitleScene) {
		t.Errorf("ProcessInput(esc) = %v, expected Load(title)", sig)
	}
	if sig := send(t, s, input.RuneEvent('q')); sig != engine.Stop() {
		t.Errorf("ProcessInput(q) = %v, expected Stop", sig)
	}
}
