package ui

import (
	"testing"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/render"
)

func TestTextWidth(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		width  int
		height int
	}{
		{"empty", "", 0, 1},
		{"single line", "PAUSED", 6, 1},
		{"longest line wins", "ab\nabcd\nabc", 4, 3},
		{"crlf", "abc\r\nab", 3, 2},
		{"graphemes", "e\u0301x", 2, 1},
		{"wide glyph counts once", "⬤", 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			txt := NewText(tc.value, core.Pt(0, 0), render.Style{})
			if txt.Width() != tc.width {
				t.Errorf("Width() = %d, expected %d", txt.Width(), tc.width)
			}
			if txt.Height() != tc.height {
				t.Errorf("Height() = %d, expected %d", txt.Height(), tc.height)
			}
		})
	}
}

func TestTextCenterOn(t *testing.T) {
	txt := NewText("GAME OVER", core.Pt(0, 0), render.Style{})
	txt.CenterOn(core.Pt(40, 12))

	if txt.Position != core.Pt(36, 12) {
		t.Errorf("Position = %v, expected (36, 12)", txt.Position)
	}
}

func TestTextVisibility(t *testing.T) {
	txt := NewText("hi", core.Pt(1, 1), render.Style{Fg: core.ColorRed})
	if !txt.Visible() {
		t.Fatal("new text should be visible")
	}
	if got := len(txt.Instructions()); got != 1 {
		t.Fatalf("Instructions() returned %d items, expected 1", got)
	}

	txt.Hide()
	if txt.Visible() || txt.Instructions() != nil {
		t.Error("hidden text should produce no instructions")
	}

	txt.Show()
	fb := render.NewFrameBuffer(3, 5)
	for _, ins := range txt.Instructions() {
		ins.Apply(fb)
	}
	if c := fb.At(core.Pt(2, 1)); c.Glyph != "i" || c.Fg != core.ColorRed {
		t.Errorf("At(2, 1) = %+v, expected red 'i'", c)
	}
}

func TestScore(t *testing.T) {
	s := NewScore(core.Pt(2, 0), render.Style{})
	if s.Text() != "Score: 0" {
		t.Errorf("Text() = %q, expected %q", s.Text(), "Score: 0")
	}

	s.Increment(1)
	s.Increment(2)
	if s.Value() != 3 || s.Text() != "Score: 3" {
		t.Errorf("after increments Value() = %d, Text() = %q", s.Value(), s.Text())
	}

	s.Reset()
	if s.Value() != 0 || s.Text() != "Score: 0" {
		t.Errorf("after Reset Value() = %d, Text() = %q", s.Value(), s.Text())
	}
}
