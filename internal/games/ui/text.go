// Package ui provides small on-screen entities shared by the game scenes.
package ui

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/render"
)

// Text is a possibly multi-line label that can be hidden and centered.
type Text struct {
	Position core.Point
	Style    render.Style

	value   string
	longest int
	hidden  bool
}

// NewText creates a visible text at the given position.
func NewText(value string, pos core.Point, style render.Style) *Text {
	t := &Text{Position: pos, Style: style}
	t.SetValue(value)
	return t
}

// Value returns the current content.
func (t *Text) Value() string {
	return t.value
}

// SetValue replaces the content.
func (t *Text) SetValue(value string) {
	t.value = value
	t.longest = 0
	for _, line := range strings.Split(value, "\n") {
		if w := uniseg.GraphemeClusterCount(strings.TrimSuffix(line, "\r")); w > t.longest {
			t.longest = w
		}
	}
}

// Width returns the length of the longest line in grapheme clusters.
func (t *Text) Width() int {
	return t.longest
}

// Height returns the number of lines.
func (t *Text) Height() int {
	return strings.Count(t.value, "\n") + 1
}

// CenterOn positions the text so its longest line is horizontally centered
// on p. The first line is drawn on row p.Y.
func (t *Text) CenterOn(p core.Point) {
	t.Position = p.Sub(core.Pt(t.longest/2, 0))
}

// Show makes the text visible.
func (t *Text) Show() { t.hidden = false }

// Hide stops the text from being drawn.
func (t *Text) Hide() { t.hidden = true }

// Visible reports whether the text is drawn.
func (t *Text) Visible() bool { return !t.hidden }

// Instructions returns the draw commands for the text, or nil when hidden.
func (t *Text) Instructions() []render.Instruction {
	if t.hidden || t.value == "" {
		return nil
	}
	return []render.Instruction{render.Text{Origin: t.Position, Content: t.value, Style: t.Style}}
}
