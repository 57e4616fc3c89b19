package ui

import (
	"strconv"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/render"
)

// Score counts points and renders them as "Score: N".
type Score struct {
	value int
	text  *Text
}

// NewScore creates a zero score drawn at pos.
func NewScore(pos core.Point, style render.Style) *Score {
	s := &Score{text: NewText("", pos, style)}
	s.sync()
	return s
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Increment adds n points.
func (s *Score) Increment(n int) {
	s.value += n
	s.sync()
}

// Reset sets the score back to zero.
func (s *Score) Reset() {
	s.value = 0
	s.sync()
}

// Text returns the label, e.g. "Score: 3".
func (s *Score) Text() string {
	return s.text.Value()
}

// Instructions returns the draw commands for the score.
func (s *Score) Instructions() []render.Instruction {
	return s.text.Instructions()
}

func (s *Score) sync() {
	s.text.SetValue("Score: " + strconv.Itoa(s.value))
}
