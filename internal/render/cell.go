// Package render turns per-frame draw instructions into minimal terminal
// output. A FrameBuffer tracks which cells changed since the last flush and the
// Renderer emits only those, batched into one synchronized update.
package render

import "github.com/vovakirdan/term-snake/internal/core"

// Style holds the colors applied to a cell. The zero value is the terminal's
// default foreground and background.
type Style struct {
	Fg core.Color
	Bg core.Color
}

// Cell is one grid position: a single grapheme cluster plus its colors.
type Cell struct {
	Glyph string
	Fg    core.Color
	Bg    core.Color
}

// Blank is the empty cell every grid position starts as.
var Blank = Cell{Glyph: " "}

// NewCell creates a cell with the given glyph and style.
func NewCell(glyph string, style Style) Cell {
	return Cell{Glyph: glyph, Fg: style.Fg, Bg: style.Bg}
}

// Style returns the colors of the cell.
func (c Cell) Style() Style {
	return Style{Fg: c.Fg, Bg: c.Bg}
}
