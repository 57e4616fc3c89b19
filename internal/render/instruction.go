package render

import (
	"github.com/rivo/uniseg"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Instruction is a single draw command. Scenes produce a fresh list of
// instructions every frame; the renderer applies them in order, so later
// writes to the same cell win.
type Instruction interface {
	Apply(fb *FrameBuffer)
}

// Border is the glyph set used to outline a Rectangle.
type Border struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

// Border presets.
var (
	RoundedBorder = Border{
		TopLeft: "╭", TopRight: "╮",
		BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
	}
	NormalBorder = Border{
		TopLeft: "┌", TopRight: "┐",
		BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
	}
	ASCIIBorder = Border{
		TopLeft: "+", TopRight: "+",
		BottomLeft: "+", BottomRight: "+",
		Horizontal: "-", Vertical: "|",
	}
)

// Rectangle draws the outline of a box. Interior cells are not written.
// A zero Border uses RoundedBorder.
type Rectangle struct {
	Origin core.Point
	Width  int
	Height int
	Style  Style
	Border Border
}

// Apply implements Instruction.
func (r Rectangle) Apply(fb *FrameBuffer) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	b := r.Border
	if b == (Border{}) {
		b = RoundedBorder
	}

	right := r.Width - 1
	bottom := r.Height - 1

	// Top and bottom edges, corners included.
	for x := 0; x <= right; x++ {
		fb.SetAt(r.Origin.Add(core.Pt(x, 0)), NewCell(b.glyphAt(x, 0, right, bottom), r.Style))
		fb.SetAt(r.Origin.Add(core.Pt(x, bottom)), NewCell(b.glyphAt(x, bottom, right, bottom), r.Style))
	}

	// Left and right edges.
	for y := 1; y < bottom; y++ {
		fb.SetAt(r.Origin.Add(core.Pt(0, y)), NewCell(b.Vertical, r.Style))
		fb.SetAt(r.Origin.Add(core.Pt(right, y)), NewCell(b.Vertical, r.Style))
	}
}

func (b Border) glyphAt(x, y, right, bottom int) string {
	top, bot := y == 0, y == bottom
	left, rgt := x == 0, x == right

	switch {
	case top && left:
		return b.TopLeft
	case top && rgt:
		return b.TopRight
	case bot && left:
		return b.BottomLeft
	case bot && rgt:
		return b.BottomRight
	case top || bot:
		return b.Horizontal
	default:
		return b.Vertical
	}
}

// DefaultFill is the glyph used by Square when none is set.
const DefaultFill = "█"

// Square fills a block of Size rows by 2×Size columns. Terminal cells are
// about twice as tall as they are wide, so doubling the width keeps the
// block visually square.
type Square struct {
	Origin core.Point
	Size   int
	Glyph  string
	Style  Style
}

// Apply implements Instruction.
func (s Square) Apply(fb *FrameBuffer) {
	if s.Size <= 0 {
		return
	}
	glyph := s.Glyph
	if glyph == "" {
		glyph = DefaultFill
	}
	cell := NewCell(glyph, s.Style)

	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size*2; x++ {
			fb.SetAt(s.Origin.Add(core.Pt(x, y)), cell)
		}
	}
}

// Text writes a string one grapheme cluster per cell. A line break ("\n" or
// "\r\n") continues on the next row at the origin column.
type Text struct {
	Origin  core.Point
	Content string
	Style   Style
}

// Apply implements Instruction.
func (t Text) Apply(fb *FrameBuffer) {
	pos := t.Origin
	gr := uniseg.NewGraphemes(t.Content)
	for gr.Next() {
		cluster := gr.Str()
		switch cluster {
		case "\n", "\r\n":
			pos = core.Pt(t.Origin.X, pos.Y+1)
			continue
		case "\r":
			continue
		}
		fb.SetAt(pos, NewCell(cluster, t.Style))
		pos.X++
	}
}
