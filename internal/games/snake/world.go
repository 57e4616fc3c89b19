package snake

import (
	"math/rand"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/render"
)

// World is the playing field: the whole screen, with the outermost cells
// acting as walls. Snake and food x coordinates are always even.
type World struct {
	Width  int
	Height int
}

// Fits reports whether a snake of the given length can start in the world
// with a few moves of room ahead of it.
func (w World) Fits(size int) bool {
	return w.Width >= 2*size+8 && w.Height >= 6
}

// Start returns the tail position of a new snake.
func (w World) Start() core.Point {
	return core.Pt(2, 2)
}

// Bounds returns the whole screen.
func (w World) Bounds() core.Rect {
	return core.NewRect(0, 0, w.Width, w.Height)
}

// Field returns the area inside the walls a segment may occupy. A segment
// is two cells wide, so the right wall starts one column early.
func (w World) Field() core.Rect {
	return core.NewRect(1, 1, w.Width-3, w.Height-2)
}

// Center returns the middle of the screen.
func (w World) Center() core.Point {
	return w.Bounds().Center()
}

// Collides reports whether a segment at p hits a wall.
func (w World) Collides(p core.Point) bool {
	return !w.Field().Contains(p)
}

// RandomPosition returns a free-of-walls cell on the even-column grid.
func (w World) RandomPosition(rng *rand.Rand) core.Point {
	f := w.Field()
	loX, hiX := (f.X+1)/2, (f.Right()+1)/2
	loY, hiY := f.Y, f.Bottom()
	x, y := loX, loY
	if hiX > loX {
		x += rng.Intn(hiX - loX)
	}
	if hiY > loY {
		y += rng.Intn(hiY - loY)
	}
	return core.Pt(x*2, y)
}

// Border returns the outline of the field.
func (w World) Border() render.Instruction {
	return render.Rectangle{
		Origin: w.Bounds().Origin(),
		Width:  w.Width,
		Height: w.Height,
		Style:  render.Style{Fg: core.ColorGray},
	}
}
