package render

import (
	"iter"
	"slices"

	"github.com/vovakirdan/term-snake/internal/core"
)

// FrameBuffer is a fixed rows×columns grid of cells.
//
// It keeps two copies of the grid: the frame being composed and the contents
// last sent to the output device. Writes mark cells dirty, and a list of dirty
// indices lets the renderer visit only the cells that may have changed. A
// second list remembers every non-blank cell so Clear touches only ink.
type FrameBuffer struct {
	rows    int
	columns int

	cells []Cell // frame being composed
	front []Cell // contents last flushed to the device

	dirty   []bool
	changed []int

	inked   []int
	inInked []bool
}

// NewFrameBuffer creates a blank frame buffer. Negative dimensions are treated
// as zero.
func NewFrameBuffer(rows, columns int) *FrameBuffer {
	rows = max(rows, 0)
	columns = max(columns, 0)
	n := rows * columns

	fb := &FrameBuffer{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, n),
		front:   make([]Cell, n),
		dirty:   make([]bool, n),
		inInked: make([]bool, n),
	}
	for i := range fb.cells {
		fb.cells[i] = Blank
		fb.front[i] = Blank
	}
	return fb
}

// Rows returns the grid height.
func (fb *FrameBuffer) Rows() int {
	return fb.rows
}

// Columns returns the grid width.
func (fb *FrameBuffer) Columns() int {
	return fb.columns
}

// Bounds returns the grid area anchored at the origin.
func (fb *FrameBuffer) Bounds() core.Rect {
	return core.NewRect(0, 0, fb.columns, fb.rows)
}

func (fb *FrameBuffer) index(p core.Point) (int, bool) {
	if !fb.Bounds().Contains(p) {
		return 0, false
	}
	return p.Y*fb.columns + p.X, true
}

// At returns the cell of the frame being composed at p.
// Out-of-bounds positions read as Blank.
func (fb *FrameBuffer) At(p core.Point) Cell {
	idx, ok := fb.index(p)
	if !ok {
		return Blank
	}
	return fb.cells[idx]
}

// SetAt stores a cell at p. Writes outside the grid are dropped and reported
// by returning false.
func (fb *FrameBuffer) SetAt(p core.Point, c Cell) bool {
	idx, ok := fb.index(p)
	if !ok {
		return false
	}
	if fb.cells[idx] == c {
		return true
	}

	fb.cells[idx] = c
	fb.markDirty(idx)
	if c != Blank && !fb.inInked[idx] {
		fb.inInked[idx] = true
		fb.inked = append(fb.inked, idx)
	}
	return true
}

func (fb *FrameBuffer) markDirty(idx int) {
	if fb.dirty[idx] {
		return
	}
	fb.dirty[idx] = true
	fb.changed = append(fb.changed, idx)
}

// Clear blanks every non-blank cell and marks it dirty. Cells that are
// already blank are left alone, so clearing twice in a row adds nothing the
// second time.
func (fb *FrameBuffer) Clear() {
	for _, idx := range fb.inked {
		fb.inInked[idx] = false
		if fb.cells[idx] != Blank {
			fb.cells[idx] = Blank
			fb.markDirty(idx)
		}
	}
	fb.inked = fb.inked[:0]
}

// FrameChanged reports whether any cell differs from what was last flushed.
func (fb *FrameBuffer) FrameChanged() bool {
	for _, idx := range fb.changed {
		if fb.cells[idx] != fb.front[idx] {
			return true
		}
	}
	return false
}

// Changed yields every cell that differs from the flushed frame, in row-major
// order. Only dirty cells are visited.
func (fb *FrameBuffer) Changed() iter.Seq2[core.Point, Cell] {
	return func(yield func(core.Point, Cell) bool) {
		slices.Sort(fb.changed)
		for _, idx := range fb.changed {
			c := fb.cells[idx]
			if c == fb.front[idx] {
				continue
			}
			p := core.Pt(idx%fb.columns, idx/fb.columns)
			if !yield(p, c) {
				return
			}
		}
	}
}

// Commit records the composed frame as flushed and resets dirty tracking.
func (fb *FrameBuffer) Commit() {
	for _, idx := range fb.changed {
		fb.front[idx] = fb.cells[idx]
		fb.dirty[idx] = false
	}
	fb.changed = fb.changed[:0]
}

// DirtyCount returns the number of cells marked dirty since the last Commit.
func (fb *FrameBuffer) DirtyCount() int {
	return len(fb.changed)
}
