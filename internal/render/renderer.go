package render

import (
	"errors"
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Renderer owns the terminal for the duration of a game session. It composes
// each frame in a FrameBuffer and sends only the cells that changed.
type Renderer struct {
	dev     Device
	buf     *FrameBuffer
	running bool

	// Terminal state changes that Stop has to undo.
	rawMode   bool
	altScreen bool
	hidden    bool
}

// NewRenderer creates a renderer for a rows×columns grid on dev.
func NewRenderer(dev Device, rows, columns int) *Renderer {
	return &Renderer{
		dev: dev,
		buf: NewFrameBuffer(rows, columns),
	}
}

// Buffer returns the frame buffer being rendered.
func (r *Renderer) Buffer() *FrameBuffer {
	return r.buf
}

// Running reports whether Start has been called without a matching Stop.
func (r *Renderer) Running() bool {
	return r.running
}

// Start prepares the terminal: raw mode, alternate screen, hidden cursor and a
// cleared screen. Calling Start on a running renderer does nothing.
func (r *Renderer) Start() error {
	if r.running {
		return nil
	}

	if !r.rawMode {
		if err := r.dev.EnableRawMode(); err != nil {
			return fmt.Errorf("render: enable raw mode: %w", err)
		}
		r.rawMode = true
	}
	if !r.altScreen {
		if err := r.dev.EnterAltScreen(); err != nil {
			return fmt.Errorf("render: enter alternate screen: %w", err)
		}
		r.altScreen = true
	}
	if !r.hidden {
		if err := r.dev.HideCursor(); err != nil {
			return fmt.Errorf("render: hide cursor: %w", err)
		}
		r.hidden = true
	}
	if err := r.dev.ClearScreen(); err != nil {
		return fmt.Errorf("render: clear screen: %w", err)
	}
	if err := r.dev.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}

	// The screen is blank now; forget whatever an earlier session flushed.
	r.buf = NewFrameBuffer(r.buf.Rows(), r.buf.Columns())
	r.running = true
	return nil
}

// Stop restores the terminal to the state it was in before Start, undoing
// only the steps Start got through. Calling Stop on a stopped renderer does
// nothing. Every restore step is attempted even if an earlier one fails.
func (r *Renderer) Stop() error {
	r.running = false

	var errs []error
	wrote := r.altScreen || r.hidden
	if r.altScreen {
		if err := r.dev.ResetColor(); err != nil {
			errs = append(errs, fmt.Errorf("render: reset color: %w", err))
		}
	}
	if r.hidden {
		r.hidden = false
		if err := r.dev.ShowCursor(); err != nil {
			errs = append(errs, fmt.Errorf("render: show cursor: %w", err))
		}
	}
	if r.altScreen {
		r.altScreen = false
		if err := r.dev.LeaveAltScreen(); err != nil {
			errs = append(errs, fmt.Errorf("render: leave alternate screen: %w", err))
		}
	}
	if wrote {
		if err := r.dev.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("render: flush: %w", err))
		}
	}
	if r.rawMode {
		r.rawMode = false
		if err := r.dev.DisableRawMode(); err != nil {
			errs = append(errs, fmt.Errorf("render: disable raw mode: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Resize replaces the frame buffer with a blank one of the new size and
// clears the screen so the next Draw repaints everything.
func (r *Renderer) Resize(rows, columns int) error {
	if rows == r.buf.Rows() && columns == r.buf.Columns() {
		return nil
	}
	r.buf = NewFrameBuffer(rows, columns)
	if !r.running {
		return nil
	}
	if err := r.dev.ClearScreen(); err != nil {
		return fmt.Errorf("render: clear screen: %w", err)
	}
	if err := r.dev.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return nil
}

// Draw composes a frame from instructions and writes the difference from the
// previous frame. When nothing changed no bytes are written.
func (r *Renderer) Draw(instructions []Instruction) error {
	r.buf.Clear()
	for _, in := range instructions {
		in.Apply(r.buf)
	}

	if !r.buf.FrameChanged() {
		r.buf.Commit()
		return nil
	}

	if err := r.dev.BeginSync(); err != nil {
		return fmt.Errorf("render: begin sync: %w", err)
	}

	var (
		fg, bg      = core.ColorReset, core.ColorReset
		cursor      core.Point
		cursorKnown bool
	)
	for p, c := range r.buf.Changed() {
		if !cursorKnown || cursor != p {
			if err := r.dev.MoveTo(p.X, p.Y); err != nil {
				return fmt.Errorf("render: move cursor: %w", err)
			}
		}
		if c.Fg != fg {
			if err := r.dev.SetForeground(c.Fg); err != nil {
				return fmt.Errorf("render: set foreground: %w", err)
			}
			fg = c.Fg
		}
		if c.Bg != bg {
			if err := r.dev.SetBackground(c.Bg); err != nil {
				return fmt.Errorf("render: set background: %w", err)
			}
			bg = c.Bg
		}
		if err := r.dev.Print(c.Glyph); err != nil {
			return fmt.Errorf("render: print: %w", err)
		}

		// Track where the terminal left the cursor. Past the last column the
		// position depends on the terminal's wrap handling, so force a move.
		w := uniseg.StringWidth(c.Glyph)
		cursor = core.Pt(p.X+w, p.Y)
		cursorKnown = w > 0 && cursor.X < r.buf.Columns()
	}

	if err := r.dev.ResetColor(); err != nil {
		return fmt.Errorf("render: reset color: %w", err)
	}
	if err := r.dev.EndSync(); err != nil {
		return fmt.Errorf("render: end sync: %w", err)
	}
	if err := r.dev.Flush(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}

	r.buf.Commit()
	return nil
}
