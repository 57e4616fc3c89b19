package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/term-snake/internal/core"
)

// Device is a terminal output device. Every call may buffer; nothing is
// guaranteed to reach the terminal until Flush.
type Device interface {
	EnableRawMode() error
	DisableRawMode() error
	EnterAltScreen() error
	LeaveAltScreen() error
	ShowCursor() error
	HideCursor() error
	ClearScreen() error
	// MoveTo positions the cursor at a zero-based column and row.
	MoveTo(column, row int) error
	SetForeground(c core.Color) error
	SetBackground(c core.Color) error
	ResetColor() error
	Print(text string) error
	BeginSync() error
	EndSync() error
	Flush() error
}

// Synchronized output (DEC private mode 2026). Terminals that support it hold
// the screen until the matching end sequence; others ignore both.
const (
	beginSyncSeq = "?2026h"
	endSyncSeq   = "?2026l"

	defaultFgSeq = "39"
	defaultBgSeq = "49"
)

// ANSIDevice writes ANSI escape sequences to an io.Writer through a buffer.
// Colors are converted to the device's termenv profile, so an Ascii profile
// emits no color sequences at all.
type ANSIDevice struct {
	w       *bufio.Writer
	profile termenv.Profile

	fd    int
	state *term.State
}

// DeviceOption configures an ANSIDevice.
type DeviceOption func(*ANSIDevice)

// WithProfile sets the color profile used to encode colors.
func WithProfile(p termenv.Profile) DeviceOption {
	return func(d *ANSIDevice) {
		d.profile = p
	}
}

// WithRawModeFd sets the file descriptor switched to raw mode by
// EnableRawMode. Without it raw mode is a no-op, which is what remote
// sessions want: the client's terminal is already raw.
func WithRawModeFd(fd int) DeviceOption {
	return func(d *ANSIDevice) {
		d.fd = fd
	}
}

// NewANSIDevice creates a device writing to w.
func NewANSIDevice(w io.Writer, opts ...DeviceOption) *ANSIDevice {
	d := &ANSIDevice{
		w:       bufio.NewWriterSize(w, 16*1024),
		profile: termenv.ANSI256,
		fd:      -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *ANSIDevice) csi(seq string) error {
	if _, err := d.w.WriteString(termenv.CSI); err != nil {
		return err
	}
	_, err := d.w.WriteString(seq)
	return err
}

// EnableRawMode puts the configured terminal into raw mode.
func (d *ANSIDevice) EnableRawMode() error {
	if d.fd < 0 || d.state != nil || !term.IsTerminal(d.fd) {
		return nil
	}
	state, err := term.MakeRaw(d.fd)
	if err != nil {
		return err
	}
	d.state = state
	return nil
}

// DisableRawMode restores the terminal state saved by EnableRawMode.
func (d *ANSIDevice) DisableRawMode() error {
	if d.state == nil {
		return nil
	}
	err := term.Restore(d.fd, d.state)
	d.state = nil
	return err
}

// EnterAltScreen switches to the alternate screen buffer.
func (d *ANSIDevice) EnterAltScreen() error {
	return d.csi(termenv.AltScreenSeq)
}

// LeaveAltScreen returns to the main screen buffer.
func (d *ANSIDevice) LeaveAltScreen() error {
	return d.csi(termenv.ExitAltScreenSeq)
}

// ShowCursor makes the cursor visible.
func (d *ANSIDevice) ShowCursor() error {
	return d.csi(termenv.ShowCursorSeq)
}

// HideCursor hides the cursor.
func (d *ANSIDevice) HideCursor() error {
	return d.csi(termenv.HideCursorSeq)
}

// ClearScreen erases the display and homes the cursor.
func (d *ANSIDevice) ClearScreen() error {
	if err := d.csi(fmt.Sprintf(termenv.EraseDisplaySeq, 2)); err != nil {
		return err
	}
	return d.MoveTo(0, 0)
}

// MoveTo positions the cursor. ANSI coordinates are one-based.
func (d *ANSIDevice) MoveTo(column, row int) error {
	return d.csi(fmt.Sprintf(termenv.CursorPositionSeq, row+1, column+1))
}

// SetForeground sets the foreground color for subsequent output.
func (d *ANSIDevice) SetForeground(c core.Color) error {
	return d.setColor(c, false)
}

// SetBackground sets the background color for subsequent output.
func (d *ANSIDevice) SetBackground(c core.Color) error {
	return d.setColor(c, true)
}

func (d *ANSIDevice) setColor(c core.Color, bg bool) error {
	if d.profile == termenv.Ascii {
		return nil
	}
	if c == core.ColorReset {
		if bg {
			return d.csi(defaultBgSeq + "m")
		}
		return d.csi(defaultFgSeq + "m")
	}

	seq := d.profile.Color(c.Code()).Sequence(bg)
	if seq == "" {
		return nil
	}
	return d.csi(seq + "m")
}

// ResetColor resets all graphic attributes.
func (d *ANSIDevice) ResetColor() error {
	return d.csi(termenv.ResetSeq + "m")
}

// Print writes text at the cursor position.
func (d *ANSIDevice) Print(text string) error {
	_, err := d.w.WriteString(text)
	return err
}

// BeginSync starts a synchronized update.
func (d *ANSIDevice) BeginSync() error {
	return d.csi(beginSyncSeq)
}

// EndSync ends a synchronized update.
func (d *ANSIDevice) EndSync() error {
	return d.csi(endSyncSeq)
}

// Flush writes buffered output to the underlying writer.
func (d *ANSIDevice) Flush() error {
	return d.w.Flush()
}
