// Package input turns terminal input into key and resize events and delivers
// them through a cancellable, pollable reader.
package input

import "strings"

// EventType distinguishes input event categories.
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
)

// Key identifies a named key. Printable characters use KeyRune.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyInsert
	KeyDelete
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
)

var keyNames = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDn:      "pgdown",
	KeyInsert:    "insert",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Event is a single input event.
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier

	// Width and Height are set for EventResize.
	Width  int
	Height int
}

// KeyEvent creates a key event for a named key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent creates a key event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// ResizeEvent creates a terminal resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// String returns the key in the "ctrl+c", "up", "q" notation used by key
// maps. Resize events and unknown keys return "".
func (e Event) String() string {
	if e.Type != EventKey {
		return ""
	}

	var name string
	switch e.Key {
	case KeyRune:
		name = string(e.Rune)
	case KeyNone:
		return ""
	default:
		name = keyNames[e.Key]
	}

	var b strings.Builder
	if e.Modifiers&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if e.Modifiers&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if e.Modifiers&ModShift != 0 {
		b.WriteString("shift+")
	}
	b.WriteString(name)
	return b.String()
}
