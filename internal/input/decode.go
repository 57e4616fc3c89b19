package input

import (
	"unicode/utf8"

	xinput "github.com/charmbracelet/x/input"
)

var namedKeys = map[rune]Key{
	xinput.KeyUp:        KeyUp,
	xinput.KeyDown:      KeyDown,
	xinput.KeyLeft:      KeyLeft,
	xinput.KeyRight:     KeyRight,
	xinput.KeyHome:      KeyHome,
	xinput.KeyEnd:       KeyEnd,
	xinput.KeyPgUp:      KeyPgUp,
	xinput.KeyPgDown:    KeyPgDn,
	xinput.KeyInsert:    KeyInsert,
	xinput.KeyDelete:    KeyDelete,
	xinput.KeyEnter:     KeyEnter,
	xinput.KeyKpEnter:   KeyEnter,
	xinput.KeyEscape:    KeyEscape,
	xinput.KeyBackspace: KeyBackspace,
	xinput.KeyTab:       KeyTab,
	xinput.KeyKpUp:      KeyUp,
	xinput.KeyKpDown:    KeyDown,
	xinput.KeyKpLeft:    KeyLeft,
	xinput.KeyKpRight:   KeyRight,
}

// translate converts a decoded terminal event into an Event. Key releases,
// terminal reports and keys without a game meaning are dropped.
func translate(ev xinput.Event) (Event, bool) {
	switch ev := ev.(type) {
	case xinput.KeyPressEvent:
		return translateKey(ev.Key())
	case xinput.WindowSizeEvent:
		if ev.Width <= 0 || ev.Height <= 0 {
			return Event{}, false
		}
		return ResizeEvent(ev.Width, ev.Height), true
	}
	return Event{}, false
}

func translateKey(k xinput.Key) (Event, bool) {
	mods := modifiers(k.Mod)

	if k.Text != "" {
		// Printable text already carries the shift state ("Q", "!").
		r, size := utf8.DecodeRuneInString(k.Text)
		if r == utf8.RuneError || size != len(k.Text) {
			return Event{}, false
		}
		ev := RuneEvent(r)
		ev.Modifiers = mods &^ ModShift
		return ev, true
	}

	if named, ok := namedKeys[k.Code]; ok {
		ev := KeyEvent(named)
		ev.Modifiers = mods
		return ev, true
	}

	if k.Code > 0 && k.Code < xinput.KeyExtended && utf8.ValidRune(k.Code) {
		ev := RuneEvent(k.Code)
		ev.Modifiers = mods
		return ev, true
	}
	return Event{}, false
}

func modifiers(m xinput.KeyMod) Modifier {
	var out Modifier
	if m.Contains(xinput.ModShift) {
		out |= ModShift
	}
	if m.Contains(xinput.ModAlt) {
		out |= ModAlt
	}
	if m.Contains(xinput.ModCtrl) {
		out |= ModCtrl
	}
	return out
}
