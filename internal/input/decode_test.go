package input

import (
	"errors"
	"strings"
	"testing"
	"time"

	xinput "github.com/charmbracelet/x/input"
)

// readAll decodes s through a Reader until the input ends.
func readAll(t *testing.T, s string) []Event {
	t.Helper()

	rd, err := NewReader(strings.NewReader(s), "xterm-256color")
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	defer rd.Close()

	var events []Event
	for {
		ok, err := rd.Poll(time.Second)
		if errors.Is(err, ErrClosed) {
			return events
		}
		if err != nil {
			t.Fatalf("Poll() error = %v", err)
		}
		if !ok {
			t.Fatalf("Poll() timed out after %v", events)
		}
		ev, err := rd.Read()
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		events = append(events, ev)
	}
}

func TestReaderDecodesKeys(t *testing.T) {
	ctrl := func(r rune) Event {
		return Event{Type: EventKey, Key: KeyRune, Rune: r, Modifiers: ModCtrl}
	}
	mod := func(k Key, m Modifier) Event {
		ev := KeyEvent(k)
		ev.Modifiers = m
		return ev
	}

	tests := []struct {
		name     string
		input    string
		expected []Event
	}{
		{"printable", "wasd", []Event{RuneEvent('w'), RuneEvent('a'), RuneEvent('s'), RuneEvent('d')}},
		{"upper case", "Q", []Event{RuneEvent('Q')}},
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Event{KeyEvent(KeyUp), KeyEvent(KeyDown), KeyEvent(KeyRight), KeyEvent(KeyLeft)}},
		{"ss3 arrows", "\x1bOA\x1bOD", []Event{KeyEvent(KeyUp), KeyEvent(KeyLeft)}},
		{"carriage return", "\r", []Event{KeyEvent(KeyEnter)}},
		{"space", " ", []Event{RuneEvent(' ')}},
		{"delete as backspace", "\x7f", []Event{KeyEvent(KeyBackspace)}},
		{"tab", "\t", []Event{KeyEvent(KeyTab)}},
		{"ctrl+c", "\x03", []Event{ctrl('c')}},
		{"lone escape", "\x1b", []Event{KeyEvent(KeyEscape)}},
		{"alt+x", "\x1bx", []Event{{Type: EventKey, Key: KeyRune, Rune: 'x', Modifiers: ModAlt}}},
		{"ctrl+up", "\x1b[1;5A", []Event{mod(KeyUp, ModCtrl)}},
		{"delete key", "\x1b[3~", []Event{KeyEvent(KeyDelete)}},
		{"utf-8", "é", []Event{RuneEvent('é')}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := readAll(t, tc.input)
			if len(got) != len(tc.expected) {
				t.Fatalf("decode(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("decode(%q)[%d] = %+v, expected %+v", tc.input, i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		ev       xinput.Event
		expected Event
		ok       bool
	}{
		{"shifted letter keeps text", xinput.KeyPressEvent{Code: 'q', Text: "Q", Mod: xinput.ModShift}, RuneEvent('Q'), true},
		{"keypad enter", xinput.KeyPressEvent{Code: xinput.KeyKpEnter}, KeyEvent(KeyEnter), true},
		{"window size", xinput.WindowSizeEvent{Width: 100, Height: 40}, ResizeEvent(100, 40), true},
		{"empty window size", xinput.WindowSizeEvent{}, Event{}, false},
		{"key release", xinput.KeyReleaseEvent{Code: 'q', Text: "q"}, Event{}, false},
		{"function key", xinput.KeyPressEvent{Code: xinput.KeyF1}, Event{}, false},
		{"multi-rune grapheme", xinput.KeyPressEvent{Code: xinput.KeyExtended, Text: "é"}, Event{}, false},
		{"unknown sequence", xinput.UnknownEvent("\x1b[99x"), Event{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := translate(tc.ev)
			if ok != tc.ok || got != tc.expected {
				t.Errorf("translate(%v) = %+v, %v, expected %+v, %v", tc.ev, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev       Event
		expected string
	}{
		{RuneEvent('q'), "q"},
		{RuneEvent(' '), " "},
		{KeyEvent(KeyUp), "up"},
		{KeyEvent(KeyEscape), "esc"},
		{KeyEvent(KeyEnter), "enter"},
		{Event{Type: EventKey, Key: KeyRune, Rune: 'c', Modifiers: ModCtrl}, "ctrl+c"},
		{Event{Type: EventKey, Key: KeyLeft, Modifiers: ModAlt | ModShift}, "alt+shift+left"},
		{ResizeEvent(80, 24), ""},
	}

	for _, tc := range tests {
		if got := tc.ev.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
