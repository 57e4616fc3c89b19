package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/config"
)

func update(t *testing.T, m PresetModel, msg tea.Msg) (PresetModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PresetModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected PresetModel", next)
	}
	return pm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPresetCursorStartsOnCurrent(t *testing.T) {
	m := NewPresetModel(80, 24, "hard")
	if got := m.Selected().Name; got != config.PresetHard {
		t.Errorf("Selected() = %s, expected %s", got, config.PresetHard)
	}

	m = NewPresetModel(80, 24, "unknown")
	if got := m.Selected().Name; got != config.PresetEasy {
		t.Errorf("Selected() = %s, expected %s", got, config.PresetEasy)
	}
}

func TestPresetNavigation(t *testing.T) {
	m := NewPresetModel(80, 24, "easy")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, runes("j"))
	if got := m.Selected().Name; got != config.PresetHard {
		t.Errorf("Selected() = %s, expected %s", got, config.PresetHard)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.Selected().Name; got != config.PresetNormal {
		t.Errorf("Selected() = %s, expected %s", got, config.PresetNormal)
	}
}

func TestPresetResults(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected PresetResult
	}{
		{"enter chooses", tea.KeyMsg{Type: tea.KeyEnter}, PresetChosen},
		{"esc keeps settings", tea.KeyMsg{Type: tea.KeyEsc}, PresetKept},
		{"q quits", runes("q"), PresetQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, PresetQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, cmd := update(t, NewPresetModel(80, 24, "normal"), tc.msg)
			if !m.Done() {
				t.Fatal("picker should be done")
			}
			if m.Result() != tc.expected {
				t.Errorf("Result() = %d, expected %d", m.Result(), tc.expected)
			}
			if cmd == nil {
				t.Error("expected a quit command")
			}
			if m.View() != "" {
				t.Error("View() should be empty once done")
			}
		})
	}
}

func TestPresetView(t *testing.T) {
	m := NewPresetModel(0, 0, "normal")
	view := m.View()

	for _, p := range config.Presets() {
		if !strings.Contains(view, string(p.Name)) {
			t.Errorf("View() missing preset %q", p.Name)
		}
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if lines := strings.Count(m.View(), "\n") + 1; lines != 40 {
		t.Errorf("View() has %d lines, expected 40 after resize", lines)
	}
}
