// Package tui provides the Bubble Tea screens shown outside the game loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/config"
)

// PresetResult is the outcome of the preset picker.
type PresetResult int

const (
	PresetChosen PresetResult = iota
	PresetKept                // Back: play with the current settings
	PresetQuit
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2")).
			MarginBottom(1)
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// PresetModel lets the player pick a difficulty preset before the game starts.
type PresetModel struct {
	presets []config.PresetInfo
	table   table.Model
	help    help.Model
	keys    PresetKeyMap
	width   int
	height  int
	result  PresetResult
	done    bool
}

// NewPresetModel creates a picker with the cursor on the named preset.
func NewPresetModel(width, height int, current string) PresetModel {
	presets := config.Presets()

	rows := make([]table.Row, len(presets))
	cursor := 0
	for i, p := range presets {
		rows[i] = table.Row{
			string(p.Name),
			fmt.Sprintf("%g", p.Speed),
			fmt.Sprintf("%d", p.GrowRate),
			fmt.Sprintf("%.0f%%", p.Level*100),
			p.Description,
		}
		if string(p.Name) == current {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Preset", Width: 8},
			{Title: "Speed", Width: 6},
			{Title: "Grow", Width: 5},
			{Title: "Level", Width: 6},
			{Title: "Description", Width: 26},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("3")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(cursor)

	return PresetModel{
		presets: presets,
		table:   t,
		help:    help.New(),
		keys:    DefaultPresetKeyMap(),
		width:   width,
		height:  height,
	}
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.finish(PresetQuit)
		case key.Matches(msg, m.keys.Back):
			return m.finish(PresetKept)
		case key.Matches(msg, m.keys.Select):
			return m.finish(PresetChosen)
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m PresetModel) finish(r PresetResult) (tea.Model, tea.Cmd) {
	m.result = r
	m.done = true
	return m, tea.Quit
}

// View renders the picker.
func (m PresetModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("S N A K E"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Choose a difficulty"))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Result returns how the picker was closed. Only meaningful once Done.
func (m PresetModel) Result() PresetResult {
	return m.result
}

// Done reports whether the picker has been closed.
func (m PresetModel) Done() bool {
	return m.done
}

// Selected returns the highlighted preset.
func (m PresetModel) Selected() config.PresetInfo {
	return m.presets[m.table.Cursor()]
}

// RunPresetSelector shows the picker and returns the chosen preset. The
// result is PresetKept or PresetQuit when the player backs out.
func RunPresetSelector(current string, opts ...tea.ProgramOption) (config.PresetInfo, PresetResult, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewPresetModel(0, 0, current), opts...)

	finalModel, err := p.Run()
	if err != nil {
		return config.PresetInfo{}, PresetQuit, fmt.Errorf("tui: preset selector: %w", err)
	}

	m, ok := finalModel.(PresetModel)
	if !ok || !m.Done() {
		return config.PresetInfo{}, PresetQuit, nil
	}
	return m.Selected(), m.Result(), nil
}
