package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
)

// difficultyOption is one entry of the difficulty menu.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy    (level 1)"},
	{config.DifficultyNormal, "Normal  (level 3)"},
	{config.DifficultyHard, "Hard    (level 8)"},
	{config.DifficultyFixed, "Fixed   (no speed-up)"},
}

// MenuKeyMap defines the key bindings of the difficulty menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	selected config.DifficultyPreset
	choosing bool
	quitting bool
}

// NewDifficultyModel creates a new difficulty menu with Normal highlighted.
func NewDifficultyModel(width, height int) DifficultyModel {
	return DifficultyModel{
		cursor:   1,
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		choosing: true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		m.selected = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B L O C K F A L L", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset and whether a choice was made.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing || m.quitting {
		return "", false
	}
	return m.selected, true
}

// RunDifficultySelector shows the difficulty menu. ok is false when the
// user quit without choosing.
func RunDifficultySelector(width, height int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: %w", err)
	}

	m, isMenu := finalModel.(DifficultyModel)
	if !isMenu {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}

// centerText pads text with leading spaces to center it in width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}
