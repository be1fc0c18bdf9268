package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
)

func menuUpdate(t *testing.T, m DifficultyModel, msg tea.Msg) (DifficultyModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(DifficultyModel)
	if !ok {
		t.Fatalf("Update returned %T, want DifficultyModel", next)
	}
	return nm, cmd
}

func TestDifficultyMenuDefaultsToNormal(t *testing.T) {
	m := NewDifficultyModel(40, 20)

	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("select should quit the menu program")
	}

	preset, ok := m.Selected()
	if !ok || preset != config.DifficultyNormal {
		t.Errorf("Selected() = %q, %v; want normal, true", preset, ok)
	}
}

func TestDifficultyMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.DifficultyPreset
	}{
		{"up to easy", []tea.KeyMsg{{Type: tea.KeyUp}}, config.DifficultyEasy},
		{"up stops at top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyUp}}, config.DifficultyEasy},
		{"down to hard", []tea.KeyMsg{runeKey('j')}, config.DifficultyHard},
		{"down stops at bottom", []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('j')}, config.DifficultyFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewDifficultyModel(40, 20)
			for _, k := range tt.keys {
				m, _ = menuUpdate(t, m, k)
			}
			m, _ = menuUpdate(t, m, runeKey(' '))

			if preset, ok := m.Selected(); !ok || preset != tt.want {
				t.Errorf("Selected() = %q, %v; want %q, true", preset, ok, tt.want)
			}
		})
	}
}

func TestDifficultyMenuQuit(t *testing.T) {
	m := NewDifficultyModel(40, 20)

	m, cmd := menuUpdate(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if _, ok := m.Selected(); ok {
		t.Error("quitting should not select a preset")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestDifficultyMenuView(t *testing.T) {
	m := NewDifficultyModel(60, 20)
	view := m.View()

	for _, want := range []string{"B L O C K F A L L", "> Normal", "Easy", "Hard", "Fixed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText = %q, want unchanged", got)
	}
}
