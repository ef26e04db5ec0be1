package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name      string
		msg       tea.KeyMsg
		notifying bool
		want      core.Action
	}{
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, false, core.ActionStart},
		{"space starts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, core.ActionStart},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, false, core.ActionLeft},
		{"d moves right", runeKey("d"), false, core.ActionRight},
		{"q quits", runeKey("q"), false, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, true, core.ActionQuit},
		{"unbound key", runeKey("x"), false, core.ActionNone},
		{"any key dismisses", runeKey("x"), true, core.ActionDismiss},
		{"enter dismisses", tea.KeyMsg{Type: tea.KeyEnter}, true, core.ActionDismiss},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg, tc.notifying); got != tc.want {
				t.Errorf("Action = %v, expected %v", got, tc.want)
			}
		})
	}
}
