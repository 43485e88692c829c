package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionStop, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionStop, false},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionStop, false},
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, core.ActionHelp, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%s) = (%s, %v), expected (%s, %v)", tt.msg, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 5 {
		t.Errorf("full help lists %d bindings, expected 5", total)
	}
}
