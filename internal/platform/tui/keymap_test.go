package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gt4500/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFireSingle},
		{"f", runeKey('f'), core.ActionFireSingle},
		{"a", runeKey('a'), core.ActionFireAll},
		{"r", runeKey('r'), core.ActionReload},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionToggleLog},
		{"?", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", runeKey('x'), core.ActionNone},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%s) = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyMapHelpCoversFireKeys(t *testing.T) {
	keys := DefaultConsoleKeyMap()

	short := keys.ShortHelp()
	if len(short) == 0 || short[0].Help().Desc != "fire single" {
		t.Errorf("Short help should lead with fire single, got %+v", short)
	}

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("Expected 8 bindings in full help, got %d", total)
	}
}
