// Package tui provides the Bubble Tea fire-control console and the Wish SSH
// server that serves it to remote crews.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gt4500/internal/core"
)

// ConsoleKeyMap defines the key bindings for the console.
type ConsoleKeyMap struct {
	FireSingle key.Binding
	FireAll    key.Binding
	Reload     key.Binding
	ToggleLog  key.Binding
	Help       key.Binding
	Quit       key.Binding
	Up         key.Binding
	Down       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ConsoleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FireSingle, k.FireAll, k.Reload, k.ToggleLog, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ConsoleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FireSingle, k.FireAll, k.Reload},
		{k.ToggleLog, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// DefaultConsoleKeyMap returns default key bindings.
func DefaultConsoleKeyMap() ConsoleKeyMap {
	return ConsoleKeyMap{
		FireSingle: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space/f", "fire single"),
		),
		FireAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "fire all"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "salvo log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to console actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys ConsoleKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultConsoleKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() ConsoleKeyMap {
	return km.keys
}

// MapKey translates a key message to a console action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.FireSingle):
		return core.ActionFireSingle
	case key.Matches(msg, km.keys.FireAll):
		return core.ActionFireAll
	case key.Matches(msg, km.keys.Reload):
		return core.ActionReload
	case key.Matches(msg, km.keys.ToggleLog):
		return core.ActionToggleLog
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
