package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heck/internal/config"
	"github.com/vovakirdan/heck/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left   key.Binding
	Down   key.Binding
	Up     key.Binding
	Right  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// NewKeyMap builds bindings from configured key lists.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:   binding(cfg.Left, "left"),
		Down:   binding(cfg.Down, "down"),
		Up:     binding(cfg.Up, "up"),
		Right:  binding(cfg.Right, "right"),
		Toggle: binding(cfg.Toggle, "toggle"),
		Quit:   binding(cfg.Quit, "quit"),
	}
}

// DefaultKeyMap returns h/j/k/l, space and q.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeys())
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyLabel returns a printable name for a key string.
func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Down, k.Up, k.Right, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Down, k.Up, k.Right},
		{k.Toggle, k.Quit},
	}
}

// Action maps a key message to an action.
// Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Toggle):
		return core.ActionToggle
	}
	return core.ActionNone
}
