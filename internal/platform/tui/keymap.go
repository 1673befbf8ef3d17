package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Toggle     key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Toggle, k.Pause, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Toggle, k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w/s", "left paddle"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "right paddle"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "start/stop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys and for the screenshot key.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.LeftUp):
		return core.ActionLeftUp
	case key.Matches(msg, k.LeftDown):
		return core.ActionLeftDown
	case key.Matches(msg, k.RightUp):
		return core.ActionRightUp
	case key.Matches(msg, k.RightDown):
		return core.ActionRightDown
	case key.Matches(msg, k.Toggle):
		return core.ActionToggle
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
