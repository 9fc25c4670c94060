package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-starfield/internal/core"
)

// KeyMap holds the key bindings of the game screen.
// It implements help.KeyMap for the help bar.
type KeyMap struct {
	Thrust  key.Binding
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust:  key.NewBinding(key.WithKeys("w", "up", "k"), key.WithHelp("w/↑", "thrust")),
		Left:    key.NewBinding(key.WithKeys("a", "left", "h"), key.WithHelp("a/←", "turn left")),
		Right:   key.NewBinding(key.WithKeys("d", "right", "l"), key.WithHelp("d/→", "turn right")),
		Fire:    key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space", "fire")),
		Start:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "launch")),
		Pause:   key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Left, k.Right, k.Fire, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped into columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.Left, k.Right, k.Fire},
		{k.Start, k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// heldActions are continuous controls; everything else is a one-shot press.
var heldActions = map[core.Action]bool{
	core.ActionForward: true,
	core.ActionLeft:    true,
	core.ActionRight:   true,
	core.ActionFire:    true,
}

// IsHeld reports whether a is a continuous control.
func IsHeld(a core.Action) bool {
	return heldActions[a]
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Thrust):
		return core.ActionForward
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
