package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"snake-engine/internal/core"
)

// KeyMap defines the key bindings for the game session.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Dash  key.Binding
	Pause key.Binding
	Debug key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Dash, k.Pause, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Dash, k.Pause, k.Debug},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("arrows/wasd", "steer"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "right"),
		),
		Dash: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift+arrows", "dash"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "debug"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// heading maps a key message to a steering direction. The second return
// reports whether the dash modifier was held; terminals have no key-up
// events, so a plain arrow is also the dash release.
func heading(msg tea.KeyMsg) (dir core.Vec2, dash bool, ok bool) {
	switch msg.String() {
	case "up", "w":
		return core.DirUp, false, true
	case "down", "s":
		return core.DirDown, false, true
	case "left", "a":
		return core.DirLeft, false, true
	case "right", "d":
		return core.DirRight, false, true
	case "shift+up", "W":
		return core.DirUp, true, true
	case "shift+down", "S":
		return core.DirDown, true, true
	case "shift+left", "A":
		return core.DirLeft, true, true
	case "shift+right", "D":
		return core.DirRight, true, true
	}
	return core.Vec2{}, false, false
}
