package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Theme        key.Binding
	View         key.Binding
	IntervalUp   key.Binding
	IntervalDown key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Theme: key.NewBinding(
			key.WithKeys("c", "t"),
			key.WithHelp("c", "colour"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view"),
		),
		IntervalUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "slower"),
		),
		IntervalDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "faster"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the one-line hint.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.View, k.IntervalUp, k.IntervalDown, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.View},
		{k.IntervalUp, k.IntervalDown},
		{k.Help, k.Quit},
	}
}
