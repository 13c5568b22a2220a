package controller

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the editor's keyboard shortcuts.
type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Toggle        key.Binding
	Indeterminate key.Binding
	Reset         key.Binding
	Unbind        key.Binding
	Rebaseline    key.Binding
	Copy          key.Binding
	Write         key.Binding
	Help          key.Binding
	Quit          key.Binding

	// Confirmation dialog and text editing
	Yes    key.Binding
	No     key.Binding
	Commit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next option"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "toggle or edit"),
		),
		Indeterminate: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "indeterminate"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset form"),
		),
		Unbind: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "stop tracking"),
		),
		Rebaseline: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "accept as baseline"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy html"),
		),
		Write: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "write output"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "reset"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "keep editing"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "done"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Indeterminate, k.Reset},
		{k.Unbind, k.Rebaseline, k.Copy, k.Write},
		{k.Help, k.Quit},
	}
}
