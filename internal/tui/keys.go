package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Regenerate key.Binding
	TogglePath key.Binding
	Theme      key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Regenerate: key.NewBinding(
			key.WithKeys("r", "1"),
			key.WithHelp("r", "regenerate"),
		),
		TogglePath: key.NewBinding(
			key.WithKeys("p", "2"),
			key.WithHelp("p", "show/hide path"),
		),
		Theme: key.NewBinding(
			key.WithKeys("c", "3"),
			key.WithHelp("c", "colors"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "4", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.TogglePath, k.Theme, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.TogglePath, k.Theme},
		{k.Save, k.Help, k.Quit},
	}
}
