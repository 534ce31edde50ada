package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Back    key.Binding
	Restart key.Binding
	Next    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:    key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
		Back:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "back")),
		Restart: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "new words")),
		Next:    key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "next test")),
	}
}
