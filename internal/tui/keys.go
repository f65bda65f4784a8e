package tui

import "github.com/charmbracelet/bubbles/key"

// browserKeys are the bindings for the comics browser and card screen.
type browserKeys struct {
	Quit   key.Binding
	Select key.Binding
	Back   key.Binding
	Reload key.Binding
	Upload key.Binding
	Delete key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "card"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}
