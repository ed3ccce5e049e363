package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the form bindings. Text editing keys belong to the focused
// input and are not listed here.
type KeyMap struct {
	Next, Prev key.Binding
	Show       key.Binding
	Hide       key.Binding
	Reset      key.Binding
	Format     key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev field")),
		Show:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "show model")),
		Hide:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide model")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Format: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "json/yaml")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Show, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Show, k.Hide, k.Format},
		{k.Reset, k.Quit},
	}
}
