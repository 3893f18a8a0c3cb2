package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		Left:  key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev wheel")),
		Right: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next wheel")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:  key.NewBinding(key.WithKeys("b", "esc", "backspace"), key.WithHelp("b", "back")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Left, k.Right},
		{k.Back, k.Help, k.Quit},
	}
}
