package ui

import "github.com/charmbracelet/bubbles/key"

type loginKeyMap struct {
	Switch key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func (k loginKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Switch, k.Submit, k.Quit} }
func (k loginKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var loginKeys = loginKeyMap{
	Switch: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "login")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type homeKeyMap struct {
	Open key.Binding
	Quit key.Binding
}

func (k homeKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Open, k.Quit} }
func (k homeKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var homeKeys = homeKeyMap{
	Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view my tasks")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type taskKeyMap struct {
	Submit key.Binding
	Edit   key.Binding
	Delete key.Binding
	Clear  key.Binding
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func (k taskKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Edit, k.Delete, k.Clear, k.Back}
}

func (k taskKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Edit, k.Delete, k.Clear},
		{k.Up, k.Down, k.Back, k.Quit},
	}
}

var taskKeys = taskKeyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
	Edit:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit")),
	Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
	Clear:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear all")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}
