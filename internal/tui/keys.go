package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding the studio responds to
type keyMap struct {
	Random   key.Binding
	Copy     key.Binding
	Save     key.Binding
	Gradient key.Binding
	AngleDn  key.Binding
	AngleUp  key.Binding
	Add      key.Binding
	Remove   key.Binding
	Preset   key.Binding
	History  key.Binding
	Input    key.Binding
	Download key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Random:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "random")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy css")),
		Save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Gradient: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gradient")),
		AngleDn:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "angle -15")),
		AngleUp:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "angle +15")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		Preset:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		History:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "history")),
		Input:    key.NewBinding(key.WithKeys("i", "/"), key.WithHelp("i", "enter color")),
		Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "png")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Random, k.Copy, k.Save, k.Gradient, k.Input, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Random, k.Add, k.Remove, k.Input},
		{k.Gradient, k.AngleDn, k.AngleUp, k.Preset},
		{k.Copy, k.Save, k.Download, k.History},
		{k.Quit},
	}
}
