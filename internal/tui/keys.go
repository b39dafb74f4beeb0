package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the table and global bindings. The entry field only reacts to
// Submit, Tab, Blur and ForceQuit; every other key is typed into it.
type keyMap struct {
	Tab       key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Delete    key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Submit    key.Binding
	Blur      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "next page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add task"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave entry"),
		),
	}
}

// inputHelp is the footer shown while the entry field has focus.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Tab, k.ForceQuit}
}

// tableHelp is the footer shown while the table has focus.
func (k keyMap) tableHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.PrevPage, k.NextPage, k.Tab, k.Help, k.Quit}
}
