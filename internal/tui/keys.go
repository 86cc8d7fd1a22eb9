package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings for each picker action.
type keyMap struct {
	left       key.Binding
	right      key.Binding
	up         key.Binding
	down       key.Binding
	activate   key.Binding
	prev       key.Binding
	next       key.Binding
	title      key.Binding
	mode       key.Binding
	hourDown   key.Binding
	hourUp     key.Binding
	minuteDown key.Binding
	minuteUp   key.Binding
	today      key.Binding
	help       key.Binding
	quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		activate:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		prev:       key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
		next:       key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		title:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "zoom out")),
		mode:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		hourDown:   key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hour -")),
		hourUp:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "hour +")),
		minuteDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "minute -")),
		minuteUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "minute +")),
		today:      key.NewBinding(key.WithKeys("."), key.WithHelp(".", "today")),
		help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.activate, k.prev, k.next, k.title, k.mode, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right, k.up, k.down},
		{k.activate, k.prev, k.next, k.title, k.today},
		{k.hourDown, k.hourUp, k.minuteDown, k.minuteUp},
		{k.mode, k.help, k.quit},
	}
}
