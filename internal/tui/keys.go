package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Search    key.Binding
	Eco       key.Binding
	Sort      key.Binding
	Enter     key.Binding
	Favorite  key.Binding
	Compare   key.Binding
	Favorites key.Binding
	ShowPair  key.Binding
	ClearPair key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Eco, k.Sort, k.Favorite, k.Compare, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Search, k.Eco, k.Sort, k.Enter},
		{k.Favorite, k.Favorites, k.Compare, k.ShowPair, k.ClearPair},
		{k.Back, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h", "pgup"),
		key.WithHelp("←/h", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l", "pgdown"),
		key.WithHelp("→/l", "next page"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Eco: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "eco only"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Favorite: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	),
	Compare: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "compare"),
	),
	Favorites: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "favorites"),
	),
	ShowPair: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "compare view"),
	),
	ClearPair: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear compare"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
