package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Back     key.Binding
	Quit     key.Binding
	Tab      key.Binding
	Refresh  key.Binding
	Add      key.Binding
	Inc      key.Binding
	Dec      key.Binding
	Delete   key.Binding
	Ship     key.Binding
	Stock    key.Binding
	Toggle   key.Binding
	Home     key.Binding
	Products key.Binding
	Cart     key.Binding
	Orders   key.Binding
	Board    key.Binding
	Login    key.Binding
	Register key.Binding
	Logout   key.Binding
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
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev category"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next category"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch tab"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Add: key.NewBinding(
		key.WithKeys("a", "enter"),
		key.WithHelp("a", "add to cart"),
	),
	Inc: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more"),
	),
	Dec: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "less"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "remove"),
	),
	Ship: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "ship"),
	),
	Stock: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "update stock"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "enable/disable"),
	),
	Home: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "home"),
	),
	Products: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "products"),
	),
	Cart: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "cart"),
	),
	Orders: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "orders"),
	),
	Board: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "dashboard"),
	),
	Login: key.NewBinding(
		key.WithKeys("6"),
		key.WithHelp("6", "login"),
	),
	Register: key.NewBinding(
		key.WithKeys("7"),
		key.WithHelp("7", "register"),
	),
	Logout: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "logout"),
	),
}
