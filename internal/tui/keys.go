package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Search    key.Binding
	Jump      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	YankLink  key.Binding
	Draw      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Screen1   key.Binding
	Screen2   key.Binding
	Screen3   key.Binding
	Screen4   key.Binding
	NextTab   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "last page"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Jump: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "fuzzy jump"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		YankLink: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank link"),
		),
		Draw: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next question"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Screen1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "board"),
		),
		Screen2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "activities"),
		),
		Screen3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "japanese"),
		),
		Screen4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "quiz"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next screen"),
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
}
