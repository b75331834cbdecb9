package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Parent     key.Binding
	FirstChild key.Binding
	PrevSib    key.Binding
	NextSib    key.Binding
	Next       key.Binding
	Prev       key.Binding
	PanLeft    key.Binding
	PanRight   key.Binding
	Open       key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Parent: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "parent"),
		),
		FirstChild: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "child"),
		),
		PrevSib: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		NextSib: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next card"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev card"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("shift+left", "<"),
			key.WithHelp("<", "scroll left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("shift+right", ">"),
			key.WithHelp(">", "scroll right"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "details"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Parent, k.FirstChild, k.PrevSib, k.NextSib, k.Open, k.Close, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Parent, k.FirstChild, k.PrevSib, k.NextSib},
		{k.Next, k.Prev, k.PanLeft, k.PanRight},
		{k.Open, k.Close, k.Quit},
	}
}
