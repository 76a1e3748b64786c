package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	home      key.Binding
	dashboard key.Binding
	account   key.Binding
	buildInfo key.Binding
	search    key.Binding
	clear     key.Binding
	sortKey   key.Binding
	sortOrder key.Binding
	hero      key.Binding
	reload    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	save      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	home:      key.NewBinding(key.WithKeys("H")),
	dashboard: key.NewBinding(key.WithKeys("D")),
	account:   key.NewBinding(key.WithKeys("L")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	search:    key.NewBinding(key.WithKeys("/")),
	clear:     key.NewBinding(key.WithKeys("x")),
	sortKey:   key.NewBinding(key.WithKeys("s")),
	sortOrder: key.NewBinding(key.WithKeys("o")),
	hero:      key.NewBinding(key.WithKeys("g")),
	reload:    key.NewBinding(key.WithKeys("r")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
