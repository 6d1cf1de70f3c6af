package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	filter   key.Binding
	reveal   key.Binding
	copy     key.Binding
	copyUser key.Binding
	delete   key.Binding
	reload   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	filter:   key.NewBinding(key.WithKeys("/")),
	reveal:   key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	delete:   key.NewBinding(key.WithKeys("d")),
	reload:   key.NewBinding(key.WithKeys("g")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
