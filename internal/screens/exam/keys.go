package exam

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Mark    key.Binding
	Open    key.Binding
	Marked  key.Binding
	Finish  key.Binding
	Yes     key.Binding
	No      key.Binding
	Retry   key.Binding
	Quit    key.Binding
	Options []key.Binding // a-d
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Option")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Choose: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Answer")),
	Next:   key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→", "Next")),
	Prev:   key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←", "Prev")),
	Mark:   key.NewBinding(key.WithKeys("m"), key.WithHelp("M", "Mark")),
	Open:   key.NewBinding(key.WithKeys("u"), key.WithHelp("U", "Unanswered")),
	Marked: key.NewBinding(key.WithKeys("r"), key.WithHelp("R", "Marked")),
	Finish: key.NewBinding(key.WithKeys("f"), key.WithHelp("F", "Finish")),
	Yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("Y", "Yes")),
	No:     key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("N", "No")),
	Retry:  key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("R", "Retry")),
	Quit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit")),
	Options: []key.Binding{
		key.NewBinding(key.WithKeys("a")),
		key.NewBinding(key.WithKeys("b")),
		key.NewBinding(key.WithKeys("c")),
		key.NewBinding(key.WithKeys("d")),
	},
}
