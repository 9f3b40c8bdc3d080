package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	NextRegion key.Binding
	PrevRegion key.Binding
	ToggleEdit key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Activate   key.Binding
	Toggle     key.Binding
	Search     key.Binding
	Cancel     key.Binding
	Delete     key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Raw        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		NextRegion: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevRegion: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		ToggleEdit: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit mode")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "collapse")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		MoveUp:     key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "move up")),
		MoveDown:   key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "move down")),
		Raw:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "raw json")),
	}
}

var keys = newKeyMap()

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += helpDescStyle.Render(" · ")
		}
		h := b.Help()
		out += keyStyle.Render(h.Key) + " " + helpDescStyle.Render(h.Desc)
	}
	return out
}
