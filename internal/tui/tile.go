package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/macroedit/internal/catalog"
	"github.com/jask/macroedit/internal/widgets"
)

// Tile is one selectable element button. It emits Properties when activated.
type Tile[D any] struct {
	Key        string
	NameText   string
	DescText   string
	Properties catalog.Intent[D]
	Focused    bool
}

// Activate returns the command that delivers the tile's intent upward.
func (t Tile[D]) Activate() tea.Cmd {
	msg := SelectedMsg[D]{Key: t.Key, Intent: t.Properties}
	return func() tea.Msg { return msg }
}

func (t Tile[D]) Render(width, height int) string {
	desc := ""
	if width > 4 {
		desc = mutedStyle.Render(lipgloss.NewStyle().Width(width - 4).Render(t.DescText))
	}
	return widgets.Pane{Title: t.NameText, Content: desc, Focused: t.Focused}.Render(width, height)
}
