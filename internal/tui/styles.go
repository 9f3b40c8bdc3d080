package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/macroedit/internal/widgets"
)

var (
	headerBarStyle = lipgloss.NewStyle().
			Background(widgets.ColorSurface).
			Foreground(widgets.ColorText)
	headerTitleStyle = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true)
	editingBadge     = lipgloss.NewStyle().
				Background(widgets.ColorAccent).
				Foreground(lipgloss.Color("#1e1e2e")).
				Bold(true).
				Padding(0, 1)
	keyStyle      = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
	statusStyle   = lipgloss.NewStyle().Foreground(widgets.ColorFocus)
	errorStyle    = lipgloss.NewStyle().Foreground(widgets.ColorError)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(widgets.ColorMuted)
	cursorStyle       = lipgloss.NewStyle().Foreground(widgets.ColorAccent).Bold(true)
)
