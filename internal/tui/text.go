package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func padCells(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	return s + strings.Repeat(" ", max(0, width-ansi.StringWidth(s)))
}
