package tui

import (
	"strings"

	"github.com/jask/macroedit/internal/layout"
	"github.com/jask/macroedit/internal/widgets"
)

// Region width shares of the body, left to right.
var regionRatios = []float64{0.38, 0.37, 0.25}

// Header is the top band. IsEditing switches between creating a new macro and
// editing an existing one.
type Header struct {
	IsEditing bool
	Status    string
	StatusErr bool
}

func (h Header) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	title := headerTitleStyle.Render("New macro")
	hints := helpLine(keys.NextRegion, keys.Activate, keys.Search, keys.ToggleEdit, keys.Quit)
	if h.IsEditing {
		title = editingBadge.Render("EDITING") + " " + headerTitleStyle.Render("Edit macro")
		hints = helpLine(keys.NextRegion, keys.Activate, keys.Cancel, keys.ToggleEdit, keys.Quit)
	}
	status := ""
	if h.Status != "" {
		status = statusStyle.Render(h.Status)
		if h.StatusErr {
			status = errorStyle.Render(h.Status)
		}
	}

	rows := make([]string, height)
	rows[0] = title
	if height > 1 {
		rows[height-1] = hints
	}
	if height > 2 {
		rows[1] = status
	}
	for i, r := range rows {
		rows[i] = headerBarStyle.Render(padCells(" "+r, width))
	}
	return strings.Join(rows, "\n")
}

// Regions are the collaborators Macroview composes.
type Regions struct {
	Header            func(isEditing bool) widgets.Widget
	SelectElementArea widgets.Widget
	SequencingArea    widgets.Widget
	EditArea          widgets.Widget
}

// Macroview arranges the header over a body split into the select, sequencing
// and edit regions. Header height follows the width breakpoint; anything drawn
// outside the window is clipped.
func Macroview(isEditing bool, r Regions) widgets.Widget {
	return widgets.Func(func(width, height int) string {
		cfg := layout.ForWidth(width)
		body := widgets.HStack{
			Widgets: []widgets.Widget{r.SelectElementArea, r.SequencingArea, r.EditArea},
			Ratios:  regionRatios,
		}
		stack := widgets.VStack{
			Widgets: []widgets.Widget{r.Header(isEditing), body},
			Fixed:   []int{cfg.HeaderHeight, 0},
		}
		return widgets.Clip{Child: stack}.Render(width, height)
	})
}
