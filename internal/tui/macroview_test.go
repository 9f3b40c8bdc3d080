package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/macroedit/internal/layout"
	"github.com/jask/macroedit/internal/widgets"
)

func stubRegions() Regions {
	return Regions{
		Header:            func(isEditing bool) widgets.Widget { return Header{IsEditing: isEditing} },
		SelectElementArea: widgets.Text("SELECT"),
		SequencingArea:    widgets.Text("SEQUENCE"),
		EditArea:          widgets.Text("EDIT"),
	}
}

func TestMacroviewFillsWindowExactly(t *testing.T) {
	for _, width := range []int{60, 100, 160} {
		out := strings.Split(Macroview(false, stubRegions()).Render(width, 30), "\n")
		require.Len(t, out, 30, "width %d", width)
		for _, l := range out {
			require.Equal(t, width, ansi.StringWidth(l))
		}
	}
}

func TestMacroviewTwoTiers(t *testing.T) {
	for _, width := range []int{60, 100, 160} {
		hh := layout.ForWidth(width).HeaderHeight
		out := strings.Split(Macroview(false, stubRegions()).Render(width, 30), "\n")
		require.Contains(t, out[0], "New macro")
		body := out[hh]
		sel := strings.Index(body, "SELECT")
		seq := strings.Index(body, "SEQUENCE")
		edit := strings.Index(body, "EDIT")
		require.Zero(t, sel, "width %d", width)
		require.Greater(t, seq, sel)
		require.Greater(t, edit, seq)
		for _, l := range out[:hh] {
			require.NotContains(t, l, "SELECT")
		}
	}
}

func TestEditingTogglesOnlyHeader(t *testing.T) {
	width, height := 120, 30
	hh := layout.ForWidth(width).HeaderHeight
	off := strings.Split(Macroview(false, stubRegions()).Render(width, height), "\n")
	on := strings.Split(Macroview(true, stubRegions()).Render(width, height), "\n")
	require.Equal(t, off[hh:], on[hh:])
	require.NotEqual(t, off[:hh], on[:hh])
	require.Contains(t, on[0], "Edit macro")
}

func TestMacroviewClipsOverflow(t *testing.T) {
	r := stubRegions()
	r.SequencingArea = widgets.Text(strings.Repeat("row\n", 200))
	out := strings.Split(Macroview(false, r).Render(80, 12), "\n")
	require.Len(t, out, 12)
}

func TestMacroviewShorterThanHeader(t *testing.T) {
	out := strings.Split(Macroview(false, stubRegions()).Render(160, 2), "\n")
	require.Len(t, out, 2)
}
