package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func lines(s string) []string { return strings.Split(s, "\n") }

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 2)
	first := lines(out)[0]
	require.Equal(t, 21, ansi.StringWidth(first))
	require.Equal(t, 0, strings.Index(first, "A"))
	require.Equal(t, 16, strings.Index(first, "B"))
}

func TestHStackFillsHeightAndGaps(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"left\nmore"}, fixedWidget{"right"}, fixedWidget{"x"}}, Gap: 2}
	out := lines(h.Render(20, 4))
	require.Len(t, out, 4)
	for _, l := range out {
		require.Equal(t, 20, ansi.StringWidth(l))
	}
	// 16 usable cells split 6/5/5 with two-cell gaps between them
	require.Equal(t, 8, strings.Index(out[0], "right"))
	require.Equal(t, 15, strings.Index(out[0], "x"))
	require.Equal(t, strings.Repeat(" ", 20), out[3])
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	require.Contains(t, out, "top")
	require.Contains(t, out, "bottom")
	require.Len(t, lines(out), 6)
}

func TestVStackFixedHeader(t *testing.T) {
	v := VStack{
		Widgets: []Widget{fixedWidget{"head"}, fixedWidget{"body"}},
		Fixed:   []int{4, 0},
	}
	out := lines(v.Render(10, 20))
	require.Len(t, out, 20)
	require.True(t, strings.HasPrefix(out[0], "head"))
	require.True(t, strings.HasPrefix(out[4], "body"))
}

func TestSplitWidthsSumsToTotal(t *testing.T) {
	for _, total := range []int{0, 1, 7, 100, 133} {
		parts := SplitWidths(total, 3, []float64{0.3, 0.45, 0.25})
		sum := 0
		for _, p := range parts {
			sum += p
		}
		require.Equal(t, total, sum)
	}
	require.Equal(t, []int{4, 3, 3}, SplitWidths(10, 3, nil))
}

func TestClipExactArea(t *testing.T) {
	c := Clip{Child: fixedWidget{"a very long line that overflows\n2\n3\n4\n5"}}
	out := lines(c.Render(6, 3))
	require.Len(t, out, 3)
	for _, l := range out {
		require.Equal(t, 6, ansi.StringWidth(l))
	}
	require.Equal(t, "a very", out[0])
}

func TestAspectRatioRows(t *testing.T) {
	a := AspectRatio{Ratio: 2 / 0.75, Child: fixedWidget{"x"}}
	require.Equal(t, 4, a.Rows(20))
	require.Equal(t, 6, a.Rows(32))
	require.Equal(t, 1, a.Rows(1))
	require.Len(t, lines(a.Render(20, 99)), 4)

	long := AspectRatio{Ratio: 2 / 0.75, Child: fixedWidget{strings.Repeat("line\n", 30)}}
	require.Len(t, lines(long.Render(20, 99)), 4)
}

func TestGridRowMajor(t *testing.T) {
	cells := []Widget{fixedWidget{"1"}, fixedWidget{"2"}, fixedWidget{"3"}}
	g := Grid{Cells: cells, Columns: 2, Gap: 1}
	out := lines(g.Render(9, 0))
	require.Len(t, out, 2)
	require.Equal(t, "1    2   ", out[0])
	require.True(t, strings.HasPrefix(out[1], "3"))
	require.Equal(t, 4, g.CellWidth(9))
}

func TestGridEmpty(t *testing.T) {
	require.Equal(t, "", Grid{Columns: 3}.Render(30, 10))
}

func TestPaneFillsArea(t *testing.T) {
	out := lines(Pane{Title: "Edit", Content: "one\ntwo\nthree\nfour"}.Render(12, 4))
	require.Len(t, out, 4)
	require.Contains(t, out[0], "Edit")
	require.Contains(t, out[1], "one")
	require.Contains(t, out[2], "two")
	for _, l := range out {
		require.Equal(t, 12, ansi.StringWidth(l))
	}
}
