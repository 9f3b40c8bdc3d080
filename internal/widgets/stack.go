package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Each child gets exactly the rows it was
// allotted. Fixed pins a child's height when positive; the remaining rows are
// shared among the other children according to Ratios.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
	Fixed   []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	usable := max(0, height-spacingTotal)
	heights := v.heights(usable)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] > 0 {
			lines = append(lines, fitLines(w.Render(width, heights[i]), width, heights[i])...)
		}
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, strings.Repeat(" ", width))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (v VStack) heights(usable int) []int {
	n := len(v.Widgets)
	if len(v.Fixed) != n {
		return splitWidths(usable, n, v.Ratios)
	}
	out := make([]int, n)
	var flex []int
	var flexRatios []float64
	left := usable
	for i, f := range v.Fixed {
		if f > 0 {
			out[i] = min(f, left)
			left -= out[i]
			continue
		}
		flex = append(flex, i)
		if len(v.Ratios) == n {
			flexRatios = append(flexRatios, v.Ratios[i])
		}
	}
	if len(flex) == 0 {
		return out
	}
	if len(flexRatios) != len(flex) {
		flexRatios = nil
	}
	for j, h := range splitWidths(left, len(flex), flexRatios) {
		out[flex[j]] = h
	}
	return out
}

// HStack lays widgets left to right. Gap blank cells separate neighbours and
// are taken off the width before Ratios split the rest, so the columns plus
// gaps always add up to the full width. Every column is padded or cut to the
// full height.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gap := strings.Repeat(" ", max(0, h.Gap))
	widths := splitWidths(max(1, width-len(gap)*(n-1)), n, h.Ratios)
	cols := make([][]string, n)
	for i, w := range h.Widgets {
		cw := max(1, widths[i])
		cols[i] = fitLines(w.Render(cw, height), cw, height)
	}

	var b strings.Builder
	for line := 0; line < height; line++ {
		if line > 0 {
			b.WriteByte('\n')
		}
		for i := range cols {
			if i > 0 {
				b.WriteString(gap)
			}
			b.WriteString(cols[i][line])
		}
	}
	return b.String()
}

// SplitWidths divides total cells between n parts.
func SplitWidths(total, n int, ratios []float64) []int {
	return splitWidths(total, n, ratios)
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	weights := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		weights[i] = r
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((weights[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// padRight cuts s to width cells and fills the remainder with spaces.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if fill := width - ansi.StringWidth(s); fill > 0 {
		return s + strings.Repeat(" ", fill)
	}
	return s
}

// fitLines pads or cuts s to exactly height lines of width cells.
func fitLines(s string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	src := strings.Split(s, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		out[i] = padRight(line, width)
	}
	return out
}
