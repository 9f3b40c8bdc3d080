package widgets

import "strings"

// Sized is implemented by widgets whose height follows from their width.
type Sized interface {
	Rows(width int) int
}

// Grid lays cells out row-major in Columns columns of equal width.
type Grid struct {
	Cells   []Widget
	Columns int
	Gap     int
	RowGap  int
	PadX    int
}

// CellWidth is the width each cell receives inside an area of the given width.
func (g Grid) CellWidth(width int) int {
	cols := max(1, g.Columns)
	inner := width - 2*g.PadX - g.Gap*(cols-1)
	return max(1, inner/cols)
}

func (g Grid) Render(width, height int) string {
	if len(g.Cells) == 0 || width <= 0 {
		return ""
	}
	cols := max(1, g.Columns)
	cw := g.CellWidth(width)
	pad := strings.Repeat(" ", max(0, g.PadX))
	gap := strings.Repeat(" ", max(0, g.Gap))

	var lines []string
	for start := 0; start < len(g.Cells); start += cols {
		end := min(start+cols, len(g.Cells))
		row := g.Cells[start:end]
		rh := 1
		for _, c := range row {
			if s, ok := c.(Sized); ok {
				rh = max(rh, s.Rows(cw))
			}
		}
		parts := make([][]string, len(row))
		for i, c := range row {
			parts[i] = fitLines(c.Render(cw, rh), cw, rh)
		}
		if start > 0 {
			for i := 0; i < g.RowGap; i++ {
				lines = append(lines, "")
			}
		}
		for l := 0; l < rh; l++ {
			cells := make([]string, len(row))
			for i := range row {
				cells[i] = parts[i][l]
			}
			lines = append(lines, pad+strings.Join(cells, gap))
		}
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
