package widgets

import "math"

// DefaultCellAspect is the height:width ratio of one terminal cell.
const DefaultCellAspect = 2.0

// AspectRatio sizes its child so that width:height stays at Ratio no matter how
// much content the child has. Overflowing content is cut.
type AspectRatio struct {
	Ratio      float64
	CellAspect float64
	Child      Widget
}

// Rows is the height in lines for the given width.
func (a AspectRatio) Rows(width int) int {
	if width <= 0 || a.Ratio <= 0 {
		return 1
	}
	cell := a.CellAspect
	if cell <= 0 {
		cell = DefaultCellAspect
	}
	return max(1, int(math.Round(float64(width)/(a.Ratio*cell))))
}

func (a AspectRatio) Render(width, _ int) string {
	if a.Child == nil || width <= 0 {
		return ""
	}
	return Clip{Child: a.Child}.Render(width, a.Rows(width))
}
