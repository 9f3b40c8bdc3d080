package widgets

import "strings"

// Clip hides whatever its child draws outside the area: the result is always
// exactly height lines of width cells.
type Clip struct {
	Child Widget
}

func (c Clip) Render(width, height int) string {
	if c.Child == nil || width <= 0 || height <= 0 {
		return ""
	}
	return strings.Join(fitLines(c.Child.Render(width, height), width, height), "\n")
}
