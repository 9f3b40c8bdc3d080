// Package layout holds the responsive breakpoint table shared by the macro view
// regions. It knows nothing about catalog data.
package layout

// Class is a viewport width classification.
type Class int

const (
	Base Class = iota
	MD
	XL
)

func (c Class) String() string {
	switch c {
	case MD:
		return "md"
	case XL:
		return "xl"
	default:
		return "base"
	}
}

// Breakpoint widths in terminal columns.
const (
	MDWidth = 80
	XLWidth = 140
)

// Config is the presentation record for one width class.
type Config struct {
	Class        Class
	Columns      int
	HeaderHeight int
}

var table = map[Class]Config{
	Base: {Class: Base, Columns: 2, HeaderHeight: 3},
	MD:   {Class: MD, Columns: 3, HeaderHeight: 4},
	XL:   {Class: XL, Columns: 4, HeaderHeight: 5},
}

// Classify maps a width to its breakpoint class.
func Classify(width int) Class {
	switch {
	case width >= XLWidth:
		return XL
	case width >= MDWidth:
		return MD
	default:
		return Base
	}
}

// ForWidth returns the layout config for the given viewport width.
func ForWidth(width int) Config {
	return table[Classify(width)]
}

// BodyHeight is what remains under the header.
func BodyHeight(total, width int) int {
	h := total - ForWidth(width).HeaderHeight
	if h < 0 {
		return 0
	}
	return h
}
