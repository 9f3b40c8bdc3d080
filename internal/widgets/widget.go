package widgets

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Func adapts a plain render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string { return f(width, height) }

// Text renders a fixed string, ignoring the area it is given.
type Text string

func (t Text) Render(int, int) string { return string(t) }
