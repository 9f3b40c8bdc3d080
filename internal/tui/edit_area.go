package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/jask/macroedit/internal/widgets"
)

type field struct {
	path  string
	value gjson.Result
}

// EditArea is the right region: the fields of the selected sequence element.
// Edits live in memory only.
type EditArea struct {
	Focused bool

	element *SequenceElement
	fields  []field
	cursor  int
	editing bool
	raw     bool
	input   textinput.Model
}

func NewEditArea() *EditArea {
	ti := textinput.New()
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Prompt = "= "
	return &EditArea{input: ti}
}

func (e *EditArea) Element() *SequenceElement { return e.element }
func (e *EditArea) Editing() bool             { return e.editing }

// Show switches the area to el; nil clears it.
func (e *EditArea) Show(el *SequenceElement) {
	e.element = el
	e.editing = false
	e.input.Blur()
	e.fields = nil
	if el == nil {
		e.cursor = 0
		return
	}
	e.fields = flatten(gjson.Parse(el.Data), "")
	if e.cursor >= len(e.fields) {
		e.cursor = 0
	}
}

// Fields lists the editable leaf paths of the shown element.
func (e *EditArea) Fields() []string {
	out := make([]string, len(e.fields))
	for i, f := range e.fields {
		out[i] = f.path
	}
	return out
}

func flatten(r gjson.Result, prefix string) []field {
	var out []field
	r.ForEach(func(k, v gjson.Result) bool {
		path := k.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		if v.IsObject() {
			out = append(out, flatten(v, path)...)
		} else {
			out = append(out, field{path: path, value: v})
		}
		return true
	})
	return out
}

// Update handles a key while the region has focus.
func (e *EditArea) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || e.element == nil {
		return nil
	}
	if e.editing {
		switch {
		case key.Matches(km, keys.Cancel):
			e.editing = false
			e.input.Blur()
			return nil
		case key.Matches(km, keys.Activate):
			return e.commit()
		}
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(km)
		return cmd
	}
	switch {
	case key.Matches(km, keys.Up):
		if e.cursor > 0 {
			e.cursor--
		}
	case key.Matches(km, keys.Down):
		if e.cursor < len(e.fields)-1 {
			e.cursor++
		}
	case key.Matches(km, keys.Raw):
		e.raw = !e.raw
	case key.Matches(km, keys.Activate):
		if len(e.fields) == 0 || e.fields[e.cursor].path == "type" || strings.HasSuffix(e.fields[e.cursor].path, ".type") {
			return nil
		}
		e.editing = true
		e.input.SetValue(e.fields[e.cursor].value.String())
		e.input.CursorEnd()
		return e.input.Focus()
	}
	return nil
}

// commit writes the input back into the element's JSON, keeping numbers numeric.
func (e *EditArea) commit() tea.Cmd {
	f := e.fields[e.cursor]
	text := e.input.Value()
	var value any = text
	switch {
	case isUnsigned(f.value):
		n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return errStatus(fmt.Sprintf("%s must be a whole number from 0 to %d", f.path, uint32(math.MaxUint32)))
		}
		value = n
	case f.value.Type == gjson.Number:
		n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return errStatus(fmt.Sprintf("%s must be a number", f.path))
		}
		value = n
	}
	data, err := sjson.Set(e.element.Data, f.path, value)
	if err != nil {
		return errStatus(err.Error())
	}
	e.editing = false
	e.input.Blur()
	updated := *e.element
	updated.Data = data
	e.Show(&updated)
	msg := ElementEditedMsg{ID: updated.ID, Data: data}
	return func() tea.Msg { return msg }
}

// isUnsigned reports whether a leaf holds a non-negative integer, like a
// brightness level.
func isUnsigned(v gjson.Result) bool {
	return v.Type == gjson.Number && !strings.ContainsAny(v.Raw, "-.eE")
}

func errStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isErr: true} }
}

func (e *EditArea) Render(width, height int) string {
	var lines []string
	if e.element == nil {
		lines = append(lines, mutedStyle.Render("Nothing selected."))
		return widgets.Pane{Title: "Edit", Content: strings.Join(lines, "\n"), Focused: e.Focused}.Render(width, height)
	}
	lines = append(lines, sectionTitleStyle.Render(e.element.Label), mutedStyle.Render(string(e.element.Type)), "")
	if e.raw {
		lines = append(lines, strings.Split(strings.TrimRight(string(pretty.Pretty([]byte(e.element.Data))), "\n"), "\n")...)
	} else {
		for i, f := range e.fields {
			prefix := "  "
			if i == e.cursor {
				prefix = cursorStyle.Render("▶ ")
			}
			lines = append(lines, fmt.Sprintf("%s%s: %s", prefix, f.path, f.value.Raw))
			if e.editing && i == e.cursor {
				lines = append(lines, "    "+e.input.View())
			}
		}
	}
	return widgets.Pane{Title: "Edit", Content: strings.Join(lines, "\n"), Focused: e.Focused}.Render(width, height)
}
