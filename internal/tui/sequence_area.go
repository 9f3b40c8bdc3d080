package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/jask/macroedit/internal/catalog"
	"github.com/jask/macroedit/internal/widgets"
)

// SequenceElement is one step of the macro being built. Data is JSON text.
type SequenceElement struct {
	ID    string
	Type  catalog.ActionType
	Label string
	Data  string
}

// Summary describes the element's data in one short phrase.
func (e SequenceElement) Summary() string {
	kind := gjson.Get(e.Data, "type").String()
	if sub := gjson.Get(e.Data, "action.type"); sub.Exists() {
		return kind + " › " + sub.String()
	}
	if p := gjson.Get(e.Data, "path"); p.Exists() && p.String() != "" {
		return kind + " " + p.String()
	}
	return kind
}

// SequencingArea is the center region: the ordered list of macro steps.
type SequencingArea struct {
	Focused bool

	elements []SequenceElement
	cursor   int
	logger   *zap.Logger
}

func NewSequencingArea(logger *zap.Logger) *SequencingArea {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SequencingArea{logger: logger}
}

func (s *SequencingArea) Elements() []SequenceElement {
	out := make([]SequenceElement, len(s.elements))
	copy(out, s.elements)
	return out
}

func (s *SequencingArea) Cursor() int { return s.cursor }

// Selected returns the element under the cursor.
func (s *SequencingArea) Selected() *SequenceElement {
	if s.cursor < 0 || s.cursor >= len(s.elements) {
		return nil
	}
	e := s.elements[s.cursor]
	return &e
}

// Add appends a step built from a selection intent and moves the cursor to it.
func (s *SequencingArea) Add(label string, typ catalog.ActionType, data any) (SequenceElement, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return SequenceElement{}, fmt.Errorf("encode %s data: %w", label, err)
	}
	e := SequenceElement{ID: uuid.NewString(), Type: typ, Label: label, Data: string(raw)}
	s.elements = append(s.elements, e)
	s.cursor = len(s.elements) - 1
	s.logger.Debug("sequence element added", zap.String("id", e.ID), zap.String("label", label))
	return e, nil
}

// SetData replaces the data of the element with id.
func (s *SequencingArea) SetData(id, data string) bool {
	for i := range s.elements {
		if s.elements[i].ID == id {
			s.elements[i].Data = data
			return true
		}
	}
	return false
}

func (s *SequencingArea) selectedCmd() tea.Cmd {
	msg := SequenceSelectedMsg{Element: s.Selected()}
	return func() tea.Msg { return msg }
}

// Update handles a key while the region has focus.
func (s *SequencingArea) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(s.elements) == 0 {
		return nil
	}
	switch {
	case key.Matches(km, keys.MoveUp):
		if s.cursor > 0 {
			s.elements[s.cursor-1], s.elements[s.cursor] = s.elements[s.cursor], s.elements[s.cursor-1]
			s.cursor--
		}
	case key.Matches(km, keys.MoveDown):
		if s.cursor < len(s.elements)-1 {
			s.elements[s.cursor+1], s.elements[s.cursor] = s.elements[s.cursor], s.elements[s.cursor+1]
			s.cursor++
		}
	case key.Matches(km, keys.Up):
		if s.cursor > 0 {
			s.cursor--
			return s.selectedCmd()
		}
	case key.Matches(km, keys.Down):
		if s.cursor < len(s.elements)-1 {
			s.cursor++
			return s.selectedCmd()
		}
	case key.Matches(km, keys.Delete):
		removed := s.elements[s.cursor]
		s.elements = append(s.elements[:s.cursor], s.elements[s.cursor+1:]...)
		if s.cursor >= len(s.elements) {
			s.cursor = max(0, len(s.elements)-1)
		}
		s.logger.Debug("sequence element removed", zap.String("id", removed.ID))
		return s.selectedCmd()
	}
	return nil
}

func (s *SequencingArea) Render(width, height int) string {
	var lines []string
	if len(s.elements) == 0 {
		lines = append(lines, mutedStyle.Render("Select an element on the left"), mutedStyle.Render("to add it to the sequence."))
	}
	for i, e := range s.elements {
		prefix := "  "
		label := e.Label
		if i == s.cursor {
			prefix = cursorStyle.Render("▶ ")
			label = cursorStyle.Render(label)
		}
		lines = append(lines, fmt.Sprintf("%s%2d. %s  %s", prefix, i+1, label, mutedStyle.Render(e.Summary())))
	}

	inner := max(1, height-2)
	if len(lines) > inner {
		start := min(max(0, s.cursor-inner+1), len(lines)-inner)
		lines = lines[start:]
	}
	title := "Sequence"
	if n := len(s.elements); n > 0 {
		title = fmt.Sprintf("Sequence (%d)", n)
	}
	return widgets.Pane{Title: title, Content: strings.Join(lines, "\n"), Focused: s.Focused}.Render(width, height)
}
