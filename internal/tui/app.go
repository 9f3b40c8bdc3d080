package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/macroedit/internal/catalog"
	"github.com/jask/macroedit/internal/widgets"
)

type region int

const (
	regionSelect region = iota
	regionSequence
	regionEdit
	regionCount
)

// App ties the macro view regions together. Editing mode comes from Options
// and is toggled only by the app itself; the regions never change it.
type App struct {
	isEditing bool
	width     int
	height    int
	focus     region
	status    string
	statusErr bool

	selectArea *SelectElementArea[catalog.SystemEvent]
	sequence   *SequencingArea
	edit       *EditArea
	logger     *zap.Logger
}

// Options configures New.
type Options struct {
	IsEditing bool
	Catalog   []catalog.Entry[catalog.SystemEvent]
	Logger    *zap.Logger
}

func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		isEditing:  opts.IsEditing,
		selectArea: NewSelectElementArea(opts.Catalog, logger.Named("select")),
		sequence:   NewSequencingArea(logger.Named("sequence")),
		edit:       NewEditArea(),
		logger:     logger,
	}
	a.applyFocus()
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) IsEditing() bool                                     { return a.isEditing }
func (a *App) SelectArea() *SelectElementArea[catalog.SystemEvent] { return a.selectArea }
func (a *App) Sequence() *SequencingArea                           { return a.sequence }
func (a *App) Edit() *EditArea                                     { return a.edit }

func (a *App) applyFocus() {
	a.selectArea.Focused = a.focus == regionSelect
	a.sequence.Focused = a.focus == regionSequence
	a.edit.Focused = a.focus == regionEdit
}

// capturing reports whether the focused region is reading text input.
func (a *App) capturing() bool {
	switch a.focus {
	case regionSelect:
		return a.selectArea.Searching()
	case regionEdit:
		return a.edit.Editing()
	}
	return false
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.selectArea.SetViewport(m.Width)
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(m)
	case SelectedMsg[catalog.SystemEvent]:
		el, err := a.sequence.Add(m.Key, m.Intent.Type, m.Intent.Data)
		if err != nil {
			a.setStatus(err.Error(), true)
			return a, nil
		}
		a.edit.Show(&el)
		a.setStatus(fmt.Sprintf("added %s", m.Key), false)
	case SequenceSelectedMsg:
		a.edit.Show(m.Element)
	case ElementEditedMsg:
		if a.sequence.SetData(m.ID, m.Data) {
			a.setStatus("updated", false)
		}
	case statusMsg:
		a.setStatus(m.text, m.isErr)
	}
	return a, nil
}

func (a *App) setStatus(text string, isErr bool) {
	a.status, a.statusErr = text, isErr
	if isErr {
		a.logger.Warn("status", zap.String("text", text))
	}
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	if m.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if !a.capturing() {
		switch {
		case key.Matches(m, keys.Quit):
			return tea.Quit
		case key.Matches(m, keys.NextRegion):
			a.focus = (a.focus + 1) % regionCount
			a.applyFocus()
			return nil
		case key.Matches(m, keys.PrevRegion):
			a.focus = (a.focus + regionCount - 1) % regionCount
			a.applyFocus()
			return nil
		case key.Matches(m, keys.ToggleEdit):
			a.isEditing = !a.isEditing
			return nil
		}
	}
	switch a.focus {
	case regionSelect:
		return a.selectArea.Update(m)
	case regionSequence:
		return a.sequence.Update(m)
	default:
		return a.edit.Update(m)
	}
}

func (a *App) header(isEditing bool) widgets.Widget {
	return Header{IsEditing: isEditing, Status: a.status, StatusErr: a.statusErr}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "loading..."
	}
	return Macroview(a.isEditing, Regions{
		Header:            a.header,
		SelectElementArea: a.selectArea,
		SequencingArea:    a.sequence,
		EditArea:          a.edit,
	}).Render(a.width, a.height)
}
