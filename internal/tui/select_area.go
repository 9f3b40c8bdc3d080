package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/macroedit/internal/catalog"
	"github.com/jask/macroedit/internal/keyed"
	"github.com/jask/macroedit/internal/layout"
	"github.com/jask/macroedit/internal/widgets"
)

// tileState is the identity-bearing state of a rendered tile. It survives
// reorders and filtering as long as the display string does.
type tileState struct {
	serial      int
	activations int
}

// SelectElementArea is the left region: a searchable palette of catalog tiles.
// It owns the catalog, the filter, the accordion flag and the focus; the
// section it renders is rebuilt from scratch on every pass.
type SelectElementArea[D any] struct {
	Focused bool

	entries   []catalog.Entry[D]
	search    textinput.Model
	searching bool
	open      bool
	focusKey  string
	tiles     *keyed.List[string, *tileState]
	serials   int
	viewport  int
	logger    *zap.Logger
}

func NewSelectElementArea[D any](entries []catalog.Entry[D], logger *zap.Logger) *SelectElementArea[D] {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Placeholder = "search elements"
	ti.Prompt = "/ "
	a := &SelectElementArea[D]{
		search: ti,
		open:   true,
		tiles:  keyed.New[string, *tileState](),
		logger: logger,
	}
	a.SetEntries(entries)
	return a
}

// SetEntries replaces the catalog, keeping tile state for surviving keys.
func (a *SelectElementArea[D]) SetEntries(entries []catalog.Entry[D]) {
	a.entries = entries
	a.reconcile()
}

// SetViewport records the full window width that drives the breakpoints.
func (a *SelectElementArea[D]) SetViewport(width int) { a.viewport = width }

func (a *SelectElementArea[D]) Open() bool       { return a.open }
func (a *SelectElementArea[D]) FocusKey() string { return a.focusKey }
func (a *SelectElementArea[D]) Query() string    { return a.search.Value() }
func (a *SelectElementArea[D]) Searching() bool  { return a.searching }

// Section is the system events section for the current filter.
func (a *SelectElementArea[D]) Section() Section[D] {
	return SystemEventsSection(a.visible())
}

// TileIdentity returns the serial assigned when the tile for key was created.
func (a *SelectElementArea[D]) TileIdentity(key string) (int, bool) {
	s, ok := a.tiles.Get(key)
	if !ok {
		return 0, false
	}
	return s.serial, true
}

// Activations counts how often the tile for key was activated.
func (a *SelectElementArea[D]) Activations(key string) int {
	if s, ok := a.tiles.Get(key); ok {
		return s.activations
	}
	return 0
}

func (a *SelectElementArea[D]) visible() []catalog.Entry[D] {
	return Filter(a.entries, a.search.Value())
}

func (a *SelectElementArea[D]) reconcile() {
	diff := a.tiles.Reconcile(catalog.Keys(a.visible()), func(string) *tileState {
		a.serials++
		return &tileState{serial: a.serials}
	})
	if len(diff.Duplicates) > 0 {
		a.logger.Warn("duplicate display strings in catalog", zap.Strings("keys", diff.Duplicates))
	}
	if !diff.Empty() {
		a.logger.Debug("tiles reconciled",
			zap.Int("created", len(diff.Created)),
			zap.Int("removed", len(diff.Removed)),
			zap.Int("moved", len(diff.Moved)))
	}
	if a.tiles.Index(a.focusKey) < 0 {
		a.focusKey, _ = a.tiles.At(0)
	}
}

func (a *SelectElementArea[D]) columns() int {
	return layout.ForWidth(a.viewport).Columns
}

func (a *SelectElementArea[D]) moveFocus(delta int) {
	n := a.tiles.Len()
	if n == 0 {
		return
	}
	i := a.tiles.Index(a.focusKey) + delta
	if i < 0 || i >= n {
		return
	}
	a.focusKey, _ = a.tiles.At(i)
}

// Update handles a key while the region has focus.
func (a *SelectElementArea[D]) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if a.searching {
		switch {
		case key.Matches(km, keys.Cancel):
			a.search.SetValue("")
			a.stopSearch()
			return nil
		case key.Matches(km, keys.Activate):
			a.stopSearch()
			return nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(km)
		a.reconcile()
		return cmd
	}

	switch {
	case key.Matches(km, keys.Search):
		a.searching = true
		a.open = true
		return a.search.Focus()
	case key.Matches(km, keys.Toggle):
		a.open = !a.open
	case !a.open:
		return nil
	case key.Matches(km, keys.Left):
		a.moveFocus(-1)
	case key.Matches(km, keys.Right):
		a.moveFocus(1)
	case key.Matches(km, keys.Up):
		a.moveFocus(-a.columns())
	case key.Matches(km, keys.Down):
		a.moveFocus(a.columns())
	case key.Matches(km, keys.Activate):
		return a.activate()
	}
	return nil
}

func (a *SelectElementArea[D]) stopSearch() {
	a.searching = false
	a.search.Blur()
	a.reconcile()
}

func (a *SelectElementArea[D]) activate() tea.Cmd {
	t, ok := a.Section().Tile(a.focusKey)
	if !ok {
		return nil
	}
	if s, ok := a.tiles.Get(t.Key); ok {
		s.activations++
	}
	a.logger.Info("element selected", zap.String("key", t.Key), zap.String("type", string(t.Properties.Type)))
	return t.Activate()
}

func (a *SelectElementArea[D]) Render(width, height int) string {
	section := a.Section()
	lines := []string{a.search.View()}
	if !a.searching && a.search.Value() == "" {
		lines[0] = mutedStyle.Render("/ search elements")
	}
	body := section.View(max(1, width-4), a.columns(), a.open, a.focusKey)
	lines = append(lines, strings.Split(body, "\n")...)
	if a.open && len(section.Tiles) == 0 {
		lines = append(lines, mutedStyle.Render("  no matching elements"))
	}

	inner := max(1, height-2)
	start := a.scrollStart(section, width-4, len(lines), inner)
	lines = lines[start:]
	return widgets.Pane{Title: "Elements", Content: strings.Join(lines, "\n"), Focused: a.Focused}.Render(width, height)
}

// scrollStart keeps the focused tile's row inside the visible window.
func (a *SelectElementArea[D]) scrollStart(section Section[D], width, total, inner int) int {
	if total <= inner || !a.open {
		return 0
	}
	idx := a.tiles.Index(a.focusKey)
	if idx < 0 {
		return 0
	}
	grid := section.Grid(a.columns(), a.focusKey)
	rh := widgets.AspectRatio{Ratio: TileRatio}.Rows(grid.CellWidth(width)) + grid.RowGap
	row := idx / max(1, a.columns())
	bottom := 2 + (row+1)*rh
	return min(max(0, bottom-inner), total-inner)
}
