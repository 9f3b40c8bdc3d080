package tui

import (
	"strings"

	"github.com/jask/macroedit/internal/catalog"
	"github.com/jask/macroedit/internal/widgets"
)

// TileRatio is the width:height ratio every tile is held to.
const TileRatio = 2 / 0.75

const systemEventsTitle = "System Events"

// Section is a collapsible group of tiles.
type Section[D any] struct {
	Title string
	Icon  string
	Tiles []Tile[D]
}

// SystemEventsSection maps entries to one tile each, in input order. It is a
// pure function of its input: the descriptor of every tile is rebuilt from the
// entry's current default data.
func SystemEventsSection[D any](entries []catalog.Entry[D]) Section[D] {
	tiles := make([]Tile[D], 0, len(entries))
	for _, e := range entries {
		tiles = append(tiles, Tile[D]{
			Key:        e.DisplayString,
			NameText:   e.DisplayString,
			DescText:   e.Description,
			Properties: catalog.NewIntent(e),
		})
	}
	return Section[D]{Title: systemEventsTitle, Icon: "⚙", Tiles: tiles}
}

// Keys returns the identity key of every tile in order.
func (s Section[D]) Keys() []string {
	out := make([]string, len(s.Tiles))
	for i, t := range s.Tiles {
		out[i] = t.Key
	}
	return out
}

// Tile looks a tile up by key.
func (s Section[D]) Tile(key string) (Tile[D], bool) {
	for _, t := range s.Tiles {
		if t.Key == key {
			return t, true
		}
	}
	return Tile[D]{}, false
}

// HeaderLine is the accordion toggle row.
func (s Section[D]) HeaderLine(open bool) string {
	arrow := "▸"
	if open {
		arrow = "▾"
	}
	return sectionTitleStyle.Render(strings.TrimSpace(arrow + " " + s.Icon + " " + s.Title))
}

// Grid wraps every tile in an aspect-ratio box and lays them out in columns.
func (s Section[D]) Grid(columns int, focusKey string) widgets.Grid {
	cells := make([]widgets.Widget, len(s.Tiles))
	for i, t := range s.Tiles {
		t.Focused = t.Key == focusKey
		cells[i] = widgets.AspectRatio{Ratio: TileRatio, Child: t}
	}
	return widgets.Grid{Cells: cells, Columns: columns, Gap: 1, RowGap: 0, PadX: 1}
}

// View renders the header and, when open, the tile grid below it.
func (s Section[D]) View(width, columns int, open bool, focusKey string) string {
	lines := []string{s.HeaderLine(open)}
	if open {
		if grid := s.Grid(columns, focusKey).Render(width, 0); grid != "" {
			lines = append(lines, grid)
		}
	}
	return strings.Join(lines, "\n")
}
