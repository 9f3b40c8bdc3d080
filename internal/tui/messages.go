package tui

import "github.com/jask/macroedit/internal/catalog"

// SelectedMsg is emitted when a tile is activated. Key is the display string
// of the originating entry; Intent is the tile's descriptor, unchanged.
type SelectedMsg[D any] struct {
	Key    string
	Intent catalog.Intent[D]
}

// SequenceSelectedMsg tells the edit area which sequence element to show.
// A nil Element clears it.
type SequenceSelectedMsg struct {
	Element *SequenceElement
}

// ElementEditedMsg carries new data for a sequence element.
type ElementEditedMsg struct {
	ID   string
	Data string
}

type statusMsg struct {
	text  string
	isErr bool
}
