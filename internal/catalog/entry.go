// Package catalog describes the selectable building blocks of a macro and the
// selection intents emitted when one of them is chosen.
package catalog

import (
	"errors"
	"fmt"
)

// ActionType tags a selection intent with the kind of element it creates.
type ActionType string

const (
	SystemEventAction   ActionType = "SystemEventAction"
	KeyPressEventAction ActionType = "KeyPressEventAction"
	DelayEventAction    ActionType = "DelayEventAction"
	MouseEventAction    ActionType = "MouseEventAction"
)

// ErrDuplicateDisplayString is returned by loaders when two entries share a label.
var ErrDuplicateDisplayString = errors.New("duplicate display string")

// Entry is one selectable catalog item. DisplayString doubles as its identity key.
type Entry[D any] struct {
	DisplayString string
	Description   string
	DefaultData   D
}

// Intent is the payload emitted when a tile is activated.
type Intent[D any] struct {
	Type ActionType `json:"type"`
	Data D          `json:"data"`
}

// NewIntent builds the system event intent for e. Data is copied as-is.
func NewIntent[D any](e Entry[D]) Intent[D] {
	return Intent[D]{Type: SystemEventAction, Data: e.DefaultData}
}

// Keys returns the display strings of entries in order.
func Keys[D any](entries []Entry[D]) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.DisplayString
	}
	return out
}

// CheckUnique reports the first display string that appears twice.
// Rendering never calls this; it guards catalog sources at load time.
func CheckUnique[D any](entries []Entry[D]) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.DisplayString]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateDisplayString, e.DisplayString)
		}
		seen[e.DisplayString] = struct{}{}
	}
	return nil
}
