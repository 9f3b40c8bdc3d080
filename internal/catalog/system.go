package catalog

import (
	"encoding/json"
	"fmt"
)

// SystemEventKind is the top-level variant of a system event.
type SystemEventKind string

const (
	KindOpen       SystemEventKind = "Open"
	KindVolume     SystemEventKind = "Volume"
	KindBrightness SystemEventKind = "Brightness"
	KindClipboard  SystemEventKind = "Clipboard"
)

// SubAction selects the operation inside a Volume, Brightness or Clipboard event.
type SubAction struct {
	Type  string `json:"type" toml:"type"`
	Level uint32 `json:"level,omitempty" toml:"level,omitempty"`
	Data  string `json:"data,omitempty" toml:"data,omitempty"`
}

// MarshalJSON writes only the fields of the selected operation. Level and Data
// are always present for Set and SetClipboard, zero or not.
func (a SubAction) MarshalJSON() ([]byte, error) {
	switch a.Type {
	case "Set":
		return json.Marshal(struct {
			Type  string `json:"type"`
			Level uint32 `json:"level"`
		}{a.Type, a.Level})
	case "SetClipboard":
		return json.Marshal(struct {
			Type string `json:"type"`
			Data string `json:"data"`
		}{a.Type, a.Data})
	}
	return json.Marshal(struct {
		Type string `json:"type"`
	}{a.Type})
}

// SystemEvent is the default data carried by system event entries.
type SystemEvent struct {
	Type   SystemEventKind `json:"type" toml:"type"`
	Path   string          `json:"path,omitempty" toml:"path,omitempty"`
	Action *SubAction      `json:"action,omitempty" toml:"action,omitempty"`
}

// MarshalJSON always writes path for Open events, even when empty, so the
// field stays editable.
func (e SystemEvent) MarshalJSON() ([]byte, error) {
	if e.Type == KindOpen {
		return json.Marshal(struct {
			Type SystemEventKind `json:"type"`
			Path string          `json:"path"`
		}{e.Type, e.Path})
	}
	return json.Marshal(struct {
		Type   SystemEventKind `json:"type"`
		Action *SubAction      `json:"action,omitempty"`
	}{e.Type, e.Action})
}

var subActions = map[SystemEventKind][]string{
	KindVolume:     {"ToggleMute", "LowerVolume", "IncreaseVolume"},
	KindBrightness: {"Get", "Set"},
	KindClipboard:  {"SetClipboard", "Copy", "GetClipboard", "Paste"},
}

// Validate checks that the event names a known variant.
func (e SystemEvent) Validate() error {
	if e.Type == KindOpen {
		if e.Action != nil {
			return fmt.Errorf("open event takes a path, not an action")
		}
		return nil
	}
	allowed, ok := subActions[e.Type]
	if !ok {
		return fmt.Errorf("unknown system event type %q", e.Type)
	}
	if e.Action == nil {
		return fmt.Errorf("%s event requires an action", e.Type)
	}
	for _, a := range allowed {
		if a == e.Action.Type {
			return nil
		}
	}
	return fmt.Errorf("unknown %s action %q", e.Type, e.Action.Type)
}

func action(kind SystemEventKind, name string) SystemEvent {
	return SystemEvent{Type: kind, Action: &SubAction{Type: name}}
}

// SystemEvents returns the built-in system event catalog in palette order.
func SystemEvents() []Entry[SystemEvent] {
	setBrightness := action(KindBrightness, "Set")
	setBrightness.Action.Level = 75
	return []Entry[SystemEvent]{
		{DisplayString: "Open File or Program", Description: "Opens a file or program", DefaultData: SystemEvent{Type: KindOpen}},
		{DisplayString: "Open Website", Description: "Opens a URL in the default browser", DefaultData: SystemEvent{Type: KindOpen, Path: "https://"}},
		{DisplayString: "Toggle Mute", Description: "Mutes or unmutes the system audio", DefaultData: action(KindVolume, "ToggleMute")},
		{DisplayString: "Lower Volume", Description: "Lowers the system volume", DefaultData: action(KindVolume, "LowerVolume")},
		{DisplayString: "Increase Volume", Description: "Raises the system volume", DefaultData: action(KindVolume, "IncreaseVolume")},
		{DisplayString: "Get Brightness", Description: "Reads the monitor brightness", DefaultData: action(KindBrightness, "Get")},
		{DisplayString: "Set Brightness", Description: "Sets the monitor brightness level", DefaultData: setBrightness},
		{DisplayString: "Set Clipboard", Description: "Places text on the clipboard", DefaultData: action(KindClipboard, "SetClipboard")},
		{DisplayString: "Copy", Description: "Copies the current selection", DefaultData: action(KindClipboard, "Copy")},
		{DisplayString: "Paste", Description: "Pastes the clipboard contents", DefaultData: action(KindClipboard, "Paste")},
		{DisplayString: "Get Clipboard", Description: "Reads the clipboard contents", DefaultData: action(KindClipboard, "GetClipboard")},
	}
}
