package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type fileEntry struct {
	DisplayString string      `toml:"display_string"`
	Description   string      `toml:"description"`
	DefaultData   SystemEvent `toml:"default_data"`
}

type catalogFile struct {
	Entry []fileEntry `toml:"entry"`
}

// LoadFile reads a system event catalog from a TOML file of [[entry]] tables.
//
//	[[entry]]
//	display_string = "Toggle Mute"
//	description = "Mutes or unmutes the system audio"
//	default_data = { type = "Volume", action = { type = "ToggleMute" } }
func LoadFile(path string) ([]Entry[SystemEvent], error) {
	var f catalogFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return fromFile(f)
}

// Parse decodes a catalog from TOML text.
func Parse(data string) ([]Entry[SystemEvent], error) {
	var f catalogFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return fromFile(f)
}

func fromFile(f catalogFile) ([]Entry[SystemEvent], error) {
	out := make([]Entry[SystemEvent], 0, len(f.Entry))
	for i, fe := range f.Entry {
		if fe.DisplayString == "" {
			return nil, fmt.Errorf("entry %d: missing display_string", i+1)
		}
		if err := fe.DefaultData.Validate(); err != nil {
			return nil, fmt.Errorf("entry %q: %w", fe.DisplayString, err)
		}
		out = append(out, Entry[SystemEvent]{
			DisplayString: fe.DisplayString,
			Description:   fe.Description,
			DefaultData:   fe.DefaultData,
		})
	}
	if err := CheckUnique(out); err != nil {
		return nil, err
	}
	return out, nil
}
