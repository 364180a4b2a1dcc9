package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// Settings is the validated simulator configuration.
type Settings struct {
	ConfigVersion string
	Table         Table
	Directions    Directions
	Output        Output
	Lua           Lua
}

// Table holds the table dimensions.
type Table struct {
	Width  int
	Height int
}

// Directions holds facing-token matching rules.
type Directions struct {
	CaseSensitive bool
}

// Output holds rendering options.
type Output struct {
	Format string
	Color  bool
}

// Lua holds limits for Lua command scripts.
type Lua struct {
	TimeoutMs   int
	MaxCommands int
}

const (
	defaultTableSize      = 5
	defaultFormat         = "text"
	defaultLuaTimeoutMs   = 1000
	defaultLuaMaxCommands = 10000
)

// Default returns the settings used when no config file is given.
func Default() Settings {
	return Settings{
		ConfigVersion: CurrentConfigVersion,
		Table:         Table{Width: defaultTableSize, Height: defaultTableSize},
		Output:        Output{Format: defaultFormat},
		Lua:           Lua{TimeoutMs: defaultLuaTimeoutMs, MaxCommands: defaultLuaMaxCommands},
	}
}

// Load reads a CUE config file and overlays it on Default. An empty path
// returns Default unchanged.
// Required fields:
//   - configVersion: string
func Load(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	v, err := compileCUE(path)
	if err != nil {
		return Settings{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Settings{}, err
	}
	s := Default()
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&s.ConfigVersion); err != nil {
		return Settings{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(s.ConfigVersion) {
		return Settings{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", s.ConfigVersion, SupportedConfigVersionsCSV())
	}
	for _, parse := range []func(cue.Value, *Settings) error{
		parseTableSection,
		parseDirectionsSection,
		parseOutputSection,
		parseLuaSection,
	} {
		if err := parse(v, &s); err != nil {
			return Settings{}, err
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if s.Table.Width < 1 || s.Table.Height < 1 {
		return fmt.Errorf("invalid table size: %dx%d (must be at least 1x1)", s.Table.Width, s.Table.Height)
	}
	if s.Lua.TimeoutMs < 0 {
		return fmt.Errorf("invalid lua.timeoutMs: %d (must be >= 0)", s.Lua.TimeoutMs)
	}
	if s.Lua.MaxCommands < 1 {
		return fmt.Errorf("invalid lua.maxCommands: %d (must be >= 1)", s.Lua.MaxCommands)
	}
	return nil
}
