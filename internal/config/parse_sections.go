package config

import "cuelang.org/go/cue"

// parseTableSection extracts optional table.* fields.
func parseTableSection(v cue.Value, s *Settings) error {
	if err := decodeOptional(v, "table.width", cue.IntKind, &s.Table.Width); err != nil {
		return err
	}
	return decodeOptional(v, "table.height", cue.IntKind, &s.Table.Height)
}

// parseDirectionsSection extracts optional directions.caseSensitive.
func parseDirectionsSection(v cue.Value, s *Settings) error {
	return decodeOptional(v, "directions.caseSensitive", cue.BoolKind, &s.Directions.CaseSensitive)
}

// parseOutputSection extracts optional output.* fields.
func parseOutputSection(v cue.Value, s *Settings) error {
	if err := decodeOptional(v, "output.format", cue.StringKind, &s.Output.Format); err != nil {
		return err
	}
	return decodeOptional(v, "output.color", cue.BoolKind, &s.Output.Color)
}

// parseLuaSection extracts optional lua.* limits.
func parseLuaSection(v cue.Value, s *Settings) error {
	if err := decodeOptional(v, "lua.timeoutMs", cue.IntKind, &s.Lua.TimeoutMs); err != nil {
		return err
	}
	return decodeOptional(v, "lua.maxCommands", cue.IntKind, &s.Lua.MaxCommands)
}
