// Package command turns raw input lines into robot commands.
package command

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/flarebyte/toy-robot/internal/robot"
)

// Options control how lines are parsed.
type Options struct {
	// Table bounds the PLACE coordinates. The zero value means robot.DefaultTable.
	Table robot.Table
	// CaseSensitiveDirections requires facings to be spelled exactly as NORTH, EAST...
	CaseSensitiveDirections bool
}

// DefaultOptions parses for the standard table with case-insensitive facings.
func DefaultOptions() Options {
	return Options{Table: robot.DefaultTable}
}

func (o Options) table() robot.Table {
	if o.Table == (robot.Table{}) {
		return robot.DefaultTable
	}
	return o.Table
}

// placeArgs is the X,Y,F argument of PLACE. Fields may be empty; the field
// checks then report the position or facing as invalid.
type placeArgs struct {
	X string `parser:"@Word? ','"`
	Y string `parser:"@Word? ','"`
	F string `parser:"@Word?"`
}

var placeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comma", Pattern: `,`},
	{Name: "Word", Pattern: `[^,\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var placeParser = participle.MustBuild[placeArgs](
	participle.Lexer(placeLexer),
	participle.Elide("Whitespace"),
)

var keywords = map[string]robot.Op{
	"PLACE":  robot.OpPlace,
	"MOVE":   robot.OpMove,
	"LEFT":   robot.OpLeft,
	"RIGHT":  robot.OpRight,
	"REPORT": robot.OpReport,
}

// Parse classifies one line. It never fails outright: a line that cannot be
// executed comes back with Err set and is still handed to the robot, which
// decides between ignoring and rejecting it.
func Parse(line string, opts Options) robot.Command {
	raw := strings.TrimSpace(line)
	keyword, args := splitKeyword(raw)
	cmd := robot.Command{Raw: raw}

	op, ok := keywords[strings.ToUpper(keyword)]
	if !ok {
		cmd.Err = robot.NewUnsupportedError()
		return cmd
	}
	cmd.Op = op
	if op != robot.OpPlace {
		// Trailing words after MOVE/LEFT/RIGHT/REPORT are tolerated.
		return cmd
	}
	cmd.Pose, cmd.Err = parsePlace(raw, args, opts)
	return cmd
}

// splitKeyword splits s on its first whitespace run.
func splitKeyword(s string) (keyword, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func parsePlace(raw, args string, opts Options) (robot.Pose, error) {
	if args == "" {
		return robot.Pose{}, robot.NewMalformedPlaceError(raw, true)
	}
	pa, err := placeParser.ParseString("", args)
	if err != nil {
		return robot.Pose{}, robot.NewMalformedPlaceError(raw, false)
	}
	table := opts.table()
	x, errX := strconv.Atoi(pa.X)
	y, errY := strconv.Atoi(pa.Y)
	// Position is checked before facing, so "PLACE 9,9,UP" reports the position.
	if errX != nil || errY != nil || !table.Contains(x, y) {
		return robot.Pose{}, robot.NewPositionError(table)
	}
	f, err := ParseDirection(pa.F, opts.CaseSensitiveDirections)
	if err != nil {
		return robot.Pose{}, err
	}
	return robot.Pose{X: x, Y: y, Facing: f}, nil
}

// ParseDirection maps a facing token to a robot.Direction.
func ParseDirection(token string, caseSensitive bool) (robot.Direction, error) {
	if !caseSensitive {
		token = strings.ToUpper(token)
	}
	d, ok := robot.LookupDirection(token)
	if !ok {
		return 0, robot.NewDirectionError()
	}
	return d, nil
}
