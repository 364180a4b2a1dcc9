package robot

import "strings"

// Direction is the cardinal direction the robot faces.
type Direction int

// Directions in clockwise order. RIGHT advances through this order, LEFT goes back.
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every valid facing in rotation order.
var Directions = [...]Direction{North, East, South, West}

// String returns the upper-case command token for d.
func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Left returns the direction after a quarter turn counter-clockwise.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	case East:
		return North
	default:
		return d
	}
}

// Right returns the direction after a quarter turn clockwise.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	case West:
		return North
	default:
		return d
	}
}

// Delta returns the x and y offsets of a single step in direction d.
// NORTH increases y, EAST increases x.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// LookupDirection maps an exact token such as "NORTH" to its Direction.
func LookupDirection(token string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == token {
			return d, true
		}
	}
	return 0, false
}

// DirectionNames returns the tokens of all directions joined with commas.
func DirectionNames() string {
	names := make([]string, 0, len(Directions))
	for _, d := range Directions {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}
