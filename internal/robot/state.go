package robot

import "fmt"

// Table is the rectangular surface the robot moves on. Valid coordinates are
// 0..Width-1 and 0..Height-1.
type Table struct {
	Width  int
	Height int
}

// DefaultTable is the standard 5x5 table.
var DefaultTable = Table{Width: 5, Height: 5}

// Contains reports whether (x, y) lies on the table.
func (t Table) Contains(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

// Pose is a position plus facing.
type Pose struct {
	X      int
	Y      int
	Facing Direction
}

func (p Pose) String() string {
	return fmt.Sprintf("%d, %d, %s", p.X, p.Y, p.Facing)
}

// State is either unplaced (the zero value) or placed at a Pose.
type State struct {
	pose   Pose
	placed bool
}

// Unplaced returns the initial state.
func Unplaced() State { return State{} }

// Placed returns a state holding p.
func Placed(p Pose) State { return State{pose: p, placed: true} }

// Pose returns the current pose and whether the robot has been placed.
func (s State) Pose() (Pose, bool) {
	return s.pose, s.placed
}

// IsPlaced reports whether a valid PLACE has been applied.
func (s State) IsPlaced() bool { return s.placed }

func (s State) String() string {
	if !s.placed {
		return "unplaced"
	}
	return s.pose.String()
}
