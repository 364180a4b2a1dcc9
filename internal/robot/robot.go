// Package robot holds the toy robot state machine. It validates and applies
// commands and reports results as values; it never writes output itself.
package robot

import "errors"

// Robot is a single robot on a table. It is not safe for concurrent use.
type Robot struct {
	table Table
	state State
}

// New returns an unplaced robot on t.
func New(t Table) *Robot {
	return &Robot{table: t}
}

// Table returns the table the robot moves on.
func (r *Robot) Table() Table { return r.table }

// State returns the current state.
func (r *Robot) State() State { return r.state }

// Place puts the robot at p, replacing any earlier placement.
func (r *Robot) Place(p Pose) error {
	if !r.table.Contains(p.X, p.Y) {
		return NewPositionError(r.table)
	}
	if !p.Facing.Valid() {
		return NewDirectionError()
	}
	r.state = Placed(p)
	return nil
}

// Move steps one unit in the current facing unless that leaves the table.
func (r *Robot) Move() error {
	p, ok := r.state.Pose()
	if !ok {
		return newNotPlacedError()
	}
	dx, dy := p.Facing.Delta()
	if !r.table.Contains(p.X+dx, p.Y+dy) {
		return newBoundaryError()
	}
	p.X += dx
	p.Y += dy
	r.state = Placed(p)
	return nil
}

// Left turns the robot a quarter turn counter-clockwise.
func (r *Robot) Left() error {
	return r.turn(Direction.Left)
}

// Right turns the robot a quarter turn clockwise.
func (r *Robot) Right() error {
	return r.turn(Direction.Right)
}

func (r *Robot) turn(next func(Direction) Direction) error {
	p, ok := r.state.Pose()
	if !ok {
		return newNotPlacedError()
	}
	p.Facing = next(p.Facing)
	r.state = Placed(p)
	return nil
}

// Report returns the current pose.
func (r *Robot) Report() (Pose, error) {
	p, ok := r.state.Pose()
	if !ok {
		return Pose{}, newNotPlacedError()
	}
	return p, nil
}

// Exec applies cmd and returns its outcome. Unsupported keywords are classified
// first, then any non-PLACE command on an unplaced robot is ignored, then parse
// errors reject the command.
func (r *Robot) Exec(cmd Command) Outcome {
	out := r.exec(cmd)
	out.Command = cmd
	out.State = r.state
	return out
}

func (r *Robot) exec(cmd Command) Outcome {
	if errors.Is(cmd.Err, ErrUnsupportedCommand) || cmd.Op == OpNone {
		err := cmd.Err
		if err == nil {
			err = NewUnsupportedError()
		}
		return Outcome{Status: StatusIgnored, Err: err}
	}
	if cmd.Op != OpPlace && !r.state.IsPlaced() {
		return Outcome{Status: StatusIgnored, Err: newNotPlacedError()}
	}
	if cmd.Err != nil {
		return Outcome{Status: StatusRejected, Err: cmd.Err}
	}

	var err error
	switch cmd.Op {
	case OpPlace:
		err = r.Place(cmd.Pose)
	case OpMove:
		err = r.Move()
	case OpLeft:
		err = r.Left()
	case OpRight:
		err = r.Right()
	case OpReport:
		if _, err = r.Report(); err == nil {
			return Outcome{Status: StatusReported}
		}
	}
	if err != nil {
		return Outcome{Status: StatusRejected, Err: err}
	}
	return Outcome{Status: StatusApplied}
}
