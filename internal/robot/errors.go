package robot

import "fmt"

// ErrorKind classifies why a command was rejected or ignored.
type ErrorKind int

const (
	InvalidPosition ErrorKind = iota + 1
	InvalidDirection
	MalformedPlace
	BoundaryViolation
	UnsupportedCommand
	NotYetPlaced
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidPosition:
		return "InvalidPosition"
	case InvalidDirection:
		return "InvalidDirection"
	case MalformedPlace:
		return "MalformedPlace"
	case BoundaryViolation:
		return "BoundaryViolation"
	case UnsupportedCommand:
		return "UnsupportedCommand"
	case NotYetPlaced:
		return "NotYetPlaced"
	default:
		return "Unknown"
	}
}

// Ignorable reports whether commands failing with k are ignored rather than rejected.
func (k ErrorKind) Ignorable() bool {
	return k == UnsupportedCommand || k == NotYetPlaced
}

// Error is a command level failure. It never aborts a run.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Msg
}

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidPosition    = &Error{Kind: InvalidPosition}
	ErrInvalidDirection   = &Error{Kind: InvalidDirection}
	ErrMalformedPlace     = &Error{Kind: MalformedPlace}
	ErrBoundaryViolation  = &Error{Kind: BoundaryViolation}
	ErrUnsupportedCommand = &Error{Kind: UnsupportedCommand}
	ErrNotYetPlaced       = &Error{Kind: NotYetPlaced}
)

// KindOf extracts the ErrorKind of err, or 0 when err is not an *Error.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return 0
}

// NewPositionError describes the valid coordinate range of t.
func NewPositionError(t Table) error {
	if t.Width == t.Height {
		return &Error{Kind: InvalidPosition, Msg: fmt.Sprintf("position has to be a valid number between 0 - %d", t.Width-1)}
	}
	return &Error{Kind: InvalidPosition, Msg: fmt.Sprintf("position has to be a valid number between 0 - %d for X and 0 - %d for Y", t.Width-1, t.Height-1)}
}

// NewDirectionError lists the accepted facings.
func NewDirectionError() error {
	return &Error{Kind: InvalidDirection, Msg: fmt.Sprintf("F must be one of the following: [%s]", DirectionNames())}
}

// NewMalformedPlaceError reports a PLACE whose argument is absent or has the wrong shape.
func NewMalformedPlaceError(raw string, missing bool) error {
	reason := "invalid positions"
	if missing {
		reason = "missing positions"
	}
	return &Error{Kind: MalformedPlace, Msg: fmt.Sprintf("%s is an invalid PLACE command, %s", raw, reason)}
}

func newBoundaryError() error {
	return &Error{Kind: BoundaryViolation, Msg: "can not move the robot outside the allowed boundaries"}
}

// NewUnsupportedError is used for unknown keywords and empty lines.
func NewUnsupportedError() error {
	return &Error{Kind: UnsupportedCommand, Msg: "not supported command"}
}

func newNotPlacedError() error {
	return &Error{Kind: NotYetPlaced, Msg: "the first command has to be a valid PLACE command"}
}
