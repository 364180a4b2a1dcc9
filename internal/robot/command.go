package robot

// Op identifies the action a command asks for.
type Op int

const (
	OpNone Op = iota
	OpPlace
	OpMove
	OpLeft
	OpRight
	OpReport
)

func (o Op) String() string {
	switch o {
	case OpPlace:
		return "PLACE"
	case OpMove:
		return "MOVE"
	case OpLeft:
		return "LEFT"
	case OpRight:
		return "RIGHT"
	case OpReport:
		return "REPORT"
	default:
		return ""
	}
}

// Command is one parsed input line. Err is set when parsing already rejected it;
// Exec still decides whether that rejection or the placement gate wins.
type Command struct {
	Raw  string
	Op   Op
	Pose Pose // PLACE only
	Err  error
}

// Status is the coarse result of executing a command.
type Status int

const (
	StatusApplied Status = iota
	StatusReported
	StatusRejected
	StatusIgnored
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusReported:
		return "reported"
	case StatusRejected:
		return "rejected"
	case StatusIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Outcome is what executing a command produced. State is the state after the command.
type Outcome struct {
	Command Command
	Status  Status
	Err     error
	State   State
}

// Failed reports whether the command was rejected or ignored.
func (o Outcome) Failed() bool {
	return o.Status == StatusRejected || o.Status == StatusIgnored
}
