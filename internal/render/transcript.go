package render

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/flarebyte/toy-robot/internal/robot"
)

const jsonFormat = "json"

// Entry is the transcript record of one command.
// Field order is stable to keep JSON deterministic in tests.
type Entry struct {
	Line     int       `json:"line"`
	Command  string    `json:"command"`
	Status   string    `json:"status"`
	Kind     string    `json:"kind,omitempty"`
	Output   string    `json:"output,omitempty"`
	Placed   bool      `json:"placed"`
	Position *Position `json:"position,omitempty"`
}

// Position is the pose after the command, present once the robot is placed.
type Position struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Facing string `json:"facing"`
}

// NewEntry describes outcome o of the seq-th command (1-based).
func NewEntry(seq int, o robot.Outcome) Entry {
	e := Entry{Line: seq, Command: o.Command.Raw, Status: o.Status.String()}
	if k := robot.KindOf(o.Err); k != 0 {
		e.Kind = k.String()
	}
	if line, ok := Line(o); ok {
		e.Output = line
	}
	if p, ok := o.State.Pose(); ok {
		e.Placed = true
		e.Position = &Position{X: p.X, Y: p.Y, Facing: p.Facing.String()}
	}
	return e
}

// jsonRenderer writes one compact JSON object per command.
type jsonRenderer struct {
	w   io.Writer
	seq int
}

func newJSONRenderer(w io.Writer, _ Options) Renderer {
	return &jsonRenderer{w: w}
}

func (r *jsonRenderer) Render(o robot.Outcome) error {
	r.seq++
	b, err := encodeJSONCompact(NewEntry(r.seq, o))
	if err != nil {
		return err
	}
	_, err = r.w.Write(b)
	return err
}

func (r *jsonRenderer) Close() error { return nil }

func encodeJSONCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func init() { Register(jsonFormat, newJSONRenderer) }
