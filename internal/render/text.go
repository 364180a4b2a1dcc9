package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/flarebyte/toy-robot/internal/robot"
)

const textFormat = "text"

// Line returns the text line for o, or false when the command prints nothing.
func Line(o robot.Outcome) (string, bool) {
	switch o.Status {
	case robot.StatusReported:
		p, _ := o.State.Pose()
		return "REPORT: " + p.String(), true
	case robot.StatusRejected:
		return "ERROR: " + errText(o.Err), true
	case robot.StatusIgnored:
		return fmt.Sprintf(`"%s" is IGNORED: %s`, o.Command.Raw, errText(o.Err)), true
	default:
		return "", false
	}
}

func errText(err error) string {
	if err == nil {
		return "error"
	}
	return err.Error()
}

type textRenderer struct {
	w       io.Writer
	errors  *color.Color
	ignored *color.Color
}

func newTextRenderer(w io.Writer, opts Options) Renderer {
	r := &textRenderer{w: w}
	if opts.Color {
		r.errors = color.New(color.FgRed)
		r.errors.EnableColor()
		r.ignored = color.New(color.FgYellow)
		r.ignored.EnableColor()
	}
	return r
}

func (r *textRenderer) Render(o robot.Outcome) error {
	line, ok := Line(o)
	if !ok {
		return nil
	}
	switch {
	case o.Status == robot.StatusRejected && r.errors != nil:
		line = r.errors.Sprint(line)
	case o.Status == robot.StatusIgnored && r.ignored != nil:
		line = r.ignored.Sprint(line)
	}
	_, err := fmt.Fprintln(r.w, line)
	return err
}

func (r *textRenderer) Close() error { return nil }

func init() { Register(textFormat, newTextRenderer) }
