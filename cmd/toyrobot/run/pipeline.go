package run

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/flarebyte/toy-robot/internal/command"
	"github.com/flarebyte/toy-robot/internal/config"
	"github.com/flarebyte/toy-robot/internal/render"
	"github.com/flarebyte/toy-robot/internal/robot"
	"github.com/flarebyte/toy-robot/internal/source"
)

// session executes one command list against one robot.
type session struct {
	robot *robot.Robot
	parse command.Options
	out   render.Renderer
	log   *zap.SugaredLogger
}

type summary struct {
	total    int
	applied  int
	reported int
	rejected int
	ignored  int
}

func (s *summary) add(o robot.Outcome) {
	s.total++
	switch o.Status {
	case robot.StatusApplied:
		s.applied++
	case robot.StatusReported:
		s.reported++
	case robot.StatusRejected:
		s.rejected++
	case robot.StatusIgnored:
		s.ignored++
	}
}

func (s summary) failed() int { return s.rejected + s.ignored }

func parseOptions(s config.Settings) command.Options {
	return command.Options{
		Table:                   robot.Table{Width: s.Table.Width, Height: s.Table.Height},
		CaseSensitiveDirections: s.Directions.CaseSensitive,
	}
}

// run processes lines strictly in order as src yields them; the outcome of
// line N is rendered before line N+1 is read. Command failures never stop
// the loop, only read and output errors do.
func (s session) run(ctx context.Context, src source.Source) (summary, error) {
	var sum summary
	err := src.Each(ctx, func(line string) error {
		o := s.robot.Exec(command.Parse(line, s.parse))
		sum.add(o)
		s.log.Debugw("command",
			"line", sum.total,
			"command", o.Command.Raw,
			"status", o.Status.String(),
			"kind", kindName(o.Err),
			"state", o.State.String(),
		)
		if err := s.out.Render(o); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	})
	return sum, err
}

func kindName(err error) string {
	if k := robot.KindOf(err); k != 0 {
		return k.String()
	}
	return ""
}
