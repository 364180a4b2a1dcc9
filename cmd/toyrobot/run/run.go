package run

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flarebyte/toy-robot/internal/config"
	"github.com/flarebyte/toy-robot/internal/logging"
	"github.com/flarebyte/toy-robot/internal/render"
	"github.com/flarebyte/toy-robot/internal/robot"
	"github.com/flarebyte/toy-robot/internal/source"
)

var (
	cfgPath         string
	flagFormat      string
	flagColor       bool
	flagVerbose     bool
	flagFailOnError bool
)

// Cmd represents the `toyrobot run` command.
var Cmd = &cobra.Command{
	Use:           "run [commands-file]",
	Short:         "Execute robot commands from a file, a .lua script, or stdin",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, &settings)

		logger, err := logging.New("toyrobot", flagVerbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		opts := runOptions{
			Settings:    settings,
			FailOnError: flagFailOnError,
			Stdin:       cmd.InOrStdin(),
			Stdout:      cmd.OutOrStdout(),
			Logger:      logger,
		}
		if len(args) > 0 {
			opts.Path = args[0]
		}
		return execute(cmd.Context(), opts)
	},
}

func init() {
	Cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text|json|yaml")
	Cmd.Flags().BoolVar(&flagColor, "color", false, "Colour ERROR and IGNORED lines (text format)")
	Cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every command to stderr")
	Cmd.Flags().BoolVar(&flagFailOnError, "fail-on-error", false, "Exit with code 2 when any command is rejected or ignored")
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	if cmd.Flags().Changed("format") {
		s.Output.Format = flagFormat
	}
	if cmd.Flags().Changed("color") {
		s.Output.Color = flagColor
	}
}

type runOptions struct {
	// Path of the commands; "" or "-" reads Stdin.
	Path        string
	Settings    config.Settings
	FailOnError bool
	Stdin       io.Reader
	Stdout      io.Writer
	Logger      *zap.SugaredLogger
}

func execute(ctx context.Context, o runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	s := o.Settings

	out, err := render.New(s.Output.Format, o.Stdout, render.Options{Color: s.Output.Color})
	if err != nil {
		return err
	}
	src, err := source.Open(o.Path, source.Options{
		Stdin: o.Stdin,
		Lua: source.LuaOptions{
			Timeout:     time.Duration(s.Lua.TimeoutMs) * time.Millisecond,
			MaxCommands: s.Lua.MaxCommands,
		},
	})
	if err != nil {
		return err
	}
	o.Logger.Debugw("reading commands", "source", src.Name())

	table := robot.Table{Width: s.Table.Width, Height: s.Table.Height}
	sess := session{
		robot: robot.New(table),
		parse: parseOptions(s),
		out:   out,
		log:   o.Logger,
	}
	sum, err := sess.run(ctx, src)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	o.Logger.Debugw("run finished",
		"commands", sum.total,
		"reported", sum.reported,
		"rejected", sum.rejected,
		"ignored", sum.ignored,
	)
	return evaluateRunExit(sum, o.FailOnError)
}
