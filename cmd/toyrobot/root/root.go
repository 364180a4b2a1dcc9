package root

import (
	"github.com/flarebyte/toy-robot/cmd/toyrobot/run"
	"github.com/flarebyte/toy-robot/cmd/toyrobot/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for toyrobot.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toyrobot",
		Short: "CLI: drive a toy robot around a table with PLACE, MOVE, LEFT, RIGHT and REPORT",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(run.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
