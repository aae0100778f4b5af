package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dystudio/try/internal/domain"
	m "github.com/dystudio/try/internal/model"
)

var watchCompileFlag bool

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <request.try.yaml>",
		Short: "Re-run a request whenever files next to it change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{RunArgs: domain.RunArgs{
				Request: m.Path(args[0]),
				Compile: watchCompileFlag,
			}})
		},
	}
	cmd.Flags().BoolVarP(&watchCompileFlag, "compile", "c", false, "only check the request, do not run it")

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
