package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dystudio/try/internal/domain"
	m "github.com/dystudio/try/internal/model"
)

var runCompileFlag bool
var runSaveFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <request.try.yaml>",
		Short: "Compose and run one request",
		Long: `Compose the buffers of a request into its host files, run the composed
documents and print output and diagnostics in buffer coordinates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runArgs := domain.RunArgs{
				Request: m.Path(args[0]),
				Compile: runCompileFlag,
			}
			if runSaveFlag {
				runArgs.Reports = reportsDir()
			}

			return workflow.Run(cmd.Context(), runArgs)
		},
	}
	cmd.Flags().BoolVarP(&runCompileFlag, "compile", "c", false, "only check the request, do not run it")
	cmd.Flags().BoolVar(&runSaveFlag, "save", false, "store the result in the reports directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
