package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dystudio/try/internal/domain"
	m "github.com/dystudio/try/internal/model"
)

// composeCmd represents the compose command.
var composeCmd = newComposeCmd()

func newComposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose <request.try.yaml>",
		Short: "Print the composed documents of a request",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Compose(domain.ComposeArgs{Request: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(composeCmd)
}
