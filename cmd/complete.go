package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dystudio/try/internal/domain"
	m "github.com/dystudio/try/internal/model"
)

var queryBufferFlag string
var queryPositionFlag int

// completeCmd represents the complete command.
var completeCmd = newCompleteCmd()

// signatureCmd represents the signature command.
var signatureCmd = newSignatureCmd()

func newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <request.try.yaml>",
		Short: "List completions at the cursor of the active buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Complete(cmd.Context(), queryArgs(args[0]))
		},
	}
	addQueryFlags(cmd)

	return cmd
}

func newSignatureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signature <request.try.yaml>",
		Short: "Show signature help at the cursor of the active buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Signature(cmd.Context(), queryArgs(args[0]))
		},
	}
	addQueryFlags(cmd)

	return cmd
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&queryBufferFlag, "buffer", "b", "", "active buffer id, file or file@region (defaults to the request's)")
	cmd.Flags().IntVar(&queryPositionFlag, "position", -1, "cursor offset inside the active buffer (defaults to the request's)")
}

func queryArgs(request string) domain.QueryArgs {
	return domain.QueryArgs{
		Request:  m.Path(request),
		Buffer:   queryBufferFlag,
		Position: queryPositionFlag,
	}
}

func init() {
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(signatureCmd)
}
