package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dystudio/try/internal/domain"
)

var batchParallelFlag int
var batchShardFlag string
var batchCompileFlag bool

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [paths...]",
		Short: "Run every request found under the given paths",
		Long: `Run every *.try.yaml request found under the given paths and store one
report per request in the reports directory.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./samples/...  recursively scan samples directory
  - ./a ./b        scan multiple directories`,
		RunE: func(cmd *cobra.Command, args []string) error {
			threads := batchParallelFlag
			if !cmd.Flags().Changed("parallel") {
				threads = cfg.Threads
			}

			shardIndex, totalShards := parseShardFlag(batchShardFlag)

			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Paths:           parsePaths(args),
				Reports:         reportsDir(),
				Compile:         batchCompileFlag,
				Threads:         threads,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
			})
		},
	}
	cmd.Flags().IntVarP(&batchParallelFlag, "parallel", "p", 1, "number of parallel workers (defaults to config threads)")
	cmd.Flags().StringVarP(&batchShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().BoolVarP(&batchCompileFlag, "compile", "c", false, "only check the requests, do not run them")

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
