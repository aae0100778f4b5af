// Package cmd provides the root command and CLI setup for try.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/dystudio/try/internal/adapter"
	"github.com/dystudio/try/internal/config"
	"github.com/dystudio/try/internal/controller"
	"github.com/dystudio/try/internal/domain"
	m "github.com/dystudio/try/internal/model"
)

var workflow domain.Workflow
var cfg config.Config

// newWorkflow wires the workflow from the effective configuration. Tests
// replace it to inject mocks.
var newWorkflow = buildWorkflow

var configFlag string
var reportsOutputDirFlag string
var dialectFlag string
var unmappedFlag string
var timeoutFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "try",
		Short: "Compose and run code buffers inside host files",
		Long: `try splices caller supplied buffers into named regions of host files,
runs or analyses the composed documents with the Lua engine and reports
every diagnostic back in the coordinates of the buffer it came from.

Requests are YAML files (*.try.yaml). Batch mode accepts Go-style path
patterns:
  - ./...          recursively scan current directory
  - ./samples/...  recursively scan samples directory`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configure(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", config.DefaultFile, "path to the TOML config file")
	flags.StringVarP(&reportsOutputDirFlag, "reports", "r", "", "directory for run reports (overrides config)")
	flags.StringVar(&dialectFlag, "dialect", "", "region marker dialect: "+dialectList())
	flags.StringVar(&unmappedFlag, "unmapped", "", "policy for diagnostics outside buffers: reanchor or drop")
	flags.StringVar(&timeoutFlag, "timeout", "", "engine timeout, e.g. 2s (0 disables)")
	flags.StringVar(&logLevelFlag, "log-level", "", "trace level: error, info or debug")

	return cmd
}

// configure loads the config file, applies flag overrides and builds the
// workflow.
func configure(cmd *cobra.Command) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	applyFlags(&loaded)

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := config.ParseLogLevel(loaded.LogLevel)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("try").SetTraceLevel(level)

	cfg = loaded

	wf, err := newWorkflow(cfg, cmd)
	if err != nil {
		return err
	}

	workflow = wf

	return nil
}

func applyFlags(c *config.Config) {
	if reportsOutputDirFlag != "" {
		c.Reports = reportsOutputDirFlag
	}

	if dialectFlag != "" {
		c.Dialect = dialectFlag
	}

	if unmappedFlag != "" {
		c.Unmapped = unmappedFlag
	}

	if timeoutFlag != "" {
		c.Timeout = timeoutFlag
	}

	if logLevelFlag != "" {
		c.LogLevel = logLevelFlag
	}
}

func buildWorkflow(c config.Config, cmd *cobra.Command) (domain.Workflow, error) {
	markers, err := domain.Dialect(c.Dialect)
	if err != nil {
		return nil, err
	}

	policy, err := domain.ParseUnmappedPolicy(c.Unmapped)
	if err != nil {
		return nil, err
	}

	timeout, err := c.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	engine := adapter.NewLuaEngine(
		adapter.WithLuaLibraries(c.Engine.Libraries...),
		adapter.WithCallStackSize(c.Engine.CallStackSize),
	)

	orchestrator := domain.NewOrchestrator(
		domain.NewAssembler(markers),
		engine,
		engine,
		domain.WithUnmappedPolicy(policy),
		domain.WithTimeout(timeout),
	)

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		adapter.NewWorkspaceLoader(),
		adapter.NewReportStore(),
		adapter.NewWatcher(0),
		ui,
		orchestrator,
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func reportsDir() m.Path {
	return m.Path(cfg.Reports)
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func dialectList() string {
	return strings.Join(domain.Dialects(), ", ")
}
