// Package controller renders request results for the terminal.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/dystudio/try/internal/model"
)

// UI defines how results are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayRun(request m.Path, result m.RunResult) error
	DisplayComposition(request m.Path, comp *m.Composition) error
	DisplayCompletions(list m.CompletionList) error
	DisplaySignatureHelp(help m.SignatureHelp) error
	DisplayBatch(entries []m.BatchEntry) error
	DisplayReports(reports []m.Report) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (lipgloss and Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

func countSeverity(diags []m.Diagnostic, sev m.Severity) int {
	n := 0

	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}

	return n
}

func statusText(succeeded bool) string {
	if succeeded {
		return "ok"
	}

	return "failed"
}

func spanText(s *m.Span) string {
	if s == nil {
		return "-"
	}

	return s.String()
}
