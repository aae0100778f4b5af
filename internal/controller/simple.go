package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/dystudio/try/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRun prints output, exception and diagnostics of one run.
func (s *SimpleUI) DisplayRun(request m.Path, result m.RunResult) error {
	s.printf("%s: %s\n", request, statusText(result.Succeeded))

	for _, line := range result.Output {
		s.printf("%s\n", line)
	}

	if result.Exception != "" {
		s.printf("exception: %s\n", result.Exception)
	}

	if result.ReturnValue != nil {
		s.printf("return: %v\n", result.ReturnValue)
	}

	s.printDiagnostics(result.Diagnostics, result.Suppressed)

	return nil
}

// DisplayComposition prints every composed document and its viewports.
func (s *SimpleUI) DisplayComposition(request m.Path, comp *m.Composition) error {
	s.printf("%s\n", request)

	for _, doc := range comp.Documents() {
		s.printf("\n=== %s ===\n%s", doc.Key, doc.Text)

		if !strings.HasSuffix(doc.Text, "\n") {
			s.printf("\n")
		}

		if len(doc.Viewports) == 0 {
			continue
		}

		var tableBuffer bytes.Buffer

		table := newTable(&tableBuffer, "Buffer", "Region", "Outer", "Original")
		for _, vp := range doc.Viewports {
			table.Append([]string{vp.BufferID.String(), vp.Region.String(), vp.OuterRegion.String(), vp.Original.String()})
		}

		table.Render()
		s.printf("\n%s", tableBuffer.String())
	}

	return nil
}

// DisplayCompletions prints one completion per line.
func (s *SimpleUI) DisplayCompletions(list m.CompletionList) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, "Completion", "Kind", "Replace")
	for _, item := range list.Items {
		table.Append([]string{item.DisplayText, item.Kind, spanText(item.Replace)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(list.Items)), "", list.BufferID.String()})
	table.Render()
	s.printf("%s", tableBuffer.String())

	s.printDiagnostics(list.Diagnostics, list.Suppressed)

	return nil
}

// DisplaySignatureHelp prints the signatures and marks the active parameter.
func (s *SimpleUI) DisplaySignatureHelp(help m.SignatureHelp) error {
	if len(help.Signatures) == 0 {
		s.printf("no signature at cursor in %s\n", help.BufferID)
		s.printDiagnostics(help.Diagnostics, help.Suppressed)

		return nil
	}

	for i, sig := range help.Signatures {
		marker := " "
		if i == help.ActiveSignature {
			marker = ">"
		}

		s.printf("%s %s\n", marker, sig.Label)

		if sig.Documentation != "" {
			s.printf("    %s\n", sig.Documentation)
		}

		if i == help.ActiveSignature && help.ActiveParameter < len(sig.Parameters) {
			s.printf("    active parameter: %s\n", sig.Parameters[help.ActiveParameter].Label)
		}
	}

	s.printf("applicable: %s\n", spanText(help.Applicable))
	s.printDiagnostics(help.Diagnostics, help.Suppressed)

	return nil
}

func (s *SimpleUI) printDiagnostics(diags, suppressed []m.Diagnostic) {
	if len(diags) > 0 {
		s.printf("\n%s", diagnosticsTable(diags))
	}

	if len(suppressed) > 0 {
		s.printf("%d diagnostic(s) suppressed\n", len(suppressed))
	}
}

// DisplayBatch prints a summary table of a batch run.
func (s *SimpleUI) DisplayBatch(entries []m.BatchEntry) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, "Request", "Status", "Errors", "Warnings")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	succeeded := 0

	for _, entry := range entries {
		if entry.Err != nil {
			table.Append([]string{string(entry.Request), "error", "-", "-"})

			continue
		}

		if entry.Result.Succeeded {
			succeeded++
		}

		table.Append([]string{
			string(entry.Request),
			statusText(entry.Result.Succeeded),
			fmt.Sprintf("%d", countSeverity(entry.Result.Diagnostics, m.SeverityError)),
			fmt.Sprintf("%d", countSeverity(entry.Result.Diagnostics, m.SeverityWarning)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(entries)), fmt.Sprintf("%d ok", succeeded), "", ""})
	table.Render()
	s.printf("%s", tableBuffer.String())

	for _, entry := range entries {
		if entry.Err != nil {
			s.printf("%s: %v\n", entry.Request, entry.Err)
		}
	}

	return nil
}

// DisplayReports prints stored reports.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("no reports found\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, "Request", "Workspace", "Status", "Diagnostics")
	for _, r := range reports {
		table.Append([]string{
			string(r.Request),
			r.Workspace,
			statusText(r.Result.Succeeded),
			fmt.Sprintf("%d", len(r.Result.Diagnostics)),
		})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func diagnosticsTable(diags []m.Diagnostic) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, "Buffer", "Position", "Severity", "ID", "Message")
	for _, d := range diags {
		pos := d.Position.String()
		if d.Mapping == m.MappingUnmapped {
			pos = "-"
		}

		table.Append([]string{d.BufferID.String(), pos, d.Severity.String(), d.ID, d.Message})
	}

	table.Render()

	return tableBuffer.String()
}
