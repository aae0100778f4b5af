package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/dystudio/try/internal/model"
)

var (
	tuiTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	tuiOKStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	tuiFailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	tuiWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	tuiMutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tuiAccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tuiOutputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2)
	tuiDocumentBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1)
	tuiRegionMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
)

// TUI implements UI with lipgloss styled output. Reports are browsed with
// an interactive Bubble Tea list.
type TUI struct {
	output     io.Writer
	runProgram func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.runProgram = func(model tea.Model) error {
		_, err := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen()).Run()

		return err
	}

	return t
}

// DisplayRun shows output, exception and diagnostics of one run.
func (t *TUI) DisplayRun(request m.Path, result m.RunResult) error {
	t.println(tuiTitleStyle.Render(string(request)) + "  " + statusBadge(result.Succeeded))

	for _, line := range result.Output {
		t.println(tuiOutputStyle.Render(line))
	}

	if result.Exception != "" {
		t.println(tuiFailStyle.Render("exception: ") + result.Exception)
	}

	if result.ReturnValue != nil {
		t.println(tuiMutedStyle.Render("return: ") + fmt.Sprintf("%v", result.ReturnValue))
	}

	t.printDiagnostics(result.Diagnostics, result.Suppressed)

	return nil
}

// DisplayComposition shows each composed document with buffer regions
// highlighted.
func (t *TUI) DisplayComposition(request m.Path, comp *m.Composition) error {
	t.println(tuiTitleStyle.Render(string(request)))

	for _, doc := range comp.Documents() {
		var b strings.Builder

		last := 0
		for _, vp := range doc.Viewports {
			b.WriteString(doc.Text[last:vp.Region.Start])
			b.WriteString(tuiRegionMarker.Render(doc.Text[vp.Region.Start:vp.Region.End()]))
			last = vp.Region.End()
		}

		b.WriteString(doc.Text[last:])

		t.println(tuiAccentStyle.Render(doc.Key.String()))
		t.println(tuiDocumentBox.Render(strings.TrimSuffix(b.String(), "\n")))
	}

	return nil
}

// DisplayCompletions shows completion items with their kind.
func (t *TUI) DisplayCompletions(list m.CompletionList) error {
	t.println(tuiTitleStyle.Render(fmt.Sprintf("%d completion(s) in %s", len(list.Items), list.BufferID)))

	for _, item := range list.Items {
		t.println(fmt.Sprintf("  %s %s", item.DisplayText, tuiMutedStyle.Render(item.Kind)))
	}

	t.printDiagnostics(list.Diagnostics, list.Suppressed)

	return nil
}

// DisplaySignatureHelp shows signatures with the active parameter
// highlighted.
func (t *TUI) DisplaySignatureHelp(help m.SignatureHelp) error {
	if len(help.Signatures) == 0 {
		t.println(tuiMutedStyle.Render(fmt.Sprintf("no signature at cursor in %s", help.BufferID)))
		t.printDiagnostics(help.Diagnostics, help.Suppressed)

		return nil
	}

	for i, sig := range help.Signatures {
		label := sig.Label
		if i == help.ActiveSignature && help.ActiveParameter < len(sig.Parameters) {
			param := sig.Parameters[help.ActiveParameter].Label
			label = highlightParameter(label, param)
		}

		t.println(label)

		if sig.Documentation != "" {
			t.println(tuiMutedStyle.Render("  " + sig.Documentation))
		}
	}

	t.printDiagnostics(help.Diagnostics, help.Suppressed)

	return nil
}

func (t *TUI) printDiagnostics(diags, suppressed []m.Diagnostic) {
	for _, d := range diags {
		t.println(renderDiagnostic(d))
	}

	if len(suppressed) > 0 {
		t.println(tuiMutedStyle.Render(fmt.Sprintf("%d diagnostic(s) suppressed", len(suppressed))))
	}
}

// DisplayBatch shows one status line per request and a summary.
func (t *TUI) DisplayBatch(entries []m.BatchEntry) error {
	ok := 0

	for _, entry := range entries {
		switch {
		case entry.Err != nil:
			t.println(tuiFailStyle.Render("error ") + string(entry.Request) + tuiMutedStyle.Render(" "+entry.Err.Error()))
		case entry.Result.Succeeded:
			ok++

			t.println(statusBadge(true) + " " + string(entry.Request))
		default:
			t.println(statusBadge(false) + " " + string(entry.Request))
		}
	}

	t.println(tuiAccentStyle.Render(fmt.Sprintf("%d/%d request(s) succeeded", ok, len(entries))))

	return nil
}

// DisplayReports opens the interactive report browser.
func (t *TUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		t.println(tuiMutedStyle.Render("no reports found"))

		return nil
	}

	return t.runProgram(newReportsModel(reports))
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}

func statusBadge(succeeded bool) string {
	if succeeded {
		return tuiOKStyle.Render("ok")
	}

	return tuiFailStyle.Render("failed")
}

func renderDiagnostic(d m.Diagnostic) string {
	style := tuiMutedStyle

	switch d.Severity {
	case m.SeverityError:
		style = tuiFailStyle
	case m.SeverityWarning:
		style = tuiWarnStyle
	}

	return "  " + style.Render(d.Severity.String()) + " " + d.String()
}

func highlightParameter(label, param string) string {
	open := strings.Index(label, "(")
	if open < 0 {
		return label
	}

	idx := strings.Index(label[open:], param)
	if idx < 0 {
		return label
	}

	idx += open

	return label[:idx] + tuiRegionMarker.Render(param) + label[idx+len(param):]
}
