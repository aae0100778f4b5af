package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/dystudio/try/internal/model"
)

type tickMsg time.Time

// reportDelegate renders one report per line: status, diagnostic count and
// request path.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	report, ok := item.(reportItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var pathStyle, countStyle, statusStyle lipgloss.Style

	var displayPath string

	width := lm.Width() - 16 // status (7) + count (6) + spacing (3)

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = pathStyle.Width(6).Align(lipgloss.Right)
		statusStyle = pathStyle.Width(7)

		displayPath = animateScroll(report.path, width, d.offset)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
		statusStyle = tuiFailStyle.Width(7)

		if report.succeeded {
			statusStyle = tuiOKStyle.Width(7)
		}

		displayPath = truncateToWidth(report.path, width)
	}

	line := fmt.Sprintf("%s %s  %s",
		statusStyle.Render(statusText(report.succeeded)),
		countStyle.Render(fmt.Sprintf("%d", report.diagnostics)),
		pathStyle.Render(displayPath),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// ticks before scrolling starts
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// reportsModel browses stored reports; enter toggles the detail pane of the
// selected report.
type reportsModel struct {
	width        int
	height       int
	reportList   list.Model
	delegate     reportDelegate
	reports      []m.Report
	succeeded    int
	showDetail   bool
	animOffset   int
	lastSelected int
}

func newReportsModel(reports []m.Report) reportsModel {
	delegate := reportDelegate{}
	reportList := list.New([]list.Item{}, delegate, 80, 20)
	reportList.SetShowPagination(false)
	reportList.SetShowFilter(true)
	reportList.SetShowHelp(false)
	reportList.SetShowTitle(false)
	reportList.SetShowStatusBar(false)
	reportList.FilterInput.Placeholder = "Filter by request…"

	model := reportsModel{
		reportList:   reportList,
		delegate:     delegate,
		lastSelected: -1,
	}

	return model.withReports(reports)
}

func (rm reportsModel) withReports(reports []m.Report) reportsModel {
	rm.reports = reports
	rm.succeeded = 0

	items := make([]list.Item, 0, len(reports))
	for i, r := range reports {
		if r.Result.Succeeded {
			rm.succeeded++
		}

		items = append(items, reportItem{
			index:       i,
			path:        string(r.Request),
			succeeded:   r.Result.Succeeded,
			diagnostics: len(r.Result.Diagnostics),
		})
	}

	rm.reportList.SetItems(items)

	if len(items) > 0 && rm.lastSelected == -1 {
		rm.lastSelected = 0
	}

	return rm
}

func (rm reportsModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm reportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.reportList.SetWidth(rm.width)

	case tickMsg:
		if rm.reportList.FilterState() != list.Filtering {
			rm.animOffset++
			rm.delegate.offset = rm.animOffset
			rm.reportList.SetDelegate(rm.delegate)

			return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return rm, nil

	case reportsMsg:
		return rm.withReports(msg.reports), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return rm, tea.Quit
		case "enter":
			if rm.reportList.FilterState() != list.Filtering {
				rm.showDetail = !rm.showDetail

				return rm, nil
			}
		}

		rm.reportList, cmd = rm.reportList.Update(msg)

		if rm.reportList.Index() != rm.lastSelected {
			rm.lastSelected = rm.reportList.Index()
			rm.animOffset = 0
			rm.delegate.offset = 0
			rm.reportList.SetDelegate(rm.delegate)
		}

		return rm, cmd
	}

	return rm, cmd
}

func (rm reportsModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("try reports")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Requests: %s   Succeeded: %s",
		tuiAccentStyle.Render(fmt.Sprintf("%d", len(rm.reports))),
		tuiAccentStyle.Render(fmt.Sprintf("%d", rm.succeeded)),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • enter details • / filter • q quit")

	body := rm.renderTable()
	if rm.showDetail {
		body = lipgloss.JoinVertical(lipgloss.Left, body, rm.renderDetail())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		body,
		footer,
	)
}

func (rm reportsModel) selected() (m.Report, bool) {
	item, ok := rm.reportList.SelectedItem().(reportItem)
	if !ok || item.index >= len(rm.reports) {
		return m.Report{}, false
	}

	return rm.reports[item.index], true
}

func (rm reportsModel) renderDetail() string {
	report, ok := rm.selected()
	if !ok {
		return ""
	}

	lines := []string{tuiTitleStyle.Render(string(report.Request))}

	for _, out := range report.Result.Output {
		lines = append(lines, tuiOutputStyle.Render(out))
	}

	if report.Result.Exception != "" {
		lines = append(lines, tuiFailStyle.Render("exception: ")+report.Result.Exception)
	}

	for _, d := range report.Result.Diagnostics {
		lines = append(lines, renderDiagnostic(d))
	}

	return tuiDocumentBox.Margin(0, 1).Render(strings.Join(lines, "\n"))
}

func (rm reportsModel) renderTable() string {
	// title (2) + summary (2) + footer (1) + border (2) + header (2)
	listHeight := rm.height - 9
	if rm.showDetail {
		listHeight /= 2
	}

	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := rm.width - 6

	rm.reportList.SetHeight(listHeight)
	rm.reportList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-7s %6s  %s", "Status", "Diags", "Request"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			rm.reportList.View(),
		),
	)
}
