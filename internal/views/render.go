package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Layout geometry shared with pointer hit-testing. The sidebar occupies
// the leftmost SidebarWidth cells; the kanban board starts below
// KanbanContentTop and draws each card KanbanCardHeight rows tall.
const (
	SidebarWidth     = 22
	KanbanContentTop = 4
	KanbanCardHeight = 2
)

type AppData struct {
	Header       string
	Sidebar      string
	Main         string
	StatusLine   string
	Footer       string
	Notification string
	Modal        string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(SidebarWidth)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	main := panelStyle.Width(92).Render(data.Main)
	row := main
	if data.Sidebar != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(data.Sidebar), main)
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Modal != "" {
		lines = append(lines, panelStyle.Render(data.Modal))
	}
	if data.Notification != "" {
		lines = append(lines, panelStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
