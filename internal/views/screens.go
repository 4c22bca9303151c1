package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KanbanColumnWidth is the rendered width of each status column; the
// three columns sit side by side to the right of the sidebar.
const KanbanColumnWidth = 30

type SidebarItemData struct {
	ID       string
	Name     string
	Count    int
	Locked   bool
	Selected bool
}

type SidebarData struct {
	Items        []SidebarItemData
	NewListView  string
	AddingList   bool
	PendingTotal int
}

type TaskRowData struct {
	ID        string
	Title     string
	DateLabel string
	Priority  string
	Completed bool
	Overdue   bool
	Pulsing   bool
	Selected  bool
}

type ListPanelData struct {
	Title          string
	IncludeOverdue bool
	ShowToggleHint bool
	QuickAddView   string
	QuickAdding    bool
	Rows           []TaskRowData
}

type KanbanCardData struct {
	ID        string
	Title     string
	DateLabel string
	Priority  string
	Lifted    bool
	Selected  bool
}

type KanbanColumnData struct {
	Title     string
	Cards     []KanbanCardData
	Highlight bool
}

type KanbanPanelData struct {
	Todo  KanbanColumnData
	Doing KanbanColumnData
	Done  KanbanColumnData
}

type CalendarCellData struct {
	ISO       string
	Day       int
	InMonth   bool
	Today     bool
	Selected  bool
	Holidays  []string
	SolarTerm string
	Titles    []string
	Overflow  int
}

type CalendarPanelData struct {
	MonthLabel string
	Cells      []CalendarCellData
}

type DayModalData struct {
	DateLabel string
	Labels    []string
	Rows      []TaskRowData
	AddView   string
	Adding    bool
}

type MiniPanelData struct {
	Pinned      bool
	AddView     string
	TodayTodo   []TaskRowData
	TodayDone   []TaskRowData
	OverdueTodo []TaskRowData
}

type SettingsRowData struct {
	Key      string
	Label    string
	On       bool
	Selected bool
}

type UpdaterData struct {
	State        string
	Version      string
	SpinnerView  string
	ProgressView string
	Error        string
}

type SettingsPanelData struct {
	TableView string
	Rows      []SettingsRowData
	Updater   UpdaterData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

type DetailModalData struct {
	ID          string
	TitleView   string
	DescView    string
	DescPreview string
	EditingDesc bool
	Priority    string
	DateLabel   string
	ListName    string
	Status      string
	DetailView  string
}

func RenderSidebar(data SidebarData) string {
	var b strings.Builder
	b.WriteString("清单:\n")
	for _, item := range data.Items {
		cursor := " "
		if item.Selected {
			cursor = ">"
		}
		lock := ""
		if item.Locked {
			lock = " *"
		}
		b.WriteString(fmt.Sprintf("%s %s (%d)%s\n", cursor, item.Name, item.Count, lock))
	}
	if data.AddingList {
		b.WriteString("new: " + data.NewListView + "\n")
	}
	b.WriteString(fmt.Sprintf("\npending: %d", data.PendingTotal))
	return strings.TrimSpace(b.String())
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + ":\n")
	if data.ShowToggleHint {
		overdue := "on"
		if !data.IncludeOverdue {
			overdue = "off"
		}
		b.WriteString(fmt.Sprintf("actions: [enter]open [space]toggle [n]add [alt+o]overdue(%s)\n", overdue))
	} else {
		b.WriteString("actions: [enter]open [space]toggle [n]add\n")
	}
	if data.QuickAdding {
		b.WriteString("add: " + data.QuickAddView + "\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString("(没有任务)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		b.WriteString(renderTaskRow(row) + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderKanbanPanel(data KanbanPanelData) string {
	cols := []string{
		renderKanbanColumn(data.Todo),
		renderKanbanColumn(data.Doing),
		renderKanbanColumn(data.Done),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func renderKanbanColumn(col KanbanColumnData) string {
	var b strings.Builder
	title := col.Title
	if col.Highlight {
		title = "[" + title + "]"
	}
	b.WriteString(fmt.Sprintf("%s (%d)\n", title, len(col.Cards)))
	if len(col.Cards) == 0 {
		b.WriteString("  (空)\n")
	}
	for _, card := range col.Cards {
		cursor := " "
		if card.Selected {
			cursor = ">"
		}
		marker := " "
		if card.Lifted {
			marker = "~"
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", cursor, marker, priorityBadge(card.Priority), card.Title))
		if card.DateLabel != "" {
			b.WriteString("    " + card.DateLabel + "\n")
		} else {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Width(KanbanColumnWidth).Render(strings.TrimSuffix(b.String(), "\n"))
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(data.MonthLabel + "\n")
	b.WriteString("actions: [h/l]month [t]today [j/k]day [enter]open\n")
	b.WriteString(" 一    二    三    四    五    六    日\n")
	for i := 0; i < len(data.Cells); i += 7 {
		end := i + 7
		if end > len(data.Cells) {
			end = len(data.Cells)
		}
		for _, cell := range data.Cells[i:end] {
			b.WriteString(renderCalendarCellHead(cell))
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func renderCalendarCellHead(cell CalendarCellData) string {
	day := fmt.Sprintf("%2d", cell.Day)
	if !cell.InMonth {
		day = " ."
	}
	mark := " "
	if cell.Today {
		mark = "*"
	}
	if cell.Selected {
		mark = ">"
	}
	extra := " "
	if len(cell.Titles) > 0 {
		extra = fmt.Sprintf("%d", len(cell.Titles)+cell.Overflow)
	} else if len(cell.Holidays) > 0 || cell.SolarTerm != "" {
		extra = "·"
	}
	return fmt.Sprintf("%s%s(%s) ", mark, day, extra)
}

func RenderDayModal(data DayModalData) string {
	var b strings.Builder
	b.WriteString(data.DateLabel)
	if len(data.Labels) > 0 {
		b.WriteString(" · " + strings.Join(data.Labels, " "))
	}
	b.WriteString("\n")
	if data.Adding {
		b.WriteString("add: " + data.AddView + "\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString("(没有任务)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		b.WriteString(renderTaskRow(row) + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderMiniPanel(data MiniPanelData) string {
	var b strings.Builder
	pin := "unpinned"
	if data.Pinned {
		pin = "pinned"
	}
	b.WriteString(fmt.Sprintf("mini (%s):\n", pin))
	b.WriteString("add: " + data.AddView + "\n")
	renderMiniSection(&b, "今日待办", data.TodayTodo)
	renderMiniSection(&b, "今日已完成", data.TodayDone)
	renderMiniSection(&b, "逾期未完成", data.OverdueTodo)
	return strings.TrimSpace(b.String())
}

func renderMiniSection(b *strings.Builder, title string, rows []TaskRowData) {
	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(rows) == 0 {
		b.WriteString("  (无)\n")
		return
	}
	for _, row := range rows {
		b.WriteString(renderTaskRow(row) + "\n")
	}
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString("actions: [j/k]move [enter/space]toggle [e]export [i]import [u]check [d]download [U]install\n")
	if data.TableView != "" {
		b.WriteString(data.TableView + "\n")
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		state := "off"
		if row.On {
			state = "on"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, row.Label, state))
	}
	b.WriteString(renderUpdaterSection(data.Updater))
	return strings.TrimSpace(b.String())
}

func renderUpdaterSection(data UpdaterData) string {
	var b strings.Builder
	b.WriteString("\nupdater:\n")
	switch data.State {
	case "checking":
		b.WriteString(fmt.Sprintf("%s checking for updates\n", data.SpinnerView))
	case "available":
		b.WriteString(fmt.Sprintf("update available: %s (press d to download)\n", data.Version))
	case "downloading":
		b.WriteString(fmt.Sprintf("downloading %s %s\n", data.Version, data.ProgressView))
	case "downloaded":
		b.WriteString(fmt.Sprintf("downloaded %s (press U to install)\n", data.Version))
	case "none":
		b.WriteString("up to date\n")
	case "error":
		b.WriteString("error: " + data.Error + "\n")
	default:
		b.WriteString("(press u to check)\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDetailModal(data DetailModalData) string {
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString("title: " + data.TitleView + "\n")
	b.WriteString(fmt.Sprintf("%s %s · %s · %s\n", priorityBadge(data.Priority), data.Status, data.DateLabel, data.ListName))
	if data.EditingDesc {
		b.WriteString("desc:\n" + data.DescView + "\n")
	} else if data.DescPreview != "" {
		b.WriteString("desc:\n" + data.DescPreview + "\n")
	} else {
		b.WriteString("desc: (空)\n")
	}
	if data.DetailView != "" {
		b.WriteString(data.DetailView + "\n")
	}
	b.WriteString("keys: [tab]field [p]priority [x]delete [esc]close")
	return b.String()
}

func RenderQuickAddModal(inputView string) string {
	return "新任务: " + inputView + "\nkeys: [enter]save [esc]cancel"
}

func RenderNewListModal(inputView string) string {
	return "新清单: " + inputView + "\nkeys: [enter]save [esc]cancel"
}

func RenderImportModal(inputView string) string {
	return "import path: " + inputView + "\nkeys: [enter]import [esc]cancel"
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func renderTaskRow(row TaskRowData) string {
	cursor := " "
	if row.Selected {
		cursor = ">"
	}
	box := "[ ]"
	if row.Completed {
		box = "[x]"
	}
	pulse := ""
	if row.Pulsing {
		pulse = " +"
	}
	line := fmt.Sprintf("%s %s %s %s", cursor, box, priorityBadge(row.Priority), row.Title)
	if row.DateLabel != "" {
		line += " @" + row.DateLabel
	}
	if row.Overdue && !row.Completed {
		line += " 逾期"
	}
	return line + pulse
}

func priorityBadge(priority string) string {
	switch priority {
	case "high":
		return "[RED]"
	case "medium":
		return "[YELLOW]"
	default:
		return "[GREEN]"
	}
}
