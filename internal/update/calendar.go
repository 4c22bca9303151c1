package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/dateutil"
	"github.com/twodo-app/twodo/internal/derive"
	"github.com/twodo-app/twodo/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h":
		m.CalendarMonth = m.CalendarMonth.AddDate(0, -1, 0)
		m.CalendarCursor = 0
	case "l":
		m.CalendarMonth = m.CalendarMonth.AddDate(0, 1, 0)
		m.CalendarCursor = 0
	case "t":
		m.CalendarMonth = dateutil.MonthStart(m.now())
		m.selectCalendarDay(m.todayISO())
	case "left":
		if m.CalendarCursor > 0 {
			m.CalendarCursor--
		}
	case "right":
		if m.CalendarCursor < 41 {
			m.CalendarCursor++
		}
	case "up", "k":
		if m.CalendarCursor >= 7 {
			m.CalendarCursor -= 7
		}
	case "down", "j":
		if m.CalendarCursor < 35 {
			m.CalendarCursor += 7
		}
	case "enter":
		grid := dateutil.BuildMonthGrid(m.CalendarMonth)
		if m.CalendarCursor < len(grid) {
			m.DayModal = DayModalState{Active: true, ISO: grid[m.CalendarCursor].ISO}
		}
	}
	return m, nil
}

func (m *Model) selectCalendarDay(iso string) {
	for i, cell := range dateutil.BuildMonthGrid(m.CalendarMonth) {
		if cell.ISO == iso {
			m.CalendarCursor = i
			return
		}
	}
	m.CalendarCursor = 0
}

func (m Model) handleDayModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.DayModal.Adding {
		switch msg.String() {
		case "esc":
			m.DayModal.Adding = false
			m.dayAddInput.Blur()
			return m, nil
		case "enter":
			title := m.dayAddInput.Value()
			m.DayModal.Adding = false
			m.dayAddInput.SetValue("")
			m.dayAddInput.Blur()
			return m, m.addTask(title, m.DayModal.ISO, "", model.StatusTodo)
		}
		var cmd tea.Cmd
		m.dayAddInput, cmd = m.dayAddInput.Update(msg)
		return m, cmd
	}

	rows := derive.DayTasks(m.Tasks, m.DayModal.ISO)
	switch msg.String() {
	case "esc":
		m.DayModal = DayModalState{}
	case "a":
		m.DayModal.Adding = true
		m.dayAddInput.SetValue("")
		m.dayAddInput.Focus()
	case "up", "k":
		if m.DayModal.Cursor > 0 {
			m.DayModal.Cursor--
		}
	case "down", "j":
		if m.DayModal.Cursor < len(rows)-1 {
			m.DayModal.Cursor++
		}
	case " ":
		if m.DayModal.Cursor < len(rows) {
			return m, m.toggleTask(rows[m.DayModal.Cursor].ID)
		}
	case "x":
		if m.DayModal.Cursor < len(rows) {
			return m, m.deleteTask(rows[m.DayModal.Cursor].ID)
		}
	case "enter":
		if m.DayModal.Cursor < len(rows) {
			m.openDetail(rows[m.DayModal.Cursor].ID)
		}
	}
	return m, nil
}
