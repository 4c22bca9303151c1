package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.currentRows()
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(rows)-1 {
			m.Cursor++
		}
	case "tab":
		m.cycleList(1)
	case "shift+tab":
		m.cycleList(-1)
	case " ":
		if m.Cursor < len(rows) {
			return m, m.toggleTask(rows[m.Cursor].ID)
		}
	case "enter":
		if m.Cursor < len(rows) {
			m.openDetail(rows[m.Cursor].ID)
		}
	case "x":
		if m.Cursor < len(rows) {
			return m, m.deleteTask(rows[m.Cursor].ID)
		}
	case "p":
		if m.Cursor < len(rows) {
			return m, m.cyclePriority(rows[m.Cursor].ID)
		}
	case "X":
		if m.SelectedListID != "" {
			return m, m.deleteList(m.SelectedListID)
		}
	}
	m.ensureCursor()
	return m, nil
}

// cycleList steps through the sidebar tabs: the today projection first,
// then each stored list in order.
func (m *Model) cycleList(step int) {
	ids := make([]string, 0, len(m.Lists)+1)
	ids = append(ids, "")
	for _, l := range m.Lists {
		ids = append(ids, l.ID)
	}
	current := 0
	for i, id := range ids {
		if id == m.SelectedListID {
			current = i
			break
		}
	}
	next := (current + step + len(ids)) % len(ids)
	m.SelectedListID = ids[next]
	m.Cursor = 0
	m.ensureCursor()
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.QuickAdding = false
		m.QuickAddStatus = ""
		m.quickAddInput.Blur()
		return m, nil
	case "enter":
		title := m.quickAddInput.Value()
		status := m.QuickAddStatus
		m.QuickAdding = false
		m.QuickAddStatus = ""
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		return m, m.addTask(title, m.quickAddDate(), "", status)
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

// quickAddDate picks the date context for a global quick add: the open
// calendar day when the calendar is showing a selected cell, today
// otherwise.
func (m Model) quickAddDate() string {
	if m.CurrentView == ViewCalendar && m.DayModal.ISO != "" {
		return m.DayModal.ISO
	}
	return ""
}

func (m Model) handleNewListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.AddingList = false
		m.newListInput.Blur()
		return m, nil
	case "enter":
		name := m.newListInput.Value()
		m.AddingList = false
		m.newListInput.SetValue("")
		m.newListInput.Blur()
		return m, m.addList(name)
	}
	var cmd tea.Cmd
	m.newListInput, cmd = m.newListInput.Update(msg)
	return m, cmd
}
