package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) openDetail(taskID string) {
	t, ok := m.taskByID(taskID)
	if !ok {
		return
	}
	m.Detail = DetailState{Active: true, TaskID: taskID}
	m.titleInput.SetValue(t.Title)
	m.titleInput.Focus()
	m.descArea.SetValue(t.Desc)
	m.detailViewport.SetContent(renderDescPreview(t.Desc))
}

func (m *Model) closeDetail() tea.Cmd {
	cmd := m.commitDetail()
	m.Detail = DetailState{}
	m.titleInput.Blur()
	m.descArea.Blur()
	return cmd
}

// commitDetail writes the edited title and description back to the
// task. An emptied title keeps the previous one.
func (m *Model) commitDetail() tea.Cmd {
	t, ok := m.taskByID(m.Detail.TaskID)
	if !ok {
		return nil
	}
	next := t
	if title := strings.TrimSpace(m.titleInput.Value()); title != "" {
		next.Title = title
	}
	next.Desc = m.descArea.Value()
	if next == t {
		return nil
	}
	return m.updateTask(next)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Detail.EditingDesc {
		switch msg.String() {
		case "esc":
			m.Detail.EditingDesc = false
			m.descArea.Blur()
			m.titleInput.Focus()
			return m, m.commitDetail()
		}
		var cmd tea.Cmd
		m.descArea, cmd = m.descArea.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "enter":
		return m, m.closeDetail()
	case "tab":
		m.Detail.EditingDesc = true
		m.titleInput.Blur()
		m.descArea.Focus()
		return m, nil
	case "p":
		return m, m.cyclePriority(m.Detail.TaskID)
	case " ":
		return m, m.toggleTask(m.Detail.TaskID)
	case "x":
		id := m.Detail.TaskID
		m.Detail = DetailState{}
		return m, m.deleteTask(id)
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}
