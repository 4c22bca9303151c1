package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/model"
)

const pulseDuration = 320 * time.Millisecond

// toggleTask flips completion. The sound fires only on the transition
// into done, never on un-completing, and the pulse marks the row for a
// short beat of visual feedback.
func (m *Model) toggleTask(id string) tea.Cmd {
	for i, t := range m.Tasks {
		if t.ID != id {
			continue
		}
		next := t.WithCompleted(!t.Completed)
		m.Tasks[i] = next
		m.onCompletionTransition(t, next)
		cmds := []tea.Cmd{m.persistTasks(), m.pulse(id)}
		return tea.Batch(cmds...)
	}
	return nil
}

// addTask creates a task from a bare title. A blank title is a no-op.
// Unset fields default from context: today (or the open calendar day),
// medium priority, the selected list or the unassigned one, todo unless
// the caller carries a target column.
func (m *Model) addTask(title, date, listID string, status model.Status) tea.Cmd {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil
	}
	if date == "" {
		date = m.todayISO()
	}
	if listID == "" {
		listID = m.SelectedListID
	}
	if listID == "" {
		listID = model.UnassignedListID
	}
	if !status.IsValid() {
		status = model.StatusTodo
	}
	task := model.Task{
		ID:        m.idGen.Next("task", m.now()),
		Title:     trimmed,
		Date:      date,
		Priority:  model.PriorityMedium,
		Completed: status == model.StatusDone,
		Status:    status,
		ListID:    listID,
	}
	m.Tasks = append([]model.Task{task}, m.Tasks...)
	m.Cursor = 0
	m.SelectedTaskID = task.ID
	m.Status = StatusBar{Text: "added: " + trimmed, IsError: false}
	return m.persistTasks()
}

// updateTask replaces a task in place by id.
func (m *Model) updateTask(next model.Task) tea.Cmd {
	for i, t := range m.Tasks {
		if t.ID != next.ID {
			continue
		}
		m.Tasks[i] = next
		m.onCompletionTransition(t, next)
		return m.persistTasks()
	}
	return nil
}

func (m *Model) deleteTask(id string) tea.Cmd {
	for i, t := range m.Tasks {
		if t.ID != id {
			continue
		}
		m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
		m.Status = StatusBar{Text: "deleted: " + t.Title, IsError: false}
		m.ensureCursor()
		return m.persistTasks()
	}
	return nil
}

// moveTask sets the kanban status, keeping the completed flag coherent.
func (m *Model) moveTask(id string, status model.Status) tea.Cmd {
	for i, t := range m.Tasks {
		if t.ID != id {
			continue
		}
		if t.Status == status {
			return nil
		}
		next := t.WithStatus(status)
		m.Tasks[i] = next
		m.onCompletionTransition(t, next)
		cmds := []tea.Cmd{m.persistTasks(), m.pulse(id)}
		return tea.Batch(cmds...)
	}
	return nil
}

func (m *Model) addList(name string) tea.Cmd {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	l := model.List{ID: m.idGen.Next("list", m.now()), Name: trimmed}
	m.Lists = append(m.Lists, l)
	m.SelectedListID = l.ID
	m.Cursor = 0
	m.Status = StatusBar{Text: "list added: " + trimmed, IsError: false}
	return m.persistLists()
}

// deleteList removes a custom list. Locked lists and the last remaining
// list are refused; tasks of the deleted list fall back to unassigned.
func (m *Model) deleteList(id string) tea.Cmd {
	l, ok := model.FindList(m.Lists, id)
	if !ok {
		return nil
	}
	if l.Locked {
		m.Status = StatusBar{Text: "error: 锁定清单不可删除", IsError: true}
		return nil
	}
	if len(m.Lists) <= 1 {
		m.Status = StatusBar{Text: "error: 最后一个清单不可删除", IsError: true}
		return nil
	}
	next := make([]model.List, 0, len(m.Lists)-1)
	for _, item := range m.Lists {
		if item.ID != id {
			next = append(next, item)
		}
	}
	m.Lists = next
	m.Tasks, m.Lists, _ = model.Normalize(m.Tasks, m.Lists)
	if m.SelectedListID == id {
		m.SelectedListID = ""
		m.Cursor = 0
	}
	m.Status = StatusBar{Text: "list deleted: " + l.Name, IsError: false}
	return tea.Batch(m.persistTasks(), m.persistLists())
}

// onCompletionTransition runs the side effects of a task entering the
// done state: the completion sound and, when enabled, a desktop
// notification. Both are fire-and-forget.
func (m *Model) onCompletionTransition(old, next model.Task) {
	if old.Completed || !next.Completed {
		return
	}
	if m.Settings.CompletionSound {
		_ = m.platform.PlayCompletionSound()
	}
	if m.Settings.NativeNotifications {
		_ = m.platform.Notify("已完成", next.Title)
	}
}

func (m *Model) pulse(id string) tea.Cmd {
	m.PulseTaskID = id
	return tea.Tick(pulseDuration, func(time.Time) tea.Msg {
		return PulseClearMsg{TaskID: id}
	})
}

// Persistence is fire-and-forget: each cmd snapshots the slice and the
// store swallows failures, so a broken disk never blocks the UI.

func (m Model) persistTasks() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	tasks := append([]model.Task(nil), m.Tasks...)
	return func() tea.Msg {
		store.SaveTasks(context.Background(), tasks)
		return nil
	}
}

func (m Model) persistLists() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	lists := append([]model.List(nil), m.Lists...)
	return func() tea.Msg {
		store.SaveLists(context.Background(), lists)
		return nil
	}
}

func (m Model) persistSettings() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	settings := m.Settings
	return func() tea.Msg {
		store.SaveSettings(context.Background(), settings)
		return nil
	}
}

func (m Model) persistMeta() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	meta := m.Meta
	return func() tea.Msg {
		store.SaveMeta(context.Background(), meta)
		return nil
	}
}

func (m *Model) cyclePriority(id string) tea.Cmd {
	for i, t := range m.Tasks {
		if t.ID != id {
			continue
		}
		switch t.Priority {
		case model.PriorityHigh:
			m.Tasks[i].Priority = model.PriorityMedium
		case model.PriorityMedium:
			m.Tasks[i].Priority = model.PriorityLow
		default:
			m.Tasks[i].Priority = model.PriorityHigh
		}
		m.Status = StatusBar{Text: fmt.Sprintf("priority: %s", m.Tasks[i].Priority), IsError: false}
		return m.persistTasks()
	}
	return nil
}
