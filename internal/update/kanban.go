package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/derive"
	"github.com/twodo-app/twodo/internal/dragdrop"
	"github.com/twodo-app/twodo/internal/model"
	"github.com/twodo-app/twodo/internal/views"
)

var kanbanOrder = []model.Status{model.StatusTodo, model.StatusDoing, model.StatusDone}

func nextStatus(s model.Status) model.Status {
	switch s {
	case model.StatusTodo:
		return model.StatusDoing
	case model.StatusDoing:
		return model.StatusDone
	default:
		return model.StatusTodo
	}
}

func (m Model) handleKanbanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := derive.KanbanColumns(m.kanbanRows())
	cards := cols.ByStatus(m.KanbanColumn)

	switch msg.String() {
	case "left", "h":
		m.shiftKanbanColumn(-1)
	case "right", "l":
		m.shiftKanbanColumn(1)
	case "up", "k":
		if m.KanbanCursor > 0 {
			m.KanbanCursor--
		}
	case "down", "j":
		if m.KanbanCursor < len(cards)-1 {
			m.KanbanCursor++
		}
	case "enter":
		if m.KanbanCursor < len(cards) {
			m.openDetail(cards[m.KanbanCursor].ID)
		}
	case " ":
		if m.KanbanCursor < len(cards) {
			return m, m.moveTask(cards[m.KanbanCursor].ID, nextStatus(m.KanbanColumn))
		}
	case "x":
		if m.KanbanCursor < len(cards) {
			return m, m.deleteTask(cards[m.KanbanCursor].ID)
		}
	case "a":
		m.QuickAdding = true
		m.QuickAddStatus = m.KanbanColumn
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
	}
	return m, nil
}

func (m *Model) shiftKanbanColumn(step int) {
	for i, s := range kanbanOrder {
		if s == m.KanbanColumn {
			next := i + step
			if next < 0 {
				next = 0
			}
			if next > len(kanbanOrder)-1 {
				next = len(kanbanOrder) - 1
			}
			m.KanbanColumn = kanbanOrder[next]
			m.KanbanCursor = 0
			return
		}
	}
	m.KanbanColumn = model.StatusTodo
}

// handleKanbanMouse feeds pointer events into the drag state machine.
// A press arms on the card under the pointer; the release yields at
// most one outcome, either opening the detail or moving the card.
func (m Model) handleKanbanMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	zones := m.kanbanZones()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, status, ok := m.cardAt(msg.X, msg.Y); ok {
			m.drag.Press(id, status, msg.X, msg.Y)
		}
		return m, nil
	case tea.MouseActionMotion:
		m.drag.Move(msg.X, msg.Y, zones)
		return m, nil
	case tea.MouseActionRelease:
		outcome := m.drag.Release(msg.X, msg.Y, zones)
		switch outcome.Kind {
		case dragdrop.OutcomeOpen:
			m.openDetail(outcome.TaskID)
		case dragdrop.OutcomeMove:
			return m, m.moveTask(outcome.TaskID, outcome.Status)
		}
		return m, nil
	}
	return m, nil
}

// kanbanZones maps the three status columns to screen bands. The board
// sits right of the sidebar; columns are fixed-width and run from the
// content top to the bottom of the window.
func (m Model) kanbanZones() []dragdrop.Zone {
	left := views.SidebarWidth + 2
	bottom := m.Height
	if bottom <= 0 {
		bottom = 1 << 16
	}
	zones := make([]dragdrop.Zone, 0, len(kanbanOrder))
	for i, s := range kanbanOrder {
		zones = append(zones, dragdrop.Zone{
			Status: s,
			X0:     left + i*views.KanbanColumnWidth,
			Y0:     views.KanbanContentTop,
			X1:     left + (i+1)*views.KanbanColumnWidth,
			Y1:     bottom,
		})
	}
	return zones
}

// cardAt resolves the task under a screen position. Each column draws a
// one-line header followed by fixed-height cards.
func (m Model) cardAt(x, y int) (string, model.Status, bool) {
	for _, z := range m.kanbanZones() {
		if !z.Contains(x, y) {
			continue
		}
		cards := derive.KanbanColumns(m.kanbanRows()).ByStatus(z.Status)
		idx := (y - views.KanbanContentTop - 1) / views.KanbanCardHeight
		if idx < 0 || idx >= len(cards) {
			return "", "", false
		}
		return cards[idx].ID, z.Status, true
	}
	return "", "", false
}
