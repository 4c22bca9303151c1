package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/model"
)

const miniResizeStep = 20

func (m Model) handleMiniKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.MiniAdding {
		switch msg.String() {
		case "esc":
			m.MiniAdding = false
			m.miniAddInput.Blur()
			return m, nil
		case "enter":
			title := m.miniAddInput.Value()
			m.MiniAdding = false
			m.miniAddInput.SetValue("")
			m.miniAddInput.Blur()
			return m, m.addTask(title, "", model.UnassignedListID, model.StatusTodo)
		}
		var cmd tea.Cmd
		m.miniAddInput, cmd = m.miniAddInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "a":
		m.MiniAdding = true
		m.miniAddInput.SetValue("")
		m.miniAddInput.Focus()
	case "P":
		m.MiniPinned = !m.MiniPinned
		_ = m.platform.SetMiniPinned(m.MiniPinned)
		state := "unpinned"
		if m.MiniPinned {
			state = "pinned"
		}
		m.Status = StatusBar{Text: "mini window " + state, IsError: false}
	case "+":
		return m, m.resizeMini(miniResizeStep)
	case "-":
		return m, m.resizeMini(-miniResizeStep)
	}
	return m, nil
}

// resizeMini adjusts the preferred mini window height and persists it;
// the width stays fixed the way the host shell sizes the panel.
func (m *Model) resizeMini(delta int) tea.Cmd {
	next := m.Meta.MiniSize.Height + delta
	if next < 200 {
		next = 200
	}
	if next == m.Meta.MiniSize.Height {
		return nil
	}
	m.Meta.MiniSize.Height = next
	_ = m.platform.SetMiniWindowSize(m.Meta.MiniSize.Width, m.Meta.MiniSize.Height)
	m.Status = StatusBar{Text: fmt.Sprintf("mini size: %dx%d", m.Meta.MiniSize.Width, m.Meta.MiniSize.Height), IsError: false}
	return m.persistMeta()
}
