package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return rolloverTickCmd(m.rolloverInterval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if synced, ok := next.(Model); ok {
		synced.syncBubbleData()
		return synced, cmd
	}
	return next, cmd
}

// update routes the message; Update syncs the bubble components on the
// model it actually returns, so the settings table and detail preview
// track the state they mirror.
func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.handleUpdaterMsg(msg); handled {
		return next, cmd
	}

	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.Height = typed.Height
		return m, nil
	case tea.MouseMsg:
		if m.CurrentView == ViewKanban {
			return m.handleKanbanMouse(typed)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.Updater.Phase == UpdaterChecking {
			var cmd tea.Cmd
			m.checkSpinner, cmd = m.checkSpinner.Update(typed)
			return m, cmd
		}
		return m, nil
	case RolloverTickMsg:
		cmds := []tea.Cmd{rolloverTickCmd(m.rolloverInterval)}
		if m.Settings.AutoRollover {
			before := m.Meta.LastRolloverDate
			moved := m.performRollover(typed.Now)
			if moved {
				cmds = append(cmds, m.persistTasks())
			}
			if m.Meta.LastRolloverDate != before {
				cmds = append(cmds, m.persistMeta())
			}
		}
		return m, tea.Batch(cmds...)
	case PulseClearMsg:
		if m.PulseTaskID == typed.TaskID {
			m.PulseTaskID = ""
		}
		return m, nil
	case ExportedMsg:
		if typed.Err != nil {
			m.Status = StatusBar{Text: "export failed: " + typed.Err.Error(), IsError: true}
		} else {
			m.Status = StatusBar{Text: "exported to " + typed.Path, IsError: false}
		}
		return m, nil
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			m.ensureCursor()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ensureCursor()

	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.Detail.Active {
		return m.handleDetailKey(msg)
	}
	if m.QuickAdding {
		return m.handleQuickAddKey(msg)
	}
	if m.AddingList {
		return m.handleNewListKey(msg)
	}
	if m.Importing {
		return m.handleImportKey(msg)
	}
	if m.DayModal.Active && m.CurrentView == ViewCalendar {
		return m.handleDayModalKey(msg)
	}

	switch msg.String() {
	case "/":
		if m.Settings.SearchHotkey {
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		}
	case m.Keys.List:
		m.CurrentView = ViewList
		m.ensureCursor()
		return m, nil
	case m.Keys.Kanban:
		m.CurrentView = ViewKanban
		return m, nil
	case m.Keys.Calendar:
		m.CurrentView = ViewCalendar
		return m, nil
	case m.Keys.Mini:
		m.CurrentView = ViewMini
		return m, nil
	case m.Keys.Settings:
		m.CurrentView = ViewSettings
		return m, nil
	case "n":
		if m.Settings.QuickAddHotkey && m.CurrentView != ViewSettings {
			m.QuickAdding = true
			m.QuickAddStatus = ""
			m.quickAddInput.SetValue("")
			m.quickAddInput.Focus()
			return m, nil
		}
	case "alt+o":
		if m.Settings.FilterOverdueHotkey {
			m.IncludeOverdue = !m.IncludeOverdue
			m.ensureCursor()
			state := "hidden"
			if m.IncludeOverdue {
				state = "shown"
			}
			m.Status = StatusBar{Text: "overdue tasks " + state, IsError: false}
			return m, nil
		}
	case "N":
		if m.CurrentView == ViewList {
			m.AddingList = true
			m.newListInput.SetValue("")
			m.newListInput.Focus()
			return m, nil
		}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewList:
		return m.handleListKey(msg)
	case ViewKanban:
		return m.handleKanbanKey(msg)
	case ViewCalendar:
		return m.handleCalendarKey(msg)
	case ViewMini:
		return m.handleMiniKey(msg)
	case ViewSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	sidebar := ""
	if m.CurrentView == ViewList || m.CurrentView == ViewKanban {
		sidebar = m.renderSidebar()
	}

	main := ""
	switch m.CurrentView {
	case ViewList:
		main = m.renderListView()
	case ViewKanban:
		main = m.renderKanbanView()
	case ViewCalendar:
		main = m.renderCalendarView()
	case ViewMini:
		main = m.renderMiniView()
	case ViewSettings:
		main = m.renderSettingsView()
	}
	if m.HelpVisible {
		main += "\n\n" + m.renderHelpView()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("twodo | view: %s | %s", m.CurrentView, m.todayISO()),
		Sidebar:    sidebar,
		Main:       main,
		StatusLine: status,
		Modal:      m.renderModal(),
		Footer: fmt.Sprintf("keys: %s list | %s kanban | %s calendar | %s mini | %s settings | / cmd | %s help | %s quit",
			m.Keys.List, m.Keys.Kanban, m.Keys.Calendar, m.Keys.Mini, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
	})
}
