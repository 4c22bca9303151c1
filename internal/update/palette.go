package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/commands"
	"github.com/twodo-app/twodo/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m, nil
	}

	var cmds []tea.Cmd

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			cmds = append(cmds, m.addTask(a.Title, "", "", model.StatusTodo))
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Title)}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			t, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task matches target: " + a.Target}
			}
			cmds = append(cmds, m.toggleTask(t.ID))
			return commands.Result{Message: fmt.Sprintf("toggled: %s", t.Title)}, nil
		},
		Move: func(a commands.MoveArgs) (commands.Result, error) {
			t, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task matches target: " + a.Target}
			}
			cmds = append(cmds, m.moveTask(t.ID, model.Status(a.Status)))
			return commands.Result{Message: fmt.Sprintf("moved %s to %s", t.Title, a.Status)}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			t, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no task matches target: " + a.Target}
			}
			cmds = append(cmds, m.deleteTask(t.ID))
			return commands.Result{Message: fmt.Sprintf("deleted: %s", t.Title)}, nil
		},
		List: func(a commands.ListArgs) (commands.Result, error) {
			cmds = append(cmds, m.addList(a.Name))
			return commands.Result{Message: fmt.Sprintf("list added: %s", a.Name)}, nil
		},
		Overdue: func() (commands.Result, error) {
			m.IncludeOverdue = !m.IncludeOverdue
			state := "hidden"
			if m.IncludeOverdue {
				state = "shown"
			}
			return commands.Result{Message: "overdue tasks " + state}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m, tea.Batch(cmds...)
}

// resolveTarget maps a palette target to a task: "selected" is the task
// under the cursor, anything else is matched against task ids.
func (m Model) resolveTarget(target string) (model.Task, bool) {
	if target == "selected" {
		return m.taskByID(m.SelectedTaskID)
	}
	return m.taskByID(target)
}
