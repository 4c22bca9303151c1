package update

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twodo-app/twodo/internal/derive"
	"github.com/twodo-app/twodo/internal/model"
)

func TestKanbanIncludesTasksFromOtherDays(t *testing.T) {
	m := testModel(nil)
	m.Tasks = append(m.Tasks, model.Task{
		ID:       "t3",
		Title:    "下周排期",
		Date:     "2026-01-20",
		Priority: model.PriorityMedium,
		Status:   model.StatusDoing,
		ListID:   model.UnassignedListID,
	})

	cols := derive.KanbanColumns(m.kanbanRows())
	found := false
	for _, task := range cols.Doing {
		if task.ID == "t3" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected future-dated task on the board, got %+v", cols.Doing)
	}
	if out := m.renderKanbanView(); !strings.Contains(out, "下周排期") {
		t.Fatalf("expected future-dated card rendered: %q", out)
	}
}

func TestKanbanScopedToSelectedList(t *testing.T) {
	m := testModel(nil)
	m.SelectedListID = "list_1"

	cols := derive.KanbanColumns(m.kanbanRows())
	if len(cols.Todo) != 0 || len(cols.Doing) != 1 || cols.Doing[0].ID != "t2" {
		t.Fatalf("expected only list_1 tasks, got %+v", cols)
	}
}

func TestKanbanColumnAddUsesFocusedStatus(t *testing.T) {
	m := testModel(nil)
	m.CurrentView = ViewKanban
	m.KanbanColumn = model.StatusDone

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	next := updated.(Model)
	if !next.QuickAdding || next.QuickAddStatus != model.StatusDone {
		t.Fatalf("expected column add armed for done, got %q", next.QuickAddStatus)
	}

	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("归档文档")})
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)
	got := next.Tasks[0]
	if got.Title != "归档文档" || got.Status != model.StatusDone || !got.Completed {
		t.Fatalf("expected completed done task first, got %+v", got)
	}
	if next.QuickAddStatus != "" {
		t.Fatalf("expected column context cleared, got %q", next.QuickAddStatus)
	}
}
