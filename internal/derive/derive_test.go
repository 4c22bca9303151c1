package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twodo-app/twodo/internal/model"
)

func task(id, title, date string, p model.Priority, s model.Status, listID string) model.Task {
	return model.Task{
		ID:        id,
		Title:     title,
		Date:      date,
		Priority:  p,
		Status:    s,
		Completed: s == model.StatusDone,
		ListID:    listID,
	}
}

func TestSortOrderingDominance(t *testing.T) {
	tasks := []model.Task{
		task("a", "a", "2026-01-02", model.PriorityHigh, model.StatusTodo, "l"),
		task("b", "b", "2026-01-01", model.PriorityLow, model.StatusTodo, "l"),
		task("c", "c", "2026-01-01", model.PriorityHigh, model.StatusDone, "l"),
	}

	sorted := SortTasks(tasks)

	// Incomplete-before-complete dominates priority, priority dominates date.
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}

func TestSortIsStableForIdenticalKeys(t *testing.T) {
	tasks := []model.Task{
		task("first", "x", "2026-01-01", model.PriorityMedium, model.StatusTodo, "l"),
		task("second", "y", "2026-01-01", model.PriorityMedium, model.StatusTodo, "l"),
	}
	sorted := SortTasks(tasks)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		task("z", "z", "2026-01-02", model.PriorityLow, model.StatusTodo, "l"),
		task("a", "a", "2026-01-01", model.PriorityHigh, model.StatusTodo, "l"),
	}
	_ = SortTasks(tasks)
	assert.Equal(t, "z", tasks[0].ID)
}

func TestTodayProjectionOverdueToggle(t *testing.T) {
	today := "2026-01-10"
	tasks := []model.Task{
		task("today", "今日", today, model.PriorityMedium, model.StatusTodo, "l"),
		task("overdue", "逾期", "2026-01-08", model.PriorityMedium, model.StatusTodo, "l"),
		task("overdue-done", "已完成逾期", "2026-01-08", model.PriorityMedium, model.StatusDone, "l"),
		task("future", "未来", "2026-01-12", model.PriorityMedium, model.StatusTodo, "l"),
	}

	withOverdue := TodayProjection(tasks, today, true)
	ids := make([]string, 0, len(withOverdue))
	for _, item := range withOverdue {
		ids = append(ids, item.ID)
	}
	assert.ElementsMatch(t, []string{"today", "overdue"}, ids)

	without := TodayProjection(tasks, today, false)
	require.Len(t, without, 1)
	assert.Equal(t, "today", without[0].ID)
}

func TestListProjectionFiltersByList(t *testing.T) {
	tasks := []model.Task{
		task("a", "a", "2026-01-01", model.PriorityMedium, model.StatusTodo, "list_1"),
		task("b", "b", "2026-01-01", model.PriorityMedium, model.StatusTodo, "list_2"),
	}
	out := ListProjection(tasks, "list_1")
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestKanbanColumnsPreserveOrder(t *testing.T) {
	tasks := []model.Task{
		task("t1", "a", "2026-01-01", model.PriorityLow, model.StatusTodo, "l"),
		task("d1", "b", "2026-01-01", model.PriorityHigh, model.StatusDoing, "l"),
		task("t2", "c", "2026-01-01", model.PriorityHigh, model.StatusTodo, "l"),
		task("x1", "d", "2026-01-01", model.PriorityLow, model.StatusDone, "l"),
	}

	cols := KanbanColumns(tasks)
	require.Len(t, cols.Todo, 2)
	assert.Equal(t, "t1", cols.Todo[0].ID)
	assert.Equal(t, "t2", cols.Todo[1].ID)
	require.Len(t, cols.Doing, 1)
	require.Len(t, cols.Done, 1)
}

func TestKanbanMoveDoesNotReorderSiblings(t *testing.T) {
	tasks := []model.Task{
		task("t1", "a", "2026-01-01", model.PriorityLow, model.StatusTodo, "l"),
		task("t2", "b", "2026-01-01", model.PriorityHigh, model.StatusTodo, "l"),
		task("t3", "c", "2026-01-01", model.PriorityMedium, model.StatusTodo, "l"),
	}
	// Move t2 to doing the way a mutation would: in place, same slot.
	tasks[1] = tasks[1].WithStatus(model.StatusDoing)

	cols := KanbanColumns(tasks)
	require.Len(t, cols.Todo, 2)
	assert.Equal(t, "t1", cols.Todo[0].ID)
	assert.Equal(t, "t3", cols.Todo[1].ID)
}

func TestCalendarCellsCapAndOverflow(t *testing.T) {
	month := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	tasks := make([]model.Task, 0, 8)
	for i := 0; i < 8; i++ {
		tasks = append(tasks, task(string(rune('a'+i)), "x", "2026-01-15", model.PriorityMedium, model.StatusTodo, "l"))
	}

	cells := CalendarCells(tasks, month)
	require.Len(t, cells, 42)

	var day15 CalendarCell
	for _, c := range cells {
		if c.ISO == "2026-01-15" {
			day15 = c
		}
	}
	assert.Len(t, day15.Tasks, CalendarCellCap)
	assert.Equal(t, 2, day15.Overflow)
}

func TestMiniSectionsSortedByPriorityThenTitle(t *testing.T) {
	today := "2026-01-10"
	tasks := []model.Task{
		task("1", "b-task", today, model.PriorityLow, model.StatusTodo, "l"),
		task("2", "a-task", today, model.PriorityLow, model.StatusTodo, "l"),
		task("3", "urgent", today, model.PriorityHigh, model.StatusTodo, "l"),
		task("4", "done", today, model.PriorityMedium, model.StatusDone, "l"),
		task("5", "old", "2026-01-01", model.PriorityMedium, model.StatusTodo, "l"),
		task("6", "old-done", "2026-01-01", model.PriorityMedium, model.StatusDone, "l"),
	}

	sections := DeriveMiniSections(tasks, today)

	require.Len(t, sections.TodayTodo, 3)
	assert.Equal(t, "urgent", sections.TodayTodo[0].Title)
	assert.Equal(t, "a-task", sections.TodayTodo[1].Title)
	assert.Equal(t, "b-task", sections.TodayTodo[2].Title)

	require.Len(t, sections.TodayDone, 1)
	require.Len(t, sections.OverdueTodo, 1)
	assert.Equal(t, "old", sections.OverdueTodo[0].Title)
}
