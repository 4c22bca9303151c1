// Package derive computes the read-only task projections each view
// renders. Every function is pure in (tasks, toggles, reference date):
// inputs are never mutated and recomputing on every frame is safe.
package derive

import (
	"sort"
	"time"

	"github.com/twodo-app/twodo/internal/dateutil"
	"github.com/twodo-app/twodo/internal/model"
)

// CalendarCellCap limits how many tasks a calendar cell displays before
// collapsing the rest into an overflow indicator.
const CalendarCellCap = 6

// SortTasks returns a copy ordered for the list view: incomplete before
// completed, then priority rank, then ascending date. The key tuple
// makes the ordering total; the stable sort preserves insertion order
// for identical tuples.
func SortTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		return a.Date < b.Date
	})
	return out
}

// TodayProjection is the list view dataset: tasks scheduled today plus,
// when includeOverdue is set, incomplete tasks from earlier days.
func TodayProjection(tasks []model.Task, todayISO string, includeOverdue bool) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Date == todayISO {
			filtered = append(filtered, t)
			continue
		}
		if includeOverdue && t.Date < todayISO && !t.Completed {
			filtered = append(filtered, t)
		}
	}
	return SortTasks(filtered)
}

// ListProjection is the dataset for a custom list tab.
func ListProjection(tasks []model.Task, listID string) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ListID == listID {
			filtered = append(filtered, t)
		}
	}
	return SortTasks(filtered)
}

// PendingCount reports how many tasks in a projection are incomplete.
func PendingCount(tasks []model.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Columns is the kanban partition. Collection order is preserved within
// each bucket so moving one card never reorders its siblings.
type Columns struct {
	Todo  []model.Task
	Doing []model.Task
	Done  []model.Task
}

func (c Columns) ByStatus(s model.Status) []model.Task {
	switch s {
	case model.StatusDoing:
		return c.Doing
	case model.StatusDone:
		return c.Done
	default:
		return c.Todo
	}
}

func KanbanColumns(tasks []model.Task) Columns {
	var out Columns
	for _, t := range tasks {
		switch t.Status {
		case model.StatusDoing:
			out.Doing = append(out.Doing, t)
		case model.StatusDone:
			out.Done = append(out.Done, t)
		default:
			out.Todo = append(out.Todo, t)
		}
	}
	return out
}

// CalendarCell is one month-grid slot with its task bucket. Overflow is
// the number of tasks hidden past the display cap.
type CalendarCell struct {
	dateutil.GridCell
	Tasks    []model.Task
	Overflow int
}

func CalendarCells(tasks []model.Task, monthDate time.Time) []CalendarCell {
	byDate := make(map[string][]model.Task)
	for _, t := range tasks {
		byDate[t.Date] = append(byDate[t.Date], t)
	}

	grid := dateutil.BuildMonthGrid(monthDate)
	cells := make([]CalendarCell, len(grid))
	for i, g := range grid {
		bucket := byDate[g.ISO]
		cell := CalendarCell{GridCell: g}
		if len(bucket) > CalendarCellCap {
			cell.Tasks = bucket[:CalendarCellCap]
			cell.Overflow = len(bucket) - CalendarCellCap
		} else {
			cell.Tasks = bucket
		}
		cells[i] = cell
	}
	return cells
}

// DayTasks is the bucket behind the calendar day modal.
func DayTasks(tasks []model.Task, iso string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		if t.Date == iso {
			out = append(out, t)
		}
	}
	return out
}

// MiniSections are the three buckets of the mini window, each sorted by
// priority rank then lexicographic title.
type MiniSections struct {
	TodayTodo   []model.Task
	TodayDone   []model.Task
	OverdueTodo []model.Task
}

func DeriveMiniSections(tasks []model.Task, todayISO string) MiniSections {
	var out MiniSections
	for _, t := range tasks {
		switch {
		case t.Date == todayISO && !t.Completed:
			out.TodayTodo = append(out.TodayTodo, t)
		case t.Date == todayISO && t.Completed:
			out.TodayDone = append(out.TodayDone, t)
		case t.Date < todayISO && !t.Completed:
			out.OverdueTodo = append(out.OverdueTodo, t)
		}
	}
	sortByPriorityThenTitle(out.TodayTodo)
	sortByPriorityThenTitle(out.TodayDone)
	sortByPriorityThenTitle(out.OverdueTodo)
	return out
}

func sortByPriorityThenTitle(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority.Rank() != tasks[j].Priority.Rank() {
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		}
		return tasks[i].Title < tasks[j].Title
	})
}
