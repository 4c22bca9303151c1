package update

import (
	"testing"
	"time"

	"github.com/twodo-app/twodo/internal/model"
)

type recordingPlatform struct {
	NoopPlatform
	sounds   int
	notified []string
}

func (p *recordingPlatform) PlayCompletionSound() error {
	p.sounds++
	return nil
}

func (p *recordingPlatform) Notify(title, body string) error {
	p.notified = append(p.notified, title+": "+body)
	return nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local)
	}
}

func testModel(platform Platform) Model {
	m := NewModel()
	m.now = fixedClock()
	if platform != nil {
		m.platform = platform
	}
	m.Tasks = []model.Task{
		{ID: "t1", Title: "写文档", Date: "2026-01-10", Priority: model.PriorityMedium, Status: model.StatusTodo, ListID: model.UnassignedListID},
		{ID: "t2", Title: "改样式", Date: "2026-01-10", Priority: model.PriorityHigh, Status: model.StatusDoing, ListID: "list_1"},
	}
	return m
}

func TestToggleTaskKeepsStatusCoherent(t *testing.T) {
	m := testModel(nil)

	m.toggleTask("t1")
	got, _ := m.taskByID("t1")
	if !got.Completed || got.Status != model.StatusDone {
		t.Fatalf("expected done after toggle, got %+v", got)
	}

	m.toggleTask("t1")
	got, _ = m.taskByID("t1")
	if got.Completed || got.Status != model.StatusTodo {
		t.Fatalf("expected back to todo after second toggle, got %+v", got)
	}
}

func TestCompletionSoundOnlyOnTransitionIntoDone(t *testing.T) {
	p := &recordingPlatform{}
	m := testModel(p)

	m.toggleTask("t1")
	if p.sounds != 1 {
		t.Fatalf("expected one sound after completing, got %d", p.sounds)
	}

	m.toggleTask("t1")
	if p.sounds != 1 {
		t.Fatalf("expected no sound on un-completing, got %d", p.sounds)
	}

	m.moveTask("t2", model.StatusDone)
	if p.sounds != 2 {
		t.Fatalf("expected sound on move into done, got %d", p.sounds)
	}

	m.moveTask("t2", model.StatusDoing)
	if p.sounds != 2 {
		t.Fatalf("expected no sound on move out of done, got %d", p.sounds)
	}
}

func TestCompletionSoundRespectsSetting(t *testing.T) {
	p := &recordingPlatform{}
	m := testModel(p)
	m.Settings.CompletionSound = false

	m.toggleTask("t1")
	if p.sounds != 0 {
		t.Fatalf("expected no sound while disabled, got %d", p.sounds)
	}
}

func TestAddTaskDefaults(t *testing.T) {
	m := testModel(nil)

	m.addTask("  买牛奶  ", "", "", model.StatusTodo)
	got := m.Tasks[0]
	if got.Title != "买牛奶" {
		t.Fatalf("expected trimmed title first, got %+v", got)
	}
	if got.Date != "2026-01-10" {
		t.Fatalf("expected today's date, got %q", got.Date)
	}
	if got.Priority != model.PriorityMedium || got.Status != model.StatusTodo {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if got.ListID != model.UnassignedListID {
		t.Fatalf("expected unassigned list, got %q", got.ListID)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("new task invalid: %v", err)
	}
}

func TestAddTaskBlankTitleIsNoOp(t *testing.T) {
	m := testModel(nil)
	before := len(m.Tasks)
	m.addTask("   ", "", "", model.StatusTodo)
	if len(m.Tasks) != before {
		t.Fatalf("expected no task added, got %d", len(m.Tasks))
	}
}

func TestAddTaskWithColumnStatus(t *testing.T) {
	m := testModel(nil)

	m.addTask("归档旧日志", "", "", model.StatusDone)
	got := m.Tasks[0]
	if got.Status != model.StatusDone || !got.Completed {
		t.Fatalf("expected completed done task, got %+v", got)
	}

	m.addTask("整理需求", "", "", model.Status("bogus"))
	if m.Tasks[0].Status != model.StatusTodo {
		t.Fatalf("expected fallback to todo, got %q", m.Tasks[0].Status)
	}
}

func TestAddTaskUsesSelectedList(t *testing.T) {
	m := testModel(nil)
	m.SelectedListID = "list_1"
	m.addTask("排期评审", "", "", model.StatusTodo)
	if m.Tasks[0].ListID != "list_1" {
		t.Fatalf("expected selected list, got %q", m.Tasks[0].ListID)
	}
}

func TestMoveTaskSameStatusIsNoOp(t *testing.T) {
	m := testModel(nil)
	if cmd := m.moveTask("t2", model.StatusDoing); cmd != nil {
		t.Fatal("expected no command for same-status move")
	}
}

func TestDeleteListGuards(t *testing.T) {
	m := testModel(nil)
	m.Lists = []model.List{model.UnassignedList(), {ID: "list_1", Name: "工作"}}

	m.deleteList(model.UnassignedListID)
	if len(m.Lists) != 2 {
		t.Fatalf("expected locked list kept, got %+v", m.Lists)
	}
	if !m.Status.IsError {
		t.Fatal("expected error status for locked list")
	}

	m.deleteList("list_1")
	if len(m.Lists) != 1 {
		t.Fatalf("expected custom list deleted, got %+v", m.Lists)
	}
	got, _ := m.taskByID("t2")
	if got.ListID != model.UnassignedListID {
		t.Fatalf("expected orphan reassigned to unassigned, got %q", got.ListID)
	}

	m.deleteList(model.UnassignedListID)
	if len(m.Lists) != 1 {
		t.Fatalf("expected last list kept, got %+v", m.Lists)
	}
}

func TestDeleteListResetsSelection(t *testing.T) {
	m := testModel(nil)
	m.Lists = []model.List{model.UnassignedList(), {ID: "list_1", Name: "工作"}}
	m.SelectedListID = "list_1"

	m.deleteList("list_1")
	if m.SelectedListID != "" {
		t.Fatalf("expected selection back to today view, got %q", m.SelectedListID)
	}
}

func TestCyclePriority(t *testing.T) {
	m := testModel(nil)
	m.cyclePriority("t2")
	got, _ := m.taskByID("t2")
	if got.Priority != model.PriorityMedium {
		t.Fatalf("expected high -> medium, got %q", got.Priority)
	}
	m.cyclePriority("t2")
	got, _ = m.taskByID("t2")
	if got.Priority != model.PriorityLow {
		t.Fatalf("expected medium -> low, got %q", got.Priority)
	}
	m.cyclePriority("t2")
	got, _ = m.taskByID("t2")
	if got.Priority != model.PriorityHigh {
		t.Fatalf("expected low -> high, got %q", got.Priority)
	}
}
