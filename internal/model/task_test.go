package model

import (
	"testing"
	"time"
)

func validTask() Task {
	return Task{
		ID:       "task_1",
		Title:    "write release notes",
		Date:     "2026-01-02",
		Priority: PriorityMedium,
		Status:   StatusTodo,
		ListID:   "list_1",
	}
}

func TestTaskValidate(t *testing.T) {
	if err := validTask().Validate(); err != nil {
		t.Fatalf("expected valid task, got: %v", err)
	}

	blank := validTask()
	blank.Title = "   "
	if err := blank.Validate(); err == nil {
		t.Fatal("expected error for blank title")
	}

	badStatus := validTask()
	badStatus.Status = Status("paused")
	if err := badStatus.Validate(); err == nil {
		t.Fatal("expected error for invalid status")
	}

	incoherent := validTask()
	incoherent.Completed = true
	if err := incoherent.Validate(); err == nil {
		t.Fatal("expected error for completed=true with status todo")
	}
}

func TestWithStatusKeepsCompletionCoherent(t *testing.T) {
	task := validTask()

	done := task.WithStatus(StatusDone)
	if !done.Completed {
		t.Fatal("expected completed true after moving to done")
	}

	doing := done.WithStatus(StatusDoing)
	if doing.Completed {
		t.Fatal("expected completed false after moving out of done")
	}
}

func TestWithCompletedRoundTrip(t *testing.T) {
	task := validTask().WithCompleted(true)
	if task.Status != StatusDone {
		t.Fatalf("expected status done, got %q", task.Status)
	}

	task = task.WithCompleted(false)
	if task.Status != StatusTodo {
		t.Fatalf("expected uncompleting to land in todo, got %q", task.Status)
	}
	if task.Completed {
		t.Fatal("expected completed false")
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Fatal("expected high to rank before medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Fatal("expected medium to rank before low")
	}
}

func TestIDGeneratorUniqueWithinMillisecond(t *testing.T) {
	var gen IDGenerator
	now := time.UnixMilli(1767312000000)

	first := gen.Next("task", now)
	second := gen.Next("task", now)
	third := gen.Next("task", now.Add(time.Millisecond))

	if first == second || second == third || first == third {
		t.Fatalf("expected unique ids, got %q %q %q", first, second, third)
	}
}
