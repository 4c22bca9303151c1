package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting: high before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Task is one to-do item. Completed and Status describe the same
// underlying completion state and must change together; use WithStatus
// or WithCompleted on every mutation path.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
	Status    Status   `json:"status"`
	ListID    string   `json:"listId"`
	Desc      string   `json:"desc"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.Completed != (t.Status == StatusDone) {
		return errors.New("model: completed flag out of sync with status")
	}
	if strings.TrimSpace(t.ListID) == "" {
		return errors.New("model: task list id is required")
	}
	return nil
}

// WithStatus returns a copy with the status set and the completed flag
// kept coherent.
func (t Task) WithStatus(s Status) Task {
	t.Status = s
	t.Completed = s == StatusDone
	return t
}

// WithCompleted returns a copy with the completion flipped to the given
// value. Uncompleting always lands the task back in the todo column.
func (t Task) WithCompleted(done bool) Task {
	t.Completed = done
	if done {
		t.Status = StatusDone
	} else {
		t.Status = StatusTodo
	}
	return t
}

// IDGenerator issues opaque, creation-ordered identifiers. Ids are
// derived from the wall clock with a sequence suffix so that two ids
// issued in the same millisecond still differ.
type IDGenerator struct {
	lastMilli int64
	seq       int
}

func (g *IDGenerator) Next(prefix string, now time.Time) string {
	ms := now.UnixMilli()
	if ms == g.lastMilli {
		g.seq++
		return fmt.Sprintf("%s_%d_%d", prefix, ms, g.seq)
	}
	g.lastMilli = ms
	g.seq = 0
	return fmt.Sprintf("%s_%d", prefix, ms)
}
