package dragdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twodo-app/twodo/internal/model"
)

func boardZones() []Zone {
	return []Zone{
		{Status: model.StatusTodo, X0: 0, Y0: 0, X1: 30, Y1: 40},
		{Status: model.StatusDoing, X0: 30, Y0: 0, X1: 60, Y1: 40},
		{Status: model.StatusDone, X0: 60, Y0: 0, X1: 90, Y1: 40},
	}
}

func TestReleaseBelowThresholdOpens(t *testing.T) {
	m := NewMachine(3)
	zones := boardZones()

	m.Press("task_1", model.StatusTodo, 5, 5)
	m.Move(6, 6, zones)
	outcome := m.Release(6, 6, zones)

	assert.Equal(t, OutcomeOpen, outcome.Kind)
	assert.Equal(t, "task_1", outcome.TaskID)
	assert.Equal(t, StateIdle, m.State())
}

func TestDragAcrossColumnsMoves(t *testing.T) {
	m := NewMachine(3)
	zones := boardZones()

	m.Press("task_1", model.StatusTodo, 5, 5)
	m.Move(20, 5, zones)
	require.True(t, m.Dragging())
	assert.Equal(t, "task_1", m.DraggingTaskID())

	m.Move(45, 5, zones)
	hover, ok := m.Hover()
	require.True(t, ok)
	assert.Equal(t, model.StatusDoing, hover)

	outcome := m.Release(45, 5, zones)
	assert.Equal(t, OutcomeMove, outcome.Kind)
	assert.Equal(t, "task_1", outcome.TaskID)
	assert.Equal(t, model.StatusDoing, outcome.Status)
	assert.Equal(t, StateIdle, m.State())
}

func TestDropOnOriginColumnIsNoOp(t *testing.T) {
	m := NewMachine(3)
	zones := boardZones()

	m.Press("task_1", model.StatusTodo, 5, 5)
	m.Move(5, 20, zones)
	require.True(t, m.Dragging())

	outcome := m.Release(5, 20, zones)
	assert.Equal(t, OutcomeNone, outcome.Kind)
}

func TestDropOutsideAnyZoneIsNoOp(t *testing.T) {
	m := NewMachine(3)
	zones := boardZones()

	m.Press("task_1", model.StatusTodo, 5, 5)
	m.Move(95, 50, zones)
	outcome := m.Release(95, 50, zones)
	assert.Equal(t, OutcomeNone, outcome.Kind)
}

func TestCancelReturnsNothing(t *testing.T) {
	m := NewMachine(3)
	zones := boardZones()

	m.Press("task_1", model.StatusTodo, 5, 5)
	m.Move(45, 5, zones)
	require.True(t, m.Dragging())

	outcome := m.Cancel()
	assert.Equal(t, OutcomeNone, outcome.Kind)
	assert.Equal(t, StateIdle, m.State())
	assert.False(t, m.Dragging())
}

func TestExactlyOneOutcomePerCycle(t *testing.T) {
	m := NewMachine(3)
	zones := boardZones()

	m.Press("task_1", model.StatusTodo, 5, 5)
	m.Move(45, 5, zones)
	first := m.Release(45, 5, zones)
	assert.Equal(t, OutcomeMove, first.Kind)

	// A second release without a press yields nothing.
	second := m.Release(45, 5, zones)
	assert.Equal(t, OutcomeNone, second.Kind)
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	m := NewMachine(3)
	m.Move(40, 5, boardZones())
	assert.Equal(t, StateIdle, m.State())
	assert.False(t, m.Dragging())
}

func TestThresholdIsChebyshev(t *testing.T) {
	m := NewMachine(3)
	zones := boardZones()

	m.Press("task_1", model.StatusTodo, 10, 10)
	// dx=2, dy=2: below threshold.
	m.Move(12, 12, zones)
	assert.False(t, m.Dragging())
	// dy=3: crosses it.
	m.Move(12, 13, zones)
	assert.True(t, m.Dragging())
}

func TestZoneContainsHalfOpenBounds(t *testing.T) {
	z := Zone{Status: model.StatusTodo, X0: 0, Y0: 0, X1: 10, Y1: 10}
	assert.True(t, z.Contains(0, 0))
	assert.True(t, z.Contains(9, 9))
	assert.False(t, z.Contains(10, 5))
	assert.False(t, z.Contains(5, 10))
}
