// Package dragdrop implements the kanban pointer gesture as an explicit
// state machine: Idle -> PressArmed -> Dragging -> (Dropped|Cancelled)
// -> Idle. Exactly one outcome (open, move, or nothing) results from
// each press/release cycle, which makes the click-vs-drag
// disambiguation a testable contract instead of event-flag juggling.
package dragdrop

import "github.com/twodo-app/twodo/internal/model"

// DefaultThreshold is the pointer travel, in terminal cells, past which
// a press becomes a drag instead of a click.
const DefaultThreshold = 3

type State int

const (
	StateIdle State = iota
	StatePressArmed
	StateDragging
)

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeOpen
	OutcomeMove
)

// Outcome is the single result of a press/release cycle. TaskID is set
// for Open and Move; Status only for Move.
type Outcome struct {
	Kind   OutcomeKind
	TaskID string
	Status model.Status
}

// Zone is a screen region associated with one kanban status, used for
// drop hit-testing. Bounds are half-open: [X0,X1) x [Y0,Y1).
type Zone struct {
	Status model.Status
	X0, Y0 int
	X1, Y1 int
}

func (z Zone) Contains(x, y int) bool {
	return x >= z.X0 && x < z.X1 && y >= z.Y0 && y < z.Y1
}

func zoneAt(zones []Zone, x, y int) (model.Status, bool) {
	for _, z := range zones {
		if z.Contains(x, y) {
			return z.Status, true
		}
	}
	return "", false
}

type Machine struct {
	state     State
	threshold int
	taskID    string
	origin    model.Status
	startX    int
	startY    int
	x         int
	y         int
	hover     model.Status
	hovering  bool
}

func NewMachine(threshold int) *Machine {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Machine{threshold: threshold}
}

func (m *Machine) State() State { return m.state }

// Dragging reports whether the threshold has been crossed; the card is
// visually lifted only in this state.
func (m *Machine) Dragging() bool { return m.state == StateDragging }

func (m *Machine) DraggingTaskID() string {
	if m.state != StateDragging {
		return ""
	}
	return m.taskID
}

// Hover returns the status of the zone currently under the pointer
// while dragging, for drop-target highlighting.
func (m *Machine) Hover() (model.Status, bool) {
	if m.state != StateDragging || !m.hovering {
		return "", false
	}
	return m.hover, true
}

// Press arms the machine on a primary-button press over a card. Nothing
// moves yet; a release before the threshold is a plain click.
func (m *Machine) Press(taskID string, origin model.Status, x, y int) {
	m.state = StatePressArmed
	m.taskID = taskID
	m.origin = origin
	m.startX, m.startY = x, y
	m.x, m.y = x, y
	m.hovering = false
}

// Move tracks pointer motion. Crossing the travel threshold promotes
// the press to a drag; while dragging the hovered drop zone is
// resolved for highlighting.
func (m *Machine) Move(x, y int, zones []Zone) {
	if m.state == StateIdle {
		return
	}
	m.x, m.y = x, y
	if m.state == StatePressArmed && m.travel() >= m.threshold {
		m.state = StateDragging
	}
	if m.state == StateDragging {
		m.hover, m.hovering = zoneAt(zones, x, y)
	}
}

// Release ends the cycle. An armed press yields Open; a drag released
// over a zone with a different status yields Move; everything else is
// nothing. The machine always returns to Idle.
func (m *Machine) Release(x, y int, zones []Zone) Outcome {
	defer m.reset()
	switch m.state {
	case StatePressArmed:
		return Outcome{Kind: OutcomeOpen, TaskID: m.taskID}
	case StateDragging:
		status, ok := zoneAt(zones, x, y)
		if ok && status != m.origin {
			return Outcome{Kind: OutcomeMove, TaskID: m.taskID, Status: status}
		}
		return Outcome{Kind: OutcomeNone}
	default:
		return Outcome{Kind: OutcomeNone}
	}
}

// Cancel aborts the cycle with no mutation, e.g. on lost pointer
// capture. The card returns to its origin.
func (m *Machine) Cancel() Outcome {
	m.reset()
	return Outcome{Kind: OutcomeNone}
}

func (m *Machine) reset() {
	m.state = StateIdle
	m.taskID = ""
	m.origin = ""
	m.hovering = false
}

// travel is the Chebyshev distance from the press origin; terminal
// cells are coarse enough that max(|dx|,|dy|) is the right metric.
func (m *Machine) travel() int {
	dx := abs(m.x - m.startX)
	dy := abs(m.y - m.startY)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
