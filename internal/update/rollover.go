package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func rolloverTickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = time.Minute
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return RolloverTickMsg{Now: t}
	})
}

// performRollover moves incomplete tasks from earlier days onto today.
// The meta marker makes the pass idempotent per calendar day: ticks fire
// every minute but the rewrite happens at most once until the date
// changes.
func (m *Model) performRollover(now time.Time) bool {
	today := now.Format("2006-01-02")
	if m.Meta.LastRolloverDate == today {
		return false
	}
	m.Meta.LastRolloverDate = today

	moved := 0
	for i, t := range m.Tasks {
		if !t.Completed && t.Date != "" && t.Date < today {
			m.Tasks[i].Date = today
			moved++
		}
	}
	if moved > 0 {
		m.Status = StatusBar{Text: fmt.Sprintf("rolled over %d overdue task(s) to today", moved), IsError: false}
	}
	return moved > 0
}
