// Package dateutil holds the calendar math shared by every view. All
// functions are pure and operate on local wall-clock dates; an ISO date
// here is the string form YYYY-MM-DD with no time or zone component.
package dateutil

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

func TodayISO() string {
	return ToISO(time.Now())
}

func ToISO(t time.Time) string {
	return t.Format(isoLayout)
}

// FromISO parses an ISO date into a local midnight time. The round trip
// through ToISO is exact for any valid calendar date; no UTC shifting
// is applied, so "today" stays today in every timezone.
func FromISO(iso string) (time.Time, error) {
	t, err := time.ParseInLocation(isoLayout, iso, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateutil: parse %q: %w", iso, err)
	}
	return t, nil
}

func AddDaysISO(base time.Time, offset int) string {
	return ToISO(base.AddDate(0, 0, offset))
}

// FormatDateLabel renders an ISO date as the short display label,
// e.g. "1月2日". Invalid input yields an empty string.
func FormatDateLabel(iso string) string {
	t, err := FromISO(iso)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
}

// FormatMonthLabel renders the month header, e.g. "2026年1月".
func FormatMonthLabel(t time.Time) string {
	return fmt.Sprintf("%d年%d月", t.Year(), int(t.Month()))
}

// GridCell is one slot of the fixed 6x7 month grid.
type GridCell struct {
	ISO     string
	InMonth bool
	Day     int
}

// BuildMonthGrid returns exactly 42 cells covering the displayed month,
// starting on the Monday on or before the 1st.
func BuildMonthGrid(monthDate time.Time) []GridCell {
	first := time.Date(monthDate.Year(), monthDate.Month(), 1, 0, 0, 0, 0, time.Local)
	startWeekday := (int(first.Weekday()) + 6) % 7 // Monday = 0
	start := first.AddDate(0, 0, -startWeekday)

	cells := make([]GridCell, 42)
	for i := range cells {
		day := start.AddDate(0, 0, i)
		cells[i] = GridCell{
			ISO:     ToISO(day),
			InMonth: day.Month() == first.Month(),
			Day:     day.Day(),
		}
	}
	return cells
}

// MonthStart truncates a time to the first day of its month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.Local)
}
