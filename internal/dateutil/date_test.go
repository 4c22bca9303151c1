package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISORoundTrip(t *testing.T) {
	for _, iso := range []string{"2026-01-01", "2026-02-28", "2026-12-31", "2024-02-29"} {
		parsed, err := FromISO(iso)
		require.NoError(t, err)
		assert.Equal(t, iso, ToISO(parsed))
	}

	_, err := FromISO("not-a-date")
	require.Error(t, err)
}

func TestFromISOKeepsLocalWallClock(t *testing.T) {
	parsed, err := FromISO("2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, time.Local, parsed.Location())
}

func TestFormatLabels(t *testing.T) {
	assert.Equal(t, "1月2日", FormatDateLabel("2026-01-02"))
	assert.Equal(t, "12月31日", FormatDateLabel("2026-12-31"))
	assert.Equal(t, "", FormatDateLabel("bogus"))

	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2026年1月", FormatMonthLabel(jan))
}

func TestBuildMonthGridInvariants(t *testing.T) {
	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)
	cells := BuildMonthGrid(jan)

	require.Len(t, cells, 42)

	first, err := FromISO(cells[0].ISO)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, first.Weekday())

	// January 1st 2026 is a Thursday, so it lands at grid index 3.
	assert.Equal(t, "2026-01-01", cells[3].ISO)
	assert.True(t, cells[3].InMonth)
	assert.Equal(t, 1, cells[3].Day)

	// Leading cells belong to December.
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, 29, cells[0].Day)
}

func TestBuildMonthGridIsPure(t *testing.T) {
	month := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.Local)
	first := BuildMonthGrid(month)
	second := BuildMonthGrid(month)
	assert.Equal(t, first, second)
}

func TestAddDaysISO(t *testing.T) {
	base := time.Date(2026, time.January, 30, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-01-30", AddDaysISO(base, 0))
	assert.Equal(t, "2026-02-01", AddDaysISO(base, 2))
	assert.Equal(t, "2026-01-29", AddDaysISO(base, -1))
}
