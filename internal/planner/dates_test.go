package planner

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 3, 10, 14, 45, 0, 0, time.UTC)

func TestToday_TruncatesToMidnight(t *testing.T) {
	got := Today(today)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		due  string
		want int
	}{
		{"2026-03-10", 0},
		{"2026-03-11", 1},
		{"2026-03-09", -1},
		{"2026-02-28", -10},
		{"2026-04-10", 31},
		{" 2026-03-13 ", 3},
	}
	for _, tt := range tests {
		t.Run(tt.due, func(t *testing.T) {
			got, ok := DaysUntil(tt.due, today)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysUntil_MissingOrInvalid(t *testing.T) {
	for _, due := range []string{"", "   ", "tomorrow", "2026-13-01", "2026-02-30", "10/03/2026"} {
		_, ok := DaysUntil(due, today)
		assert.False(t, ok, "due %q should not parse", due)
	}
}

func TestDaysUntil_AcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// US clocks spring forward on 2026-03-08; that day is 23 hours long.
	start := time.Date(2026, 3, 8, 9, 0, 0, 0, ny)
	got, ok := DaysUntil("2026-03-09", start)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	// Fall back on 2026-11-01; that day is 25 hours long.
	start = time.Date(2026, 10, 31, 9, 0, 0, 0, ny)
	got, ok = DaysUntil("2026-11-02", start)
	require.True(t, ok)
	assert.Equal(t, 2, got)
}
