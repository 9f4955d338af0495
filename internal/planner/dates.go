package planner

import (
	"math"
	"strings"
	"time"

	"github.com/rnwolfe/planr/internal/task"
)

const msPerDay = 24 * 60 * 60 * 1000

// Today truncates a clock reading to local midnight.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DaysUntil returns the signed day offset from today to a YYYY-MM-DD due date.
// The boolean is false when due is empty or does not parse as a calendar date.
//
// Both days are taken at midnight in today's location and the millisecond gap
// is divided by a 24h day and rounded half-up. Across a DST change the gap is
// 23h or 25h, which still rounds to the calendar difference.
func DaysUntil(due string, today time.Time) (int, bool) {
	due = strings.TrimSpace(due)
	if due == "" {
		return 0, false
	}
	dueDay, err := time.ParseInLocation(task.DateLayout, due, today.Location())
	if err != nil {
		return 0, false
	}
	ms := dueDay.Sub(Today(today)).Milliseconds()
	return int(math.Floor(float64(ms)/msPerDay + 0.5)), true
}
