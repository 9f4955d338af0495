package task

import (
	"fmt"
	"time"
)

// Stats holds the dashboard numbers derived from the task list.
type Stats struct {
	Open          int
	Completed     int
	Total         int
	Overdue       int
	DueToday      int
	DueThisWeek   int // due within the next 7 days, today included
	CompletionPct int
	// OpenByDifficulty counts open tasks per rating.
	OpenByDifficulty map[Difficulty]int
}

// GetStats computes dashboard statistics relative to today.
func (s *Store) GetStats(today time.Time) (*Stats, error) {
	todayStr := today.Format(DateLayout)
	weekEnd := today.AddDate(0, 0, 6).Format(DateLayout)

	stats := &Stats{OpenByDifficulty: map[Difficulty]int{}}
	err := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN completed = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 0 AND due_date < ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 0 AND due_date = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 0 AND due_date >= ? AND due_date <= ? THEN 1 ELSE 0 END), 0)
		FROM tasks`,
		todayStr, todayStr, todayStr, weekEnd,
	).Scan(&stats.Total, &stats.Completed, &stats.Overdue, &stats.DueToday, &stats.DueThisWeek)
	if err != nil {
		return nil, fmt.Errorf("computing task counts: %w", err)
	}
	stats.Open = stats.Total - stats.Completed
	stats.CompletionPct = CompletionPercent(stats.Completed, stats.Total)

	rows, err := s.db.Query(`SELECT difficulty, COUNT(*) FROM tasks WHERE completed = 0 GROUP BY difficulty`)
	if err != nil {
		return nil, fmt.Errorf("computing difficulty breakdown: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d string
		var n int
		if err := rows.Scan(&d, &n); err != nil {
			return nil, err
		}
		stats.OpenByDifficulty[Difficulty(d)] = n
	}
	return stats, rows.Err()
}

// CompletionPercent returns completed/total as a whole percentage.
// An empty list is 0%.
func CompletionPercent(completed, total int) int {
	denom := total
	if denom == 0 {
		denom = 1
	}
	return completed * 100 / denom
}
