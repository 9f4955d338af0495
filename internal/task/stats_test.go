package task

import (
	"testing"
	"time"
)

func TestGetStats(t *testing.T) {
	s := setupTestStore(t)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.Add("overdue", "", Hard, "2026-03-09")
	s.Add("today", "", Easy, "2026-03-10")
	s.Add("in six days", "", Medium, "2026-03-16")
	s.Add("in seven days", "", Medium, "2026-03-17")
	id, _ := s.Add("done", "", Easy, "")
	s.Complete(id)

	stats, err := s.GetStats(today)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.Total != 5 || stats.Open != 4 || stats.Completed != 1 {
		t.Errorf("totals: got total=%d open=%d completed=%d", stats.Total, stats.Open, stats.Completed)
	}
	if stats.Overdue != 1 {
		t.Errorf("overdue: got %d", stats.Overdue)
	}
	if stats.DueToday != 1 {
		t.Errorf("due today: got %d", stats.DueToday)
	}
	if stats.DueThisWeek != 2 {
		t.Errorf("due this week should cover today..today+6, got %d", stats.DueThisWeek)
	}
	if stats.CompletionPct != 20 {
		t.Errorf("completion pct: got %d", stats.CompletionPct)
	}
	if stats.OpenByDifficulty[Medium] != 2 || stats.OpenByDifficulty[Easy] != 1 || stats.OpenByDifficulty[Hard] != 1 {
		t.Errorf("difficulty breakdown: got %v", stats.OpenByDifficulty)
	}
}

func TestGetStats_Empty(t *testing.T) {
	s := setupTestStore(t)

	stats, err := s.GetStats(time.Now())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.Total != 0 || stats.CompletionPct != 0 {
		t.Fatalf("empty store should be all zero, got %+v", stats)
	}
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{1, 1, 100},
		{1, 3, 33},
		{2, 3, 66},
	}
	for _, tt := range tests {
		if got := CompletionPercent(tt.completed, tt.total); got != tt.want {
			t.Errorf("CompletionPercent(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}
