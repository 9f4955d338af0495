package planner

import (
	"sort"
	"time"

	"github.com/rnwolfe/planr/internal/task"
)

// PlannedTask is an open task annotated for one planning pass.
type PlannedTask struct {
	task.Task
	// DaysUntilDue is nil when the task has no usable due date.
	DaysUntilDue     *int    `json:"days_until_due"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	Energy           Energy  `json:"energy"`
	Score            float64 `json:"score"`
	Reason           string  `json:"reason"`
}

// Overdue reports whether the task's due date is before today.
func (p PlannedTask) Overdue() bool {
	return p.DaysUntilDue != nil && *p.DaysUntilDue < 0
}

// Rank derives PlannedTasks from a snapshot and orders them by score, highest
// first. Completed tasks are dropped here and nowhere else. Ties keep snapshot
// order.
func Rank(tasks []task.Task, today time.Time, mode Mode) []PlannedTask {
	open := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}

	var boosts []float64
	if mode == ModePlanner {
		titles := make([]string, len(open))
		for i, t := range open {
			titles[i] = t.Title
		}
		boosts = SimilarityBoosts(titles)
	}

	ranked := make([]PlannedTask, len(open))
	for i, t := range open {
		days, ok := DaysUntil(t.DueDate, today)
		minutes, energy := Estimate(t.Difficulty, t.Title)

		score := float64(Urgency(days, ok) + EffortWeight(t.Difficulty))
		if boosts != nil {
			score += boosts[i]
		}

		p := PlannedTask{
			Task:             t,
			EstimatedMinutes: minutes,
			Energy:           energy,
			Score:            score,
			Reason:           Reason(days, ok, t.Difficulty),
		}
		if ok {
			d := days
			p.DaysUntilDue = &d
		}
		ranked[i] = p
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
