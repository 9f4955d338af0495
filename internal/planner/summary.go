package planner

import (
	"fmt"
	"strings"
)

// EmptySummary is shown when there is nothing to plan.
const EmptySummary = "Add a task to get a plan."

// Summarize renders a short synopsis of a plan.
func Summarize(ranked []PlannedTask, sections []Section, totalMinutes int) string {
	if len(ranked) == 0 {
		return EmptySummary
	}

	top := ranked[0]
	parts := []string{fmt.Sprintf("Start with %q (%s).", top.Title, top.Reason)}

	overdue := 0
	for _, p := range ranked {
		if p.Overdue() {
			overdue++
		}
	}
	if overdue > 0 {
		parts = append(parts, fmt.Sprintf("%s to catch up on.", plural(overdue, "overdue task", "overdue tasks")))
	}

	for _, s := range sections {
		if s.Bucket == BucketQuickWins {
			parts = append(parts, fmt.Sprintf("%s ready between blocks.", plural(len(s.Tasks), "quick win", "quick wins")))
		}
	}

	if totalMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min scheduled today.", totalMinutes))
	}
	return strings.Join(parts, " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
