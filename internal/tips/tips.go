// Package tips rotates short usage hints shown under the dashboard.
package tips

import "time"

var pool = []string{
	"`planr plan` for today's priorities, sections, and schedule.",
	"`planr plan --json | jq .schedule` to feed the schedule to other tools.",
	"`planr add \"Lab report\" -D hard -d +3` sets difficulty and due date in one go.",
	"`planr agenda` groups what's coming up by day.",
	"`planr list --overdue` shows only what has slipped.",
	"`planr list --within 7 --difficulty easy` finds quick wins for the week.",
	"`planr edit <id> --no-due` when a deadline stops mattering.",
	"`planr config set planner.daily_budget 240` if you have a longer day.",
	"`planr config set planner.mode section` turns off the similar-title boost.",
	"Titles sharing words (\"chem lab\", \"chem quiz\") rank a little higher together.",
	"Press x in `planr plan` to check a task off without leaving the view.",
	"`planr show <id>` shows how long planr thinks a task will take.",
}

// All returns every tip.
func All() []string {
	return pool
}

// Daily returns the tip for t's day; it stays fixed all day.
func Daily(t time.Time) string {
	return pool[t.YearDay()%len(pool)]
}
