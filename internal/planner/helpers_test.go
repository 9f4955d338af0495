package planner

import (
	"github.com/rnwolfe/planr/internal/task"
)

// dueIn formats today+days as stored due-date text.
func dueIn(days int) string {
	return today.AddDate(0, 0, days).Format(task.DateLayout)
}

func mkTask(id int, title string, d task.Difficulty, due string) task.Task {
	return task.Task{ID: id, Title: title, Difficulty: d, DueDate: due}
}

func ids(ps []PlannedTask) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func slotIDs(slots []ScheduleSlot) []int {
	out := make([]int, len(slots))
	for i, s := range slots {
		out[i] = s.TaskID
	}
	return out
}

// pt builds a PlannedTask directly, bypassing scoring.
func pt(id int, d task.Difficulty, minutes int, days *int) PlannedTask {
	return PlannedTask{
		Task:             task.Task{ID: id, Title: "task", Difficulty: d},
		EstimatedMinutes: minutes,
		DaysUntilDue:     days,
	}
}

func intPtr(v int) *int { return &v }
