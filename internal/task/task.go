// Package task owns the on-device task list: the Task model, input parsing,
// and the SQLite-backed Store the planner reads snapshots from.
package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the storage and input format for due dates.
const DateLayout = "2006-01-02"

// Difficulty is the three-level effort rating a user gives a task.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every valid difficulty from lightest to heaviest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Task is a single stored task.
type Task struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Notes      string     `json:"notes,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	// DueDate is the stored YYYY-MM-DD text, empty when unset.
	DueDate     string     `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// HasDue reports whether a due date is set.
func (t Task) HasDue() bool {
	return t.DueDate != ""
}

// ParseDifficulty validates and normalizes a difficulty string.
// Accepts full names and short aliases: e=easy, m/med=medium, h=hard.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e":
		return Easy, nil
	case "medium", "med", "m":
		return Medium, nil
	case "hard", "h":
		return Hard, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q (valid values: easy (e), medium (m), hard (h))", s)
	}
}

// Label returns a short display label.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "med"
	case Hard:
		return "hard"
	default:
		return "?"
	}
}

// Icon returns a colored icon for the difficulty.
func (d Difficulty) Icon() string {
	switch d {
	case Hard:
		return "🔴"
	case Medium:
		return "🟡"
	case Easy:
		return "🟢"
	default:
		return "⚪"
	}
}

// ParseDue resolves user input to the canonical YYYY-MM-DD due-date text.
// Accepts YYYY-MM-DD, today, tomorrow, next-week, and +N / +Nd day offsets.
// An empty input means "no due date" and returns "".
func ParseDue(s string, today time.Time) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	switch s {
	case "today":
		return day.Format(DateLayout), nil
	case "tomorrow":
		return day.AddDate(0, 0, 1).Format(DateLayout), nil
	case "next-week", "nextweek":
		return day.AddDate(0, 0, 7).Format(DateLayout), nil
	}

	if strings.HasPrefix(s, "+") {
		n, err := strconv.Atoi(strings.TrimSuffix(s[1:], "d"))
		if err != nil || n < 0 {
			return "", fmt.Errorf("invalid day offset %q (use +N or +Nd)", s)
		}
		return day.AddDate(0, 0, n).Format(DateLayout), nil
	}

	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid due date %q (use YYYY-MM-DD, today, tomorrow, next-week, or +Nd)", s)
	}
	return parsed.Format(DateLayout), nil
}
