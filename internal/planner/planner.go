// Package planner turns a task snapshot into a daily plan: a priority order,
// four mutually exclusive thematic sections, and a time-boxed schedule.
//
// Build is a pure function of (tasks, today, config). It holds no state
// between calls and is safe to call concurrently.
package planner

import (
	"time"

	"github.com/rnwolfe/planr/internal/task"
)

// DefaultTopN is the length of the prioritized list.
const DefaultTopN = 5

// Config tunes a planning pass. Zero fields fall back to defaults.
type Config struct {
	Mode     Mode
	TopN     int
	Schedule ScheduleConfig
}

// DefaultConfig returns the standard planner settings.
func DefaultConfig() Config {
	return Config{
		Mode:     ModePlanner,
		TopN:     DefaultTopN,
		Schedule: DefaultScheduleConfig(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TopN <= 0 {
		c.TopN = def.TopN
	}
	if c.Schedule.Budget <= 0 {
		c.Schedule.Budget = def.Schedule.Budget
	}
	if c.Schedule.SlotCap <= 0 {
		c.Schedule.SlotCap = def.Schedule.SlotCap
	}
	if c.Schedule.MaxSlots <= 0 {
		c.Schedule.MaxSlots = def.Schedule.MaxSlots
	}
	return c
}

// Result is the outcome of one planning pass.
type Result struct {
	Date         string         `json:"date"`
	Mode         string         `json:"mode"`
	Summary      string         `json:"summary"`
	Prioritized  []PlannedTask  `json:"prioritized"`
	Sections     []Section      `json:"sections"`
	Schedule     []ScheduleSlot `json:"schedule"`
	TotalMinutes int            `json:"total_minutes"`
	// Ranked is the full priority order; Prioritized is its head.
	Ranked []PlannedTask `json:"-"`
}

// Build runs a full planning pass over tasks as of today.
func Build(tasks []task.Task, today time.Time, cfg Config) Result {
	cfg = cfg.withDefaults()
	today = Today(today)

	ranked := Rank(tasks, today, cfg.Mode)
	sections := Partition(ranked)
	schedule, total := BuildSchedule(ranked, cfg.Schedule)

	top := ranked
	if len(top) > cfg.TopN {
		top = top[:cfg.TopN]
	}

	return Result{
		Date:         today.Format(task.DateLayout),
		Mode:         cfg.Mode.String(),
		Summary:      Summarize(ranked, sections, total),
		Prioritized:  top,
		Sections:     sections,
		Schedule:     schedule,
		TotalMinutes: total,
		Ranked:       ranked,
	}
}
