package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rnwolfe/planr/internal/config"
	"github.com/rnwolfe/planr/internal/planner"
	"github.com/rnwolfe/planr/internal/store"
	"github.com/rnwolfe/planr/internal/task"
	"github.com/rnwolfe/planr/internal/tui"
	"github.com/rnwolfe/planr/internal/ui"
	"github.com/spf13/pflag"
)

// openTaskStore opens the database and returns a task store plus its closer.
func openTaskStore() (*task.Store, func(), error) {
	db, err := store.Open(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return task.NewStore(db.Conn()), func() { db.Close() }, nil
}

// parseID parses a task id argument like "12" or "#12".
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid task id", arg)
	}
	return id, nil
}

// plannerConfig builds engine settings from config, using defaults for unset fields.
// section forces section-view scoring regardless of the configured mode.
func plannerConfig(cfg *config.Config, section bool) planner.Config {
	pc := planner.DefaultConfig()
	p := cfg.Planner
	pc.Mode = planner.ParseMode(p.Mode)
	if section {
		pc.Mode = planner.ModeSection
	}
	if p.TopN != nil {
		pc.TopN = *p.TopN
	}
	if p.DailyBudget != nil {
		pc.Schedule.Budget = *p.DailyBudget
	}
	if p.SlotCap != nil {
		pc.Schedule.SlotCap = *p.SlotCap
	}
	if p.MaxSlots != nil {
		pc.Schedule.MaxSlots = *p.MaxSlots
	}
	return pc
}

// formatRankedLine renders a ranked task with its reason, for list-style output.
func formatRankedLine(p planner.PlannedTask) string {
	line := tui.FormatPlannedTask(p, ui.Width()-len(p.Reason)-6)
	return line + "  " + ui.Muted.Render(p.Reason)
}

// difficultyValue is a pflag.Value that validates difficulty input at parse time.
type difficultyValue struct {
	d   task.Difficulty
	set bool
}

var _ pflag.Value = (*difficultyValue)(nil)

func (v *difficultyValue) String() string {
	return string(v.d)
}

func (v *difficultyValue) Set(s string) error {
	d, err := task.ParseDifficulty(s)
	if err != nil {
		return err
	}
	v.d = d
	v.set = true
	return nil
}

func (v *difficultyValue) Type() string {
	return "difficulty"
}

// reset restores the flag to def, unset. Flags are package-level, so tests
// and repeated invocations need a clean slate.
func (v *difficultyValue) reset(def task.Difficulty) {
	v.d = def
	v.set = false
}
