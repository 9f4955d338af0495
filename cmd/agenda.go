package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/planr/internal/planner"
	"github.com/rnwolfe/planr/internal/task"
	"github.com/rnwolfe/planr/internal/tui"
	"github.com/rnwolfe/planr/internal/ui"
	"github.com/spf13/cobra"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show open tasks grouped by due day",
	Args:  cobra.NoArgs,
	RunE:  runAgenda,
}

var agendaDays int

func init() {
	agendaCmd.Flags().IntVar(&agendaDays, "days", 14, "How many days ahead to show")
}

// agendaDay is one group in the agenda. Offset is relative to today;
// overdue tasks share a single group with Overdue set.
type agendaDay struct {
	Offset  int
	Overdue bool
	Tasks   []task.Task
}

// groupAgenda buckets open dated tasks into overdue, then one group per day
// up to horizon days ahead. Undated and completed tasks are skipped. Groups
// keep snapshot order within a day.
func groupAgenda(tasks []task.Task, today time.Time, horizon int) []agendaDay {
	var overdue agendaDay
	overdue.Overdue = true
	byOffset := map[int]*agendaDay{}

	for _, t := range tasks {
		if t.Completed {
			continue
		}
		days, ok := planner.DaysUntil(t.DueDate, today)
		if !ok || days > horizon {
			continue
		}
		if days < 0 {
			overdue.Tasks = append(overdue.Tasks, t)
			continue
		}
		g, seen := byOffset[days]
		if !seen {
			g = &agendaDay{Offset: days}
			byOffset[days] = g
		}
		g.Tasks = append(g.Tasks, t)
	}

	var out []agendaDay
	if len(overdue.Tasks) > 0 {
		out = append(out, overdue)
	}
	for d := 0; d <= horizon; d++ {
		if g, ok := byOffset[d]; ok {
			out = append(out, *g)
		}
	}
	return out
}

func runAgenda(cmd *cobra.Command, _ []string) error {
	if agendaDays < 0 {
		return fmt.Errorf("--days must be zero or positive, got %d", agendaDays)
	}
	today := planner.Today(now())

	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	tasks, err := ts.ListOpenTasks(commandContext(cmd))
	if err != nil {
		return err
	}

	groups := groupAgenda(tasks, today, agendaDays)
	if len(groups) == 0 {
		ui.Inf(fmt.Sprintf("Nothing due in the next %d days.", agendaDays))
		return nil
	}

	width := ui.Width()
	for _, g := range groups {
		fmt.Println()
		fmt.Println(agendaHeading(g, today))
		for _, t := range g.Tasks {
			minutes, energy := planner.Estimate(t.Difficulty, t.Title)
			prefix := fmt.Sprintf("  %s %s %s ", tui.FormatID(t.ID), t.Difficulty.Icon(), tui.FormatMinutes(minutes))
			fmt.Println(prefix + ui.Truncate(t.Title, width-len(prefix)-10) + " " + tui.FormatEnergy(energy))
		}
	}
	fmt.Println()
	return nil
}

func agendaHeading(g agendaDay, today time.Time) string {
	if g.Overdue {
		return ui.Error.Bold(true).Render(fmt.Sprintf("%s Overdue (%d)", ui.IconOverdue, len(g.Tasks)))
	}
	day := today.AddDate(0, 0, g.Offset).Format("Mon Jan 2")
	switch g.Offset {
	case 0:
		return ui.Warning.Bold(true).Render(ui.IconToday + " Today · " + day)
	case 1:
		return ui.Accent.Render("Tomorrow · " + day)
	default:
		return ui.Subtitle.Render(day)
	}
}
