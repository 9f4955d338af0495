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

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks in the order you added them",
	Example: `  planr list --overdue
  planr list --within 7 --difficulty hard
  planr list --done --query essay`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listDone       bool
	listOverdue    bool
	listWithin     int
	listQuery      string
	listDifficulty difficultyValue
)

func init() {
	listCmd.Flags().BoolVar(&listDone, "done", false, "Include completed tasks")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "Only overdue tasks")
	listCmd.Flags().IntVar(&listWithin, "within", 0, "Only tasks due within N days (overdue included)")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Match title or notes")
	listCmd.Flags().Var(&listDifficulty, "difficulty", "Only tasks of this difficulty")
}

func runList(cmd *cobra.Command, _ []string) error {
	if listWithin < 0 {
		return fmt.Errorf("--within must be zero or positive, got %d", listWithin)
	}
	today := planner.Today(now())

	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	tasks, err := ts.List(commandContext(cmd), task.ListOptions{
		IncludeCompleted: listDone,
		Overdue:          listOverdue,
		WithinDays:       listWithin,
		Difficulty:       listDifficulty.d,
		Query:            listQuery,
		Today:            today,
	})
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		ui.Inf("No tasks match.")
		return nil
	}

	width := ui.Width()
	for _, t := range tasks {
		fmt.Println(formatTaskLine(t, today, width))
	}
	fmt.Println(ui.Muted.Render(fmt.Sprintf("\n  %d task(s)", len(tasks))))
	return nil
}

// formatTaskLine renders a stored task with its due offset, dimmed when done.
func formatTaskLine(t task.Task, today time.Time, width int) string {
	var days *int
	if d, ok := planner.DaysUntil(t.DueDate, today); ok {
		days = &d
	}
	line := tui.FormatPlannedTask(planner.PlannedTask{Task: t, DaysUntilDue: days}, width)
	if t.Completed {
		return ui.IconDone + ui.Muted.Strikethrough(true).Render(line)
	}
	return "  " + line
}
