package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rnwolfe/planr/internal/planner"
	"github.com/rnwolfe/planr/internal/task"
	"github.com/rnwolfe/planr/internal/tui"
	"github.com/rnwolfe/planr/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Capture a new task",
	Long: `Capture a new task.

Due dates accept YYYY-MM-DD, today, tomorrow, next-week, or +N (days from today).`,
	Example: `  planr add "Write report" -D hard -d +3
  planr add "Call bank" -d tomorrow -n "ask about the fee"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark tasks complete",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Mark a completed task open again",
	Args:  cobra.ExactArgs(1),
	RunE:  runReopen,
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a task's title, due date, difficulty, or notes",
	Example: `  planr edit 4 --due +2
  planr edit 4 --no-due --difficulty easy`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task with its planner estimate",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var (
	addDue        string
	addNotes      string
	addDifficulty = difficultyValue{d: task.Medium}

	editTitle      string
	editDue        string
	editNoDue      bool
	editNotes      string
	editDifficulty difficultyValue
)

func init() {
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (YYYY-MM-DD, today, tomorrow, next-week, +N)")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Free-form notes")
	addCmd.Flags().VarP(&addDifficulty, "difficulty", "D", "Difficulty: easy, medium, hard")

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date")
	editCmd.Flags().BoolVar(&editNoDue, "no-due", false, "Remove the due date")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "Replace notes")
	editCmd.Flags().Var(&editDifficulty, "difficulty", "New difficulty: easy, medium, hard")
	editCmd.MarkFlagsMutuallyExclusive("due", "no-due")
}

func runAdd(_ *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	today := planner.Today(now())

	due, err := task.ParseDue(addDue, today)
	if err != nil {
		return err
	}

	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := ts.Add(title, addNotes, addDifficulty.d, due)
	if err != nil {
		return err
	}
	logger.Debug("task added", "id", id, "difficulty", addDifficulty.d, "due", due)

	minutes, energy := planner.Estimate(addDifficulty.d, title)
	msg := fmt.Sprintf("Added #%d %q (%s, ~%d min %s)", id, strings.TrimSpace(title), addDifficulty.d, minutes, energy)
	if due != "" {
		msg += fmt.Sprintf(", due %s", due)
	}
	ui.Ok(msg)
	return nil
}

func runDone(_ *cobra.Command, args []string) error {
	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	var failed []string
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		if err := ts.Complete(id); err != nil {
			if errors.Is(err, task.ErrNotFound) {
				failed = append(failed, fmt.Sprintf("#%d", id))
				continue
			}
			return err
		}
		ui.Ok(fmt.Sprintf("Completed #%d %s", id, ui.IconDone))
	}
	if len(failed) > 0 {
		return fmt.Errorf("no such task: %s", strings.Join(failed, ", "))
	}
	return nil
}

func runReopen(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := ts.Reopen(id); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Reopened #%d", id))
	return nil
}

func runRm(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := ts.Delete(id); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Deleted #%d", id))
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var e task.TaskEdit
	changed := func(name string) bool {
		return cmd != nil && cmd.Flags().Changed(name)
	}
	if changed("title") {
		e.Title = &editTitle
	}
	if changed("notes") {
		e.Notes = &editNotes
	}
	if editDifficulty.set {
		d := editDifficulty.d
		e.Difficulty = &d
	}
	if editNoDue {
		e.ClearDue = true
	} else if changed("due") {
		due, err := task.ParseDue(editDue, planner.Today(now()))
		if err != nil {
			return err
		}
		e.DueDate = &due
	}
	if e.Title == nil && e.Notes == nil && e.Difficulty == nil && e.DueDate == nil && !e.ClearDue {
		return errors.New("nothing to change; pass --title, --due, --no-due, --difficulty, or --notes")
	}

	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := ts.Edit(id, e); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Updated #%d", id))
	return nil
}

func runShow(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	t, err := ts.Get(id)
	if err != nil {
		return err
	}

	today := planner.Today(now())
	minutes, energy := planner.Estimate(t.Difficulty, t.Title)

	ui.Header(fmt.Sprintf("#%d %s", t.ID, t.Title))
	status := "open"
	if t.Completed {
		status = ui.IconDone + " done"
		if t.CompletedAt != nil {
			status += " " + t.CompletedAt.Local().Format("2006-01-02 15:04")
		}
	}
	ui.Kv("Status", status)
	ui.Kv("Difficulty", t.Difficulty.Icon()+" "+t.Difficulty.Label())
	if days, ok := planner.DaysUntil(t.DueDate, today); ok {
		ui.Kv("Due", t.DueDate+"  "+tui.FormatDue(&days))
	} else {
		ui.Kv("Due", ui.Muted.Render("none"))
	}
	ui.Kv("Estimate", fmt.Sprintf("%d min · %s", minutes, tui.FormatEnergy(energy)))
	if t.Notes != "" {
		ui.Kv("Notes", t.Notes)
	}
	ui.Kv("Created", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Println()
	return nil
}
