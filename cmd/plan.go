package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rnwolfe/planr/internal/config"
	"github.com/rnwolfe/planr/internal/planner"
	"github.com/rnwolfe/planr/internal/task"
	"github.com/rnwolfe/planr/internal/tui"
	"github.com/rnwolfe/planr/internal/ui"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build today's plan: priorities, sections, and a schedule",
	Long: `Build today's plan from your open tasks.

In a terminal this opens an interactive browser (tab between views, x to mark
done, q to quit). Use --plain for text output or --json for scripting.`,
	Example: `  planr plan
  planr plan --plain --date 2026-03-14
  planr plan --json | jq '.schedule'`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

var (
	planSection bool
	planJSON    bool
	planPlain   bool
	planDate    string
)

func init() {
	planCmd.Flags().BoolVar(&planSection, "section", false, "Score by urgency and effort only (no similarity boost)")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Print the plan as JSON")
	planCmd.Flags().BoolVar(&planPlain, "plain", false, "Print the plan as text, no interactive view")
	planCmd.Flags().StringVar(&planDate, "date", "", "Plan for this day instead of today (YYYY-MM-DD)")
	planCmd.MarkFlagsMutuallyExclusive("json", "plain")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	clock := now
	if planDate != "" {
		day, err := time.ParseInLocation(task.DateLayout, planDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", planDate)
		}
		clock = func() time.Time { return day }
	}

	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	p := planner.New(ts,
		planner.WithClock(clock),
		planner.WithConfig(plannerConfig(cfg, planSection)),
		planner.WithLogger(logger),
	)
	res, err := p.Plan(commandContext(cmd))
	if err != nil {
		return err
	}

	switch {
	case planJSON:
		return writePlanJSON(os.Stdout, res)
	case planPlain || !ui.IsStdoutTTY() || !ui.IsStdinTTY():
		printPlan(os.Stdout, res, ui.Width())
		return nil
	}

	done, err := tui.RunPlan(res)
	if err != nil {
		return err
	}
	for _, id := range done {
		if err := ts.Complete(id); err != nil {
			return fmt.Errorf("completing #%d: %w", id, err)
		}
		ui.Ok(fmt.Sprintf("Completed #%d %s", id, ui.IconDone))
	}
	return nil
}

func writePlanJSON(w io.Writer, res planner.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// printPlan writes the text rendition of a plan.
func printPlan(w io.Writer, res planner.Result, width int) {
	fmt.Fprintln(w, ui.Title.Render(fmt.Sprintf("%sPlan for %s", ui.IconPlan, res.Date)))
	fmt.Fprintln(w, "  "+res.Summary)
	if len(res.Prioritized) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Subtitle.Render(ui.IconFocus+" Priorities"))
	for i, pt := range res.Prioritized {
		fmt.Fprintf(w, "  %d. %s  %s\n", i+1, tui.FormatPlannedTask(pt, width-len(pt.Reason)-8), ui.Muted.Render(pt.Reason))
	}

	for _, s := range res.Sections {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s\n", ui.Subtitle.Render(s.Title), ui.Muted.Render(s.Hint))
		for _, pt := range s.Tasks {
			fmt.Fprintln(w, "  "+tui.FormatPlannedTask(pt, width-2))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Subtitle.Render(fmt.Sprintf("%sSchedule · %d min", ui.IconClock, res.TotalMinutes)))
	if len(res.Schedule) == 0 {
		fmt.Fprintln(w, ui.Muted.Render("  nothing fits today's budget"))
		return
	}
	for _, slot := range res.Schedule {
		fmt.Fprintln(w, "  "+tui.FormatSlot(slot, width-2))
	}
}
