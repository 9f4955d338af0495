package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rnwolfe/planr/internal/config"
	"github.com/rnwolfe/planr/internal/planner"
	"github.com/rnwolfe/planr/internal/task"
	"github.com/rnwolfe/planr/internal/tips"
	"github.com/rnwolfe/planr/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planr",
	Short: "Plan your day from the tasks you already have",
	Long: `planr keeps your tasks on this device and turns them into a plan:
a priority order, focused sections, and a time-boxed schedule for today.

Run with no arguments for the dashboard, or 'planr plan' for the full plan.`,
	RunE:              runDashboard,
	PersistentPreRunE: setupLogging,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	verbose bool
	noColor bool
)

// Execute runs the root command.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(reopenCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(agendaCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runDashboard shows the at-a-glance status when you just type `planr`.
func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ts, closeStore, err := openTaskStore()
	if err != nil {
		return err
	}
	defer closeStore()

	today := planner.Today(now())
	stats, err := ts.GetStats(today)
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	fmt.Println(ui.Greet(cfg.User.Name))
	fmt.Println()

	summary := fmt.Sprintf("%d open", stats.Open)
	if stats.Total > 0 {
		summary += fmt.Sprintf(" / %d total · %d%% done", stats.Total, stats.CompletionPct)
	}
	if stats.Overdue > 0 {
		summary += ui.Error.Render(fmt.Sprintf(" (%d overdue!)", stats.Overdue))
	}
	ui.Kv(ui.IconTask+" Tasks", summary)
	ui.Kv("  "+ui.IconToday+" Today", fmt.Sprintf("%s · %d due today, %d this week",
		today.Format("Monday, January 2"), stats.DueToday, stats.DueThisWeek))
	if stats.Open > 0 {
		var load []string
		for _, d := range task.Difficulties {
			load = append(load, fmt.Sprintf("%s %d %s", d.Icon(), stats.OpenByDifficulty[d], d))
		}
		ui.Kv("  "+ui.IconFocus+" Load", strings.Join(load, "  "))
	}

	p := planner.New(ts,
		planner.WithClock(now),
		planner.WithConfig(plannerConfig(cfg, false)),
		planner.WithLogger(logger),
	)
	res, err := p.Plan(commandContext(cmd))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + res.Summary)
	if len(res.Prioritized) > 0 {
		fmt.Println()
		top := res.Prioritized[:min(3, len(res.Prioritized))]
		for i, pt := range top {
			fmt.Printf("  %s %s\n", ui.Muted.Render(fmt.Sprintf("%d.", i+1)), formatRankedLine(pt))
		}
	}

	if stats.Open == 0 {
		ui.Tip("`planr add \"something to do\"` to capture a task.")
	} else {
		ui.Tip(tips.Daily(today))
	}
	fmt.Println()
	return nil
}

// now is the clock used by every command; tests replace it.
var now = time.Now

// commandContext returns the command's context, or Background when run
// outside cobra (tests call run functions directly).
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
