package cmd

import (
	"fmt"
	"strings"

	"github.com/rnwolfe/planr/internal/config"
	"github.com/rnwolfe/planr/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.GetPaths().ConfigFile)
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every settable key with its default",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Run 'planr config list' for the supported keys.

Planner numbers must be positive integers; planner.mode is planner or section.`,
	Example: `  planr config set planner.daily_budget 240
  planr config set user.name Sam`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Reset a configuration value to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func lookupKey(key string) (*config.KeyEntry, error) {
	entry, ok := config.LookupKey(key)
	if !ok {
		return nil, fmt.Errorf("unknown config key %q (run %s to see available keys)",
			key, ui.Accent.Render("planr config list"))
	}
	return entry, nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	entry, err := lookupKey(key)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := entry.Set(cfg, value); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s = %s", key, entry.Get(cfg)))
	return nil
}

func runConfigUnset(_ *cobra.Command, args []string) error {
	key := args[0]
	entry, err := lookupKey(key)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	entry.Unset(cfg)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s reset to %s", key, entry.DefaultStr))
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	entry, err := lookupKey(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println(entry.Get(cfg))
	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ui.Header("Config keys")
	for _, name := range config.ValidKeyNames() {
		entry, _ := config.LookupKey(name)
		val := entry.Get(cfg)
		if val == "" {
			val = ui.Muted.Render("(unset)")
		}
		fmt.Printf("  %s %s\n", ui.KeyStyle.Render(fmt.Sprintf("%-22s", name)), val)
		fmt.Printf("  %s %s\n", strings.Repeat(" ", 22), ui.Muted.Render(fmt.Sprintf("%s · %s, default %s", entry.Desc, entry.Type, orNone(entry.DefaultStr))))
	}
	fmt.Println()
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	paths := config.GetPaths()
	pc := plannerConfig(cfg, false)

	ui.Header("Configuration")
	fmt.Println()
	ui.Kv("Name", orNone(cfg.User.Name))
	ui.Kv("Mode", pc.Mode.String())
	ui.Kv("Budget", fmt.Sprintf("%d min in up to %d slots of %d min", pc.Schedule.Budget, pc.Schedule.MaxSlots, pc.Schedule.SlotCap))
	ui.Kv("Top N", fmt.Sprintf("%d", pc.TopN))
	ui.Kv("Log level", cfg.Log.Level)
	fmt.Println()
	ui.Kv("Config", paths.ConfigFile)
	ui.Kv("Data", paths.DBFile)
	ui.Tip(fmt.Sprintf("Edit directly: %s", ui.Accent.Render("$EDITOR "+paths.ConfigFile)))
	fmt.Println()
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
