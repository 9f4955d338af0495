package cmd

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rnwolfe/planr/internal/config"
	"github.com/rnwolfe/planr/internal/ui"
	"github.com/spf13/cobra"
)

// logger is replaced in setupLogging once config is loaded.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupLogging configures colors and the diagnostic logger before any command runs.
func setupLogging(_ *cobra.Command, _ []string) error {
	ui.ConfigureColor(noColor)

	level := "warn"
	if cfg, err := config.Load(); err == nil {
		level = cfg.Log.Level
	}
	logger = newLogger(os.Stderr, level, verbose)
	slog.SetDefault(logger)
	return nil
}

// newLogger builds a text logger at the configured level; verbose forces debug.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl := parseLevel(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
