package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 80

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// IsStdinTTY returns true when stdin is connected to a terminal.
func IsStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Width returns the terminal width, or 80 when it cannot be determined.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// ConfigureColor drops styling when NO_COLOR is set, plain is requested,
// or stdout is piped.
func ConfigureColor(plain bool) {
	if plain || os.Getenv("NO_COLOR") != "" || !IsStdoutTTY() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
