package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/planr/internal/planner"
	"github.com/rnwolfe/planr/internal/ui"
)

// Column display widths shared by the CLI and TUI renderers.
const (
	// ColWidthID is the display width of the ID column: "#" + up to 3 digits.
	ColWidthID = 4
	// ColWidthDue is wide enough for "overdue 12d".
	ColWidthDue = 11
	// ColWidthMinutes fits "90m".
	ColWidthMinutes = 4
)

// FormatDue renders a day offset as a fixed-width styled tag.
func FormatDue(days *int) string {
	style := lipgloss.NewStyle().Width(ColWidthDue)
	if days == nil {
		return style.Render(ui.Muted.Render("no due"))
	}
	d := *days
	switch {
	case d < 0:
		return style.Render(ui.Error.Render(fmt.Sprintf("overdue %dd", -d)))
	case d == 0:
		return style.Render(ui.Warning.Render("today"))
	case d == 1:
		return style.Render(ui.Warning.Render("tomorrow"))
	default:
		return style.Render(ui.Muted.Render(fmt.Sprintf("in %dd", d)))
	}
}

// FormatEnergy renders an energy category badge.
func FormatEnergy(e planner.Energy) string {
	if e == planner.EnergyDeep {
		return ui.DeepStyle.Render("deep")
	}
	return ui.ShallowStyle.Render("shallow")
}

// FormatID renders a task id in the fixed-width ID column.
func FormatID(id int) string {
	return lipgloss.NewStyle().Width(ColWidthID).Render(ui.Muted.Render(fmt.Sprintf("#%d", id)))
}

// FormatMinutes renders a duration in the fixed-width minutes column.
func FormatMinutes(m int) string {
	return lipgloss.NewStyle().Width(ColWidthMinutes).Align(lipgloss.Right).Render(fmt.Sprintf("%dm", m))
}

// FormatPlannedTask renders one ranked task as a single line, title truncated
// to fit width.
func FormatPlannedTask(p planner.PlannedTask, width int) string {
	prefix := fmt.Sprintf("%s %s %s ", FormatID(p.ID), p.Difficulty.Icon(), FormatDue(p.DaysUntilDue))
	titleWidth := width - lipgloss.Width(prefix) - 2
	return prefix + ui.Truncate(p.Title, titleWidth)
}

// FormatSlot renders one schedule slot as a single line.
func FormatSlot(s planner.ScheduleSlot, width int) string {
	prefix := fmt.Sprintf("%s %s %s ", FormatMinutes(s.Minutes), FormatID(s.TaskID), FormatEnergy(s.Energy))
	titleWidth := width - lipgloss.Width(prefix) - 2
	return prefix + ui.Truncate(s.Title, titleWidth)
}

// MatchQuery reports whether every whitespace-separated word of query occurs
// in title, ignoring case. An empty query matches everything.
func MatchQuery(query, title string) bool {
	t := strings.ToLower(title)
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(t, w) {
			return false
		}
	}
	return true
}
