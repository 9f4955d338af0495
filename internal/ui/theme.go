package ui

import "github.com/charmbracelet/lipgloss"

// planr's palette: ink blues for structure, warm accents for urgency.
var (
	Ink      = lipgloss.Color("#5B8DEF")
	Sky      = lipgloss.Color("#8FB8FF")
	Coral    = lipgloss.Color("#FF6F59")
	Amber    = lipgloss.Color("#FFBF00")
	Mint     = lipgloss.Color("#43C59E")
	Lavender = lipgloss.Color("#B39DDB")
	Dim      = lipgloss.Color("#666666")
	Bright   = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Ink)

	Subtitle = lipgloss.NewStyle().
			Foreground(Sky)

	Success = lipgloss.NewStyle().
		Foreground(Mint)

	Error = lipgloss.NewStyle().
		Foreground(Coral)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Ink).
		Bold(true)

	// Energy badges in the schedule.
	DeepStyle = lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true)

	ShallowStyle = lipgloss.NewStyle().
			Foreground(Mint)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Sky).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants: one emoji language across views.
const (
	IconPlan    = "🗓 "
	IconTask    = "📋"
	IconDone    = "✅"
	IconOverdue = "🔴"
	IconToday   = "📅"
	IconFocus   = "🎯"
	IconClock   = "⏱ "
	IconParty   = "🎉"
	IconWarn    = "⚠️ "
	IconError   = "✗ "
	IconOk      = "✓ "
	IconArrow   = "→"
	IconDot     = "·"
)
