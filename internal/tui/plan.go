package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/planr/internal/planner"
	"github.com/rnwolfe/planr/internal/ui"
)

type planKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func (k planKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Down, k.Toggle, k.Filter, k.Quit}
}

func (k planKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Up, k.Down},
		{k.Toggle, k.Filter, k.Quit},
	}
}

var planKeys = planKeyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab", "next view")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab", "prev view")),
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
	Toggle: key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x", "mark done")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// planTab is one page of the browser: the priority list, a section, or the schedule.
type planTab struct {
	title string
	hint  string
	rows  []planRow
}

type planRow struct {
	id    int
	title string
	task  *planner.PlannedTask
	slot  *planner.ScheduleSlot
}

// PlanModel is an interactive Bubbletea browser over a planner.Result.
type PlanModel struct {
	plan   planner.Result
	tabs   []planTab
	active int
	cursor int

	completed map[int]bool

	filter    textinput.Model
	filtering bool

	keys planKeyMap
	help help.Model

	width  int
	height int

	quitting bool
}

// NewPlanModel builds the browser tabs for a plan.
func NewPlanModel(res planner.Result) *PlanModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter titles"

	m := &PlanModel{
		plan:      res,
		completed: map[int]bool{},
		filter:    ti,
		keys:      planKeys,
		help:      help.New(),
		width:     80,
		height:    24,
	}

	m.tabs = append(m.tabs, taskTab("Priorities", "Highest-scoring open tasks.", res.Prioritized))
	for _, s := range res.Sections {
		m.tabs = append(m.tabs, taskTab(s.Title, s.Hint, s.Tasks))
	}
	sched := planTab{
		title: "Schedule",
		hint:  fmt.Sprintf("%d min across %d blocks.", res.TotalMinutes, len(res.Schedule)),
	}
	for i := range res.Schedule {
		s := &res.Schedule[i]
		sched.rows = append(sched.rows, planRow{id: s.TaskID, title: s.Title, slot: s})
	}
	m.tabs = append(m.tabs, sched)
	return m
}

func taskTab(title, hint string, tasks []planner.PlannedTask) planTab {
	t := planTab{title: title, hint: hint}
	for i := range tasks {
		p := &tasks[i]
		t.rows = append(t.rows, planRow{id: p.ID, title: p.Title, task: p})
	}
	return t
}

// RunPlan launches the plan browser and returns the ids marked done.
func RunPlan(res planner.Result) ([]int, error) {
	m := NewPlanModel(res)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	result, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("plan tui: %w", err)
	}
	return result.(*PlanModel).Completed(), nil
}

// Completed returns the ids the user marked done, ascending.
func (m *PlanModel) Completed() []int {
	var ids []int
	for id, done := range m.completed {
		if done {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

func (m *PlanModel) Init() tea.Cmd {
	return nil
}

func (m *PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

func (m *PlanModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.visibleRows()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if msg.String() == "esc" && m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.active = (m.active + 1) % len(m.tabs)
		m.cursor = 0

	case key.Matches(msg, m.keys.Prev):
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		m.cursor = 0

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(rows) > 0 {
			id := rows[m.cursor].id
			m.completed[id] = !m.completed[id]
		}

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.cursor = 0
		return m, m.filter.Focus()
	}
	return m, nil
}

func (m *PlanModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtering = false
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filter.Blur()
		m.filtering = false
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

// visibleRows returns the active tab's rows that pass the filter.
func (m *PlanModel) visibleRows() []planRow {
	q := m.filter.Value()
	var out []planRow
	for _, r := range m.tabs[m.active].rows {
		if MatchQuery(q, r.title) {
			out = append(out, r)
		}
	}
	return out
}

func (m *PlanModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(ui.Title.Render("  "+ui.IconPlan+"Plan for "+m.plan.Date) + "\n")
	summary := lipgloss.NewStyle().Width(max(m.width-4, 20)).Render(m.plan.Summary)
	b.WriteString(ui.Muted.Render(indent(summary, "  ")) + "\n\n")

	var tabs []string
	for i, t := range m.tabs {
		label := fmt.Sprintf("%s (%d)", t.title, len(t.rows))
		if i == m.active {
			tabs = append(tabs, ui.Accent.Render("["+label+"]"))
		} else {
			tabs = append(tabs, ui.Muted.Render(" "+label+" "))
		}
	}
	b.WriteString("  " + strings.Join(tabs, " ") + "\n")
	b.WriteString("  " + ui.Subtitle.Render(m.tabs[m.active].hint) + "\n\n")

	rows := m.visibleRows()
	if len(rows) == 0 {
		msg := "Nothing here. Add a task with `planr add`."
		if m.filter.Value() != "" {
			msg = "No matches. Press esc to clear the filter."
		}
		b.WriteString("  " + ui.Muted.Render(msg) + "\n")
	}

	visHeight := max(m.height-12, 3)
	offset := 0
	if m.cursor >= visHeight {
		offset = m.cursor - visHeight + 1
	}
	end := min(offset+visHeight, len(rows))
	for i := offset; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i == m.cursor) + "\n")
	}

	b.WriteString("\n")
	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n")
	}
	if n := len(m.Completed()); n > 0 {
		b.WriteString("  " + ui.Success.Render(fmt.Sprintf("%d marked done", n)) + "\n")
	}
	b.WriteString("  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m *PlanModel) renderRow(r planRow, selected bool) string {
	width := m.width - 4
	var line string
	if r.slot != nil {
		line = FormatSlot(*r.slot, width)
	} else {
		line = FormatPlannedTask(*r.task, width)
	}
	if m.completed[r.id] {
		line = lipgloss.NewStyle().Strikethrough(true).Foreground(ui.Dim).Render(line)
	}

	cursor := "  "
	if selected {
		cursor = ui.Accent.Render("› ")
	}
	return "  " + cursor + line
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
