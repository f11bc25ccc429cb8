// Package tui provides the interactive Bubble Tea dashboard for lifeline.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/kashifrazzaqui/lifeline/internal/cli"
	"github.com/kashifrazzaqui/lifeline/internal/config"
	"github.com/kashifrazzaqui/lifeline/internal/model"
	"github.com/kashifrazzaqui/lifeline/internal/sim"
	"github.com/kashifrazzaqui/lifeline/internal/tui/components"
	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140

	// Approximate header + status bar height for content sizing.
	chromeHeight     = 4
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	in  model.Input
	res model.Result
	be  model.BreakEven

	// UI state
	width     int
	height    int
	activeTab int
	sched     table.Model

	// Input form (first-run setup or `e` edit)
	form     *huh.Form
	formVals formValues
	firstRun bool
}

// NewApp creates the dashboard model. When firstRun is set, an input
// form with a theme picker is shown before the dashboard.
func NewApp(in model.Input, firstRun bool) App {
	a := App{in: in, firstRun: firstRun}
	a.recompute()

	if firstRun {
		a.form = newInputForm(a.in, &a.formVals, true)
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.form != nil {
		return a.form.Init()
	}
	return nil
}

// recompute reruns the simulation and rebuilds the schedule table.
func (a *App) recompute() {
	a.res = sim.Simulate(a.in)
	a.be = sim.Analyze(a.in)
	a.sched = newScheduleTable(a.res.Years)
	if a.height > 0 {
		a.sched.SetHeight(a.tableHeight())
	}
}

func newScheduleTable(years []model.YearRecord) table.Model {
	t := theme.Active

	columns := []table.Column{
		{Title: cli.ScheduleHeaders[0], Width: 5},
		{Title: cli.ScheduleHeaders[1], Width: 18},
		{Title: cli.ScheduleHeaders[2], Width: 15},
		{Title: cli.ScheduleHeaders[3], Width: 21},
		{Title: cli.ScheduleHeaders[4], Width: 15},
		{Title: cli.ScheduleHeaders[5], Width: 15},
		{Title: cli.ScheduleHeaders[6], Width: 21},
	}

	var rows []table.Row
	for _, r := range cli.ScheduleRows(years) {
		rows = append(rows, table.Row(r))
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(false)
	tbl.SetStyles(s)

	return tbl
}

func (a App) tableHeight() int {
	h := a.height - chromeHeight - 4 // card border + table header
	if h < 3 {
		h = 3
	}
	return h
}

func (a App) contentWidth() int {
	if a.width > maxContentWidth {
		return maxContentWidth
	}
	return a.width
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.sched.SetHeight(a.tableHeight())
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.form != nil {
			return a.updateForm(msg)
		}

		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "e":
			a.formVals = formValues{}
			a.form = newInputForm(a.in, &a.formVals, false)
			if a.width > 0 {
				a.form = a.form.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.form.Init()
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if idx := components.TabIdxByKey(key); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}

		// Schedule table handles its own navigation keys.
		if a.activeTab == 1 {
			var cmd tea.Cmd
			a.sched, cmd = a.sched.Update(msg)
			return a, cmd
		}

		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.in = applyFormValues(a.in, a.formVals)
		if a.firstRun {
			a.saveFirstRunConfig()
		}
		a.recompute()
		a.form = nil
		a.firstRun = false
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		if a.firstRun {
			return a, tea.Quit
		}
		a.form = nil
		return a, nil
	}

	return a, cmd
}

// saveFirstRunConfig persists the entered inputs and theme as defaults.
// Best-effort, the dashboard still works if the save fails.
func (a *App) saveFirstRunConfig() {
	if a.formVals.theme != "" {
		theme.SetActive(a.formVals.theme)
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg.Defaults.Principal = a.in.Principal
	cfg.Defaults.AnnualReturn = a.in.AnnualReturn
	cfg.Defaults.MonthlyExpense = a.in.MonthlyExpense
	if a.formVals.theme != "" {
		cfg.Appearance.Theme = a.formVals.theme
	}
	_ = config.Save(cfg)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  lifeline needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.form != nil {
		return a.form.View()
	}

	header := components.RenderTabBar(a.activeTab, a.width)

	var right string
	if a.res.IndefiniteGrowth {
		right = "runway: indefinite"
	} else {
		right = "runway: " + cli.FormatRunway(a.res.Months)
	}
	status := components.RenderStatusBar(a.width, right)

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(status)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(a.contentWidth())
	case 1:
		content = a.renderScheduleTab(a.contentWidth())
	case 2:
		content = a.renderBreakevenTab(a.contentWidth())
	}

	content = fitHeight(content, contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status)
}

// fitHeight truncates or pads content to exactly h lines.
func fitHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
