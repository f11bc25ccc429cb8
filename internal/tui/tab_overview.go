package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kashifrazzaqui/lifeline/internal/cli"
	"github.com/kashifrazzaqui/lifeline/internal/sim"
	"github.com/kashifrazzaqui/lifeline/internal/tui/components"
	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"
)

const labelWidth = 18

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	cardW := cw - 2

	// Inputs card
	inputs := strings.Join([]string{
		components.KeyValue("Principal", cli.FormatMoney(a.in.Principal), labelWidth),
		components.KeyValue("Annual return", cli.FormatRate(a.in.AnnualReturn), labelWidth),
		components.KeyValue("Monthly expense", cli.FormatMoney(a.in.MonthlyExpense), labelWidth),
		components.KeyValue("Charity rate", cli.FormatRate(sim.CharityRate), labelWidth),
	}, "\n")
	b.WriteString(components.Card("Inputs", inputs, cardW))
	b.WriteString("\n")

	// Outcome card
	b.WriteString(components.Card("Outcome", a.outcomeBody(), cardW))
	b.WriteString("\n")

	// Principal trajectory sparkline
	if len(a.res.Years) > 0 {
		vals := make([]float64, len(a.res.Years))
		for i, y := range a.res.Years {
			vals[i] = y.EndingPrincipal
		}

		sparkColor := t.Green
		if !a.res.IndefiniteGrowth {
			sparkColor = t.Orange
		}

		dim := lipgloss.NewStyle().Foreground(t.TextDim)
		body := components.Sparkline(vals, sparkColor) + "\n" +
			dim.Render(fmt.Sprintf("year 1 .. year %d, ending principal", len(a.res.Years)))
		b.WriteString(components.Card("Trajectory", body, cardW))
	}

	return b.String()
}

func (a App) outcomeBody() string {
	t := theme.Active

	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
	badStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	var verdict string
	switch {
	case a.res.IndefiniteGrowth:
		verdict = goodStyle.Render("Your principal grows indefinitely at this rate.")
	case a.res.LongRunway():
		verdict = warnStyle.Render(fmt.Sprintf(
			"Your savings decline but outlast %d years.", sim.HorizonYears))
	default:
		verdict = badStyle.Render(fmt.Sprintf(
			"Your savings run out in %s.", cli.FormatRunway(a.res.Months)))
	}

	lines := []string{
		verdict,
		"",
		components.KeyValue("Runway", cli.FormatRunway(a.res.Months), labelWidth),
		components.KeyValue("Final principal", cli.FormatMoney(a.res.FinalPrincipal), labelWidth),
		components.KeyValue("Years simulated", fmt.Sprintf("%d", len(a.res.Years)), labelWidth),
	}
	return strings.Join(lines, "\n")
}
