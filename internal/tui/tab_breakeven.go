package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kashifrazzaqui/lifeline/internal/cli"
	"github.com/kashifrazzaqui/lifeline/internal/sim"
	"github.com/kashifrazzaqui/lifeline/internal/tui/components"
	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"
)

func (a App) renderBreakevenTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	cardW := cw - 2
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	figures := strings.Join([]string{
		components.KeyValue("Sustainable expense", cli.FormatMoneyCents(a.be.SustainableMonthlyExpense)+"/mo", 22),
		components.KeyValue("Required return", cli.FormatRate(a.be.RequiredAnnualReturn), 22),
	}, "\n")
	b.WriteString(components.Card("Break-even", figures, cardW))
	b.WriteString("\n")

	// Spending vs what the principal can sustain after charity.
	if a.be.SustainableMonthlyExpense > 0 {
		bars := components.BarRows(
			[]string{"spending", "sustainable"},
			[]float64{a.in.MonthlyExpense, a.be.SustainableMonthlyExpense},
			[]string{
				cli.FormatMoneyCents(a.in.MonthlyExpense),
				cli.FormatMoneyCents(a.be.SustainableMonthlyExpense),
			},
			barChartWidth(cardW),
		)
		b.WriteString(components.Card("Monthly Expense", bars, cardW))
		b.WriteString("\n")
	} else {
		b.WriteString(components.Card("Monthly Expense",
			dim.Render("Return does not cover the charity rate; no expense level is sustainable."),
			cardW))
		b.WriteString("\n")
	}

	// Current return vs the rate that exactly covers spending and charity.
	if a.be.RequiredAnnualReturn > 0 {
		bars := components.BarRows(
			[]string{"current", "required"},
			[]float64{a.in.AnnualReturn, a.be.RequiredAnnualReturn},
			[]string{
				cli.FormatRate(a.in.AnnualReturn),
				cli.FormatRate(a.be.RequiredAnnualReturn),
			},
			barChartWidth(cardW),
		)
		b.WriteString(components.Card("Annual Return", bars, cardW))
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(
		" Sustainable expense assumes returns net of the " +
			cli.FormatRate(sim.CharityRate) + " charity deduction."))

	return b.String()
}

func barChartWidth(cardW int) int {
	w := cardW - 30
	if w < 10 {
		w = 10
	}
	if w > 50 {
		w = 50
	}
	return w
}
