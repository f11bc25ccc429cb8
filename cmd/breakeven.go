package cmd

import (
	"fmt"

	"github.com/kashifrazzaqui/lifeline/internal/cli"
	"github.com/kashifrazzaqui/lifeline/internal/sim"

	"github.com/spf13/cobra"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Sustainable expense and required return for the given inputs",
	RunE:  runBreakeven,
}

func init() {
	rootCmd.AddCommand(breakevenCmd)
}

func runBreakeven(_ *cobra.Command, _ []string) error {
	in, err := currentInput()
	if err != nil {
		return err
	}

	r := newRenderer()
	be := sim.Analyze(in)

	fmt.Println()
	fmt.Println(r.Title("BREAK-EVEN ANALYSIS"))
	fmt.Println()

	if in.Principal == 0 {
		fmt.Println("  With zero principal there is nothing to sustain.")
		fmt.Println()
		return nil
	}

	rows := [][]string{
		{"Principal", cli.FormatMoney(in.Principal)},
		{"Charity Rate", cli.FormatRate(sim.CharityRate)},
		{"---"},
		{"Sustainable Monthly Expense", cli.FormatMoneyCents(be.SustainableMonthlyExpense)},
		{"Required Annual Return", cli.FormatRate(be.RequiredAnnualReturn)},
	}

	fmt.Print(r.Table(cli.Table{
		Headers: []string{"Figure", "Value"},
		Rows:    rows,
	}))

	// Gauge: how much of the sustainable budget the actual expense uses,
	// and how much of the required return the actual return reaches.
	if be.SustainableMonthlyExpense > 0 {
		fmt.Printf("  Expense vs sustainable  %s  %s of %s\n",
			r.Bar(in.MonthlyExpense, be.SustainableMonthlyExpense, 30),
			cli.FormatMoney(in.MonthlyExpense),
			cli.FormatMoneyCents(be.SustainableMonthlyExpense))
	} else {
		fmt.Printf("  At %s the return does not cover the %s charity deduction;\n",
			cli.FormatRate(in.AnnualReturn), cli.FormatRate(sim.CharityRate))
		fmt.Println("  no expense level is sustainable indefinitely.")
	}

	if be.RequiredAnnualReturn > 0 {
		fmt.Printf("  Return vs required      %s  %s of %s\n",
			r.HBar(in.AnnualReturn, be.RequiredAnnualReturn, 30),
			cli.FormatRate(in.AnnualReturn),
			cli.FormatRate(be.RequiredAnnualReturn))
	}

	fmt.Println()
	return nil
}
