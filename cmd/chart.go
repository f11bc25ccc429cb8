package cmd

import (
	"fmt"

	"github.com/kashifrazzaqui/lifeline/internal/cli"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Principal trajectory as a bar chart",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	in, res, err := runSimulation()
	if err != nil {
		return err
	}

	r := newRenderer()

	fmt.Println()
	fmt.Println(r.Title("PRINCIPAL BY YEAR"))
	fmt.Println()

	if len(res.Years) == 0 {
		fmt.Println("  Nothing to chart: the principal is already zero.")
		fmt.Println()
		return nil
	}

	peak := in.Principal
	for _, y := range res.Years {
		if y.EndingPrincipal > peak {
			peak = y.EndingPrincipal
		}
	}

	for _, y := range res.Years {
		fmt.Printf("  %4d  %s  %s\n",
			y.Year,
			r.HBar(y.EndingPrincipal, peak, 40),
			cli.FormatMoney(y.EndingPrincipal))
	}

	ending := make([]float64, len(res.Years))
	for i, y := range res.Years {
		ending[i] = y.EndingPrincipal
	}

	fmt.Println()
	fmt.Printf("  Trend %s\n", r.Sparkline(ending))
	fmt.Printf("  %s\n\n", r.Outcome(in, res))

	return nil
}
