package cmd

import (
	"fmt"

	"github.com/kashifrazzaqui/lifeline/internal/cli"
	"github.com/kashifrazzaqui/lifeline/internal/config"
	"github.com/kashifrazzaqui/lifeline/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagHistoryLimit int
	flagHistoryLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously saved projection runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryLast, "last", false, "Replay the most recent run's yearly breakdown")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	h, err := store.Open(config.HistoryPath(cfg))
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer h.Close()

	r := newRenderer()

	if flagHistoryLast {
		return showLastRun(h, r)
	}

	runs, err := h.ListRuns(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("\n  No saved runs yet. Run a projection first.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		outcome := cli.FormatRunway(run.Months)
		if run.IndefiniteGrowth {
			outcome = "indefinite"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", run.ID),
			run.RanAt.Local().Format("2006-01-02 15:04"),
			cli.FormatMoney(run.Input.Principal),
			cli.FormatRate(run.Input.AnnualReturn),
			cli.FormatMoney(run.Input.MonthlyExpense),
			outcome,
			cli.FormatMoney(run.FinalPrincipal),
		})
	}

	fmt.Println()
	fmt.Print(r.Table(cli.Table{
		Title:   "Recent Runs",
		Headers: []string{"ID", "When", "Principal", "Return", "Expense", "Runway", "Final"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func showLastRun(h *store.History, r *cli.Renderer) error {
	run, years, err := h.LastRun()
	if err != nil {
		return fmt.Errorf("loading last run: %w", err)
	}
	if run == nil {
		fmt.Println("\n  No saved runs yet. Run a projection first.")
		return nil
	}

	fmt.Println()
	fmt.Printf("  Run #%d from %s: %s at %s, spending %s/month\n\n",
		run.ID,
		run.RanAt.Local().Format("2006-01-02 15:04"),
		cli.FormatMoney(run.Input.Principal),
		cli.FormatRate(run.Input.AnnualReturn),
		cli.FormatMoney(run.Input.MonthlyExpense))

	fmt.Print(r.Table(cli.Table{
		Title:   "Yearly Projection",
		Headers: cli.ScheduleHeaders,
		Rows:    cli.ScheduleRows(years),
	}))
	fmt.Println()

	return nil
}
