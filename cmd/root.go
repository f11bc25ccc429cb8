package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/kashifrazzaqui/lifeline/internal/cli"
	"github.com/kashifrazzaqui/lifeline/internal/config"
	"github.com/kashifrazzaqui/lifeline/internal/model"
	"github.com/kashifrazzaqui/lifeline/internal/sim"
	"github.com/kashifrazzaqui/lifeline/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagPrincipal      float64
	flagAnnualReturn   float64
	flagMonthlyExpense float64
	flagNoColor        bool
	flagNoSave         bool
)

var rootCmd = &cobra.Command{
	Use:   "lifeline",
	Short: "Savings Runway Calculator",
	Long: "Project how long a pool of savings lasts under fixed monthly withdrawals,\n" +
		"monthly compounding returns, and an annual charitable-giving deduction.",
	RunE: runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config supplies flag defaults; flags override config.
	cfg, _ := config.Load()

	rootCmd.PersistentFlags().Float64VarP(&flagPrincipal, "principal", "p", cfg.Defaults.Principal, "Starting principal")
	rootCmd.PersistentFlags().Float64VarP(&flagAnnualReturn, "annual-return", "r", cfg.Defaults.AnnualReturn, "Annual return rate as a decimal, e.g. 0.05 for 5%")
	rootCmd.PersistentFlags().Float64VarP(&flagMonthlyExpense, "monthly-expense", "e", cfg.Defaults.MonthlyExpense, "Fixed monthly expense")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", cfg.Appearance.NoColor, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoSave, "no-save", cfg.History.Disabled, "Skip recording this run in history")
}

// currentInput validates the flag values into a simulation input.
func currentInput() (model.Input, error) {
	if flagPrincipal < 0 {
		return model.Input{}, errors.New("principal must be non-negative")
	}
	if flagMonthlyExpense < 0 {
		return model.Input{}, errors.New("monthly expense must be non-negative")
	}
	return model.Input{
		Principal:      flagPrincipal,
		AnnualReturn:   flagAnnualReturn,
		MonthlyExpense: flagMonthlyExpense,
	}, nil
}

// runSimulation is the shared projection path used by all commands. The
// run is recorded in history unless --no-save (or config) disables it;
// a broken history db degrades to a stderr warning, never a failure.
func runSimulation() (model.Input, model.Result, error) {
	in, err := currentInput()
	if err != nil {
		return model.Input{}, model.Result{}, err
	}

	res := sim.Simulate(in)

	if !flagNoSave {
		saveToHistory(in, res)
	}

	return in, res, nil
}

func saveToHistory(in model.Input, res model.Result) {
	cfg, _ := config.Load()
	h, err := store.Open(config.HistoryPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "  history unavailable: %v\n", err)
		return
	}
	defer h.Close()

	if _, err := h.SaveRun(in, res); err != nil {
		fmt.Fprintf(os.Stderr, "  could not record run: %v\n", err)
	}
}

func newRenderer() *cli.Renderer {
	return cli.NewRenderer(flagNoColor)
}

func runProject(_ *cobra.Command, _ []string) error {
	in, res, err := runSimulation()
	if err != nil {
		return err
	}
	renderDashboard(in, res)
	return nil
}

func renderDashboard(in model.Input, res model.Result) {
	r := newRenderer()

	fmt.Println()
	fmt.Println(r.Title("LIFELINE"))
	fmt.Println()
	fmt.Printf("  %s\n\n", r.Outcome(in, res))

	rows := [][]string{
		{"Principal", cli.FormatMoney(in.Principal)},
		{"Annual Return", cli.FormatRate(in.AnnualReturn)},
		{"Monthly Expense", cli.FormatMoney(in.MonthlyExpense)},
		{"Charity Rate", cli.FormatRate(sim.CharityRate)},
		{"---"},
		{"Runway", cli.FormatRunway(res.Months)},
		{"Final Principal", cli.FormatMoneyCents(res.FinalPrincipal)},
		{"Years Simulated", fmt.Sprintf("%d", len(res.Years))},
	}

	fmt.Print(r.Table(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Break-even hints under the summary
	be := sim.Analyze(in)
	if be.SustainableMonthlyExpense > 0 {
		fmt.Printf("  Sustainable expense at this return: %s/month\n",
			cli.FormatMoneyCents(be.SustainableMonthlyExpense))
	}
	if in.Principal > 0 && in.MonthlyExpense > 0 {
		fmt.Printf("  Return required for this expense:   %s\n",
			cli.FormatRate(be.RequiredAnnualReturn))
	}

	fmt.Println()
	fmt.Println(r.Muted("  `lifeline table` for the yearly breakdown, `lifeline chart` for the trajectory."))
	fmt.Println()
}
