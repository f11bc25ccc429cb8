package cmd

import (
	"fmt"

	"github.com/kashifrazzaqui/lifeline/internal/cli"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Yearly breakdown as a pretty table",
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(_ *cobra.Command, _ []string) error {
	in, res, err := runSimulation()
	if err != nil {
		return err
	}

	r := newRenderer()

	fmt.Println()
	if len(res.Years) == 0 {
		fmt.Println("  Nothing to project: the principal is already zero.")
		fmt.Println()
		return nil
	}

	fmt.Print(r.Table(cli.Table{
		Title:   "Yearly Projection",
		Headers: cli.ScheduleHeaders,
		Rows:    cli.ScheduleRows(res.Years),
	}))

	fmt.Printf("  %s\n\n", r.Outcome(in, res))

	return nil
}
