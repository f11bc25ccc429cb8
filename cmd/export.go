package cmd

import (
	"fmt"

	"github.com/kashifrazzaqui/lifeline/internal/export"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the yearly breakdown to a CSV file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "yearly_output.csv", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	_, res, err := runSimulation()
	if err != nil {
		return err
	}

	if err := export.WriteCSV(flagExportOut, res.Years); err != nil {
		return err
	}

	fmt.Printf("  Yearly output saved to %s (%d years).\n", flagExportOut, len(res.Years))
	return nil
}
