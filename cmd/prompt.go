package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kashifrazzaqui/lifeline/internal/export"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Enter the projection inputs interactively",
	RunE:  runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

// validNumber accepts an empty string (keep the default) or a parseable,
// optionally non-negative number.
func validNumber(allowNegative bool) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("enter a number, e.g. 250000 or 0.05")
		}
		if !allowNegative && v < 0 {
			return errors.New("must be non-negative")
		}
		return nil
	}
}

func runPrompt(_ *cobra.Command, _ []string) error {
	var (
		principalStr = ""
		returnStr    = ""
		expenseStr   = ""
		exportCSV    bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Starting principal").
				Placeholder(fmt.Sprintf("%.0f", flagPrincipal)).
				Validate(validNumber(false)).
				Value(&principalStr),
			huh.NewInput().
				Title("Annual return rate").
				Description("As a decimal, e.g. 0.05 for 5%. Negative means losses.").
				Placeholder(fmt.Sprintf("%.3f", flagAnnualReturn)).
				Validate(validNumber(true)).
				Value(&returnStr),
			huh.NewInput().
				Title("Monthly expense").
				Placeholder(fmt.Sprintf("%.0f", flagMonthlyExpense)).
				Validate(validNumber(false)).
				Value(&expenseStr),
			huh.NewConfirm().
				Title("Export the yearly breakdown to CSV?").
				Value(&exportCSV),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("prompt: %w", err)
	}

	// Blank answers keep the flag/config defaults.
	if principalStr != "" {
		flagPrincipal, _ = strconv.ParseFloat(principalStr, 64)
	}
	if returnStr != "" {
		flagAnnualReturn, _ = strconv.ParseFloat(returnStr, 64)
	}
	if expenseStr != "" {
		flagMonthlyExpense, _ = strconv.ParseFloat(expenseStr, 64)
	}

	in, res, err := runSimulation()
	if err != nil {
		return err
	}
	renderDashboard(in, res)

	if exportCSV {
		if err := export.WriteCSV(flagExportOut, res.Years); err != nil {
			return err
		}
		fmt.Printf("  Yearly output saved to %s.\n\n", flagExportOut)
	}

	return nil
}
