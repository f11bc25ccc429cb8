package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kashifrazzaqui/lifeline/internal/cli"
	"github.com/kashifrazzaqui/lifeline/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Save default inputs and appearance to the config file",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to lifeline!")
	fmt.Println("  Press Enter to keep the value in brackets.")
	fmt.Println()

	cfg.Defaults.Principal = askFloat(reader,
		fmt.Sprintf("  Default principal [%s]: ", cli.FormatMoney(cfg.Defaults.Principal)),
		cfg.Defaults.Principal)
	cfg.Defaults.AnnualReturn = askFloat(reader,
		fmt.Sprintf("  Default annual return, as a decimal [%.3f]: ", cfg.Defaults.AnnualReturn),
		cfg.Defaults.AnnualReturn)
	cfg.Defaults.MonthlyExpense = askFloat(reader,
		fmt.Sprintf("  Default monthly expense [%s]: ", cli.FormatMoney(cfg.Defaults.MonthlyExpense)),
		cfg.Defaults.MonthlyExpense)

	fmt.Println()
	fmt.Println("  Color theme")
	fmt.Println("    (1) Flexoki Dark [default]")
	fmt.Println("    (2) Catppuccin Mocha")
	fmt.Println("    (3) Terminal (ANSI 16)")
	fmt.Print("    > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `lifeline setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func askFloat(reader *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Printf("    not a number, keeping %v\n", def)
		return def
	}
	return v
}
