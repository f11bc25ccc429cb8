package cmd

import (
	"fmt"

	"github.com/kashifrazzaqui/lifeline/internal/config"
	"github.com/kashifrazzaqui/lifeline/internal/tui"
	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	in, err := currentInput()
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	app := tui.NewApp(in, !config.Exists())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
