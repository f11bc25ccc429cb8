// Package components holds small reusable rendering pieces for the TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"
)

// Card renders content in a bordered panel with a title line.
func Card(title, content string, width int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(titleStyle.Render(title) + "\n" + content)
}

// KeyValue renders a label/value line for use inside cards.
func KeyValue(label, value string, labelWidth int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(labelWidth)
	valueStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary)

	return labelStyle.Render(label) + valueStyle.Render(value)
}
