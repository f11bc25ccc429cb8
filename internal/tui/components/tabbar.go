package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"
)

// Tab is a single entry in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines the dashboard tabs in display order.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o'},
	{Name: "Schedule", Key: 's'},
	{Name: "Break-even", Key: 'b'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		// Highlight the shortcut key, which leads each tab name.
		parts = append(parts,
			dimStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimStyle.Render("]")+
				inactiveStyle.Render(tab.Name[1:]))
	}

	bar := " " + strings.Join(parts, "  ")

	rule := lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", width))
	return bar + "\n" + rule
}

// TabIdxByKey returns the tab index for a key press, or -1.
func TabIdxByKey(key string) int {
	for i, tab := range Tabs {
		if key == string(tab.Key) {
			return i
		}
	}
	return -1
}
