package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kashifrazzaqui/lifeline/internal/tui/components"
	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"
)

func (a App) renderScheduleTab(cw int) string {
	if len(a.res.Years) == 0 {
		dim := lipgloss.NewStyle().Foreground(theme.Active.TextDim)
		return components.Card("Yearly Schedule",
			dim.Render("Principal depleted within the first year."), cw-2)
	}

	return components.Card("Yearly Schedule", a.sched.View(), cw-2)
}
