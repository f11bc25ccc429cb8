package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"
)

// Sparkline renders a unicode block sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

// BarRows renders one labeled horizontal bar per value, scaled to the
// largest value. Labels and values must have equal length.
func BarRows(labels []string, values []float64, valueTexts []string, barWidth int) string {
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	var b strings.Builder
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		filled := int(v / peak * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("%*s ", labelWidth, labels[i])))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(dimStyle.Render(strings.Repeat("░", barWidth-filled)))
		b.WriteString(valueStyle.Render(" " + valueTexts[i]))
		if i < len(values)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
