package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kashifrazzaqui/lifeline/internal/model"
)

// Renderer draws tables, bars, and outcome summaries. Color use is fixed at
// construction; non-interactive callers pass noColor=true instead of any
// process-global toggle.
type Renderer struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	dim    lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
}

// Theme colors (Flexoki Dark)
var (
	colorBorder = lipgloss.Color("#575653")
	colorMuted  = lipgloss.Color("#878580")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
)

// NewRenderer builds a Renderer. With noColor set, every style is a
// passthrough and the output is plain text.
func NewRenderer(noColor bool) *Renderer {
	if noColor {
		plain := lipgloss.NewStyle()
		return &Renderer{
			title: plain, header: plain, value: plain, muted: plain,
			dim: plain, good: plain, warn: plain, bad: plain,
		}
	}
	return &Renderer{
		title:  lipgloss.NewStyle().Bold(true).Foreground(colorText),
		header: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		value:  lipgloss.NewStyle().Foreground(colorText),
		muted:  lipgloss.NewStyle().Foreground(colorMuted),
		dim:    lipgloss.NewStyle().Foreground(colorBorder),
		good:   lipgloss.NewStyle().Foreground(colorGreen),
		warn:   lipgloss.NewStyle().Foreground(colorOrange),
		bad:    lipgloss.NewStyle().Foreground(colorRed),
	}
}

// Muted renders low-emphasis hint text.
func (r *Renderer) Muted(s string) string {
	return r.muted.Render(s)
}

// Table is a bordered text table.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Title renders a centered title bar in a bordered box.
func (r *Renderer) Title(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(r.title.Render(title))
}

// Table renders a bordered table with headers and rows. Rows consisting of
// the single cell "---" become separator lines.
func (r *Renderer) Table(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(r.header.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(r.dim.Render(left))
		for i, w := range widths {
			b.WriteString(r.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(r.dim.Render(mid))
			}
		}
		b.WriteString(r.dim.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(r.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(r.header.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(r.dim.Render("│"))
			}
		}
		b.WriteString(r.dim.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(r.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// First column left-aligned, numeric columns right-aligned
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(r.value.Render(padded))
			if i < numCols-1 {
				b.WriteString(r.dim.Render("│"))
			}
		}
		b.WriteString(r.dim.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// Bar renders a filled/empty horizontal bar for value against max.
func (r *Renderer) Bar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	pct := value / max
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))

	style := r.good
	if pct >= 0.8 {
		style = r.bad
	} else if pct >= 0.5 {
		style = r.warn
	}

	return style.Render(strings.Repeat("█", filled)) +
		r.dim.Render(strings.Repeat("░", width-filled))
}

// HBar renders a plain horizontal bar scaled to max, without the gauge
// coloring of Bar.
func (r *Renderer) HBar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	pct := value / max
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	return r.good.Render(strings.Repeat("█", filled)) +
		r.dim.Render(strings.Repeat("░", width-filled))
}

// Sparkline generates a unicode block sparkline from a series of values.
func (r *Renderer) Sparkline(values []float64) string {
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

	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		b.WriteRune(blocks[idx])
	}

	return r.good.Render(b.String())
}

// Outcome renders the verdict line for a projection. The three cases are
// indefinite growth, a 30+ year declining runway, and depletion at a
// concrete year/month mark.
func (r *Renderer) Outcome(in model.Input, res model.Result) string {
	switch {
	case res.IndefiniteGrowth:
		return r.good.Render(fmt.Sprintf(
			"Your principal grows indefinitely. Balance at year 30: %s",
			FormatMoney(res.FinalPrincipal)))
	case res.LongRunway():
		return r.warn.Render(fmt.Sprintf(
			"Your savings last 30+ years but are declining. Balance at year 30: %s",
			FormatMoney(res.FinalPrincipal)))
	default:
		return r.bad.Render(fmt.Sprintf(
			"Your savings last %d years and %d months (final balance %s).",
			res.RunwayYears(), res.RunwayMonths(), FormatMoneyCents(res.FinalPrincipal)))
	}
}

// ScheduleRows converts year records to table rows for the yearly table.
func ScheduleRows(years []model.YearRecord) [][]string {
	rows := make([][]string, 0, len(years))
	for _, y := range years {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			FormatMoneyCents(y.StartingPrincipal),
			fmt.Sprintf("%.2f%%", y.AnnualReturnPercent),
			FormatMoneyCents(y.TotalInterest),
			FormatMoneyCents(y.CharityDeducted),
			FormatMoneyCents(y.TotalExpense),
			FormatMoneyCents(y.EndingPrincipal),
		})
	}
	return rows
}

// ScheduleHeaders are the column titles for the yearly table, matching the
// CSV export columns.
var ScheduleHeaders = []string{
	"Year", "Starting Principal", "Annual Return %", "Annual Returns Amount",
	"Charity Amount", "Annual Expense", "Ending Year Principal",
}
