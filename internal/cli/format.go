// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a dollar amount rounded to whole dollars with comma
// grouping. e.g., 1234567.89 -> "$1,234,568"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	return "$" + FormatNumber(int64(math.Round(v)))
}

// FormatMoneyCents formats a dollar amount with cents.
// e.g., 1234.5 -> "$1,234.50"
func FormatMoneyCents(v float64) string {
	if v < 0 {
		return "-" + FormatMoneyCents(-v)
	}
	cents := int64(math.Round(v * 100))
	return fmt.Sprintf("$%s.%02d", FormatNumber(cents/100), cents%100)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatRate formats a decimal fraction as a percentage with one decimal.
// e.g., 0.055 -> "5.5%"
func FormatRate(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRunway formats a month count as "Ny Nm".
// e.g., 27 -> "2y 3m", 12 -> "1y", 5 -> "5m"
func FormatRunway(months int) string {
	years := months / 12
	rem := months % 12

	switch {
	case years > 0 && rem > 0:
		return fmt.Sprintf("%dy %dm", years, rem)
	case years > 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dm", rem)
	}
}
