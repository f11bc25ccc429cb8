// Package export writes the yearly projection breakdown to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/kashifrazzaqui/lifeline/internal/model"
)

// Header is the fixed column set, one row per simulated year.
var Header = []string{
	"Year",
	"Starting Principal",
	"Annual Return %",
	"Annual Returns Amount",
	"Charity Amount",
	"Annual Expense",
	"Ending Year Principal",
}

// WriteCSV writes the year records to path, overwriting any existing file.
func WriteCSV(path string, years []model.YearRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, y := range years {
		row := []string{
			strconv.Itoa(y.Year),
			formatAmount(y.StartingPrincipal),
			formatAmount(y.AnnualReturnPercent),
			formatAmount(y.TotalInterest),
			formatAmount(y.CharityDeducted),
			formatAmount(y.TotalExpense),
			formatAmount(y.EndingPrincipal),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing year %d: %w", y.Year, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
