// Package sim implements the savings-runway projection and the break-even
// analysis. Everything here is pure computation over float64 inputs; the
// rendering and persistence layers consume its results.
package sim

import (
	"math"

	"github.com/kashifrazzaqui/lifeline/internal/model"
)

const (
	// CharityRate is the fixed annual giving deduction, applied once per
	// simulated year against that year's starting principal.
	CharityRate = 0.025

	// HorizonYears caps the projection. A balance that survives the full
	// horizon and grew is classified as indefinite.
	HorizonYears = 30

	monthsPerYear = 12
)

// MonthlyRate converts a nominal annual return to the effective monthly
// rate via compound conversion. annual/12 is not equivalent: it overstates
// the monthly rate and compounds the error across the horizon.
// Returns below -100% clamp to a -1 monthly rate (total loss in the first
// month); the compound formula has no real root there and would yield NaN.
func MonthlyRate(annualReturn float64) float64 {
	if annualReturn <= -1 {
		return -1
	}
	return math.Pow(1+annualReturn, 1.0/monthsPerYear) - 1
}

// Simulate projects the principal month by month until it depletes or the
// horizon ends. All inputs in the accepted domain (Principal >= 0,
// MonthlyExpense >= 0, any AnnualReturn) produce a well-defined result;
// there is no error path.
func Simulate(in model.Input) model.Result {
	monthlyRate := MonthlyRate(in.AnnualReturn)
	remaining := in.Principal

	var (
		months int
		years  []model.YearRecord
	)

	year := 1
	for remaining > 0 && year <= HorizonYears {
		starting := remaining
		var totalInterest, totalExpense float64

		for m := 0; m < monthsPerYear; m++ {
			if remaining <= 0 {
				break
			}
			interest := remaining * monthlyRate
			available := remaining + interest

			// The withdrawal never drives the balance negative: the
			// final month pays out only what is actually there.
			expense := math.Min(in.MonthlyExpense, math.Max(0, available))

			remaining = available - expense
			totalInterest += interest
			totalExpense += expense
			months++
		}

		// Charity comes off the year-end balance, clamped so it can
		// never push the balance below zero. Nothing is deducted once
		// the principal is exhausted.
		var charity float64
		if remaining > 0 {
			charity = math.Min(starting*CharityRate, remaining)
			remaining -= charity
		}

		years = append(years, model.YearRecord{
			Year:                year,
			StartingPrincipal:   round2(starting),
			AnnualReturnPercent: round2(in.AnnualReturn * 100),
			TotalInterest:       round2(totalInterest),
			CharityDeducted:     round2(charity),
			TotalExpense:        round2(totalExpense),
			EndingPrincipal:     round2(remaining),
		})

		year++
	}

	// Classification happens only after the loop: indefinite growth means
	// the balance survived the whole horizon and ended above where it
	// started. Merely surviving 30 years while declining is a long but
	// finite runway.
	indefinite := year > HorizonYears && remaining > in.Principal

	return model.Result{
		Months:           months,
		FinalPrincipal:   remaining,
		IndefiniteGrowth: indefinite,
		Years:            years,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
