// Package model holds the pure value types shared across the simulator,
// renderers, and the run history store.
package model

// Input holds the three parameters a projection runs from.
// Principal and MonthlyExpense are non-negative; AnnualReturn is a decimal
// fraction and may be negative.
type Input struct {
	Principal      float64
	AnnualReturn   float64
	MonthlyExpense float64
}

// YearRecord is one completed simulated year. The monetary fields are
// rounded to cents for reporting; the simulator accumulates unrounded.
type YearRecord struct {
	Year                int
	StartingPrincipal   float64
	AnnualReturnPercent float64
	TotalInterest       float64
	CharityDeducted     float64
	TotalExpense        float64
	EndingPrincipal     float64
}

// Result is the complete outcome of one projection.
type Result struct {
	Months           int
	FinalPrincipal   float64
	IndefiniteGrowth bool
	Years            []YearRecord
}

// RunwayYears returns the number of whole years the principal lasted.
func (r Result) RunwayYears() int {
	return r.Months / 12
}

// RunwayMonths returns the months left over after whole years.
func (r Result) RunwayMonths() int {
	return r.Months % 12
}

// LongRunway reports whether the money survived the full horizon while
// still declining: a 30+ year runway that is not indefinite growth.
func (r Result) LongRunway() bool {
	return !r.IndefiniteGrowth && r.Months >= 360
}

// BreakEven holds the two closed-form sustainability numbers for an input.
type BreakEven struct {
	SustainableMonthlyExpense float64
	RequiredAnnualReturn      float64
}
