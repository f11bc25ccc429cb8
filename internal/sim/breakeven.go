package sim

import "github.com/kashifrazzaqui/lifeline/internal/model"

// SustainableMonthlyExpense returns the largest monthly withdrawal the
// principal can support indefinitely at the given return, after the annual
// charity deduction. Returns 0 when the return does not even cover charity.
//
// This is a steady-state equilibrium figure using linear annual aggregates,
// deliberately independent of the simulator's monthly compounding.
func SustainableMonthlyExpense(principal, annualReturn, charityRate float64) float64 {
	net := annualReturn - charityRate
	if net <= 0 {
		return 0
	}
	return principal * net / 12
}

// RequiredAnnualReturn returns the minimum annual return that sustains the
// given monthly expense plus charity indefinitely.
//
// Precondition: principal > 0. A zero principal has no meaningful required
// return; the function fails fast rather than returning Inf.
func RequiredAnnualReturn(principal, monthlyExpense, charityRate float64) float64 {
	if principal == 0 {
		panic("sim: required annual return is undefined for zero principal")
	}
	return monthlyExpense*12/principal + charityRate
}

// Analyze bundles both break-even figures for an input. Inputs with zero
// principal get a zero RequiredAnnualReturn instead of tripping the
// precondition, so callers can render partial analysis.
func Analyze(in model.Input) model.BreakEven {
	be := model.BreakEven{
		SustainableMonthlyExpense: SustainableMonthlyExpense(in.Principal, in.AnnualReturn, CharityRate),
	}
	if in.Principal > 0 {
		be.RequiredAnnualReturn = RequiredAnnualReturn(in.Principal, in.MonthlyExpense, CharityRate)
	}
	return be
}
