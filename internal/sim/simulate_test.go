package sim

import (
	"math"
	"testing"

	"github.com/kashifrazzaqui/lifeline/internal/model"
)

func run(t *testing.T, principal, annualReturn, monthlyExpense float64) model.Result {
	t.Helper()
	return Simulate(model.Input{
		Principal:      principal,
		AnnualReturn:   annualReturn,
		MonthlyExpense: monthlyExpense,
	})
}

func TestZeroExpenseGrowsIndefinitely(t *testing.T) {
	res := run(t, 100000, 0.05, 0)

	if !res.IndefiniteGrowth {
		t.Fatal("expected indefinite growth with zero expenses")
	}
	if res.FinalPrincipal <= 100000 {
		t.Fatalf("final principal = %.2f, want > 100000", res.FinalPrincipal)
	}
	if res.Months != 360 {
		t.Fatalf("months = %d, want 360", res.Months)
	}
	if len(res.Years) != HorizonYears {
		t.Fatalf("year records = %d, want %d", len(res.Years), HorizonYears)
	}
}

func TestCompoundConversionYearOne(t *testing.T) {
	// 100000 at 5% with no expenses: one year of proper monthly compounding
	// lands at 105000, then 2500 charity comes off.
	res := run(t, 100000, 0.05, 0)

	year1 := res.Years[0]
	if diff := math.Abs(year1.EndingPrincipal - 102500); diff > 50 {
		t.Fatalf("year 1 ending principal = %.2f, want 102500 +/- 50", year1.EndingPrincipal)
	}
	if year1.AnnualReturnPercent != 5.0 {
		t.Fatalf("annual return percent = %.2f, want 5.00", year1.AnnualReturnPercent)
	}
}

func TestMonthlyRateIsCompoundNotLinear(t *testing.T) {
	rate := MonthlyRate(0.05)
	linear := 0.05 / 12

	if rate >= linear {
		t.Fatalf("compound monthly rate %.6f should be below linear %.6f", rate, linear)
	}
	// 12 applications of the compound rate reconstruct the annual rate.
	if got := math.Pow(1+rate, 12) - 1; math.Abs(got-0.05) > 1e-12 {
		t.Fatalf("compounded annual rate = %.12f, want 0.05", got)
	}
}

func TestZeroReturnDepletesLinearly(t *testing.T) {
	res := run(t, 12000, 0.0, 1000)

	if res.Months != 12 {
		t.Fatalf("months = %d, want 12", res.Months)
	}
	if res.RunwayYears() != 1 || res.RunwayMonths() != 0 {
		t.Fatalf("runway = %dy %dm, want 1y 0m", res.RunwayYears(), res.RunwayMonths())
	}
	if res.IndefiniteGrowth {
		t.Fatal("depleted principal classified as indefinite growth")
	}
}

func TestZeroReturnBalanceIdentity(t *testing.T) {
	// With no interest, every year must satisfy
	// ending = starting - expense - charity exactly (within rounding).
	res := run(t, 250000, 0.0, 3000)

	for _, y := range res.Years {
		want := y.StartingPrincipal - y.TotalExpense - y.CharityDeducted
		if diff := math.Abs(y.EndingPrincipal - want); diff > 0.02 {
			t.Fatalf("year %d: ending = %.2f, want %.2f", y.Year, y.EndingPrincipal, want)
		}
		if y.TotalInterest != 0 {
			t.Fatalf("year %d: interest = %.2f with zero return", y.Year, y.TotalInterest)
		}
	}
}

func TestYearlyBalanceInvariant(t *testing.T) {
	res := run(t, 500000, 0.07, 4000)

	for _, y := range res.Years {
		want := y.StartingPrincipal + y.TotalInterest - y.TotalExpense - y.CharityDeducted
		if diff := math.Abs(y.EndingPrincipal - want); diff > 0.05 {
			t.Fatalf("year %d: ending = %.2f, identity gives %.2f", y.Year, y.EndingPrincipal, want)
		}
	}
}

func TestExpenseExceedsPrincipal(t *testing.T) {
	res := run(t, 500, 0.05, 1000)

	if res.Months != 1 {
		t.Fatalf("months = %d, want 1", res.Months)
	}
	if res.IndefiniteGrowth {
		t.Fatal("one-month runway classified as indefinite growth")
	}
}

func TestFinalMonthExpenseClamped(t *testing.T) {
	// 1500 at zero return: month one pays 1000, month two only has 500
	// left. The recorded expense must be what was actually paid.
	res := run(t, 1500, 0.0, 1000)

	if res.Months != 2 {
		t.Fatalf("months = %d, want 2", res.Months)
	}
	if got := res.Years[0].TotalExpense; got != 1500 {
		t.Fatalf("year 1 expense = %.2f, want 1500.00", got)
	}
}

func TestCharityNeverGoesNegative(t *testing.T) {
	// Exactly depleted by expenses: charity must be 0, not -150.
	res := run(t, 6000, 0.0, 1000)

	if res.FinalPrincipal < 0 {
		t.Fatalf("final principal = %.2f, want >= 0", res.FinalPrincipal)
	}
	last := res.Years[len(res.Years)-1]
	if last.CharityDeducted != 0 {
		t.Fatalf("charity on depleted year = %.2f, want 0", last.CharityDeducted)
	}
}

func TestCharityClampedToRemaining(t *testing.T) {
	for _, y := range run(t, 800000, 0.03, 5000).Years {
		if y.CharityDeducted < 0 {
			t.Fatalf("year %d: negative charity %.2f", y.Year, y.CharityDeducted)
		}
		if y.EndingPrincipal < 0 {
			t.Fatalf("year %d: negative ending principal %.2f", y.Year, y.EndingPrincipal)
		}
	}
}

func TestZeroPrincipal(t *testing.T) {
	res := run(t, 0, 0.05, 1000)

	if res.Months != 0 {
		t.Fatalf("months = %d, want 0", res.Months)
	}
	if len(res.Years) != 0 {
		t.Fatalf("year records = %d, want 0", len(res.Years))
	}
	if res.IndefiniteGrowth {
		t.Fatal("zero principal classified as indefinite growth")
	}
}

func TestTinyPrincipalLastsOneMonth(t *testing.T) {
	if got := run(t, 1, 0.05, 1000).Months; got != 1 {
		t.Fatalf("months = %d, want 1", got)
	}
}

func TestSurviving30YearsWhileDecliningIsNotIndefinite(t *testing.T) {
	// Zero return, zero expense: only charity nibbles 2.5% per year, so the
	// balance survives the full horizon but ends below where it started.
	res := run(t, 100000, 0.0, 0)

	if res.Months != 360 {
		t.Fatalf("months = %d, want 360", res.Months)
	}
	if res.IndefiniteGrowth {
		t.Fatal("declining 30-year survivor classified as indefinite growth")
	}
	if !res.LongRunway() {
		t.Fatal("expected long-runway classification")
	}
	if res.FinalPrincipal >= 100000 {
		t.Fatalf("final principal = %.2f, want < 100000", res.FinalPrincipal)
	}
}

func TestHighReturnLowExpenseIndefinite(t *testing.T) {
	res := run(t, 1000000, 0.10, 1000)

	if !res.IndefiniteGrowth {
		t.Fatal("expected indefinite growth")
	}
	if res.FinalPrincipal <= 1000000 {
		t.Fatalf("final principal = %.2f, want > 1000000", res.FinalPrincipal)
	}
	if len(res.Years) != 30 {
		t.Fatalf("year records = %d, want 30", len(res.Years))
	}
}

func TestVeryHighReturn(t *testing.T) {
	if !run(t, 100000, 1.0, 1000).IndefiniteGrowth {
		t.Fatal("100%% annual return should grow indefinitely")
	}
}

func TestNegativeReturnShortensRunway(t *testing.T) {
	pos := run(t, 100000, 0.05, 2000)
	neg := run(t, 100000, -0.05, 2000)

	if pos.Months <= neg.Months {
		t.Fatalf("positive return lasted %d months, negative %d; want strictly longer", pos.Months, neg.Months)
	}
}

func TestTotalLossDepletesFirstMonth(t *testing.T) {
	for _, annual := range []float64{-1.0, -1.5, -20} {
		res := run(t, 100000, annual, 1000)

		if math.IsNaN(res.FinalPrincipal) || math.IsInf(res.FinalPrincipal, 0) {
			t.Fatalf("return %.2f: final principal = %v, want finite", annual, res.FinalPrincipal)
		}
		if res.Months != 1 {
			t.Fatalf("return %.2f: months = %d, want 1", annual, res.Months)
		}
		if res.FinalPrincipal != 0 {
			t.Fatalf("return %.2f: final principal = %.2f, want 0", annual, res.FinalPrincipal)
		}
		if res.IndefiniteGrowth {
			t.Fatalf("return %.2f: classified as indefinite growth", annual)
		}
		for _, y := range res.Years {
			if math.IsNaN(y.EndingPrincipal) || math.IsNaN(y.TotalInterest) {
				t.Fatalf("return %.2f: year %d carries NaN fields: %+v", annual, y.Year, y)
			}
		}
	}
}

func TestMonthlyRateClampsBelowTotalLoss(t *testing.T) {
	if got := MonthlyRate(-1); got != -1 {
		t.Fatalf("MonthlyRate(-1) = %v, want -1", got)
	}
	if got := MonthlyRate(-3); got != -1 {
		t.Fatalf("MonthlyRate(-3) = %v, want -1", got)
	}
	// Just above total loss the compound formula still applies.
	if got := MonthlyRate(-0.99); math.IsNaN(got) || got <= -1 {
		t.Fatalf("MonthlyRate(-0.99) = %v, want a real rate above -1", got)
	}
}

func TestRunwayMonotonicInReturn(t *testing.T) {
	returns := []float64{-0.10, -0.05, 0, 0.02, 0.04, 0.06, 0.08, 0.12}

	prev := -1
	for _, r := range returns {
		months := run(t, 100000, r, 2000).Months
		if months < prev {
			t.Fatalf("runway shrank from %d to %d months when return rose to %.2f", prev, months, r)
		}
		prev = months
	}
}

func TestYearRecordsOrderedAndComplete(t *testing.T) {
	res := run(t, 300000, 0.04, 2500)

	for i, y := range res.Years {
		if y.Year != i+1 {
			t.Fatalf("record %d has year %d, want %d", i, y.Year, i+1)
		}
	}
	if n := len(res.Years); n > HorizonYears {
		t.Fatalf("year records = %d, want <= %d", n, HorizonYears)
	}
	// The final year is recorded even though it ends at (near) zero.
	last := res.Years[len(res.Years)-1]
	if last.EndingPrincipal > last.StartingPrincipal {
		t.Fatalf("depletion year grew: %.2f -> %.2f", last.StartingPrincipal, last.EndingPrincipal)
	}
}
