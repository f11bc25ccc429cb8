package sim

import (
	"math"
	"testing"

	"github.com/kashifrazzaqui/lifeline/internal/model"
)

func TestSustainableMonthlyExpense(t *testing.T) {
	// 1M at 5% return leaves 2.5% after charity: ~2083/month.
	got := SustainableMonthlyExpense(1000000, 0.05, 0.025)
	if math.Abs(got-2083.33) > 1 {
		t.Fatalf("sustainable expense = %.2f, want ~2083.33", got)
	}
}

func TestSustainableExpenseZeroWhenReturnTooLow(t *testing.T) {
	cases := []struct {
		name         string
		annualReturn float64
	}{
		{"below charity", 0.02},
		{"equal to charity", 0.025},
		{"zero", 0},
		{"negative", -0.05},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SustainableMonthlyExpense(1000000, tc.annualReturn, 0.025); got != 0 {
				t.Fatalf("sustainable expense = %.2f, want 0", got)
			}
		})
	}
}

func TestRequiredAnnualReturn(t *testing.T) {
	// 10K/month on 1M is 12% annually, plus the 2.5% charity.
	got := RequiredAnnualReturn(1000000, 10000, 0.025)
	if math.Abs(got-0.145) > 0.001 {
		t.Fatalf("required return = %.4f, want ~0.145", got)
	}
}

func TestRequiredAnnualReturnZeroPrincipalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero principal")
		}
	}()
	RequiredAnnualReturn(0, 1000, 0.025)
}

func TestBreakEvenRoundTrip(t *testing.T) {
	// The return required for an expense must sustain exactly that expense.
	principal := 1000000.0
	expense := 2083.33

	required := RequiredAnnualReturn(principal, expense, CharityRate)
	sustainable := SustainableMonthlyExpense(principal, required, CharityRate)

	if math.Abs(sustainable-expense) > 1 {
		t.Fatalf("round trip gave %.2f, want ~%.2f", sustainable, expense)
	}
}

func TestAnalyzeGuardsZeroPrincipal(t *testing.T) {
	be := Analyze(model.Input{Principal: 0, AnnualReturn: 0.05, MonthlyExpense: 1000})

	if be.RequiredAnnualReturn != 0 {
		t.Fatalf("required return = %.4f, want 0 for zero principal", be.RequiredAnnualReturn)
	}
	if be.SustainableMonthlyExpense != 0 {
		t.Fatalf("sustainable expense = %.2f, want 0 for zero principal", be.SustainableMonthlyExpense)
	}
}

func TestAnalyzeMatchesStandaloneFunctions(t *testing.T) {
	in := model.Input{Principal: 750000, AnnualReturn: 0.06, MonthlyExpense: 3000}
	be := Analyze(in)

	if want := SustainableMonthlyExpense(in.Principal, in.AnnualReturn, CharityRate); be.SustainableMonthlyExpense != want {
		t.Fatalf("sustainable = %.2f, want %.2f", be.SustainableMonthlyExpense, want)
	}
	if want := RequiredAnnualReturn(in.Principal, in.MonthlyExpense, CharityRate); be.RequiredAnnualReturn != want {
		t.Fatalf("required = %.4f, want %.4f", be.RequiredAnnualReturn, want)
	}
}
