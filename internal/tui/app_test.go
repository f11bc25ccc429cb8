package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kashifrazzaqui/lifeline/internal/model"
	"github.com/kashifrazzaqui/lifeline/internal/tui/components"
)

func TestApplyFormValuesBlankKeepsExisting(t *testing.T) {
	in := model.Input{Principal: 1000000, AnnualReturn: 0.05, MonthlyExpense: 7000}

	got := applyFormValues(in, formValues{})
	if got != in {
		t.Fatalf("blank form changed inputs: %+v", got)
	}

	got = applyFormValues(in, formValues{principal: "  ", annualReturn: "\t"})
	if got != in {
		t.Fatalf("whitespace form changed inputs: %+v", got)
	}
}

func TestApplyFormValuesOverrides(t *testing.T) {
	in := model.Input{Principal: 1000000, AnnualReturn: 0.05, MonthlyExpense: 7000}

	got := applyFormValues(in, formValues{
		principal:      "500000",
		annualReturn:   "0.07",
		monthlyExpense: "3000",
	})

	if got.Principal != 500000 || got.AnnualReturn != 0.07 || got.MonthlyExpense != 3000 {
		t.Fatalf("overrides not applied: %+v", got)
	}
}

func TestValidNumber(t *testing.T) {
	v := validNumber(false)
	if err := v(""); err != nil {
		t.Fatalf("blank should be valid: %v", err)
	}
	if err := v("1234.5"); err != nil {
		t.Fatalf("number rejected: %v", err)
	}
	if err := v("abc"); err == nil {
		t.Fatal("non-number accepted")
	}
	if err := v("-5"); err == nil {
		t.Fatal("negative accepted when disallowed")
	}
	if err := validNumber(true)("-0.02"); err != nil {
		t.Fatalf("negative rejected when allowed: %v", err)
	}
}

func TestNewAppRunsSimulation(t *testing.T) {
	a := NewApp(model.Input{Principal: 1000000, AnnualReturn: 0.05}, false)

	if !a.res.IndefiniteGrowth {
		t.Fatal("zero expense at positive return should grow indefinitely")
	}
	if len(a.res.Years) == 0 {
		t.Fatal("expected year records")
	}
	if got := len(a.sched.Rows()); got != len(a.res.Years) {
		t.Fatalf("schedule table has %d rows, want %d", got, len(a.res.Years))
	}
}

func TestTabShortcutsSwitchTabs(t *testing.T) {
	a := NewApp(model.Input{Principal: 1000000, AnnualReturn: 0.05}, false)

	for i, tab := range components.Tabs {
		msg := tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(string(tab.Key))})
		m, _ := a.Update(msg)
		if got := m.(App).activeTab; got != i {
			t.Fatalf("key %q switched to tab %d, want %d", tab.Key, got, i)
		}
	}
}

func TestFitHeight(t *testing.T) {
	padded := fitHeight("a\nb", 4)
	if got := len(strings.Split(padded, "\n")); got != 4 {
		t.Fatalf("padded to %d lines, want 4", got)
	}

	truncated := fitHeight("a\nb\nc\nd", 2)
	if truncated != "a\nb" {
		t.Fatalf("truncated = %q, want %q", truncated, "a\nb")
	}
}
