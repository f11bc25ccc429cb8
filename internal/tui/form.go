package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/kashifrazzaqui/lifeline/internal/model"
	"github.com/kashifrazzaqui/lifeline/internal/tui/theme"
)

// formValues holds the raw text entered into the input form.
type formValues struct {
	principal      string
	annualReturn   string
	monthlyExpense string
	theme          string
}

func validNumber(allowNegative bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("enter a number")
		}
		if !allowNegative && v < 0 {
			return errors.New("must not be negative")
		}
		return nil
	}
}

// newInputForm builds the form for editing simulation inputs. The theme
// select is only shown on first run.
func newInputForm(in model.Input, vals *formValues, withTheme bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Principal").
			Placeholder(strconv.FormatFloat(in.Principal, 'f', -1, 64)).
			Validate(validNumber(false)).
			Value(&vals.principal),
		huh.NewInput().
			Title("Annual return (fraction, e.g. 0.05)").
			Placeholder(strconv.FormatFloat(in.AnnualReturn, 'f', -1, 64)).
			Validate(validNumber(true)).
			Value(&vals.annualReturn),
		huh.NewInput().
			Title("Monthly expense").
			Placeholder(strconv.FormatFloat(in.MonthlyExpense, 'f', -1, 64)).
			Validate(validNumber(false)).
			Value(&vals.monthlyExpense),
	}

	if withTheme {
		var opts []huh.Option[string]
		for _, t := range theme.All {
			opts = append(opts, huh.NewOption(t.Name, t.Name))
		}
		vals.theme = theme.Active.Name
		fields = append(fields,
			huh.NewSelect[string]().
				Title("Color theme").
				Options(opts...).
				Value(&vals.theme))
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// applyFormValues returns a copy of in with any non-blank form fields applied.
func applyFormValues(in model.Input, vals formValues) model.Input {
	if s := strings.TrimSpace(vals.principal); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			in.Principal = v
		}
	}
	if s := strings.TrimSpace(vals.annualReturn); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			in.AnnualReturn = v
		}
	}
	if s := strings.TrimSpace(vals.monthlyExpense); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			in.MonthlyExpense = v
		}
	}
	return in
}
