package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
)

// budgetHuhTheme returns a huh theme on the shared flat-UI palette.
func budgetHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorOrange).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorOrange).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorOrange)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// moneyInput returns a huh.Input for a non-negative dollar amount.
func moneyInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("120.00").
		Value(value).
		Validate(validateMoney)
}

// dueDayInput returns a huh.Input for a day of month, 1 through 31.
func dueDayInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Due Day (1-31)").
		Placeholder("15").
		Value(value).
		Validate(validateDueDay)
}

// requiredInput returns a huh.Input that rejects blank values.
func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("must not be empty")
			}
			return nil
		})
}

// billClassSelect returns a huh.Select over the known bill classes.
func billClassSelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(domain.KnownBillClasses))
	for _, class := range []domain.BillClass{
		domain.ClassEssential,
		domain.ClassNeeded,
		domain.ClassComfort,
		domain.ClassCritical,
		domain.ClassDebt,
		domain.ClassCredit,
	} {
		options = append(options, huh.NewOption(string(class), string(class)))
	}
	return huh.NewSelect[string]().
		Title("Class").
		Options(options...).
		Value(value)
}

// playerSelect returns a huh.Select over the two players.
func playerSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Player").
		Options(
			huh.NewOption("Player 1", string(domain.Player1)),
			huh.NewOption("Player 2", string(domain.Player2)),
		).
		Value(value)
}

func validateMoney(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number like 120.00")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateDueDay(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 31 {
		return fmt.Errorf("must be a day between 1 and 31")
	}
	return nil
}
