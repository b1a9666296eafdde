package cli

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/vitaminR/autobudget/internal/api"
	"github.com/vitaminR/autobudget/internal/domain"
)

// billSaveDoneMsg carries the outcome of a form-based bill save back to
// the bills view. Unlike the toggle path there is no optimistic change
// to roll back; failure just raises the banner.
type billSaveDoneMsg struct {
	err error
}

// newBillFormView builds an edit form for one bill. The save goes
// through validation first, so a rejected value never reaches the wire.
func newBillFormView(state *SharedState, bill domain.Bill) View {
	name := bill.Name
	amount := bill.Amount.StringFixed(2)
	dueDay := strconv.Itoa(bill.DueDay)
	class := string(bill.BillClass)

	form := huh.NewForm(
		huh.NewGroup(
			requiredInput("Name", "Electric", &name),
			moneyInput("Amount", &amount),
			dueDayInput(&dueDay),
			billClassSelect(&class),
		),
	).WithTheme(budgetHuhTheme()).WithShowHelp(false)

	apiClient := state.API
	submit := func() tea.Cmd {
		updated := domain.Bill{
			ID:        bill.ID,
			Name:      name,
			Amount:    decimal.RequireFromString(amount),
			DueDay:    mustAtoi(dueDay),
			BillClass: domain.BillClass(class),
			Paid:      bill.Paid,
		}
		if err := domain.ValidateBill(updated); err != nil {
			return func() tea.Msg { return billSaveDoneMsg{err: err} }
		}
		return func() tea.Msg {
			err := apiClient.UpdateBill(context.Background(), updated.ID, billPatchFrom(updated))
			return billSaveDoneMsg{err: err}
		}
	}

	return newFormView(state, "Edit "+bill.Name, form, submit)
}

// billPatchFrom builds a full-field patch from an edited bill.
func billPatchFrom(b domain.Bill) api.BillPatch {
	return api.BillPatch{
		Name:      &b.Name,
		Amount:    &b.Amount,
		DueDay:    &b.DueDay,
		BillClass: &b.BillClass,
		Paid:      &b.Paid,
	}
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
