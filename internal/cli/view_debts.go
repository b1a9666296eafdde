package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
	"github.com/vitaminR/autobudget/internal/snowball"
	"github.com/vitaminR/autobudget/internal/store"
)

type debtsLoadedMsg struct {
	res store.Result[domain.DebtEntry]
}

// debtEditReadyMsg carries the bills matching a plan row's name, loaded
// when the user asks to edit that row. Rows aggregate several bills, so
// a shared name needs a picker before the form.
type debtEditReadyMsg struct {
	name  string
	bills []domain.Bill
	err   error
}

// debtsView shows the snowball payoff plan. The plan is derived from the
// raw entries on every render; the store holds only server truth.
type debtsView struct {
	state  *SharedState
	debts  *store.Store[domain.DebtEntry]
	cursor int
}

func newDebtsView(state *SharedState) *debtsView {
	apiClient := state.API
	return &debtsView{
		state: state,
		debts: store.New(func(ctx context.Context) ([]domain.DebtEntry, error) {
			return apiClient.DebtSnowball(ctx)
		}),
	}
}

func (v *debtsView) ID() ViewID    { return ViewDebts }
func (v *debtsView) Title() string { return "Debts" }
func (v *debtsView) Close()        { v.debts.Cancel() }

func (v *debtsView) HasBanner() bool { return v.debts.Err() != nil }
func (v *debtsView) DismissBanner() { v.debts.ClearErr() }

func (v *debtsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit balance")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *debtsView) Init() tea.Cmd {
	return v.load()
}

func (v *debtsView) load() tea.Cmd {
	gen := v.debts.Begin()
	st := v.debts
	return func() tea.Msg {
		return debtsLoadedMsg{res: st.Fetch(context.Background(), gen)}
	}
}

func (v *debtsView) plan() []domain.DebtPlanRow {
	return snowball.Aggregate(v.debts.Data())
}

func (v *debtsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debtsLoadedMsg:
		v.debts.Resolve(msg.res)
		if n := len(v.plan()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case debtEditReadyMsg:
		return v.startEdit(msg)

	case billSaveDoneMsg:
		if msg.err != nil {
			v.debts.SetErr(msg.err)
			return v, nil
		}
		return v, v.load()

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		plan := v.plan()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(plan)-1 {
				v.cursor++
			}
		case "e":
			if v.cursor < len(plan) {
				return v, v.loadBillsFor(plan[v.cursor].Name)
			}
		case "r":
			return v, v.load()
		}
	}
	return v, nil
}

// loadBillsFor fetches the bills behind one plan row by exact name.
func (v *debtsView) loadBillsFor(name string) tea.Cmd {
	apiClient := v.state.API
	return func() tea.Msg {
		bills, err := apiClient.ListBills(context.Background())
		if err != nil {
			return debtEditReadyMsg{name: name, err: err}
		}
		var matched []domain.Bill
		for _, b := range bills {
			if b.Name == name {
				matched = append(matched, b)
			}
		}
		return debtEditReadyMsg{name: name, bills: matched}
	}
}

// startEdit routes the edit request: straight to the form when the name
// maps to one bill, through an ID picker when several bills share it.
func (v *debtsView) startEdit(msg debtEditReadyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		v.debts.SetErr(msg.err)
		return v, nil
	}
	switch len(msg.bills) {
	case 0:
		v.debts.SetErr(fmt.Errorf("no bill named %q", msg.name))
		return v, nil
	case 1:
		return v, pushView(newBillFormView(v.state, msg.bills[0]))
	}
	return v, pushView(newDebtPickerView(v.state, msg.name, msg.bills))
}

func (v *debtsView) View() string {
	if v.debts.Loading() {
		return formatter.Loading("debts")
	}

	out := "\n"
	if err := v.debts.Err(); err != nil {
		out += formatter.ErrorBanner(err.Error()) + "\n\n"
	}

	plan := v.plan()
	if len(plan) == 0 {
		return out + "  " + formatter.Dim("No debts. Nicely done.")
	}

	header := []string{"", "Debt", "Balance", "Accounts", "Payoff ETA"}
	rows := make([][]string, 0, len(plan))
	for i, row := range plan {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		accounts := ""
		if row.Count > 1 {
			accounts = formatter.Dim(fmt.Sprintf("×%d", row.Count))
		}
		rows = append(rows, []string{
			cursor,
			formatter.StyleRed.Render(row.Name),
			formatter.Money(row.Balance),
			accounts,
			formatter.Dim(fmt.Sprintf("~%d days", row.PayoffETADays)),
		})
	}
	out += formatter.Table(header, rows)
	out += "\n  " + formatter.Dim(fmt.Sprintf("Assuming %s/month toward the smallest balance first.",
		formatter.Money(snowball.DefaultMonthlyPayment)))
	return out
}

// newDebtPickerView disambiguates which bill to edit when one debt name
// covers several accounts.
func newDebtPickerView(state *SharedState, name string, bills []domain.Bill) View {
	options := make([]huh.Option[int], 0, len(bills))
	for _, b := range bills {
		label := fmt.Sprintf("#%d  %s  due %s", b.ID, formatter.Money(b.Amount), strconv.Itoa(b.DueDay))
		options = append(options, huh.NewOption(label, b.ID))
	}

	var picked int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which " + name + " account?").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(budgetHuhTheme()).WithShowHelp(false)

	submit := func() tea.Cmd {
		for _, b := range bills {
			if b.ID == picked {
				return pushView(newBillFormView(state, b))
			}
		}
		return nil
	}

	return newFormView(state, name, form, submit)
}
