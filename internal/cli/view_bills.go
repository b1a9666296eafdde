package cli

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
	"github.com/vitaminR/autobudget/internal/store"
)

// billsLoadedMsg carries a bills fetch completion.
type billsLoadedMsg struct {
	res store.Result[domain.Bill]
}

// billMutationDoneMsg carries the outcome of an optimistic bill mutation.
type billMutationDoneMsg struct {
	cmd store.Command[domain.Bill]
	err error
}

// billsView lists all bills with optimistic toggle, edit, and delete.
type billsView struct {
	state  *SharedState
	bills  *store.Store[domain.Bill]
	cursor int
}

func newBillsView(state *SharedState) *billsView {
	apiClient := state.API
	return &billsView{
		state: state,
		bills: store.New(func(ctx context.Context) ([]domain.Bill, error) {
			return apiClient.ListBills(ctx)
		}),
	}
}

func (v *billsView) ID() ViewID    { return ViewBills }
func (v *billsView) Title() string { return "Bills" }
func (v *billsView) Close()        { v.bills.Cancel() }

func (v *billsView) HasBanner() bool { return v.bills.Err() != nil }
func (v *billsView) DismissBanner() { v.bills.ClearErr() }

func (v *billsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle paid")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *billsView) Init() tea.Cmd {
	return v.load()
}

func (v *billsView) load() tea.Cmd {
	gen := v.bills.Begin()
	st := v.bills
	return func() tea.Msg {
		return billsLoadedMsg{res: st.Fetch(context.Background(), gen)}
	}
}

func (v *billsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case billsLoadedMsg:
		v.bills.Resolve(msg.res)
		v.clampCursor()
		return v, nil

	case billMutationDoneMsg:
		if msg.err != nil {
			// Restore the pre-mutation snapshot exactly and surface the
			// failure; on success the optimistic value is already correct.
			store.RollbackInto(v.bills, msg.cmd, msg.err)
			v.clampCursor()
		}
		return v, nil

	case billSaveDoneMsg:
		if msg.err != nil {
			v.bills.SetErr(msg.err)
			return v, nil
		}
		return v, v.load()

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		bills := v.bills.Data()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(bills)-1 {
				v.cursor++
			}
		case " ", "space":
			if v.cursor < len(bills) {
				return v, v.togglePaid(bills[v.cursor].ID)
			}
		case "e":
			if v.cursor < len(bills) {
				return v, pushView(newBillFormView(v.state, bills[v.cursor]))
			}
		case "x":
			if v.cursor < len(bills) {
				return v, v.deleteBill(bills[v.cursor].ID)
			}
		case "r":
			return v, v.load()
		}
	}
	return v, nil
}

// togglePaid applies the flip locally before the request is dispatched,
// so the row updates with zero latency.
func (v *billsView) togglePaid(id int) tea.Cmd {
	cmd := store.Apply(v.bills, func(bills []domain.Bill) []domain.Bill {
		for i := range bills {
			if bills[i].ID == id {
				bills[i].Paid = !bills[i].Paid
			}
		}
		return bills
	})

	apiClient := v.state.API
	return func() tea.Msg {
		err := apiClient.ToggleBillPaid(context.Background(), id)
		return billMutationDoneMsg{cmd: cmd, err: err}
	}
}

// deleteBill removes the row optimistically and restores it if the
// server rejects the delete.
func (v *billsView) deleteBill(id int) tea.Cmd {
	cmd := store.Apply(v.bills, func(bills []domain.Bill) []domain.Bill {
		out := bills[:0]
		for _, b := range bills {
			if b.ID != id {
				out = append(out, b)
			}
		}
		return out
	})
	v.clampCursor()

	apiClient := v.state.API
	return func() tea.Msg {
		err := apiClient.DeleteBill(context.Background(), id)
		return billMutationDoneMsg{cmd: cmd, err: err}
	}
}

func (v *billsView) clampCursor() {
	if n := len(v.bills.Data()); v.cursor >= n && n > 0 {
		v.cursor = n - 1
	} else if n == 0 {
		v.cursor = 0
	}
}

func (v *billsView) View() string {
	if v.bills.Loading() {
		return formatter.Loading("bills")
	}

	out := "\n"
	if err := v.bills.Err(); err != nil {
		out += formatter.ErrorBanner(err.Error()) + "\n\n"
	}

	bills := v.bills.Data()
	if len(bills) == 0 {
		return out + "  " + formatter.Dim("No bills found.")
	}

	header := []string{"", "Name", "Amount", "Due", "Class", "Status"}
	rows := make([][]string, 0, len(bills))
	for i, b := range bills {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		name := b.Name
		amount := formatter.Money(b.Amount)
		status := formatter.Dim("unpaid")
		if b.Paid {
			name = formatter.StyleStrike.Render(name)
			amount = formatter.StyleStrike.Render(amount)
			status = formatter.StyleGreen.Render("paid")
		}

		rows = append(rows, []string{
			cursor,
			name,
			amount,
			formatter.Dim(dayOrdinal(b.DueDay)),
			formatter.BillClassStyle(b.BillClass).Render(string(b.BillClass)),
			status,
		})
	}
	return out + formatter.Table(header, rows)
}

// dayOrdinal renders a due day as "1st", "2nd", ...
func dayOrdinal(day int) string {
	suffix := "th"
	switch {
	case day%10 == 1 && day != 11:
		suffix = "st"
	case day%10 == 2 && day != 12:
		suffix = "nd"
	case day%10 == 3 && day != 13:
		suffix = "rd"
	}
	return strconv.Itoa(day) + suffix
}
