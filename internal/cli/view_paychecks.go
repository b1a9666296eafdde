package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
	"github.com/vitaminR/autobudget/internal/store"
)

type paychecksLoadedMsg struct {
	res store.Result[domain.Paycheck]
}

// paycheckSaveDoneMsg carries the outcome of a create, update, or delete.
// Paycheck writes are confirmed by a refetch rather than patched in
// place, so success triggers a reload and failure raises the banner.
type paycheckSaveDoneMsg struct {
	err error
}

// paychecksView lists income sources per player with add, edit, delete.
type paychecksView struct {
	state     *SharedState
	paychecks *store.Store[domain.Paycheck]
	cursor    int
}

func newPaychecksView(state *SharedState) *paychecksView {
	apiClient := state.API
	return &paychecksView{
		state: state,
		paychecks: store.New(func(ctx context.Context) ([]domain.Paycheck, error) {
			return apiClient.ListPaychecks(ctx)
		}),
	}
}

func (v *paychecksView) ID() ViewID    { return ViewPaychecks }
func (v *paychecksView) Title() string { return "Paychecks" }
func (v *paychecksView) Close()        { v.paychecks.Cancel() }

func (v *paychecksView) HasBanner() bool { return v.paychecks.Err() != nil }
func (v *paychecksView) DismissBanner() { v.paychecks.ClearErr() }

func (v *paychecksView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *paychecksView) Init() tea.Cmd {
	return v.load()
}

func (v *paychecksView) load() tea.Cmd {
	gen := v.paychecks.Begin()
	st := v.paychecks
	return func() tea.Msg {
		return paychecksLoadedMsg{res: st.Fetch(context.Background(), gen)}
	}
}

func (v *paychecksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paychecksLoadedMsg:
		v.paychecks.Resolve(msg.res)
		if n := len(v.paychecks.Data()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case paycheckSaveDoneMsg:
		if msg.err != nil {
			v.paychecks.SetErr(msg.err)
			return v, nil
		}
		return v, v.load()

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		paychecks := v.paychecks.Data()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(paychecks)-1 {
				v.cursor++
			}
		case "a":
			return v, pushView(newPaycheckFormView(v.state, nil))
		case "e":
			if v.cursor < len(paychecks) {
				p := paychecks[v.cursor]
				return v, pushView(newPaycheckFormView(v.state, &p))
			}
		case "x":
			if v.cursor < len(paychecks) {
				return v, v.deletePaycheck(paychecks[v.cursor].ID)
			}
		case "r":
			return v, v.load()
		}
	}
	return v, nil
}

func (v *paychecksView) deletePaycheck(id int) tea.Cmd {
	apiClient := v.state.API
	return func() tea.Msg {
		err := apiClient.DeletePaycheck(context.Background(), id)
		return paycheckSaveDoneMsg{err: err}
	}
}

func (v *paychecksView) View() string {
	if v.paychecks.Loading() {
		return formatter.Loading("paychecks")
	}

	out := "\n"
	if err := v.paychecks.Err(); err != nil {
		out += formatter.ErrorBanner(err.Error()) + "\n\n"
	}

	paychecks := v.paychecks.Data()
	if len(paychecks) == 0 {
		return out + "  " + formatter.Dim("No paychecks yet. Press a to add one.")
	}

	header := []string{"", "Source", "Amount", "Player"}
	rows := make([][]string, 0, len(paychecks))
	total := decimal.Zero
	for i, p := range paychecks {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		rows = append(rows, []string{
			cursor,
			p.Source,
			formatter.Money(p.Amount),
			formatter.Dim(playerLabel(p.PlayerID)),
		})
		total = total.Add(p.Amount)
	}
	rows = append(rows, []string{"", formatter.Bold("Total"), formatter.Bold(formatter.Money(total)), ""})
	return out + formatter.Table(header, rows)
}

func playerLabel(id domain.PlayerID) string {
	switch id {
	case domain.Player1:
		return "Player 1"
	case domain.Player2:
		return "Player 2"
	}
	return string(id)
}

// newPaycheckFormView builds the add or edit form. A nil paycheck means
// create.
func newPaycheckFormView(state *SharedState, existing *domain.Paycheck) View {
	var source, amount string
	player := string(domain.Player1)
	title := "Add Paycheck"
	if existing != nil {
		source = existing.Source
		amount = existing.Amount.StringFixed(2)
		player = string(existing.PlayerID)
		title = "Edit " + existing.Source
	}

	form := huh.NewForm(
		huh.NewGroup(
			requiredInput("Source", "Acme Corp", &source),
			moneyInput("Amount", &amount),
			playerSelect(&player),
		),
	).WithTheme(budgetHuhTheme()).WithShowHelp(false)

	apiClient := state.API
	submit := func() tea.Cmd {
		p := domain.Paycheck{
			Source:   source,
			Amount:   decimal.RequireFromString(amount),
			PlayerID: domain.PlayerID(player),
		}
		if existing != nil {
			p.ID = existing.ID
		}
		if err := domain.ValidatePaycheck(p); err != nil {
			return func() tea.Msg { return paycheckSaveDoneMsg{err: err} }
		}
		return func() tea.Msg {
			var err error
			if existing != nil {
				err = apiClient.UpdatePaycheck(context.Background(), p)
			} else {
				err = apiClient.CreatePaycheck(context.Background(), p)
			}
			return paycheckSaveDoneMsg{err: err}
		}
	}

	return newFormView(state, title, form, submit)
}
