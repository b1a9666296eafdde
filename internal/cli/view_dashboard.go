package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
	"github.com/vitaminR/autobudget/internal/snowball"
	"github.com/vitaminR/autobudget/internal/store"
)

// dashboardLoadedMsg carries the pay-period summary and the debt entries
// from one refresh.
type dashboardLoadedMsg struct {
	pp         int
	summary    *domain.PayPeriodSummary
	summaryErr error
	debts      store.Result[domain.DebtEntry]
}

// dashboardView is the landing page: budget cards for the selected pay
// period plus the next debts in the snowball.
type dashboardView struct {
	state   *SharedState
	debts   *store.Store[domain.DebtEntry]
	summary *domain.PayPeriodSummary
}

func newDashboardView(state *SharedState) *dashboardView {
	apiClient := state.API
	return &dashboardView{
		state: state,
		debts: store.New(func(ctx context.Context) ([]domain.DebtEntry, error) {
			return apiClient.DebtSnowball(ctx)
		}),
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }
func (v *dashboardView) Close()        { v.debts.Cancel() }

func (v *dashboardView) HasBanner() bool { return v.debts.Err() != nil }
func (v *dashboardView) DismissBanner() { v.debts.ClearErr() }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "pay period")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.load()
}

func (v *dashboardView) load() tea.Cmd {
	gen := v.debts.Begin()
	st := v.debts
	apiClient := v.state.API
	pp := v.state.CurrentPP
	return func() tea.Msg {
		summary, summaryErr := apiClient.PayPeriodSummary(context.Background(), pp)
		return dashboardLoadedMsg{
			pp:         pp,
			summary:    summary,
			summaryErr: summaryErr,
			debts:      st.Fetch(context.Background(), gen),
		}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if !v.debts.Resolve(msg.debts) {
			return v, nil
		}
		if msg.summaryErr != nil {
			v.debts.SetErr(msg.summaryErr)
		} else if msg.pp == v.state.CurrentPP {
			// Ignore summaries for a pay period the user already left.
			v.summary = msg.summary
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if v.state.CurrentPP > 1 {
				v.state.CurrentPP--
				return v, v.load()
			}
		case "right", "l":
			v.state.CurrentPP++
			return v, v.load()
		case "r":
			return v, v.load()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.debts.Loading() && v.summary == nil {
		return formatter.Loading("dashboard")
	}

	out := "\n"
	if err := v.debts.Err(); err != nil {
		out += formatter.ErrorBanner(err.Error()) + "\n\n"
	}

	out += "  " + formatter.Header(fmt.Sprintf("Pay Period %d", v.state.CurrentPP)) + "\n"
	if v.summary != nil {
		out += v.renderSummaryCards(v.summary) + "\n\n"
	}

	out += "  " + formatter.Header("Debt Snowball") + "\n"
	out += v.renderSnowballPreview()
	return out
}

var summaryCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorDim).
	Padding(0, 2).
	Width(18)

func (v *dashboardView) renderSummaryCards(s *domain.PayPeriodSummary) string {
	surplusStyle := formatter.StyleGreen
	if s.SurplusOrDeficit.IsNegative() {
		surplusStyle = formatter.StyleRed
	}

	cards := []string{
		summaryCard("Income", formatter.StyleGreen.Render(formatter.Money(s.Income))),
		summaryCard("Fixed", formatter.StyleBlue.Render(formatter.Money(s.Fixed))),
		summaryCard("Variable", formatter.StyleYellow.Render(formatter.Money(s.Variable))),
		summaryCard("Surplus", surplusStyle.Render(formatter.SignedMoney(s.SurplusOrDeficit))),
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	if len(s.Pots) == 0 {
		return row
	}
	names := make([]string, 0, len(s.Pots))
	for name := range s.Pots {
		names = append(names, name)
	}
	sort.Strings(names)
	pots := "\n  "
	for _, name := range names {
		pots += formatter.Dim(name+":") + " " + formatter.Money(s.Pots[name]) + "   "
	}
	return row + pots
}

func summaryCard(label, value string) string {
	return summaryCardStyle.Render(formatter.Dim(label) + "\n" + value)
}

// renderSnowballPreview shows the first few payoff targets; the debts
// view has the full plan.
func (v *dashboardView) renderSnowballPreview() string {
	plan := snowball.Aggregate(v.debts.Data())
	if len(plan) == 0 {
		return "  " + formatter.Dim("No debts tracked.")
	}
	const preview = 3
	rows := make([][]string, 0, preview)
	for i, row := range plan {
		if i == preview {
			break
		}
		rows = append(rows, []string{
			"  " + formatter.StyleRed.Render(row.Name),
			formatter.Money(row.Balance),
			formatter.Dim(fmt.Sprintf("~%d days", row.PayoffETADays)),
		})
	}
	out := formatter.Table(nil, rows)
	if len(plan) > preview {
		out += "  " + formatter.Dim(fmt.Sprintf("and %d more; press 4 for the full plan", len(plan)-preview))
	}
	return out
}
