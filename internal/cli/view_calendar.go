package cli

import (
	"context"
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitaminR/autobudget/internal/api"
	"github.com/vitaminR/autobudget/internal/calendar"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
	"github.com/vitaminR/autobudget/internal/store"
)

type calendarLoadedMsg struct {
	res store.Result[domain.CalendarEvent]
}

// calendarToggleDoneMsg carries the outcome of flipping a bill's paid
// flag from the timeline. The timeline is never patched in place; on
// success the whole snapshot reloads.
type calendarToggleDoneMsg struct {
	err error
}

// calendarView renders the unified timeline of bills and pay periods.
// Filters narrow what the projection shows; the underlying snapshot is
// untouched, so toggling a filter back restores the hidden events.
type calendarView struct {
	state   *SharedState
	events  *store.Store[domain.CalendarEvent]
	filters calendar.Filters
	cursor  int
}

func newCalendarView(state *SharedState) *calendarView {
	apiClient := state.API
	return &calendarView{
		state: state,
		events: store.New(func(ctx context.Context) ([]domain.CalendarEvent, error) {
			return apiClient.Calendar(ctx)
		}),
		filters: calendar.DefaultFilters(),
	}
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }
func (v *calendarView) Close()        { v.events.Cancel() }

func (v *calendarView) HasBanner() bool { return v.events.Err() != nil }
func (v *calendarView) DismissBanner() { v.events.ClearErr() }

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle paid")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bills")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pay periods")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unpaid only")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *calendarView) Init() tea.Cmd {
	return v.load()
}

func (v *calendarView) load() tea.Cmd {
	gen := v.events.Begin()
	st := v.events
	return func() tea.Msg {
		return calendarLoadedMsg{res: st.Fetch(context.Background(), gen)}
	}
}

// timeline re-derives the visible entries from the snapshot, sorted by
// start date for display.
func (v *calendarView) timeline() []calendar.TimelineEvent {
	entries := calendar.Project(v.events.Data(), v.filters)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})
	return entries
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		v.events.Resolve(msg.res)
		v.clampCursor()
		return v, nil

	case calendarToggleDoneMsg:
		if msg.err != nil {
			v.events.SetErr(msg.err)
			return v, nil
		}
		return v, v.load()

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		entries := v.timeline()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(entries)-1 {
				v.cursor++
			}
		case "b":
			v.filters.ShowBills = !v.filters.ShowBills
			v.clampCursor()
		case "p":
			v.filters.ShowPayPeriods = !v.filters.ShowPayPeriods
			v.clampCursor()
		case "u":
			v.filters.UnpaidOnly = !v.filters.UnpaidOnly
			v.clampCursor()
		case "enter":
			if v.cursor < len(entries) {
				return v, v.togglePaid(entries[v.cursor].Source)
			}
		case "r":
			return v, v.load()
		}
	}
	return v, nil
}

// togglePaid flips the bill behind a timeline entry. Pay-period entries
// are inert. No optimistic patch here: the timeline is a projection of
// several resources, so the confirmed snapshot is refetched instead.
func (v *calendarView) togglePaid(source domain.CalendarEvent) tea.Cmd {
	billID, ok := source.BillID()
	if !ok {
		return nil
	}
	paid := !source.Paid
	apiClient := v.state.API
	return func() tea.Msg {
		err := apiClient.UpdateBill(context.Background(), billID, api.BillPatch{Paid: &paid})
		return calendarToggleDoneMsg{err: err}
	}
}

func (v *calendarView) clampCursor() {
	if n := len(v.timeline()); v.cursor >= n && n > 0 {
		v.cursor = n - 1
	} else if n == 0 {
		v.cursor = 0
	}
}

const timelineDateLayout = "Mon Jan 02"

func (v *calendarView) View() string {
	if v.events.Loading() {
		return formatter.Loading("calendar")
	}

	out := "\n"
	if err := v.events.Err(); err != nil {
		out += formatter.ErrorBanner(err.Error()) + "\n\n"
	}

	out += "  " + v.renderFilters() + "\n\n"

	entries := v.timeline()
	if len(entries) == 0 {
		return out + "  " + formatter.Dim("Nothing on the timeline.")
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		when := e.Start.Format(timelineDateLayout)
		if e.AllDay && !e.End.Equal(e.Start) {
			when += " to " + e.End.Format(timelineDateLayout)
		}

		title := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render(e.Title)
		status := ""
		if e.Source.Kind == domain.EventBill {
			if e.Source.Paid {
				status = formatter.StyleGreen.Render("paid")
			} else {
				status = formatter.Dim("unpaid")
			}
		}

		rows = append(rows, []string{cursor, formatter.Swatch(e.Color), formatter.Dim(when), title, status})
	}
	out += formatter.Table(nil, rows)
	out += "\n" + v.renderLegend()
	return out
}

func (v *calendarView) renderFilters() string {
	mark := func(on bool, label string) string {
		if on {
			return formatter.StyleGreen.Render("[x] " + label)
		}
		return formatter.Dim("[ ] " + label)
	}
	return mark(v.filters.ShowBills, "bills (b)") + "  " +
		mark(v.filters.ShowPayPeriods, "pay periods (p)") + "  " +
		mark(v.filters.UnpaidOnly, "unpaid only (u)")
}

func (v *calendarView) renderLegend() string {
	items := []struct {
		color string
		label string
	}{
		{calendar.ColorDebt, "Debt"},
		{calendar.ColorCritical, "Critical"},
		{calendar.ColorNeeded, "Needed"},
		{calendar.ColorComfort, "Comfort"},
		{calendar.ColorEssential, "Essential"},
		{calendar.ColorPayPeriod, "Pay period"},
	}
	legend := "  "
	for _, item := range items {
		legend += formatter.Swatch(item.color) + " " + formatter.Dim(item.label) + "  "
	}
	return legend
}
