package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
)

// navEntry maps a number key to a root view.
type navEntry struct {
	key   string
	label string
	make  func(*SharedState) View
}

// navItems is the fixed top-level navigation, mirroring the site navbar.
var navItems = []navEntry{
	{"1", "Dashboard", func(s *SharedState) View { return newDashboardView(s) }},
	{"2", "Bills", func(s *SharedState) View { return newBillsView(s) }},
	{"3", "Paychecks", func(s *SharedState) View { return newPaychecksView(s) }},
	{"4", "Debt", func(s *SharedState) View { return newDebtsView(s) }},
	{"5", "Arena", func(s *SharedState) View { return newArenaView(s) }},
	{"6", "Calendar", func(s *SharedState) View { return newCalendarView(s) }},
}

// bannerView is implemented by views that show a dismissible banner.
type bannerView interface {
	HasBanner() bool
	DismissBanner()
}

// appModel is the root bubbletea Model for the TUI. It manages a view
// stack; number keys switch the root view, esc goes back.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		API:       app.API,
		CurrentPP: app.CurrentPP,
	}
	m := appModel{state: state}
	m.viewStack = []View{newDashboardView(state)}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// popActiveView closes and removes the top view.
func (m *appModel) popActiveView() {
	if len(m.viewStack) > 1 {
		m.viewStack[len(m.viewStack)-1].Close()
		m.viewStack = m.viewStack[:len(m.viewStack)-1]
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		m.popActiveView()
		return m, nil

	case formDoneMsg:
		m.popActiveView()
		return m, msg.submit

	case replaceViewMsg:
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1].Close()
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to the whole stack so views under a form reload data
		// mutated above them.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	// Forward everything else to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms capture all input, including digits and q.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch key := msg.String(); key {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "1", "2", "3", "4", "5", "6":
		for _, item := range navItems {
			if item.key != key {
				continue
			}
			if v := m.activeView(); v != nil && len(m.viewStack) == 1 {
				if next := item.make(m.state); next.ID() != v.ID() {
					v.Close()
					m.viewStack[0] = next
					return m, next.Init()
				}
			}
			return m, nil
		}
	}

	if msg.Type == tea.KeyEsc {
		// Esc dismisses a visible banner before it navigates back.
		if v, ok := m.activeView().(bannerView); ok && v.HasBanner() {
			v.DismissBanner()
			return m, nil
		}
		m.popActiveView()
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())
	result := strings.Join(sections, "\n")

	// Pad to terminal height to avoid stale line artifacts from the
	// line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("autobudget")

	var tabs []string
	active := ViewDashboard
	if len(m.viewStack) > 0 {
		active = m.viewStack[0].ID()
	}
	for i, item := range navItems {
		label := item.key + ":" + item.label
		if ViewID(i) == active {
			tabs = append(tabs, formatter.Bold(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}

	crumb := ""
	if len(m.viewStack) > 1 {
		if t := m.activeView().Title(); t != "" {
			crumb = " " + formatter.Dim("› "+t)
		}
	}

	header := title + "  " + strings.Join(tabs, " ") + crumb
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
