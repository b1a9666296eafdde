package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
	"github.com/vitaminR/autobudget/internal/game"
	"github.com/vitaminR/autobudget/internal/store"
)

// arenaLoadedMsg carries the scoreboard and the task board together.
// Both come from the same refresh so the cards and the board agree.
type arenaLoadedMsg struct {
	status    *domain.GameStatus
	statusErr error
	tasks     store.Result[domain.Task]
}

// completeTaskRequestMsg asks the arena to run one completion. It comes
// from the player picker form after it pops, so the arena's in-flight
// guard still applies before anything is dispatched.
type completeTaskRequestMsg struct {
	player domain.PlayerID
	task   domain.Task
}

// taskCompleteDoneMsg carries one completion outcome. partial reports
// that points were credited but the bill mutation failed, which is a
// distinct condition from a plain failure and gets the warning banner.
type taskCompleteDoneMsg struct {
	player  domain.PlayerID
	task    domain.Task
	partial bool
	err     error
}

// arenaView is the two-player scoreboard plus the completable task board.
type arenaView struct {
	state       *SharedState
	tasks       *store.Store[domain.Task]
	coordinator *game.Coordinator
	status      *domain.GameStatus
	cursor      int
	completing  bool
	warn        string
}

func newArenaView(state *SharedState) *arenaView {
	apiClient := state.API
	return &arenaView{
		state: state,
		tasks: store.New(func(ctx context.Context) ([]domain.Task, error) {
			return apiClient.GameTasks(ctx)
		}),
		coordinator: game.NewCoordinator(apiClient),
	}
}

func (v *arenaView) ID() ViewID    { return ViewArena }
func (v *arenaView) Title() string { return "Arena" }
func (v *arenaView) Close()        { v.tasks.Cancel() }

func (v *arenaView) HasBanner() bool { return v.warn != "" || v.tasks.Err() != nil }

func (v *arenaView) DismissBanner() {
	if v.warn != "" {
		v.warn = ""
		v.coordinator.Acknowledge()
		return
	}
	v.tasks.ClearErr()
}

func (v *arenaView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "complete task")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *arenaView) Init() tea.Cmd {
	return v.load()
}

func (v *arenaView) load() tea.Cmd {
	gen := v.tasks.Begin()
	st := v.tasks
	apiClient := v.state.API
	return func() tea.Msg {
		status, statusErr := apiClient.GameStatus(context.Background())
		return arenaLoadedMsg{
			status:    status,
			statusErr: statusErr,
			tasks:     st.Fetch(context.Background(), gen),
		}
	}
}

func (v *arenaView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case arenaLoadedMsg:
		if !v.tasks.Resolve(msg.tasks) {
			return v, nil
		}
		if msg.statusErr != nil {
			v.tasks.SetErr(msg.statusErr)
		} else {
			v.status = msg.status
		}
		if n := len(v.tasks.Data()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case completeTaskRequestMsg:
		return v, v.complete(msg.player, msg.task)

	case taskCompleteDoneMsg:
		return v.finishCompletion(msg)

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		tasks := v.tasks.Data()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(tasks)-1 {
				v.cursor++
			}
		case "enter":
			if !v.completing && v.cursor < len(tasks) {
				return v, pushView(newPlayerPickerView(v.state, tasks[v.cursor]))
			}
		case "r":
			return v, v.load()
		}
	}
	return v, nil
}

// complete dispatches one two-phase completion. Only one runs at a time;
// the coordinator is touched exclusively from completion goroutines, so
// the in-flight guard also serializes access to it.
func (v *arenaView) complete(player domain.PlayerID, task domain.Task) tea.Cmd {
	if v.completing {
		return nil
	}
	v.completing = true
	coordinator := v.coordinator
	return func() tea.Msg {
		err := coordinator.Complete(context.Background(), player, task)
		return taskCompleteDoneMsg{
			player:  player,
			task:    task,
			partial: game.IsPartialFailure(err),
			err:     err,
		}
	}
}

func (v *arenaView) finishCompletion(msg taskCompleteDoneMsg) (tea.Model, tea.Cmd) {
	v.completing = false

	if msg.err == nil {
		v.coordinator.Reset()
		return v, tea.Batch(v.load(), refreshAll())
	}

	if msg.partial {
		// Points were credited but the bill is still unpaid. There is no
		// rollback; tell the user exactly what state the server is in and
		// reload so the cards show the credited points.
		v.warn = fmt.Sprintf(
			"%s earned %d pts for %q, but the bill was NOT marked paid. Pay it manually.",
			playerLabel(msg.player), domain.TaskPoints[msg.task.TaskType], msg.task.Name,
		)
		return v, v.load()
	}

	v.tasks.SetErr(msg.err)
	return v, nil
}

func (v *arenaView) View() string {
	if v.tasks.Loading() && v.status == nil {
		return formatter.Loading("arena")
	}

	out := "\n"
	if v.warn != "" {
		out += formatter.WarnBanner(v.warn) + "\n\n"
	}
	if err := v.tasks.Err(); err != nil {
		out += formatter.ErrorBanner(err.Error()) + "\n\n"
	}

	if v.status != nil {
		out += lipgloss.JoinHorizontal(lipgloss.Top,
			playerCard("Player 1", v.status.Player1),
			"  ",
			playerCard("Player 2", v.status.Player2),
		) + "\n\n"
	}

	tasks := v.tasks.Data()
	if len(tasks) == 0 {
		return out + "  " + formatter.Dim("No open tasks. Every bill is paid.")
	}

	header := []string{"", "Task", "Bill", "Amount", "Points"}
	rows := make([][]string, 0, len(tasks))
	for i, t := range tasks {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		rows = append(rows, []string{
			cursor,
			string(t.TaskType),
			formatter.BillClassStyle(t.BillClass).Render(t.Name),
			formatter.Money(t.Amount),
			formatter.StyleYellow.Render(fmt.Sprintf("+%d", domain.TaskPoints[t.TaskType])),
		})
	}
	out += formatter.Table(header, rows)
	if v.completing {
		out += "\n  " + formatter.Dim("Completing...")
	}
	return out
}

// newPlayerPickerView asks which player gets the credit for a task.
func newPlayerPickerView(state *SharedState, task domain.Task) View {
	player := string(domain.Player1)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("Complete %q (+%d pts) as", task.Name, domain.TaskPoints[task.TaskType])).
				Options(
					huh.NewOption("Player 1", string(domain.Player1)),
					huh.NewOption("Player 2", string(domain.Player2)),
				).
				Value(&player),
		),
	).WithTheme(budgetHuhTheme()).WithShowHelp(false)

	submit := func() tea.Cmd {
		return func() tea.Msg {
			return completeTaskRequestMsg{player: domain.PlayerID(player), task: task}
		}
	}
	return newFormView(state, "Complete Task", form, submit)
}

var playerCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorDim).
	Padding(0, 2)

func playerCard(name string, status domain.PlayerStatus) string {
	body := fmt.Sprintf("%s\n%s pts\n%s to spend",
		formatter.Bold(name),
		formatter.StyleYellow.Render(fmt.Sprintf("%d", status.Points)),
		formatter.StyleGreen.Render(formatter.Money(status.SpendingMoney)),
	)
	return playerCardStyle.Render(body)
}
