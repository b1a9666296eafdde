package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/vitaminR/autobudget/internal/api"
)

// App holds everything CLI commands need: the REST client plus runtime
// context resolved in main.
type App struct {
	API       *api.Client
	CurrentPP int

	// IsInteractive reports whether stdin is a terminal. Set by main;
	// tests override it to force either path.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "autobudget" command and registers
// all subcommands against the provided App. Run with no arguments on a
// terminal, it opens the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "autobudget",
		Short: "Terminal client for the AutoBudget service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newUICmd(app),
		newBillsCmd(app),
		newPaychecksCmd(app),
		newDebtsCmd(app),
		newArenaCmd(app),
		newCalendarCmd(app),
		newForecastCmd(app),
	)

	return root
}

func newUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
