package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
)

func newForecastCmd(app *App) *cobra.Command {
	var pp int

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Show the budget projection for a pay period",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pp == 0 {
				pp = app.CurrentPP
			}
			summary, err := app.API.PayPeriodSummary(context.Background(), pp)
			if err != nil {
				return err
			}

			fmt.Printf("Pay period %d\n", summary.PPID)
			fmt.Printf("  Income:   %s\n", formatter.Money(summary.Income))
			fmt.Printf("  Fixed:    %s\n", formatter.Money(summary.Fixed))
			fmt.Printf("  Variable: %s\n", formatter.Money(summary.Variable))
			fmt.Printf("  Surplus:  %s\n", formatter.SignedMoney(summary.SurplusOrDeficit))

			if len(summary.Pots) > 0 {
				fmt.Println("  Pots:")
				names := make([]string, 0, len(summary.Pots))
				for name := range summary.Pots {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Printf("    %-12s %s\n", name, formatter.Money(summary.Pots[name]))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pp, "pp", 0, "Pay period number (defaults to the current one)")
	return cmd
}
