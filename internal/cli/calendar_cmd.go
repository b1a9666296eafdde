package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vitaminR/autobudget/internal/calendar"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
)

func newCalendarCmd(app *App) *cobra.Command {
	var noBills, noPayPeriods, unpaidOnly bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the unified timeline of bills and pay periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.API.Calendar(context.Background())
			if err != nil {
				return err
			}

			filters := calendar.Filters{
				ShowBills:      !noBills,
				ShowPayPeriods: !noPayPeriods,
				UnpaidOnly:     unpaidOnly,
			}
			entries := calendar.Project(events, filters)
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Start.Before(entries[j].Start)
			})

			if len(entries) == 0 {
				fmt.Println("Nothing on the timeline.")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				when := e.Start.Format(timelineDateLayout)
				if e.AllDay && !e.End.Equal(e.Start) {
					when += " to " + e.End.Format(timelineDateLayout)
				}
				status := ""
				if e.Source.Kind == domain.EventBill {
					status = "unpaid"
					if e.Source.Paid {
						status = "paid"
					}
				}
				rows = append(rows, []string{formatter.Swatch(e.Color), when, e.Title, status})
			}
			fmt.Print(formatter.Table(nil, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBills, "no-bills", false, "Hide bill events")
	cmd.Flags().BoolVar(&noPayPeriods, "no-pay-periods", false, "Hide pay-period spans")
	cmd.Flags().BoolVar(&unpaidOnly, "unpaid", false, "Only show unpaid bills")

	return cmd
}
