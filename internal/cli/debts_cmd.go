package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/snowball"
)

func newDebtsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "debts",
		Short: "Show the snowball payoff plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.API.DebtSnowball(context.Background())
			if err != nil {
				return err
			}

			plan := snowball.Aggregate(entries)
			if len(plan) == 0 {
				fmt.Println("No debts tracked.")
				return nil
			}

			header := []string{"Debt", "Balance", "Accounts", "Payoff ETA"}
			rows := make([][]string, 0, len(plan))
			for _, row := range plan {
				accounts := ""
				if row.Count > 1 {
					accounts = "×" + strconv.Itoa(row.Count)
				}
				rows = append(rows, []string{
					row.Name,
					formatter.Money(row.Balance),
					accounts,
					fmt.Sprintf("~%d days", row.PayoffETADays),
				})
			}
			fmt.Print(formatter.Table(header, rows))
			fmt.Printf("Assuming %s/month toward the smallest balance first.\n",
				formatter.Money(snowball.DefaultMonthlyPayment))
			return nil
		},
	}
}
