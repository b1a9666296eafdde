package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
)

func newPaychecksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paychecks",
		Short: "List paychecks",
		RunE: func(cmd *cobra.Command, args []string) error {
			paychecks, err := app.API.ListPaychecks(context.Background())
			if err != nil {
				return err
			}

			header := []string{"ID", "Source", "Amount", "Player"}
			rows := make([][]string, 0, len(paychecks))
			total := decimal.Zero
			for _, p := range paychecks {
				rows = append(rows, []string{
					strconv.Itoa(p.ID),
					p.Source,
					formatter.Money(p.Amount),
					playerLabel(p.PlayerID),
				})
				total = total.Add(p.Amount)
			}
			fmt.Print(formatter.Table(header, rows))
			fmt.Printf("Total: %s\n", formatter.Money(total))
			return nil
		},
	}

	cmd.AddCommand(
		newPaychecksAddCmd(app),
		newPaychecksEditCmd(app),
		newPaychecksRemoveCmd(app),
	)
	return cmd
}

func newPaychecksEditCmd(app *App) *cobra.Command {
	var source, amount, player string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a paycheck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("paycheck id must be a number, got %q", args[0])
			}

			// The endpoint replaces the whole record, so start from the
			// current one and overlay the changed flags.
			ctx := context.Background()
			paychecks, err := app.API.ListPaychecks(ctx)
			if err != nil {
				return err
			}
			var p *domain.Paycheck
			for i := range paychecks {
				if paychecks[i].ID == id {
					p = &paychecks[i]
					break
				}
			}
			if p == nil {
				return fmt.Errorf("no paycheck with id %d", id)
			}

			if cmd.Flags().Changed("source") {
				p.Source = source
			}
			if cmd.Flags().Changed("amount") {
				amt, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("amount must be a number like 1200.00, got %q", amount)
				}
				p.Amount = amt
			}
			if cmd.Flags().Changed("player") {
				p.PlayerID = domain.PlayerID(player)
			}
			if err := domain.ValidatePaycheck(*p); err != nil {
				return err
			}

			if err := app.API.UpdatePaycheck(ctx, *p); err != nil {
				return err
			}
			fmt.Printf("Paycheck %d updated.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "New source name")
	cmd.Flags().StringVar(&amount, "amount", "", "New amount")
	cmd.Flags().StringVar(&player, "player", "", "player1 or player2")

	return cmd
}

func newPaychecksRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a paycheck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("paycheck id must be a number, got %q", args[0])
			}
			if err := app.API.DeletePaycheck(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Paycheck %d deleted.\n", id)
			return nil
		},
	}
}

func newPaychecksAddCmd(app *App) *cobra.Command {
	var source, amount, player string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a paycheck",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("amount must be a number like 1200.00, got %q", amount)
			}
			p := domain.Paycheck{
				Source:   source,
				Amount:   amt,
				PlayerID: domain.PlayerID(player),
			}
			if err := domain.ValidatePaycheck(p); err != nil {
				return err
			}
			if err := app.API.CreatePaycheck(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Added %s for %s.\n", formatter.Money(amt), source)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Income source name")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount per pay period")
	cmd.Flags().StringVar(&player, "player", string(domain.Player1), "player1 or player2")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("amount")

	return cmd
}
