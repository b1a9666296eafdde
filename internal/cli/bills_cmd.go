package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vitaminR/autobudget/internal/api"
	"github.com/vitaminR/autobudget/internal/cli/formatter"
	"github.com/vitaminR/autobudget/internal/domain"
)

func newBillsCmd(app *App) *cobra.Command {
	var unpaidOnly bool

	cmd := &cobra.Command{
		Use:   "bills",
		Short: "List bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			bills, err := app.API.ListBills(context.Background())
			if err != nil {
				return err
			}

			header := []string{"ID", "Name", "Amount", "Due", "Class", "Status"}
			var rows [][]string
			for _, b := range bills {
				if unpaidOnly && b.Paid {
					continue
				}
				status := "unpaid"
				if b.Paid {
					status = formatter.StyleGreen.Render("paid")
				}
				rows = append(rows, []string{
					strconv.Itoa(b.ID),
					b.Name,
					formatter.Money(b.Amount),
					dayOrdinal(b.DueDay),
					formatter.BillClassStyle(b.BillClass).Render(string(b.BillClass)),
					status,
				})
			}
			fmt.Print(formatter.Table(header, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unpaidOnly, "unpaid", false, "Only show unpaid bills")

	cmd.AddCommand(
		newBillsPayCmd(app, "pay", true),
		newBillsPayCmd(app, "unpay", false),
		newBillsEditCmd(app),
		newBillsRemoveCmd(app),
	)

	return cmd
}

func newBillsEditCmd(app *App) *cobra.Command {
	var name, amount, class string
	var dueDay int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update fields on a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bill id must be a number, got %q", args[0])
			}

			var patch api.BillPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("amount") {
				amt, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("amount must be a number like 120.00, got %q", amount)
				}
				if amt.IsNegative() {
					return &domain.ValidationError{Field: "Amount", Reason: "must not be negative"}
				}
				patch.Amount = &amt
			}
			if cmd.Flags().Changed("due-day") {
				if dueDay < 1 || dueDay > 31 {
					return &domain.ValidationError{Field: "DueDay", Reason: "must be between 1 and 31"}
				}
				patch.DueDay = &dueDay
			}
			if cmd.Flags().Changed("class") {
				bc := domain.BillClass(class)
				patch.BillClass = &bc
			}

			if err := app.API.UpdateBill(context.Background(), id, patch); err != nil {
				return err
			}
			fmt.Printf("Bill %d updated.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&amount, "amount", "", "New amount")
	cmd.Flags().IntVar(&dueDay, "due-day", 0, "New due day (1-31)")
	cmd.Flags().StringVar(&class, "class", "", "New bill class")

	return cmd
}

func newBillsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bill id must be a number, got %q", args[0])
			}
			if err := app.API.DeleteBill(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Bill %d deleted.\n", id)
			return nil
		},
	}
}

// newBillsPayCmd builds "bills pay <id>" and its inverse. Both go through
// the idempotent PUT rather than the legacy toggle, so repeating the
// command is harmless.
func newBillsPayCmd(app *App, use string, paid bool) *cobra.Command {
	short := "Mark a bill paid"
	if !paid {
		short = "Mark a bill unpaid"
	}
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bill id must be a number, got %q", args[0])
			}
			p := paid
			if err := app.API.UpdateBill(context.Background(), id, api.BillPatch{Paid: &p}); err != nil {
				return err
			}
			state := "unpaid"
			if paid {
				state = "paid"
			}
			fmt.Printf("Bill %d marked %s.\n", id, state)
			return nil
		},
	}
}
