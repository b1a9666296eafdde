// Package snowball turns raw debt entries into a payoff plan ordered by
// the snowball method: smallest balance first, to build momentum.
package snowball

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vitaminR/autobudget/internal/domain"
)

// DefaultMonthlyPayment is the heuristic payment used for payoff ETAs.
// It must match the server-side projection; the client recomputes the ETA
// as a consistency check rather than trusting the server value verbatim.
var DefaultMonthlyPayment = decimal.NewFromInt(300)

const daysPerMonth = 30

// Aggregate groups entries by exact name (case-sensitive, no trimming),
// sums balances, and returns rows sorted ascending by balance. Ties keep
// input order; the sort is stable by contract. Pure function.
func Aggregate(entries []domain.DebtEntry) []domain.DebtPlanRow {
	return AggregateWith(entries, DefaultMonthlyPayment)
}

// AggregateWith is Aggregate with an explicit monthly payment.
func AggregateWith(entries []domain.DebtEntry, monthlyPayment decimal.Decimal) []domain.DebtPlanRow {
	index := make(map[string]int, len(entries))
	rows := make([]domain.DebtPlanRow, 0, len(entries))

	for _, e := range entries {
		i, seen := index[e.Name]
		if !seen {
			index[e.Name] = len(rows)
			rows = append(rows, domain.DebtPlanRow{Name: e.Name})
			i = len(rows) - 1
		}
		rows[i].Balance = rows[i].Balance.Add(e.Balance)
		rows[i].Count++
	}

	for i := range rows {
		rows[i].PayoffETADays = PayoffETADays(rows[i].Balance, monthlyPayment)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Balance.LessThan(rows[j].Balance)
	})
	return rows
}

// PayoffETADays estimates days to retire a balance at a fixed monthly
// payment: ceil(balance / payment) months of 30 days. Payments below one
// currency unit are clamped to one so the division stays sane.
func PayoffETADays(balance, monthlyPayment decimal.Decimal) int {
	one := decimal.NewFromInt(1)
	if monthlyPayment.LessThan(one) {
		monthlyPayment = one
	}
	months := balance.Div(monthlyPayment).Ceil()
	return int(months.IntPart()) * daysPerMonth
}
