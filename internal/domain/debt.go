package domain

import "github.com/shopspring/decimal"

// DebtEntry is one raw debt record as returned by GET /debts/snowball,
// one per qualifying bill. Several entries may share a name (e.g. two
// cards on the same account); aggregation merges them.
type DebtEntry struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	APR     decimal.Decimal `json:"apr,omitempty"`
}

// DebtPlanRow is one row of the snowball payoff plan, derived from all
// DebtEntry records sharing an exact name.
type DebtPlanRow struct {
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Count         int             `json:"count"`
	PayoffETADays int             `json:"payoff_eta_days"`
}
