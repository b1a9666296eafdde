package domain

import "github.com/shopspring/decimal"

// PlayerStatus is one player's score card.
type PlayerStatus struct {
	Points        int             `json:"points"`
	SpendingMoney decimal.Decimal `json:"spending_money"`
}

// GameStatus is the full two-player scoreboard from GET /gamification/status.
type GameStatus struct {
	Player1 PlayerStatus `json:"player1"`
	Player2 PlayerStatus `json:"player2"`
}

// Task is an unpaid bill exposed as a completable game action.
type Task struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	BillClass BillClass       `json:"bill_class"`
	TaskType  TaskType        `json:"task_type"`
}

// PayPeriodSummary is the read-only budget projection for one pay period.
type PayPeriodSummary struct {
	PPID             int                        `json:"pp_id"`
	Income           decimal.Decimal            `json:"income"`
	Fixed            decimal.Decimal            `json:"fixed"`
	Variable         decimal.Decimal            `json:"variable"`
	SurplusOrDeficit decimal.Decimal            `json:"surplus_or_deficit"`
	Pots             map[string]decimal.Decimal `json:"pots"`
}
