package domain

import "github.com/shopspring/decimal"

type BillClass string

const (
	ClassDebt      BillClass = "Debt"
	ClassCritical  BillClass = "Critical"
	ClassNeeded    BillClass = "Needed"
	ClassComfort   BillClass = "Comfort"
	ClassEssential BillClass = "Essential"
	ClassCredit    BillClass = "Credit"
)

// KnownBillClasses is the canonical set of bill class strings. The server
// may introduce new classes at any time; display code must tolerate values
// outside this set.
var KnownBillClasses = map[string]bool{
	"Debt": true, "Critical": true, "Needed": true,
	"Comfort": true, "Essential": true, "Credit": true,
}

type PlayerID string

const (
	Player1 PlayerID = "player1"
	Player2 PlayerID = "player2"
)

// ParsePlayerID checks a raw player string before it is put on the wire.
func ParsePlayerID(s string) (PlayerID, error) {
	switch PlayerID(s) {
	case Player1, Player2:
		return PlayerID(s), nil
	}
	return "", &ValidationError{Field: "Player", Reason: "must be player1 or player2"}
}

type TaskType string

const (
	TaskPayBill    TaskType = "pay_bill"
	TaskReconcile  TaskType = "reconcile"
	TaskForecast   TaskType = "forecast"
	TaskEditBudget TaskType = "edit_budget"
)

// TaskPoints maps each task type to the points the server credits on
// completion. Must stay in sync with the server's table.
var TaskPoints = map[TaskType]int{
	TaskPayBill:    10,
	TaskReconcile:  20,
	TaskForecast:   15,
	TaskEditBudget: 5,
}

// SpendingMoneyForPoints converts points to unlocked spending money:
// every full 100 points is worth one dollar. The server owns the real
// value; this is a display-side consistency check only.
func SpendingMoneyForPoints(points int) decimal.Decimal {
	return decimal.NewFromInt(int64(points / 100))
}

type EventKind string

const (
	EventBill      EventKind = "bill"
	EventPayPeriod EventKind = "pay_period"
)
