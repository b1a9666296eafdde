package domain

import "github.com/shopspring/decimal"

// Bill is a single recurring obligation. The server owns the canonical
// record; any copy held client-side is a provisional cache until the next
// confirmed snapshot.
type Bill struct {
	ID        int             `json:"id"`
	Name      string          `json:"name" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"gte=0"`
	DueDay    int             `json:"due_day" validate:"min=1,max=31"`
	BillClass BillClass       `json:"bill_class"`
	Paid      bool            `json:"paid"`
}

// Paycheck is an income source attributed to one player.
type Paycheck struct {
	ID       int             `json:"id"`
	Source   string          `json:"source" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"gte=0"`
	PlayerID PlayerID        `json:"player_id" validate:"oneof=player1 player2"`
}
