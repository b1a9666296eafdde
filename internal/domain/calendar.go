package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CalendarEvent is the wire form of one mixed-kind event from GET /calendar.
// Bill events carry Date; pay-period events carry StartDate/EndDate.
// IDs are strings like "bill-12" or "pp-17".
type CalendarEvent struct {
	ID        string           `json:"id"`
	Kind      EventKind        `json:"type"`
	Title     string           `json:"title"`
	Date      *Date            `json:"date,omitempty"`
	StartDate *Date            `json:"start_date,omitempty"`
	EndDate   *Date            `json:"end_date,omitempty"`
	BillClass BillClass        `json:"bill_class,omitempty"`
	Paid      bool             `json:"paid,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Color     string           `json:"color,omitempty"`
}

// BillID extracts the numeric bill ID from a bill-kind event's string ID.
// Returns false for pay-period events or malformed IDs.
func (e CalendarEvent) BillID() (int, bool) {
	if e.Kind != EventBill {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(e.ID, "bill-"))
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
