package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBill() Bill {
	return Bill{
		ID:        1,
		Name:      "Electric",
		Amount:    decimal.NewFromFloat(150.00),
		DueDay:    3,
		BillClass: ClassNeeded,
	}
}

func TestValidateBill_OK(t *testing.T) {
	assert.NoError(t, ValidateBill(validBill()))
}

func TestValidateBill_NegativeAmount(t *testing.T) {
	b := validBill()
	b.Amount = decimal.NewFromFloat(-0.01)

	err := ValidateBill(b)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "negative")
}

func TestValidateBill_DueDayRange(t *testing.T) {
	for _, day := range []int{0, 32, -5} {
		b := validBill()
		b.DueDay = day
		assert.True(t, IsValidationError(ValidateBill(b)), "due day %d should be rejected", day)
	}
}

func TestValidateBill_EmptyName(t *testing.T) {
	b := validBill()
	b.Name = ""
	assert.True(t, IsValidationError(ValidateBill(b)))
}

func TestValidatePaycheck(t *testing.T) {
	p := Paycheck{Source: "My Job", Amount: decimal.NewFromInt(2000), PlayerID: Player1}
	assert.NoError(t, ValidatePaycheck(p))

	p.PlayerID = "player3"
	err := ValidatePaycheck(p)
	require.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "player1 or player2")

	p.PlayerID = Player2
	p.Amount = decimal.NewFromInt(-10)
	assert.True(t, IsValidationError(ValidatePaycheck(p)))
}

func TestParsePlayerID(t *testing.T) {
	for _, raw := range []string{"player1", "player2"} {
		id, err := ParsePlayerID(raw)
		require.NoError(t, err)
		assert.Equal(t, PlayerID(raw), id)
	}

	for _, raw := range []string{"player3", "Player1", ""} {
		_, err := ParsePlayerID(raw)
		require.Error(t, err, "raw %q", raw)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "player1 or player2")
	}
}

func TestSpendingMoneyForPoints(t *testing.T) {
	assert.True(t, SpendingMoneyForPoints(0).IsZero())
	assert.True(t, SpendingMoneyForPoints(99).IsZero())
	assert.Equal(t, "1", SpendingMoneyForPoints(100).String())
	assert.Equal(t, "2", SpendingMoneyForPoints(250).String())
}

func TestCalendarEvent_BillID(t *testing.T) {
	ev := CalendarEvent{ID: "bill-12", Kind: EventBill}
	id, ok := ev.BillID()
	require.True(t, ok)
	assert.Equal(t, 12, id)

	_, ok = CalendarEvent{ID: "pp-17", Kind: EventPayPeriod}.BillID()
	assert.False(t, ok)

	_, ok = CalendarEvent{ID: "bill-x", Kind: EventBill}.BillID()
	assert.False(t, ok)
}
