package snowball

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitaminR/autobudget/internal/domain"
)

func entry(name string, balance float64) domain.DebtEntry {
	return domain.DebtEntry{Name: name, Balance: decimal.NewFromFloat(balance)}
}

func TestAggregate_GroupsAndSorts(t *testing.T) {
	entries := []domain.DebtEntry{
		entry("Visa", 150),
		entry("Visa", 50),
		entry("Auto Loan", 4000),
	}

	rows := Aggregate(entries)

	require.Len(t, rows, 2)
	assert.Equal(t, "Visa", rows[0].Name)
	assert.Equal(t, "200", rows[0].Balance.String())
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, 30, rows[0].PayoffETADays)

	assert.Equal(t, "Auto Loan", rows[1].Name)
	assert.Equal(t, "4000", rows[1].Balance.String())
	assert.Equal(t, 1, rows[1].Count)
	// ceil(4000/300) = 14 months.
	assert.Equal(t, 420, rows[1].PayoffETADays)
}

func TestAggregate_BalanceConservation(t *testing.T) {
	entries := []domain.DebtEntry{
		entry("Card A", 1200.50),
		entry("Card B", 600.25),
		entry("Card A", 99.99),
		entry("Loan C", 2400),
		entry("Card B", 0.01),
	}

	rows := Aggregate(entries)

	var entryTotal, rowTotal decimal.Decimal
	for _, e := range entries {
		entryTotal = entryTotal.Add(e.Balance)
	}
	for _, r := range rows {
		rowTotal = rowTotal.Add(r.Balance)
	}
	assert.True(t, entryTotal.Equal(rowTotal), "grouping must not lose or duplicate balance: %s vs %s", entryTotal, rowTotal)
}

func TestAggregate_SortedNonDecreasing(t *testing.T) {
	entries := []domain.DebtEntry{
		entry("D", 500), entry("A", 100), entry("C", 100), entry("B", 2000),
	}

	rows := Aggregate(entries)

	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i].Balance.LessThan(rows[i-1].Balance),
			"rows must be non-decreasing by balance at index %d", i)
	}
}

func TestAggregate_TiesKeepInputOrder(t *testing.T) {
	entries := []domain.DebtEntry{
		entry("Second", 100),
		entry("First", 100),
	}

	rows := Aggregate(entries)

	require.Len(t, rows, 2)
	assert.Equal(t, "Second", rows[0].Name, "equal balances keep first-seen order")
	assert.Equal(t, "First", rows[1].Name)
}

func TestAggregate_NameMatchIsExact(t *testing.T) {
	entries := []domain.DebtEntry{
		entry("Visa", 100),
		entry("visa", 100),
		entry("Visa ", 100),
	}

	rows := Aggregate(entries)
	assert.Len(t, rows, 3, "grouping is case-sensitive with no trimming")
}

func TestAggregate_Idempotent(t *testing.T) {
	entries := []domain.DebtEntry{
		entry("Visa", 150), entry("Visa", 50), entry("Auto Loan", 4000),
	}

	first := Aggregate(entries)
	second := Aggregate(entries)
	assert.Equal(t, first, second)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestPayoffETADays(t *testing.T) {
	payment := decimal.NewFromInt(300)

	tests := []struct {
		balance float64
		want    int
	}{
		{0, 0},
		{1, 30},
		{300, 30},
		{300.01, 60},
		{4000, 420},
	}
	for _, tt := range tests {
		got := PayoffETADays(decimal.NewFromFloat(tt.balance), payment)
		assert.Equal(t, tt.want, got, "balance %v", tt.balance)
	}
}

func TestPayoffETADays_MonotoneInBalance(t *testing.T) {
	payment := decimal.NewFromInt(300)
	prev := 0
	for _, bal := range []float64{0, 50, 150, 300, 301, 900, 4000, 10000} {
		eta := PayoffETADays(decimal.NewFromFloat(bal), payment)
		assert.GreaterOrEqual(t, eta, prev, "eta must not decrease as balance grows")
		prev = eta
	}
}

func TestPayoffETADays_TinyPaymentClamped(t *testing.T) {
	eta := PayoffETADays(decimal.NewFromInt(10), decimal.NewFromFloat(0.25))
	assert.Equal(t, 300, eta, "payments under one unit clamp to one")
}
