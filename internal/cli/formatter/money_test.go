package formatter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vitaminR/autobudget/internal/domain"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{150.5, "$150.50"},
		{1800, "$1,800.00"},
		{1234567.89, "$1,234,567.89"},
		{-42.1, "-$42.10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(decimal.NewFromFloat(tt.in)))
	}
}

func TestBillClassColor_TotalMapping(t *testing.T) {
	for _, class := range []string{"Debt", "Critical", "Needed", "Comfort", "Essential", "Credit", "Nonsense", ""} {
		assert.NotEmpty(t, BillClassColor(domain.BillClass(class)), "class %q", class)
	}
}
