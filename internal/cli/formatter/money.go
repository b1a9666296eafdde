package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money renders a decimal amount as "$1,234.56".
func Money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, b.String(), fracPart)
}

// SignedMoney renders an amount colored by sign: green for surplus, red
// for deficit.
func SignedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return StyleRed.Render(Money(d))
	}
	return StyleGreen.Render(Money(d))
}
