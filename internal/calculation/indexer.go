package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/cpilink/support-calculator/internal/domain"
)

// IndexAgainstFixedBase re-indexes an amount relative to one fixed
// historical observation:
//
//	result = baseAmount * (currentValue / fixedBaseValue)
//
// Because the ratio is always taken against the same fixed base rather
// than chained month over month, recomputation is independent of which
// intermediate periods were skipped.
//
// The second return value is false when either quote is unavailable or
// the fixed base value is zero; no division by zero can occur.
func IndexAgainstFixedBase(baseAmount decimal.Decimal, fixedBase, current domain.CpiQuote) (decimal.Decimal, bool) {
	if !fixedBase.Published || !current.Published || fixedBase.Value.IsZero() {
		return decimal.Decimal{}, false
	}
	return baseAmount.Mul(current.Value).Div(fixedBase.Value), true
}
