package output

import (
	"github.com/shopspring/decimal"

	pkgdecimal "github.com/cpilink/support-calculator/pkg/decimal"
)

// FormatMoney formats a decimal as an ILS amount with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatMoney(amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatIndexValue formats a CPI observation with 2 decimals.
func FormatIndexValue(value decimal.Decimal) string { return value.StringFixed(2) }

// FormatFactor formats a multiplier with 4 decimals.
func FormatFactor(factor decimal.Decimal) string { return factor.StringFixed(4) }
