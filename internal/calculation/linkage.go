package calculation

import (
	"time"

	"github.com/shopspring/decimal"
)

// The annual linkage trigger falls once per calendar year on a fixed
// month and day, independent of the calculation's other inputs.
const (
	LinkageTriggerMonth = time.February
	LinkageTriggerDay   = 28
)

// AnnualLinkageMultiplier computes the compounding multiplier layered on
// top of the index ratio. The first trigger date considered is the one
// at or after start; trigger dates from that year through the billing
// year that fall on or before the billing date each set (not increment)
// the application count, so the factor is applied at most once no matter
// how many years have elapsed. The result is factor^n with n in {0, 1},
// and exactly 1 when no trigger has passed.
func AnnualLinkageMultiplier(start, billing time.Time, factor decimal.Decimal) decimal.Decimal {
	firstTriggerYear := start.Year()
	if triggerDate(firstTriggerYear).Before(start) {
		firstTriggerYear++
	}

	applications := 0
	for year := firstTriggerYear; year <= billing.Year(); year++ {
		if !triggerDate(year).After(billing) {
			applications = 1
		}
	}

	if applications == 0 {
		return decimal.NewFromInt(1)
	}
	return factor.Pow(decimal.NewFromInt(int64(applications)))
}

func triggerDate(year int) time.Time {
	return time.Date(year, LinkageTriggerMonth, LinkageTriggerDay, 0, 0, 0, 0, time.UTC)
}
