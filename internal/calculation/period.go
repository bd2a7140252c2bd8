package calculation

import (
	"time"

	"github.com/cpilink/support-calculator/internal/domain"
)

// PublicationLagMonths is the fixed delay between the calendar month an
// index describes and the month from which it governs effective dates.
const PublicationLagMonths = 2

// PublicationDayOfMonth is the day on which the bureau publishes the
// previous month's index.
const PublicationDayOfMonth = 15

// ApplicablePeriod maps an effective month to the index period that
// legally applies to it: exactly two calendar months earlier, with year
// rollover. The transform is total; missing data is the caller's concern.
func ApplicablePeriod(effective domain.CpiPeriod) domain.CpiPeriod {
	return effective.AddMonths(-PublicationLagMonths)
}

// LatestPublishedPeriod returns the most recent index period expected to
// be published as of the given date. The bureau publishes month M on the
// 15th of M+1, so before the 15th the newest available period is two
// months back, afterwards one month back.
func LatestPublishedPeriod(today time.Time) domain.CpiPeriod {
	lag := 1
	if today.Day() < PublicationDayOfMonth {
		lag = 2
	}
	return domain.PeriodOf(today).AddMonths(-lag)
}
