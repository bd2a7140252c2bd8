package domain

import (
	"fmt"
	"time"

	"github.com/cpilink/support-calculator/pkg/dateutil"
)

// CpiPeriod identifies one month of the published consumer price index
// series. Periods are totally ordered by (year, month) and are derived
// values, never persisted.
type CpiPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1..12
}

// PeriodOf returns the CpiPeriod containing the given date.
func PeriodOf(date time.Time) CpiPeriod {
	return CpiPeriod{Year: date.Year(), Month: int(date.Month())}
}

// AddMonths returns the period n calendar months later (earlier for
// negative n), with year rollover.
func (p CpiPeriod) AddMonths(n int) CpiPeriod {
	year, month := dateutil.AddMonths(p.Year, p.Month, n)
	return CpiPeriod{Year: year, Month: month}
}

// Next returns the immediately following calendar month.
func (p CpiPeriod) Next() CpiPeriod {
	return p.AddMonths(1)
}

// Before reports whether p precedes other in calendar order.
func (p CpiPeriod) Before(other CpiPeriod) bool {
	return p.Year < other.Year || (p.Year == other.Year && p.Month < other.Month)
}

// After reports whether p follows other in calendar order.
func (p CpiPeriod) After(other CpiPeriod) bool {
	return other.Before(p)
}

// MonthsSince returns the number of whole months from other to p.
func (p CpiPeriod) MonthsSince(other CpiPeriod) int {
	return dateutil.MonthsBetween(other.Year, other.Month, p.Year, p.Month)
}

// Date returns midnight UTC on the given day of the period's month,
// clamped to the month's last valid day.
func (p CpiPeriod) Date(day int) time.Time {
	month := time.Month(p.Month)
	return time.Date(p.Year, month, dateutil.ClampDay(p.Year, month, day), 0, 0, 0, 0, time.UTC)
}

// String formats the period as MM/YYYY.
func (p CpiPeriod) String() string {
	return fmt.Sprintf("%02d/%04d", p.Month, p.Year)
}
