package dateutil

import (
	"time"
)

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of calendar days in a given month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// ClampDay clamps a day-of-month to the last valid day of the given month,
// so a billing day of 31 resolves to April 30 in April.
func ClampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// AddMonths advances a (year, month) pair by n calendar months with year
// rollover in both directions. Month is 1..12 on input and output.
func AddMonths(year, month, n int) (int, int) {
	total := year*12 + (month - 1) + n
	return total / 12, total%12 + 1
}

// MonthsBetween returns the number of whole calendar months from one
// (year, month) pair to another. Negative when to precedes from.
func MonthsBetween(fromYear, fromMonth, toYear, toMonth int) int {
	return (toYear*12 + toMonth) - (fromYear*12 + fromMonth)
}

// BeginningOfMonth returns midnight UTC on the first day of the month
// containing the given date.
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of the month containing the given date.
func EndOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), DaysInMonth(date.Year(), date.Month()), 23, 59, 59, 0, time.UTC)
}
