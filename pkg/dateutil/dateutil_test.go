package dateutil

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year     int
		month    time.Month
		expected int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2025, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}

	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.expected {
			t.Errorf("DaysInMonth(%d, %s) = %d, expected %d", tc.year, tc.month, got, tc.expected)
		}
	}
}

func TestClampDay(t *testing.T) {
	cases := []struct {
		name     string
		year     int
		month    time.Month
		day      int
		expected int
	}{
		{"valid day unchanged", 2024, time.May, 15, 15},
		{"31 in April clamps to 30", 2024, time.April, 31, 30},
		{"31 in February leap year clamps to 29", 2024, time.February, 31, 29},
		{"30 in February non-leap clamps to 28", 2025, time.February, 30, 28},
		{"zero clamps to first", 2024, time.May, 0, 1},
		{"last day kept", 2024, time.June, 30, 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampDay(tc.year, tc.month, tc.day); got != tc.expected {
				t.Errorf("ClampDay(%d, %s, %d) = %d, expected %d", tc.year, tc.month, tc.day, got, tc.expected)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	cases := []struct {
		year, month, n         int
		wantYear, wantMonth    int
	}{
		{2024, 5, 3, 2024, 8},
		{2024, 11, 3, 2025, 2},
		{2024, 12, 1, 2025, 1},
		{2024, 1, -2, 2023, 11},
		{2024, 2, -2, 2023, 12},
		{2024, 6, 0, 2024, 6},
		{2024, 1, 24, 2026, 1},
	}

	for _, tc := range cases {
		y, m := AddMonths(tc.year, tc.month, tc.n)
		if y != tc.wantYear || m != tc.wantMonth {
			t.Errorf("AddMonths(%d, %d, %d) = (%d, %d), expected (%d, %d)",
				tc.year, tc.month, tc.n, y, m, tc.wantYear, tc.wantMonth)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	if got := MonthsBetween(2024, 5, 2024, 11); got != 6 {
		t.Errorf("expected 6 months, got %d", got)
	}
	if got := MonthsBetween(2024, 11, 2024, 5); got != -6 {
		t.Errorf("expected -6 months, got %d", got)
	}
	if got := MonthsBetween(2024, 12, 2025, 1); got != 1 {
		t.Errorf("expected 1 month across year boundary, got %d", got)
	}
}

func TestBeginningOfMonth(t *testing.T) {
	date := time.Date(2024, 5, 17, 13, 45, 0, 0, time.UTC)
	got := BeginningOfMonth(date)
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("BeginningOfMonth = %s, expected %s", got, want)
	}
}

func TestEndOfMonth(t *testing.T) {
	date := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)
	got := EndOfMonth(date)
	if got.Day() != 29 {
		t.Errorf("expected leap February to end on day 29, got %d", got.Day())
	}
}
