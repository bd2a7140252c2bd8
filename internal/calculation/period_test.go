package calculation

import (
	"testing"
	"time"

	"github.com/cpilink/support-calculator/internal/domain"
)

func TestApplicablePeriod(t *testing.T) {
	cases := []struct {
		name      string
		effective domain.CpiPeriod
		expected  domain.CpiPeriod
	}{
		{"mid-year", domain.CpiPeriod{Year: 2024, Month: 5}, domain.CpiPeriod{Year: 2024, Month: 3}},
		{"november", domain.CpiPeriod{Year: 2024, Month: 11}, domain.CpiPeriod{Year: 2024, Month: 9}},
		{"january rolls to november", domain.CpiPeriod{Year: 2025, Month: 1}, domain.CpiPeriod{Year: 2024, Month: 11}},
		{"february rolls to december", domain.CpiPeriod{Year: 2025, Month: 2}, domain.CpiPeriod{Year: 2024, Month: 12}},
		{"march stays in year", domain.CpiPeriod{Year: 2025, Month: 3}, domain.CpiPeriod{Year: 2025, Month: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplicablePeriod(tc.effective); got != tc.expected {
				t.Errorf("ApplicablePeriod(%s) = %s, expected %s", tc.effective, got, tc.expected)
			}
		})
	}
}

func TestApplicablePeriodAlwaysTwoMonthsBack(t *testing.T) {
	for year := 2020; year <= 2026; year++ {
		for month := 1; month <= 12; month++ {
			effective := domain.CpiPeriod{Year: year, Month: month}
			applied := ApplicablePeriod(effective)
			if effective.MonthsSince(applied) != PublicationLagMonths {
				t.Errorf("ApplicablePeriod(%s) = %s, not exactly %d months back",
					effective, applied, PublicationLagMonths)
			}
		}
	}
}

func TestLatestPublishedPeriod(t *testing.T) {
	cases := []struct {
		name     string
		today    time.Time
		expected domain.CpiPeriod
	}{
		{
			"before publication day",
			time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
			domain.CpiPeriod{Year: 2024, Month: 5},
		},
		{
			"on publication day",
			time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
			domain.CpiPeriod{Year: 2024, Month: 6},
		},
		{
			"after publication day",
			time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC),
			domain.CpiPeriod{Year: 2024, Month: 6},
		},
		{
			"early january rolls to previous year",
			time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			domain.CpiPeriod{Year: 2024, Month: 11},
		},
		{
			"late january",
			time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
			domain.CpiPeriod{Year: 2024, Month: 12},
		},
		{
			"early february rolls to december",
			time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
			domain.CpiPeriod{Year: 2024, Month: 12},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LatestPublishedPeriod(tc.today); got != tc.expected {
				t.Errorf("LatestPublishedPeriod(%s) = %s, expected %s", tc.today.Format("2006-01-02"), got, tc.expected)
			}
		})
	}
}
