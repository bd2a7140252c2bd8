package cpi

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cpilink/support-calculator/internal/domain"
)

func writeSeriesFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cpi-monthly.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write series file: %v", err)
	}
	return path
}

func TestLoadSeriesFromCSV(t *testing.T) {
	path := writeSeriesFile(t, `year,month,value,base
2024,3,100.00,Average 2022=100.0
2024,4,100.70,Average 2022=100.0
2024,6,101.50,Average 2022=100.0
2024,9,103.00,Average 2022=100.0
`)

	series, err := LoadSeriesFromCSV(path)
	if err != nil {
		t.Fatalf("LoadSeriesFromCSV failed: %v", err)
	}

	if series.MinPeriod != (domain.CpiPeriod{Year: 2024, Month: 3}) {
		t.Errorf("min period %s, expected 03/2024", series.MinPeriod)
	}
	if series.MaxPeriod != (domain.CpiPeriod{Year: 2024, Month: 9}) {
		t.Errorf("max period %s, expected 09/2024", series.MaxPeriod)
	}

	quote := series.Quote(context.Background(), domain.CpiPeriod{Year: 2024, Month: 6})
	if !quote.Published || !quote.Value.Equal(decimal.NewFromFloat(101.50)) {
		t.Errorf("unexpected quote for 06/2024: %+v", quote)
	}
	if quote.BaseDescriptor != "Average 2022=100.0" {
		t.Errorf("unexpected base descriptor %q", quote.BaseDescriptor)
	}

	if q := series.Quote(context.Background(), domain.CpiPeriod{Year: 2024, Month: 5}); q.Published {
		t.Error("expected unavailable quote for a gap period")
	}
	if q := series.Quote(context.Background(), domain.CpiPeriod{Year: 2030, Month: 1}); q.Published {
		t.Error("expected unavailable quote outside the series range")
	}
}

func TestSeriesStatistics(t *testing.T) {
	path := writeSeriesFile(t, `year,month,value,base
2024,1,100,b
2024,2,102,b
2024,4,104,b
`)

	series, err := LoadSeriesFromCSV(path)
	if err != nil {
		t.Fatalf("LoadSeriesFromCSV failed: %v", err)
	}

	stats := series.Statistics
	if stats.Count != 3 {
		t.Errorf("count %d, expected 3", stats.Count)
	}
	if !stats.Mean.Equal(decimal.NewFromInt(102)) {
		t.Errorf("mean %s, expected 102", stats.Mean)
	}
	if !stats.Min.Equal(decimal.NewFromInt(100)) || !stats.Max.Equal(decimal.NewFromInt(104)) {
		t.Errorf("min/max %s/%s, expected 100/104", stats.Min, stats.Max)
	}
	if len(stats.MissingPeriods) != 1 || stats.MissingPeriods[0] != (domain.CpiPeriod{Year: 2024, Month: 3}) {
		t.Errorf("missing periods %v, expected [03/2024]", stats.MissingPeriods)
	}
}

func TestLoadSeriesSkipsMalformedRows(t *testing.T) {
	path := writeSeriesFile(t, `year,month,value,base
not-a-year,3,100.00,b
2024,13,100.00,b
2024,3,not-a-value,b
2024,4,100.70,b
`)

	series, err := LoadSeriesFromCSV(path)
	if err != nil {
		t.Fatalf("LoadSeriesFromCSV failed: %v", err)
	}
	if series.Statistics.Count != 1 {
		t.Errorf("expected the single valid row, got %d", series.Statistics.Count)
	}
}

func TestLoadSeriesErrors(t *testing.T) {
	if _, err := LoadSeriesFromCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}

	empty := writeSeriesFile(t, "year,month,value,base\n")
	if _, err := LoadSeriesFromCSV(empty); err == nil {
		t.Error("expected an error for a series with no valid rows")
	}
}
