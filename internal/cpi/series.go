package cpi

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cpilink/support-calculator/internal/domain"
)

// SeriesStatistics summarizes a loaded index series.
type SeriesStatistics struct {
	Mean           decimal.Decimal    `json:"mean"`
	Min            decimal.Decimal    `json:"min"`
	Max            decimal.Decimal    `json:"max"`
	Count          int                `json:"count"`
	MissingPeriods []domain.CpiPeriod `json:"missing_periods"`
}

// SeriesProvider serves quotes from a CPI series loaded off disk, for
// offline and reproducible runs. Periods outside the series resolve to
// the unavailable quote, exactly like an unpublished upstream period.
type SeriesProvider struct {
	Name   string
	Source string

	quotes    map[domain.CpiPeriod]domain.CpiQuote
	MinPeriod domain.CpiPeriod
	MaxPeriod domain.CpiPeriod

	Statistics SeriesStatistics
}

// LoadSeriesFromCSV loads a monthly index series from a CSV file with a
// header row and `year,month,value,base` data rows. Malformed rows are
// skipped; a file with no valid rows is an error.
func LoadSeriesFromCSV(path string) (*SeriesProvider, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open series file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 3 {
		return nil, fmt.Errorf("invalid series format: expected at least 3 columns, got %d", len(header))
	}

	quotes := make(map[domain.CpiPeriod]domain.CpiQuote)
	var values []decimal.Decimal
	var minPeriod, maxPeriod domain.CpiPeriod

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if len(record) < 3 {
			continue // Skip malformed rows
		}

		year, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			continue // Skip rows with invalid year
		}
		month, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil || month < 1 || month > 12 {
			continue // Skip rows with invalid month
		}
		value, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			continue // Skip rows with invalid value
		}

		baseDesc := ""
		if len(record) > 3 {
			baseDesc = strings.TrimSpace(record[3])
		}

		period := domain.CpiPeriod{Year: year, Month: month}
		quotes[period] = domain.PublishedQuote(value, baseDesc, period.String())
		values = append(values, value)

		if len(quotes) == 1 {
			minPeriod, maxPeriod = period, period
		} else {
			if period.Before(minPeriod) {
				minPeriod = period
			}
			if period.After(maxPeriod) {
				maxPeriod = period
			}
		}
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("no valid data points found in %s", path)
	}

	return &SeriesProvider{
		Name:       "cpi",
		Source:     path,
		quotes:     quotes,
		MinPeriod:  minPeriod,
		MaxPeriod:  maxPeriod,
		Statistics: calculateStatistics(values, quotes, minPeriod, maxPeriod),
	}, nil
}

// Quote implements Provider.
func (sp *SeriesProvider) Quote(_ context.Context, period domain.CpiPeriod) domain.CpiQuote {
	if quote, ok := sp.quotes[period]; ok {
		return quote
	}
	return domain.UnavailableQuote()
}

// calculateStatistics computes summary measures over the loaded values
// and finds gaps inside the covered range.
func calculateStatistics(values []decimal.Decimal, quotes map[domain.CpiPeriod]domain.CpiQuote, minPeriod, maxPeriod domain.CpiPeriod) SeriesStatistics {
	if len(values) == 0 {
		return SeriesStatistics{}
	}

	var sum decimal.Decimal
	min := values[0]
	max := values[0]
	for _, v := range values {
		sum = sum.Add(v)
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}

	var missing []domain.CpiPeriod
	for p := minPeriod; !p.After(maxPeriod); p = p.Next() {
		if _, ok := quotes[p]; !ok {
			missing = append(missing, p)
		}
	}

	return SeriesStatistics{
		Mean:           sum.Div(decimal.NewFromInt(int64(len(values)))),
		Min:            min,
		Max:            max,
		Count:          len(values),
		MissingPeriods: missing,
	}
}
