package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/cpilink/support-calculator/internal/domain"
)

// CSVFormatter exports the timeline, one row per simulated month.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(summary *domain.CalculationSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "OfficialUpdate", "AppliedCpiPeriod", "IndexValue", "AnnualMultiplier", "Amount", "Estimate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, ev := range summary.Timeline {
		applied, index, multiplier := "", "", ""
		if ev.AppliedCpiPeriod != nil {
			applied = ev.AppliedCpiPeriod.String()
		}
		if ev.Quote != nil && ev.Quote.Published {
			index = ev.Quote.Value.StringFixed(2)
		}
		if ev.AnnualMultiplier != nil {
			multiplier = ev.AnnualMultiplier.StringFixed(4)
		}
		row := []string{
			ev.EffectiveDate.String(),
			strconv.FormatBool(ev.IsOfficialUpdatePoint),
			applied,
			index,
			multiplier,
			ev.ResultingAmount.StringFixed(2),
			strconv.FormatBool(ev.IsEstimate),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
