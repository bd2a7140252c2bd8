package output

import (
	"bytes"
	"fmt"

	"github.com/cpilink/support-calculator/internal/domain"
)

// ConsoleFormatter renders the calculation summary as a plain-text report:
// headline figures first, then the timeline newest-first.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.CalculationSummary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CPI-LINKED SUPPORT CALCULATION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Base Amount:       %s\n", FormatMoney(summary.Config.BaseAmount))
	fmt.Fprintf(&buf, "Effective Since:   %s (billing day %d)\n",
		summary.Config.BaseEffectiveDate, summary.Config.BillingDay)
	fmt.Fprintf(&buf, "Fixed Base Index:  %s for %s (%s)\n",
		FormatIndexValue(summary.FixedBaseQuote.Value), summary.FixedBasePeriod,
		summary.FixedBaseQuote.BaseDescriptor)
	if summary.CurrentQuote.Published {
		fmt.Fprintf(&buf, "Current Index:     %s for %s\n",
			FormatIndexValue(summary.CurrentQuote.Value), summary.CurrentPeriod)
	} else {
		fmt.Fprintf(&buf, "Current Index:     not yet published for %s\n", summary.CurrentPeriod)
	}
	fmt.Fprintln(&buf)

	estimateMark := ""
	if summary.CurrentIsEstimate {
		estimateMark = " (estimate, pending publication)"
	}
	fmt.Fprintf(&buf, "Current Amount:    %s%s\n", FormatMoney(summary.CurrentAmount), estimateMark)
	fmt.Fprintf(&buf, "Annual Multiplier: %s\n", FormatFactor(summary.AnnualMultiplier))
	fmt.Fprintf(&buf, "Next Update:       %s (every %d months)\n",
		summary.NextUpdateDate, summary.Config.UpdateFrequencyMonths)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TIMELINE (newest first)")
	fmt.Fprintf(&buf, "%-10s %-8s %-12s %-12s %s\n", "Month", "Update", "CPI Period", "Index", "Amount")
	for i := len(summary.Timeline) - 1; i >= 0; i-- {
		ev := summary.Timeline[i]
		update := "-"
		if ev.IsOfficialUpdatePoint {
			update = "yes"
		}
		applied, index := "-", "-"
		if ev.AppliedCpiPeriod != nil {
			applied = ev.AppliedCpiPeriod.String()
		}
		if ev.Quote != nil && ev.Quote.Published {
			index = FormatIndexValue(ev.Quote.Value)
		}
		amount := FormatMoney(ev.ResultingAmount)
		if ev.IsEstimate {
			amount += " *"
		}
		fmt.Fprintf(&buf, "%-10s %-8s %-12s %-12s %s\n", ev.EffectiveDate, update, applied, index, amount)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "* amount carried forward, index not yet published")
	return buf.Bytes(), nil
}
