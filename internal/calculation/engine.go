package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cpilink/support-calculator/internal/domain"
)

// CalculationEngine orchestrates one indexation calculation: it resolves
// the fixed base quote, simulates the update timeline and assembles the
// headline figures.
type CalculationEngine struct {
	Provider QuoteProvider
	Logger   Logger
	Debug    bool
}

// NewCalculationEngine creates an engine backed by the given quote
// provider.
func NewCalculationEngine(provider QuoteProvider) *CalculationEngine {
	return &CalculationEngine{
		Provider: provider,
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ValidateConfig checks an IndexationConfig before any network work.
// Billing-day overflow within a month is not an error here: it is
// resolved by clamping when the billing date is built.
func ValidateConfig(config *domain.IndexationConfig) error {
	if config.BaseAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("base amount must be positive, got %s", config.BaseAmount)
	}
	if config.BaseEffectiveDate.Month < 1 || config.BaseEffectiveDate.Month > 12 {
		return fmt.Errorf("base effective month must be between 1 and 12, got %d", config.BaseEffectiveDate.Month)
	}
	if config.BaseEffectiveDate.Year < 1990 {
		return fmt.Errorf("base effective year must be 1990 or later, got %d", config.BaseEffectiveDate.Year)
	}
	if config.BillingDay < 1 || config.BillingDay > 31 {
		return fmt.Errorf("billing day must be between 1 and 31, got %d", config.BillingDay)
	}
	switch config.UpdateFrequencyMonths {
	case 1, 3, 6, 12:
	default:
		return fmt.Errorf("update frequency must be 1, 3, 6 or 12 months, got %d", config.UpdateFrequencyMonths)
	}
	if config.AnnualLinkageFactor.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("annual linkage factor must be positive, got %s", config.AnnualLinkageFactor)
	}
	return nil
}

// RunCalculation computes the current re-indexed amount, the applied
// annual multiplier, the next projected official update date and the full
// month-by-month timeline, scanning from the base effective date through
// the month of today.
//
// An unavailable fixed base quote is the one fatal condition: without it
// there is no denominator and no fallback base exists. Any later missing
// period only degrades its own timeline row to an estimate.
func (ce *CalculationEngine) RunCalculation(ctx context.Context, config *domain.IndexationConfig, today time.Time) (*domain.CalculationSummary, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	scanEnd := domain.PeriodOf(today)
	if config.BaseEffectiveDate.After(scanEnd) {
		return nil, fmt.Errorf("base effective date %s is after the calculation month %s",
			config.BaseEffectiveDate, scanEnd)
	}

	basePeriod := ApplicablePeriod(config.BaseEffectiveDate)
	baseQuote := ce.Provider.Quote(ctx, basePeriod)
	if !baseQuote.Published {
		return nil, fmt.Errorf("fixed base index for period %s is unavailable", basePeriod)
	}

	if ce.Debug {
		ce.Logger.Debugf("fixed base index (%s, base %q): %s",
			basePeriod, baseQuote.BaseDescriptor, baseQuote.Value.StringFixed(2))
	}

	simulator := &UpdateTimelineSimulator{Provider: ce.Provider, Logger: ce.Logger}
	timeline, nextUpdate := simulator.Simulate(ctx, config, baseQuote, scanEnd)

	currentPeriod := LatestPublishedPeriod(today)
	currentQuote := ce.Provider.Quote(ctx, currentPeriod)
	if !currentQuote.Published {
		ce.Logger.Warnf("latest index for period %s is not yet published", currentPeriod)
	}

	summary := &domain.CalculationSummary{
		Config:           *config,
		FixedBasePeriod:  basePeriod,
		FixedBaseQuote:   baseQuote,
		CurrentPeriod:    currentPeriod,
		CurrentQuote:     currentQuote,
		AnnualMultiplier: AnnualLinkageMultiplier(config.BaseEffectiveDate.Date(1), domain.PeriodOf(today).Date(config.BillingDay), config.AnnualLinkageFactor),
		NextUpdateDate:   nextUpdate,
		Timeline:         timeline,
	}

	// The amount in force today is whatever the last timeline row carries;
	// it is an estimate when the most recent official point had no data.
	if last := summary.LatestEvent(); last != nil {
		summary.CurrentAmount = last.ResultingAmount
	}
	summary.CurrentIsEstimate = latestOfficialIsEstimate(timeline)

	if ce.Debug {
		ce.Logger.Debugf("current amount as of %s: %s (estimate=%t, next update %s)",
			scanEnd, summary.CurrentAmount.StringFixed(2), summary.CurrentIsEstimate, nextUpdate)
	}

	return summary, nil
}

func latestOfficialIsEstimate(timeline []domain.UpdateEvent) bool {
	for i := len(timeline) - 1; i >= 0; i-- {
		if timeline[i].IsOfficialUpdatePoint {
			return timeline[i].IsEstimate
		}
	}
	return false
}
