package calculation

import (
	"context"

	"github.com/cpilink/support-calculator/internal/domain"
)

// QuoteProvider resolves one CPI observation. Implementations must return
// the unified unavailable quote on network failure, malformed payloads or
// a period that does not exist upstream; the simulator never sees the
// cause.
type QuoteProvider interface {
	Quote(ctx context.Context, period domain.CpiPeriod) domain.CpiQuote
}

// UpdateTimelineSimulator reconstructs the obligation's history month by
// month. Evaluation is inherently ordered: each row depends on the
// previous row's carried-forward amount, so a run is strictly sequential.
type UpdateTimelineSimulator struct {
	Provider QuoteProvider
	Logger   Logger
}

// NewUpdateTimelineSimulator creates a simulator backed by the given
// quote provider.
func NewUpdateTimelineSimulator(provider QuoteProvider) *UpdateTimelineSimulator {
	return &UpdateTimelineSimulator{Provider: provider, Logger: NopLogger{}}
}

// Simulate walks every calendar month from the configured base effective
// date through scanEnd inclusive and emits one UpdateEvent per month.
// Official update points occur at exact multiples of the update frequency
// counted from the base month, including the base month itself; the
// official-point cursor advances whether or not the month's index was
// available. It returns the ordered timeline (ascending by construction)
// and the first official update month after scanEnd.
func (s *UpdateTimelineSimulator) Simulate(ctx context.Context, config *domain.IndexationConfig, fixedBaseQuote domain.CpiQuote, scanEnd domain.CpiPeriod) ([]domain.UpdateEvent, domain.CpiPeriod) {
	startDate := config.BaseEffectiveDate.Date(1)

	// Same-period lookups recur within one run (the fixed base period in
	// particular); serve repeats from a run-local memo.
	memo := make(map[domain.CpiPeriod]domain.CpiQuote)

	var events []domain.UpdateEvent
	nextOfficial := config.BaseEffectiveDate
	currentAmount := config.BaseAmount

	for month := config.BaseEffectiveDate; !month.After(scanEnd); month = month.Next() {
		event := domain.UpdateEvent{
			EffectiveDate:   month,
			ResultingAmount: currentAmount,
		}

		if month == nextOfficial {
			event.IsOfficialUpdatePoint = true

			applied := ApplicablePeriod(month)
			event.AppliedCpiPeriod = &applied

			quote := s.lookupQuote(ctx, memo, applied)
			event.Quote = &quote

			if indexed, ok := IndexAgainstFixedBase(config.BaseAmount, fixedBaseQuote, quote); ok {
				billingDate := month.Date(config.BillingDay)
				multiplier := AnnualLinkageMultiplier(startDate, billingDate, config.AnnualLinkageFactor)
				event.AnnualMultiplier = &multiplier

				currentAmount = indexed.Mul(multiplier)
				event.ResultingAmount = currentAmount
			} else {
				// Index not yet published: the previous amount stands as
				// an estimate for this point.
				event.IsEstimate = true
				s.Logger.Debugf("no index for period %s, carrying %s forward", applied, currentAmount.StringFixed(2))
			}

			// Frequency ticking is independent of data availability.
			nextOfficial = nextOfficial.AddMonths(config.UpdateFrequencyMonths)
		}

		events = append(events, event)
	}

	return events, nextOfficial
}

func (s *UpdateTimelineSimulator) lookupQuote(ctx context.Context, memo map[domain.CpiPeriod]domain.CpiQuote, period domain.CpiPeriod) domain.CpiQuote {
	if quote, ok := memo[period]; ok {
		return quote
	}
	quote := s.Provider.Quote(ctx, period)
	memo[period] = quote
	return quote
}
