package cpi

import (
	"context"

	"github.com/cpilink/support-calculator/internal/domain"
)

// Provider resolves one CPI observation for a period. Implementations
// collapse every failure cause (upstream outage, malformed payload,
// period not yet published) into the unified unavailable quote and never
// return an error.
type Provider interface {
	Quote(ctx context.Context, period domain.CpiPeriod) domain.CpiQuote
}

// StaticProvider serves quotes from a fixed in-memory map. Periods not in
// the map resolve to the unavailable quote.
type StaticProvider struct {
	Quotes map[domain.CpiPeriod]domain.CpiQuote
}

// Quote implements Provider.
func (sp *StaticProvider) Quote(_ context.Context, period domain.CpiPeriod) domain.CpiQuote {
	if quote, ok := sp.Quotes[period]; ok {
		return quote
	}
	return domain.UnavailableQuote()
}
