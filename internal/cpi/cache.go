package cpi

import (
	"context"
	"sync"
	"time"

	"github.com/cpilink/support-calculator/internal/domain"
)

// DefaultQuoteTTL is how long a resolved quote stays fresh. The bureau
// publishes once a month, so half a day of staleness is harmless.
const DefaultQuoteTTL = 12 * time.Hour

// CachingProvider decorates another provider with a stale-after window.
// Unavailable results are cached too, so an unpublished period is not
// re-fetched on every timeline row.
type CachingProvider struct {
	next Provider
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[domain.CpiPeriod]cachedQuote
}

type cachedQuote struct {
	quote     domain.CpiQuote
	fetchedAt time.Time
}

// NewCachingProvider wraps next with a TTL cache. A non-positive ttl
// falls back to DefaultQuoteTTL.
func NewCachingProvider(next Provider, ttl time.Duration) *CachingProvider {
	if ttl <= 0 {
		ttl = DefaultQuoteTTL
	}
	return &CachingProvider{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[domain.CpiPeriod]cachedQuote),
	}
}

// Quote implements Provider.
func (cp *CachingProvider) Quote(ctx context.Context, period domain.CpiPeriod) domain.CpiQuote {
	cp.mu.Lock()
	if entry, ok := cp.entries[period]; ok && cp.now().Sub(entry.fetchedAt) < cp.ttl {
		cp.mu.Unlock()
		return entry.quote
	}
	cp.mu.Unlock()

	// Fetch outside the lock; a duplicate fetch under contention is
	// cheaper than serializing every caller behind the network.
	quote := cp.next.Quote(ctx, period)

	cp.mu.Lock()
	cp.entries[period] = cachedQuote{quote: quote, fetchedAt: cp.now()}
	cp.mu.Unlock()

	return quote
}
