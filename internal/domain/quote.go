package domain

import (
	"github.com/shopspring/decimal"
)

// CpiQuote is one resolved index observation. A quote is either published
// (value, base descriptor and label are meaningful) or unavailable. The
// unavailable state deliberately collapses "not yet published", "network
// failure" and "malformed response" into a single outcome; callers never
// distinguish the cause.
type CpiQuote struct {
	Published      bool            `json:"published"`
	Value          decimal.Decimal `json:"value,omitempty"`
	BaseDescriptor string          `json:"base_descriptor,omitempty"`
	MonthLabel     string          `json:"month_label,omitempty"`
}

// PublishedQuote builds a quote for an observation that exists upstream.
func PublishedQuote(value decimal.Decimal, baseDescriptor, monthLabel string) CpiQuote {
	return CpiQuote{
		Published:      true,
		Value:          value,
		BaseDescriptor: baseDescriptor,
		MonthLabel:     monthLabel,
	}
}

// UnavailableQuote builds the unified absent quote.
func UnavailableQuote() CpiQuote {
	return CpiQuote{}
}
