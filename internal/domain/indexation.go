package domain

import (
	"github.com/shopspring/decimal"
)

// IndexationConfig holds the parameters of one indexation calculation.
// It is immutable for the lifetime of a calculation: in particular the
// fixed base index resolved from BaseEffectiveDate never changes once
// known, even if later quotes report a different base descriptor.
type IndexationConfig struct {
	// BaseAmount is the amount set by the legal determination or
	// agreement, before any indexation.
	BaseAmount decimal.Decimal `json:"base_amount"`

	// BaseEffectiveDate is the month the determination took effect.
	BaseEffectiveDate CpiPeriod `json:"base_effective_date"`

	// BillingDay is the day-of-month used to build billing dates for
	// annual-multiplier counting. Days past a month's end are clamped
	// to the month's last valid day.
	BillingDay int `json:"billing_day"`

	// UpdateFrequencyMonths is the spacing of official update points,
	// one of 1, 3, 6 or 12.
	UpdateFrequencyMonths int `json:"update_frequency_months"`

	// AnnualLinkageFactor is the constant multiplier applied once per
	// elapsed trigger year on top of the index ratio.
	AnnualLinkageFactor decimal.Decimal `json:"annual_linkage_factor"`
}

// UpdateEvent is one row of the simulated timeline: the state of the
// obligation as of one calendar month.
type UpdateEvent struct {
	EffectiveDate         CpiPeriod `json:"effective_date"`
	IsOfficialUpdatePoint bool      `json:"is_official_update_point"`

	// AppliedCpiPeriod and Quote are set only for official update points.
	AppliedCpiPeriod *CpiPeriod `json:"applied_cpi_period,omitempty"`
	Quote            *CpiQuote  `json:"quote,omitempty"`

	// AnnualMultiplier is set only when the month's amount was actually
	// recomputed from a published quote.
	AnnualMultiplier *decimal.Decimal `json:"annual_multiplier,omitempty"`

	// ResultingAmount is the amount in force as of this month. For
	// non-official months and official months with an unavailable quote
	// it equals the preceding event's amount exactly.
	ResultingAmount decimal.Decimal `json:"resulting_amount"`

	// IsEstimate marks an official update point whose index was not yet
	// published; the carried-forward amount is an estimate.
	IsEstimate bool `json:"is_estimate"`
}

// CalculationSummary is the complete result of one calculation request:
// the headline figures plus the full month-by-month timeline.
type CalculationSummary struct {
	Config IndexationConfig `json:"config"`

	FixedBasePeriod CpiPeriod `json:"fixed_base_period"`
	FixedBaseQuote  CpiQuote  `json:"fixed_base_quote"`

	CurrentPeriod CpiPeriod `json:"current_period"`
	CurrentQuote  CpiQuote  `json:"current_quote"`

	CurrentAmount     decimal.Decimal `json:"current_amount"`
	CurrentIsEstimate bool            `json:"current_is_estimate"`
	AnnualMultiplier  decimal.Decimal `json:"annual_multiplier"`

	NextUpdateDate CpiPeriod     `json:"next_update_date"`
	Timeline       []UpdateEvent `json:"timeline"`
}

// LatestEvent returns the most recent timeline row, or nil for an empty
// timeline.
func (cs *CalculationSummary) LatestEvent() *UpdateEvent {
	if len(cs.Timeline) == 0 {
		return nil
	}
	return &cs.Timeline[len(cs.Timeline)-1]
}

// CalculationRequest is the caller-facing input shape, parsed from YAML
// configuration files or the HTTP API.
type CalculationRequest struct {
	BaseAmount            decimal.Decimal `yaml:"base_amount" json:"base_amount"`
	BaseYear              int             `yaml:"base_year" json:"base_year"`
	BaseMonth             int             `yaml:"base_month" json:"base_month"`
	BillingDay            int             `yaml:"billing_day" json:"billing_day"`
	UpdateFrequencyMonths int             `yaml:"update_frequency_months" json:"update_frequency_months"`
	AnnualLinkageFactor   decimal.Decimal `yaml:"annual_linkage_factor" json:"annual_linkage_factor"`
}

// ToIndexationConfig converts the request into the engine's immutable
// configuration.
func (cr *CalculationRequest) ToIndexationConfig() IndexationConfig {
	return IndexationConfig{
		BaseAmount:            cr.BaseAmount,
		BaseEffectiveDate:     CpiPeriod{Year: cr.BaseYear, Month: cr.BaseMonth},
		BillingDay:            cr.BillingDay,
		UpdateFrequencyMonths: cr.UpdateFrequencyMonths,
		AnnualLinkageFactor:   cr.AnnualLinkageFactor,
	}
}
