package api

import (
	"github.com/cpilink/support-calculator/internal/domain"
)

// QuoteDTO is a single CPI observation in API responses.
type QuoteDTO struct {
	Period         string `json:"period"`
	Published      bool   `json:"published"`
	Value          string `json:"value,omitempty"`
	BaseDescriptor string `json:"base_descriptor,omitempty"`
}

func toQuoteDTO(period domain.CpiPeriod, quote domain.CpiQuote) QuoteDTO {
	dto := QuoteDTO{Period: period.String(), Published: quote.Published}
	if quote.Published {
		dto.Value = quote.Value.StringFixed(2)
		dto.BaseDescriptor = quote.BaseDescriptor
	}
	return dto
}

// ErrorResponse is the JSON error body for all non-2xx responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
