package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cpilink/support-calculator/internal/domain"
)

// DefaultAnnualLinkageFactor is applied when a request leaves the factor
// unset; 1.0 means the annual linkage step is a no-op.
var DefaultAnnualLinkageFactor = decimal.NewFromInt(1)

// InputParser handles parsing of calculation request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation request from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var request domain.CalculationRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&request)

	if err := ip.ValidateRequest(&request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &request, nil
}

// ApplyDefaults fills optional request fields. The annual linkage factor
// may be a fixed constant rather than user-supplied.
func (ip *InputParser) ApplyDefaults(request *domain.CalculationRequest) {
	if request.AnnualLinkageFactor.IsZero() {
		request.AnnualLinkageFactor = DefaultAnnualLinkageFactor
	}
	if request.BillingDay == 0 {
		request.BillingDay = 1
	}
}

// ValidateRequest validates a calculation request. A billing day that
// overflows a short month is deliberately not rejected here; it is
// clamped to the month's last day during the calculation.
func (ip *InputParser) ValidateRequest(request *domain.CalculationRequest) error {
	if request.BaseAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("base amount must be positive")
	}
	if request.BaseMonth < 1 || request.BaseMonth > 12 {
		return fmt.Errorf("base month must be between 1 and 12, got %d", request.BaseMonth)
	}
	if request.BaseYear < 1990 {
		return fmt.Errorf("base year must be 1990 or later, got %d", request.BaseYear)
	}
	if request.BillingDay < 1 || request.BillingDay > 31 {
		return fmt.Errorf("billing day must be between 1 and 31, got %d", request.BillingDay)
	}
	switch request.UpdateFrequencyMonths {
	case 1, 3, 6, 12:
	default:
		return fmt.Errorf("update frequency must be 1, 3, 6 or 12 months, got %d", request.UpdateFrequencyMonths)
	}
	if request.AnnualLinkageFactor.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("annual linkage factor must be positive")
	}
	if request.AnnualLinkageFactor.GreaterThan(decimal.NewFromInt(2)) {
		return fmt.Errorf("annual linkage factor must not exceed 2.0, got %s", request.AnnualLinkageFactor)
	}
	return nil
}

// CreateExampleRequest creates an example calculation request
func (ip *InputParser) CreateExampleRequest() *domain.CalculationRequest {
	return &domain.CalculationRequest{
		BaseAmount:            decimal.NewFromInt(4000),
		BaseYear:              2024,
		BaseMonth:             5,
		BillingDay:            1,
		UpdateFrequencyMonths: 3,
		AnnualLinkageFactor:   decimal.NewFromFloat(1.074),
	}
}
