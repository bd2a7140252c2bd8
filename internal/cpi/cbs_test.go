package cpi

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cpilink/support-calculator/internal/domain"
)

const samplePayload = `<?xml version="1.0" encoding="utf-8"?>
<indices>
  <ind>
    <code>120010</code>
    <date>
      <DateMonth>
        <year>2024</year>
        <month>2</month>
        <currBase>
          <baseDesc>Average 2022=100.0</baseDesc>
          <value>102.10</value>
        </currBase>
      </DateMonth>
      <DateMonth>
        <year>2024</year>
        <month>3</month>
        <currBase>
          <baseDesc>Average 2022=100.0</baseDesc>
          <value>103.00</value>
        </currBase>
      </DateMonth>
    </date>
  </ind>
</indices>`

func TestParseQuote(t *testing.T) {
	period := domain.CpiPeriod{Year: 2024, Month: 3}
	quote := parseQuote([]byte(samplePayload), period)

	if !quote.Published {
		t.Fatal("expected a published quote")
	}
	if !quote.Value.Equal(decimal.NewFromFloat(103.00)) {
		t.Errorf("value %s, expected 103.00", quote.Value)
	}
	if quote.BaseDescriptor != "Average 2022=100.0" {
		t.Errorf("unexpected base descriptor %q", quote.BaseDescriptor)
	}
	if quote.MonthLabel != "03/2024" {
		t.Errorf("unexpected month label %q", quote.MonthLabel)
	}
}

func TestParseQuoteSelectsRequestedPeriod(t *testing.T) {
	quote := parseQuote([]byte(samplePayload), domain.CpiPeriod{Year: 2024, Month: 2})
	if !quote.Published || !quote.Value.Equal(decimal.NewFromFloat(102.10)) {
		t.Errorf("expected the February observation, got %+v", quote)
	}
}

func TestParseQuoteUnavailable(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"period not in payload", samplePayload},
		{"malformed xml", `<indices><DateMonth><year>2024</yea`},
		{"empty payload", ``},
		{
			"missing value",
			`<r><DateMonth><year>2024</year><month>3</month><currBase><baseDesc>x</baseDesc></currBase></DateMonth></r>`,
		},
		{
			"missing base descriptor",
			`<r><DateMonth><year>2024</year><month>3</month><currBase><value>103.0</value></currBase></DateMonth></r>`,
		},
		{
			"non-numeric value",
			`<r><DateMonth><year>2024</year><month>3</month><currBase><baseDesc>x</baseDesc><value>n/a</value></currBase></DateMonth></r>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			period := domain.CpiPeriod{Year: 2024, Month: 3}
			if tc.name == "period not in payload" {
				period = domain.CpiPeriod{Year: 2023, Month: 7}
			}
			if quote := parseQuote([]byte(tc.payload), period); quote.Published {
				t.Errorf("expected unavailable quote, got %+v", quote)
			}
		})
	}
}

func TestNewCBSClientDefaults(t *testing.T) {
	client := NewCBSClient()
	if client.BaseURL != DefaultAPIBaseURL {
		t.Errorf("unexpected base URL %q", client.BaseURL)
	}
	if client.ResourceID != CPIResourceID {
		t.Errorf("unexpected resource id %q", client.ResourceID)
	}
	if client.Timeout <= 0 {
		t.Error("expected a positive default timeout")
	}
}
