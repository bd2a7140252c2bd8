package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cpilink/support-calculator/internal/domain"
)

func quote(value string) domain.CpiQuote {
	v, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return domain.PublishedQuote(v, "base 2022=100", "")
}

func TestIndexIdentityWhenCurrentEqualsBase(t *testing.T) {
	for _, value := range []string{"100.00", "103.7", "98.2", "0.5"} {
		amount := decimal.NewFromInt(4000)
		got, ok := IndexAgainstFixedBase(amount, quote(value), quote(value))
		if !ok {
			t.Fatalf("expected a result for base value %s", value)
		}
		if !got.Equal(amount) {
			t.Errorf("identity violated for index %s: got %s", value, got)
		}
	}
}

func TestIndexReferenceExample(t *testing.T) {
	// 4000 against base 100.00 with current 103.00 must yield 4120.00.
	got, ok := IndexAgainstFixedBase(decimal.NewFromInt(4000), quote("100.00"), quote("103.00"))
	if !ok {
		t.Fatal("expected a result")
	}
	if !got.Equal(decimal.NewFromInt(4120)) {
		t.Errorf("expected 4120, got %s", got)
	}
}

func TestIndexAbsentOnZeroBase(t *testing.T) {
	if _, ok := IndexAgainstFixedBase(decimal.NewFromInt(4000), quote("0"), quote("103.00")); ok {
		t.Error("expected absent result for zero base index")
	}
}

func TestIndexAbsentOnUnavailableQuotes(t *testing.T) {
	amount := decimal.NewFromInt(4000)

	if _, ok := IndexAgainstFixedBase(amount, domain.UnavailableQuote(), quote("103.00")); ok {
		t.Error("expected absent result for unavailable base quote")
	}
	if _, ok := IndexAgainstFixedBase(amount, quote("100.00"), domain.UnavailableQuote()); ok {
		t.Error("expected absent result for unavailable current quote")
	}
	if _, ok := IndexAgainstFixedBase(amount, domain.UnavailableQuote(), domain.UnavailableQuote()); ok {
		t.Error("expected absent result when both quotes are unavailable")
	}
}

func TestIndexDeflation(t *testing.T) {
	got, ok := IndexAgainstFixedBase(decimal.NewFromInt(4000), quote("100.00"), quote("98.00"))
	if !ok {
		t.Fatal("expected a result")
	}
	if !got.Equal(decimal.NewFromInt(3920)) {
		t.Errorf("expected 3920, got %s", got)
	}
}
