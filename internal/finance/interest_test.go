package finance

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSimpleAmount(t *testing.T) {
	got, err := SimpleAmount(1000, 5, 2)
	if err != nil {
		t.Fatalf("simple amount: %v", err)
	}
	if !almostEqual(got, 1100) {
		t.Fatalf("simple amount = %f, want 1100", got)
	}
}

func TestCompoundAmount(t *testing.T) {
	got, err := CompoundAmount(1000, 5, 12, 2)
	if err != nil {
		t.Fatalf("compound amount: %v", err)
	}
	want := 1000 * math.Pow(1+0.05/12, 24)
	if !almostEqual(got, want) {
		t.Fatalf("compound amount = %f, want %f", got, want)
	}
}

func TestCompoundAnnualMatchesSimpleOverOneYear(t *testing.T) {
	simple, err := SimpleAmount(500, 8, 1)
	if err != nil {
		t.Fatalf("simple amount: %v", err)
	}
	compound, err := CompoundAmount(500, 8, 1, 1)
	if err != nil {
		t.Fatalf("compound amount: %v", err)
	}
	if !almostEqual(simple, compound) {
		t.Fatalf("one-year annual compounding should equal simple interest: %f vs %f", simple, compound)
	}
}

func TestAnnuityAmount(t *testing.T) {
	got, err := AnnuityAmount(100, 6, 12, 1)
	if err != nil {
		t.Fatalf("annuity amount: %v", err)
	}
	rate := 0.06 / 12
	want := 100 * ((math.Pow(1+rate, 12) - 1) / rate)
	if !almostEqual(got, want) {
		t.Fatalf("annuity amount = %f, want %f", got, want)
	}
}

func TestRejectsNonPositiveInputs(t *testing.T) {
	if _, err := SimpleAmount(0, 5, 1); !errors.Is(err, ErrNonPositivePrincipal) {
		t.Fatalf("expected principal error, got %v", err)
	}
	if _, err := SimpleAmount(100, -1, 1); !errors.Is(err, ErrNonPositiveRate) {
		t.Fatalf("expected rate error, got %v", err)
	}
	if _, err := CompoundAmount(100, 5, 0, 1); !errors.Is(err, ErrNonPositivePeriods) {
		t.Fatalf("expected periods error, got %v", err)
	}
	if _, err := AnnuityAmount(-10, 5, 12, 1); !errors.Is(err, ErrNonPositivePayment) {
		t.Fatalf("expected payment error, got %v", err)
	}
	if _, err := AnnuityAmount(10, 5, 12, 0); !errors.Is(err, ErrNonPositiveYears) {
		t.Fatalf("expected years error, got %v", err)
	}
}
