package finance

import (
	"errors"
	"math"
)

var (
	ErrNonPositivePrincipal = errors.New("finance: principal must be positive")
	ErrNonPositiveRate      = errors.New("finance: rate must be positive")
	ErrNonPositiveYears     = errors.New("finance: years must be positive")
	ErrNonPositivePeriods   = errors.New("finance: compounding periods must be positive")
	ErrNonPositivePayment   = errors.New("finance: payment must be positive")
)

// SimpleAmount returns the maturity amount of a principal earning
// simple interest: p * (1 + (r/100) * t).
func SimpleAmount(principal, annualRatePct, years float64) (float64, error) {
	if principal <= 0 {
		return 0, ErrNonPositivePrincipal
	}
	if annualRatePct <= 0 {
		return 0, ErrNonPositiveRate
	}
	if years <= 0 {
		return 0, ErrNonPositiveYears
	}
	return principal * (1 + (annualRatePct/100)*years), nil
}

// CompoundAmount returns the maturity amount of a principal compounded
// n times per year: p * (1 + (r/100)/n)^(n*t).
func CompoundAmount(principal, annualRatePct float64, periodsPerYear int, years float64) (float64, error) {
	if principal <= 0 {
		return 0, ErrNonPositivePrincipal
	}
	if annualRatePct <= 0 {
		return 0, ErrNonPositiveRate
	}
	if periodsPerYear <= 0 {
		return 0, ErrNonPositivePeriods
	}
	if years <= 0 {
		return 0, ErrNonPositiveYears
	}
	ratePerPeriod := (annualRatePct / 100) / float64(periodsPerYear)
	exponent := float64(periodsPerYear) * years
	return principal * math.Pow(1+ratePerPeriod, exponent), nil
}

// AnnuityAmount returns the future value of a fixed payment made every
// compounding period: pmt * (((1 + i)^(n*t) - 1) / i) with
// i = (r/100)/n.
func AnnuityAmount(payment, annualRatePct float64, periodsPerYear int, years float64) (float64, error) {
	if payment <= 0 {
		return 0, ErrNonPositivePayment
	}
	if annualRatePct <= 0 {
		return 0, ErrNonPositiveRate
	}
	if periodsPerYear <= 0 {
		return 0, ErrNonPositivePeriods
	}
	if years <= 0 {
		return 0, ErrNonPositiveYears
	}
	ratePerPeriod := (annualRatePct / 100) / float64(periodsPerYear)
	exponent := float64(periodsPerYear) * years
	return payment * ((math.Pow(1+ratePerPeriod, exponent) - 1) / ratePerPeriod), nil
}
