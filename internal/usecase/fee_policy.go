package usecase

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	defaultFreeJobPosts   = 3
	defaultFeePercent     = 5.0
	defaultMinAmountMinor = 100
	minorUnitsPerMajor    = 100
)

// FeePolicy holds the free-tier size and the platform fee rate (percent).
type FeePolicy struct {
	FreeJobPosts int
	FeePercent   float64
}

func DefaultFeePolicy() FeePolicy {
	return FeePolicy{FreeJobPosts: defaultFreeJobPosts, FeePercent: defaultFeePercent}
}

func (p FeePolicy) normalized() FeePolicy {
	if p.FreeJobPosts < 0 {
		p.FreeJobPosts = 0
	}
	if p.FeePercent <= 0 || math.IsNaN(p.FeePercent) || math.IsInf(p.FeePercent, 0) {
		p.FeePercent = defaultFeePercent
	}
	return p
}

// CalculateFee returns round(totalPayment * rate), half away from zero.
func (p FeePolicy) CalculateFee(totalPayment float64) (int64, error) {
	if !isPositiveFinite(totalPayment) {
		return 0, ErrInvalidAmount
	}
	p = p.normalized()
	fee := decimal.NewFromFloat(totalPayment).
		Mul(decimal.NewFromFloat(p.FeePercent)).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return fee.IntPart(), nil
}

// FreeJobsRemaining for an employer who already posted `posted` jobs.
func (p FeePolicy) FreeJobsRemaining(posted int) int {
	p = p.normalized()
	if posted >= p.FreeJobPosts {
		return 0
	}
	return p.FreeJobPosts - posted
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ToMinorUnits converts whole currency units to gateway minor units (paise).
func ToMinorUnits(amount int64) int64 {
	return decimal.NewFromInt(amount).Mul(decimal.NewFromInt(minorUnitsPerMajor)).IntPart()
}

// ValidateChargeAmount rejects amounts below the smallest chargeable unit.
func ValidateChargeAmount(amountMinor, minAmountMinor int64) error {
	if minAmountMinor <= 0 {
		minAmountMinor = defaultMinAmountMinor
	}
	if amountMinor < minAmountMinor {
		return ErrInvalidAmount
	}
	return nil
}
