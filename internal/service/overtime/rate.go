package overtime

import (
	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
)

// ResolveRate resolves the hourly rate for a claim at creation time. A fixed
// basis uses the OT type's configured rate verbatim; a multiplier basis
// applies the multiplier to the employee's basic-derived hourly rate. The
// result is stored on the claim and never recomputed.
func ResolveRate(otType overtime.OTType, cfg compensation.CompensationConfig, workingHoursPerMonth decimal.Decimal) (decimal.Decimal, error) {
	switch otType.RateBasis {
	case compensation.RateBasisFixed:
		if otType.HourlyRate == nil || !otType.HourlyRate.IsPositive() {
			return decimal.Zero, overtime.ErrOTTypeMisconfigured
		}
		return *otType.HourlyRate, nil
	case compensation.RateBasisMultiplier:
		if otType.Multiplier == nil || !otType.Multiplier.IsPositive() {
			return decimal.Zero, overtime.ErrOTTypeMisconfigured
		}
		hourly := cfg.HourlyRate(workingHoursPerMonth)
		if !hourly.IsPositive() {
			return decimal.Zero, overtime.ErrOTTypeMisconfigured
		}
		return hourly.Mul(*otType.Multiplier).Round(4), nil
	}
	return decimal.Zero, overtime.ErrOTTypeMisconfigured
}

// ClaimAmount computes the payable amount for a claim, rounded to cents.
func ClaimAmount(hours, hourlyRate decimal.Decimal) decimal.Decimal {
	return hours.Mul(hourlyRate).Round(2)
}
