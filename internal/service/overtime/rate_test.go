package overtime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestResolveRate_FixedBasis(t *testing.T) {
	t.Parallel()

	otType := overtime.OTType{
		RateBasis:  compensation.RateBasisFixed,
		HourlyRate: decPtr("25.50"),
	}

	rate, err := ResolveRate(otType, compensation.CompensationConfig{}, decimal.RequireFromString("176"))

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("25.50")))
}

func TestResolveRate_MultiplierBasis(t *testing.T) {
	t.Parallel()

	otType := overtime.OTType{
		RateBasis:  compensation.RateBasisMultiplier,
		Multiplier: decPtr("1.5"),
	}
	cfg := compensation.CompensationConfig{
		BasicSalary: decimal.RequireFromString("4400"),
	}

	// 4400 / 176 = 25.00 per hour, times 1.5
	rate, err := ResolveRate(otType, cfg, decimal.RequireFromString("176"))

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("37.5")), "got %s", rate)
}

func TestResolveRate_MultiplierRoundsToFourPlaces(t *testing.T) {
	t.Parallel()

	otType := overtime.OTType{
		RateBasis:  compensation.RateBasisMultiplier,
		Multiplier: decPtr("2"),
	}
	cfg := compensation.CompensationConfig{
		BasicSalary: decimal.RequireFromString("5000"),
	}

	// 5000 / 176 = 28.4090909..., times 2 = 56.8181818...
	rate, err := ResolveRate(otType, cfg, decimal.RequireFromString("176"))

	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("56.8182")), "got %s", rate)
}

func TestResolveRate_Misconfigured(t *testing.T) {
	t.Parallel()

	workingHours := decimal.RequireFromString("176")
	cfg := compensation.CompensationConfig{BasicSalary: decimal.RequireFromString("4000")}

	tests := []struct {
		name   string
		otType overtime.OTType
	}{
		{"fixed basis without rate", overtime.OTType{RateBasis: compensation.RateBasisFixed}},
		{"fixed basis with zero rate", overtime.OTType{RateBasis: compensation.RateBasisFixed, HourlyRate: decPtr("0")}},
		{"multiplier basis without multiplier", overtime.OTType{RateBasis: compensation.RateBasisMultiplier}},
		{"multiplier basis with negative multiplier", overtime.OTType{RateBasis: compensation.RateBasisMultiplier, Multiplier: decPtr("-1")}},
		{"unknown basis", overtime.OTType{RateBasis: "hourly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRate(tt.otType, cfg, workingHours)
			assert.ErrorIs(t, err, overtime.ErrOTTypeMisconfigured)
		})
	}
}

func TestResolveRate_MultiplierWithoutSalary(t *testing.T) {
	t.Parallel()

	otType := overtime.OTType{
		RateBasis:  compensation.RateBasisMultiplier,
		Multiplier: decPtr("1.5"),
	}

	_, err := ResolveRate(otType, compensation.CompensationConfig{}, decimal.RequireFromString("176"))

	assert.ErrorIs(t, err, overtime.ErrOTTypeMisconfigured)
}

func TestClaimAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hours    string
		rate     string
		expected string
	}{
		{"whole hours", "3", "25.50", "76.50"},
		{"fractional hours", "2.5", "37.5", "93.75"},
		{"rounds to cents", "1.5", "56.8182", "85.23"},
		{"half cent rounds up", "0.5", "25.01", "12.51"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := ClaimAmount(decimal.RequireFromString(tt.hours), decimal.RequireFromString(tt.rate))
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.expected)), "got %s", amount)
		})
	}
}
