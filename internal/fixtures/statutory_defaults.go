package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/config"
	"github.com/sghrms/payroll-backend-go/internal/statutory"
)

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultRateTable returns the built-in contribution rate table. Rates are
// percentages of the capped wage base, keyed by residency class and age band.
func DefaultRateTable() statutory.RateTable {
	return statutory.RateTable{
		Bands: map[statutory.ResidencyClass][]statutory.BandRate{
			statutory.ResidencyFull: {
				{MaxAge: 55, Employee: pct("20"), Employer: pct("17")},
				{MaxAge: 60, Employee: pct("17"), Employer: pct("15.5")},
				{MaxAge: 65, Employee: pct("11.5"), Employer: pct("12")},
				{MaxAge: 70, Employee: pct("7.5"), Employer: pct("9")},
				{MaxAge: statutory.BandOpenEnded, Employee: pct("5"), Employer: pct("7.5")},
			},
			statutory.ResidencyGraduated: {
				{MaxAge: 55, Employee: pct("15"), Employer: pct("9")},
				{MaxAge: 60, Employee: pct("12.5"), Employer: pct("6")},
				{MaxAge: 65, Employee: pct("7.5"), Employer: pct("3.5")},
				{MaxAge: 70, Employee: pct("5"), Employer: pct("3.5")},
				{MaxAge: statutory.BandOpenEnded, Employee: pct("5"), Employer: pct("3.5")},
			},
			statutory.ResidencyExempt: {
				{MaxAge: statutory.BandOpenEnded, Employee: decimal.Zero, Employer: decimal.Zero},
			},
		},
	}
}

// CeilingsFromConfig maps the configured ceilings into the calculator's type.
func CeilingsFromConfig(cfg config.StatutoryConfig) statutory.Ceilings {
	return statutory.Ceilings{
		OrdinaryMonthly:  cfg.OrdinaryWageCeiling,
		AdditionalAnnual: cfg.AdditionalAnnualCeiling,
		MinWageThreshold: cfg.MinWageThreshold,
	}
}
