package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateBasis selects how an OT hourly rate is derived for the employee.
type RateBasis string

const (
	// RateBasisFixed - the OT type's configured hourly rate is used as-is.
	RateBasisFixed RateBasis = "fixed"
	// RateBasisMultiplier - the OT type's multiplier is applied to the
	// employee's basic-derived hourly rate.
	RateBasisMultiplier RateBasis = "multiplier"
)

// AllowanceItem is one named recurring allowance.
type AllowanceItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// CompensationConfig is an employee's pay configuration. It is read-only
// during any calculation; changes take effect on the next run.
type CompensationConfig struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	BasicSalary decimal.Decimal
	Allowances  []AllowanceItem
	// ElectiveDeduction - voluntary statutory top-ups withheld monthly.
	ElectiveDeduction decimal.Decimal
	EffectiveDate     time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AllowanceTotal sums the configured allowance items.
func (c CompensationConfig) AllowanceTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Allowances {
		total = total.Add(item.Amount)
	}
	return total
}

// HourlyRate derives the basic hourly rate from the monthly salary.
func (c CompensationConfig) HourlyRate(workingHoursPerMonth decimal.Decimal) decimal.Decimal {
	if !workingHoursPerMonth.IsPositive() {
		return decimal.Zero
	}
	return c.BasicSalary.Div(workingHoursPerMonth)
}
