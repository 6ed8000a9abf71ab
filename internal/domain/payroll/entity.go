package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusApproved  PayrollStatus = "approved"
	PayrollStatusFinalized PayrollStatus = "finalized"
)

// Payroll is one employee's settled pay for one period. Draft rows are
// regenerable; finalized rows are append-only history.
type Payroll struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time

	WorkingDays decimal.Decimal
	PaidDays    decimal.Decimal
	PresentDays decimal.Decimal
	HalfDays    int
	LeaveDays   decimal.Decimal
	HolidayDays int
	AbsentDays  int
	LOPDays     decimal.Decimal

	BasicPay          decimal.Decimal
	AllowanceTotal    decimal.Decimal
	AllowancesDetail  map[string]decimal.Decimal
	OTPay             decimal.Decimal
	GrossPay          decimal.Decimal
	EmployeeStatutory decimal.Decimal
	EmployerStatutory decimal.Decimal
	LOPDeduction      decimal.Decimal
	ElectiveDeduction decimal.Decimal
	NetPay            decimal.Decimal
	// NeedsReview flags a negative net pay for manual review instead of
	// rejecting the row.
	NeedsReview bool

	Status      PayrollStatus
	FinalizedAt *time.Time
	FinalizedBy *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
