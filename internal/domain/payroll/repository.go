package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access for settled payroll rows. Every
// method scopes by companyID to prevent cross-company access.
type PayrollRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Payroll, error)
	// GetByEmployeePeriodForUpdate locks the row for the enclosing
	// transaction; missing rows return ErrPayrollNotFound.
	GetByEmployeePeriodForUpdate(ctx context.Context, employeeID string, start, end time.Time) (Payroll, error)
	Upsert(ctx context.Context, record Payroll) (Payroll, error)
	List(ctx context.Context, companyID string, filter PayrollFilter) ([]Payroll, int64, error)
	Approve(ctx context.Context, id string, companyID string) error
	Finalize(ctx context.Context, id string, companyID string, finalizedBy string, finalizedAt time.Time) error
}
