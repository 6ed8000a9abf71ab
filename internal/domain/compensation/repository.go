package compensation

import "context"

type CompensationRepository interface {
	// GetByEmployeeID returns the employee's current config (latest
	// effective date not after today).
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (CompensationConfig, error)
	Upsert(ctx context.Context, config CompensationConfig) (CompensationConfig, error)
}
