package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Deactivate(ctx context.Context, id string, companyID string, status EmploymentStatus) error
}
