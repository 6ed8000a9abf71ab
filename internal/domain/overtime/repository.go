package overtime

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OTTypeRepository interface {
	Create(ctx context.Context, otType OTType) (OTType, error)
	GetByID(ctx context.Context, id string, companyID string) (OTType, error)
	ListByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]OTType, error)
	Update(ctx context.Context, companyID string, req UpdateOTTypeRequest) error
	Deactivate(ctx context.Context, id string, companyID string) error
}

type OTClaimRepository interface {
	Create(ctx context.Context, claim OTClaim) (OTClaim, error)
	GetByID(ctx context.Context, id string, companyID string) (OTClaim, error)
	ListByCompany(ctx context.Context, companyID string, filter ClaimFilter) ([]OTClaim, int64, error)
	// ListPayableByEmployeeDate returns the claims for one employee-day
	// whose level-2 approval is accepted.
	ListPayableByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]OTClaim, error)
}

type OTApprovalRepository interface {
	Create(ctx context.Context, approval OTApproval) (OTApproval, error)
	GetByID(ctx context.Context, id string) (OTApproval, error)
	// GetByIDForUpdate locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id string) (OTApproval, error)
	ListByClaimID(ctx context.Context, claimID string) ([]OTApproval, error)
	// Decide writes a terminal status; it only touches a pending row and
	// reports whether a row was updated.
	Decide(ctx context.Context, id string, status ApprovalStatus, approverID string, comment *string, decidedAt time.Time) (bool, error)
	ListPendingByApprover(ctx context.Context, approverID string, level int) ([]OTApproval, error)
	ListPendingByLevel(ctx context.Context, companyID string, level int) ([]OTApproval, error)
}

type OTSummaryRepository interface {
	GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (OTDailySummary, error)
	// GetByEmployeeDateForUpdate locks the row for the enclosing transaction.
	GetByEmployeeDateForUpdate(ctx context.Context, employeeID string, date time.Time) (OTDailySummary, error)
	// LockEmployeeDay serializes rebuilds of one employee-day for the
	// enclosing transaction, even before the summary row exists.
	LockEmployeeDay(ctx context.Context, employeeID string, date time.Time) error
	Upsert(ctx context.Context, summary OTDailySummary) (OTDailySummary, error)
	ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]OTDailySummary, error)
	// MarkFinalized locks every summary in the period against later
	// aggregator rewrites and returns the total amount it consumed.
	MarkFinalized(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error)
}
