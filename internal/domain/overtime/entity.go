package overtime

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
)

// OTType is a company's overtime category. It carries either a fixed hourly
// rate or a multiplier over the employee's basic-derived hourly rate; the
// rate is resolved once at claim creation and stored on the claim.
type OTType struct {
	ID         string
	CompanyID  string
	Name       string
	RateBasis  compensation.RateBasis
	HourlyRate *decimal.Decimal
	Multiplier *decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OTClaim is one overtime submission. Immutable once its approval chain
// reaches a terminal state; rejected claims are never reopened.
type OTClaim struct {
	ID         string
	CompanyID  string
	EmployeeID string
	OTTypeID   string
	Date       time.Time
	Hours      decimal.Decimal
	// HourlyRate is the rate resolved when the claim was created. Later
	// changes to the OT type or salary never touch existing claims.
	HourlyRate decimal.Decimal
	Amount     decimal.Decimal
	Remarks    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	TypeName     *string
	EmployeeName *string
}

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusAccepted ApprovalStatus = "accepted"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// IsTerminal reports whether no further transition is defined.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusAccepted || s == ApprovalStatusRejected
}

const (
	// LevelLineManager - first approval level
	LevelLineManager = 1
	// LevelHR - second and final approval level
	LevelHR = 2
)

// OTApproval is one approval row per level per claim. The level-2 row exists
// only after the level-1 row is accepted.
type OTApproval struct {
	ID      string
	ClaimID string
	Level   int
	// ApproverID is the addressed approver for level 1 (the line manager)
	// and the deciding HR user for level 2, nil until decided.
	ApproverID *string
	Status     ApprovalStatus
	Comment    *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ClaimStatus is the derived overall state of a claim. It is computed from
// the approval rows and never stored.
type ClaimStatus string

const (
	ClaimStatusPendingLevel1  ClaimStatus = "pending_level1"
	ClaimStatusPendingLevel2  ClaimStatus = "pending_level2"
	ClaimStatusPayable        ClaimStatus = "payable"
	ClaimStatusRejectedLevel1 ClaimStatus = "rejected_level1"
	ClaimStatusRejectedLevel2 ClaimStatus = "rejected_level2"
)

// DeriveClaimStatus computes the claim's overall state from its approval
// rows.
func DeriveClaimStatus(approvals []OTApproval) ClaimStatus {
	var level1, level2 *OTApproval
	for i := range approvals {
		switch approvals[i].Level {
		case LevelLineManager:
			level1 = &approvals[i]
		case LevelHR:
			level2 = &approvals[i]
		}
	}

	if level1 == nil || level1.Status == ApprovalStatusPending {
		return ClaimStatusPendingLevel1
	}
	if level1.Status == ApprovalStatusRejected {
		return ClaimStatusRejectedLevel1
	}
	if level2 == nil || level2.Status == ApprovalStatusPending {
		return ClaimStatusPendingLevel2
	}
	if level2.Status == ApprovalStatusRejected {
		return ClaimStatusRejectedLevel2
	}
	return ClaimStatusPayable
}

type SummaryStatus string

const (
	SummaryStatusDraft     SummaryStatus = "draft"
	SummaryStatusApproved  SummaryStatus = "approved"
	SummaryStatusFinalized SummaryStatus = "finalized"
)

// OTDailySummary is the unique per (employee, date) aggregation of payable
// claims. Immutable once finalized by payroll.
type OTDailySummary struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	Date        time.Time
	TotalHours  decimal.Decimal
	TotalAmount decimal.Decimal
	ClaimCount  int
	Status      SummaryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
