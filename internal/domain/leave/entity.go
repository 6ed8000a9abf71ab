package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveRequestStatusApproved        LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected        LeaveRequestStatus = "rejected"
)

// LeaveRequest is produced by the leave subsystem and consumed read-only:
// approved leave days count toward paid days in payroll generation.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	StartDate   time.Time
	EndDate     time.Time
	WorkingDays float64
	Status      LeaveRequestStatus
	ApprovedBy  *string
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
