package leave

import (
	"context"
	"time"
)

// LeaveRepository is a read-only view over the leave subsystem's rows.
type LeaveRepository interface {
	ListApprovedByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRequest, error)
}
