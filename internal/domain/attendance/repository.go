package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is a read-only view over the attendance subsystem's
// rows; this core never writes attendance.
type AttendanceRepository interface {
	ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]AttendanceDay, error)
}
