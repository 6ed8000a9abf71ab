package attendance

import "time"

// DayStatus is the attendance subsystem's classification of one calendar day.
type DayStatus string

const (
	DayStatusPresent   DayStatus = "present"
	DayStatusAbsent    DayStatus = "absent"
	DayStatusHalfDay   DayStatus = "half_day"
	DayStatusLeave     DayStatus = "leave"
	DayStatusHoliday   DayStatus = "holiday"
	DayStatusWeeklyOff DayStatus = "weekly_off"
)

// AttendanceDay is one employee-day produced by the attendance subsystem.
// This core consumes it read-only.
type AttendanceDay struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Status     DayStatus
	ClockIn    *time.Time
	ClockOut   *time.Time
	// LossOfPay marks the day as unpaid absence for payroll purposes.
	LossOfPay bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
