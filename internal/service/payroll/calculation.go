package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/domain/attendance"
)

var pointFive = decimal.NewFromFloat(0.5)

// dayCounts is the attendance partition of one pay period.
type dayCounts struct {
	PeriodDays    int
	WorkingDays   decimal.Decimal
	PresentDays   decimal.Decimal
	HalfDays      int
	LeaveDays     decimal.Decimal
	HolidayDays   int
	WeeklyOffDays int
	AbsentDays    int
	LOPDays       decimal.Decimal
}

// partitionDays classifies the period's calendar days from the attendance
// rows. Leave-status attendance rows are skipped: approved leave days come
// from the leave subsystem and are passed in, so a day is never counted
// twice. Days with the loss-of-pay flag count as LOP whatever their status.
func partitionDays(start, end time.Time, days []attendance.AttendanceDay, leaveDays decimal.Decimal) dayCounts {
	counts := dayCounts{
		PeriodDays: int(end.Sub(start).Hours()/24) + 1,
		LeaveDays:  leaveDays,
	}

	for _, day := range days {
		if day.LossOfPay {
			counts.LOPDays = counts.LOPDays.Add(decimal.NewFromInt(1))
			continue
		}

		switch day.Status {
		case attendance.DayStatusPresent:
			counts.PresentDays = counts.PresentDays.Add(decimal.NewFromInt(1))
		case attendance.DayStatusHalfDay:
			counts.HalfDays++
			counts.PresentDays = counts.PresentDays.Add(pointFive)
		case attendance.DayStatusAbsent:
			counts.AbsentDays++
		case attendance.DayStatusHoliday:
			counts.HolidayDays++
		case attendance.DayStatusWeeklyOff:
			counts.WeeklyOffDays++
		case attendance.DayStatusLeave:
			// counted via the leave subsystem
		}
	}

	counts.WorkingDays = decimal.NewFromInt(int64(counts.PeriodDays - counts.HolidayDays - counts.WeeklyOffDays))
	return counts
}

// paidDays is the portion of working days the employee is paid basic for.
// LOP days are included here and deducted separately as a visible payslip
// line, so the deduction happens exactly once.
func (c dayCounts) paidDays() decimal.Decimal {
	paid := c.PresentDays.Add(c.LeaveDays).Add(c.LOPDays)
	if paid.GreaterThan(c.WorkingDays) {
		return c.WorkingDays
	}
	return paid
}

// prorateBasic computes basic pay for the period.
func prorateBasic(basicSalary decimal.Decimal, counts dayCounts) decimal.Decimal {
	if !counts.WorkingDays.IsPositive() {
		return decimal.Zero
	}
	return basicSalary.Mul(counts.paidDays()).Div(counts.WorkingDays).Round(2)
}

// lopDeduction computes the pro-rata deduction for loss-of-pay days.
func lopDeduction(basicSalary decimal.Decimal, counts dayCounts) decimal.Decimal {
	if !counts.WorkingDays.IsPositive() || counts.LOPDays.IsZero() {
		return decimal.Zero
	}
	return basicSalary.Div(counts.WorkingDays).Mul(counts.LOPDays).Round(2)
}
