package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sghrms/payroll-backend-go/internal/domain/attendance"
)

func day(date string, status attendance.DayStatus, lop bool) attendance.AttendanceDay {
	d, _ := time.Parse("2006-01-02", date)
	return attendance.AttendanceDay{Date: d, Status: status, LossOfPay: lop}
}

func TestPartitionDays(t *testing.T) {
	t.Parallel()

	start, _ := time.Parse("2006-01-02", "2026-06-01")
	end, _ := time.Parse("2006-01-02", "2026-06-07")

	days := []attendance.AttendanceDay{
		day("2026-06-01", attendance.DayStatusPresent, false),
		day("2026-06-02", attendance.DayStatusHalfDay, false),
		day("2026-06-03", attendance.DayStatusAbsent, true),
		day("2026-06-04", attendance.DayStatusLeave, false),
		day("2026-06-05", attendance.DayStatusHoliday, false),
		day("2026-06-06", attendance.DayStatusWeeklyOff, false),
		day("2026-06-07", attendance.DayStatusAbsent, false),
	}

	counts := partitionDays(start, end, days, decimal.NewFromInt(1))

	assert.Equal(t, 7, counts.PeriodDays)
	assert.True(t, counts.WorkingDays.Equal(decimal.NewFromInt(5)), "got %s", counts.WorkingDays)
	assert.True(t, counts.PresentDays.Equal(decimal.NewFromFloat(1.5)), "got %s", counts.PresentDays)
	assert.Equal(t, 1, counts.HalfDays)
	assert.True(t, counts.LeaveDays.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, 1, counts.HolidayDays)
	assert.Equal(t, 1, counts.WeeklyOffDays)
	assert.Equal(t, 1, counts.AbsentDays)
	assert.True(t, counts.LOPDays.Equal(decimal.NewFromInt(1)))
}

func TestPaidDays_IncludesLOPOnce(t *testing.T) {
	t.Parallel()

	counts := dayCounts{
		WorkingDays: decimal.NewFromInt(22),
		PresentDays: decimal.NewFromInt(18),
		LeaveDays:   decimal.NewFromInt(2),
		LOPDays:     decimal.NewFromInt(2),
	}

	// LOP days are paid in basic and deducted as their own line.
	assert.True(t, counts.paidDays().Equal(decimal.NewFromInt(22)))
}

func TestPaidDays_CappedAtWorkingDays(t *testing.T) {
	t.Parallel()

	counts := dayCounts{
		WorkingDays: decimal.NewFromInt(20),
		PresentDays: decimal.NewFromInt(19),
		LeaveDays:   decimal.NewFromInt(3),
	}

	assert.True(t, counts.paidDays().Equal(decimal.NewFromInt(20)))
}

func TestProrateBasic(t *testing.T) {
	t.Parallel()

	counts := dayCounts{
		WorkingDays: decimal.NewFromInt(22),
		PresentDays: decimal.NewFromInt(20),
	}

	// 4400 * 20/22 = 4000
	basic := prorateBasic(decimal.NewFromInt(4400), counts)
	assert.True(t, basic.Equal(decimal.NewFromInt(4000)), "got %s", basic)
}

func TestProrateBasic_RoundsToCents(t *testing.T) {
	t.Parallel()

	counts := dayCounts{
		WorkingDays: decimal.NewFromInt(21),
		PresentDays: decimal.NewFromInt(20),
	}

	// 5000 * 20/21 = 4761.904761... -> 4761.90
	basic := prorateBasic(decimal.NewFromInt(5000), counts)
	assert.True(t, basic.Equal(decimal.RequireFromString("4761.90")), "got %s", basic)
}

func TestLOPDeduction(t *testing.T) {
	t.Parallel()

	counts := dayCounts{
		WorkingDays: decimal.NewFromInt(22),
		LOPDays:     decimal.NewFromInt(2),
	}

	// 4400/22 * 2 = 400
	lop := lopDeduction(decimal.NewFromInt(4400), counts)
	assert.True(t, lop.Equal(decimal.NewFromInt(400)), "got %s", lop)
}

func TestLOPDeduction_ZeroWithoutLOPDays(t *testing.T) {
	t.Parallel()

	counts := dayCounts{WorkingDays: decimal.NewFromInt(22)}
	assert.True(t, lopDeduction(decimal.NewFromInt(4400), counts).IsZero())
}
