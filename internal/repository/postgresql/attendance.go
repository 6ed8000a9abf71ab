package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sghrms/payroll-backend-go/internal/domain/attendance"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, status, clock_in, clock_out,
			loss_of_pay, created_at, updated_at
		FROM attendance_days
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var days []attendance.AttendanceDay
	for rows.Next() {
		var d attendance.AttendanceDay
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.CompanyID, &d.Date, &d.Status, &d.ClockIn, &d.ClockOut,
			&d.LossOfPay, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, d)
	}

	return days, nil
}
