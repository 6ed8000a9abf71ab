package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/payroll"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `
	p.id, p.company_id, p.employee_id, p.period_start, p.period_end,
	p.working_days, p.paid_days, p.present_days, p.half_days, p.leave_days,
	p.holiday_days, p.absent_days, p.lop_days,
	p.basic_pay, p.allowance_total, p.allowances_detail, p.ot_pay, p.gross_pay,
	p.employee_statutory, p.employer_statutory, p.lop_deduction,
	p.elective_deduction, p.net_pay, p.needs_review,
	p.status, p.finalized_at, p.finalized_by, p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	var allowancesJSON []byte
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.WorkingDays, &p.PaidDays, &p.PresentDays, &p.HalfDays, &p.LeaveDays,
		&p.HolidayDays, &p.AbsentDays, &p.LOPDays,
		&p.BasicPay, &p.AllowanceTotal, &allowancesJSON, &p.OTPay, &p.GrossPay,
		&p.EmployeeStatutory, &p.EmployerStatutory, &p.LOPDeduction,
		&p.ElectiveDeduction, &p.NetPay, &p.NeedsReview,
		&p.Status, &p.FinalizedAt, &p.FinalizedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}
	if len(allowancesJSON) > 0 {
		if err := json.Unmarshal(allowancesJSON, &p.AllowancesDetail); err != nil {
			return payroll.Payroll{}, fmt.Errorf("failed to decode allowances detail: %w", err)
		}
	}
	return p, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `, e.full_name, e.employee_code
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1 AND p.company_id = $2
	`

	var p payroll.Payroll
	var allowancesJSON []byte
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.WorkingDays, &p.PaidDays, &p.PresentDays, &p.HalfDays, &p.LeaveDays,
		&p.HolidayDays, &p.AbsentDays, &p.LOPDays,
		&p.BasicPay, &p.AllowanceTotal, &allowancesJSON, &p.OTPay, &p.GrossPay,
		&p.EmployeeStatutory, &p.EmployerStatutory, &p.LOPDeduction,
		&p.ElectiveDeduction, &p.NetPay, &p.NeedsReview,
		&p.Status, &p.FinalizedAt, &p.FinalizedBy, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	if len(allowancesJSON) > 0 {
		if err := json.Unmarshal(allowancesJSON, &p.AllowancesDetail); err != nil {
			return payroll.Payroll{}, fmt.Errorf("failed to decode allowances detail: %w", err)
		}
	}

	return p, nil
}

func (r *payrollRepositoryImpl) GetByEmployeePeriodForUpdate(ctx context.Context, employeeID string, start, end time.Time) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		WHERE p.employee_id = $1 AND p.period_start = $2 AND p.period_end = $3
		FOR UPDATE
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, start, end))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to lock payroll record: %w", err)
	}

	return p, nil
}

func (r *payrollRepositoryImpl) Upsert(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	allowancesJSON, err := json.Marshal(record.AllowancesDetail)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to encode allowances detail: %w", err)
	}

	// uk_payroll_employee_period (employee_id, period_start, period_end)
	// keeps one row per employee per period. The service only calls this
	// while the row is absent or still a draft.
	query := `
		INSERT INTO payrolls (
			company_id, employee_id, period_start, period_end,
			working_days, paid_days, present_days, half_days, leave_days,
			holiday_days, absent_days, lop_days,
			basic_pay, allowance_total, allowances_detail, ot_pay, gross_pay,
			employee_statutory, employer_statutory, lop_deduction,
			elective_deduction, net_pay, needs_review, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
		ON CONFLICT (employee_id, period_start, period_end) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			paid_days = EXCLUDED.paid_days,
			present_days = EXCLUDED.present_days,
			half_days = EXCLUDED.half_days,
			leave_days = EXCLUDED.leave_days,
			holiday_days = EXCLUDED.holiday_days,
			absent_days = EXCLUDED.absent_days,
			lop_days = EXCLUDED.lop_days,
			basic_pay = EXCLUDED.basic_pay,
			allowance_total = EXCLUDED.allowance_total,
			allowances_detail = EXCLUDED.allowances_detail,
			ot_pay = EXCLUDED.ot_pay,
			gross_pay = EXCLUDED.gross_pay,
			employee_statutory = EXCLUDED.employee_statutory,
			employer_statutory = EXCLUDED.employer_statutory,
			lop_deduction = EXCLUDED.lop_deduction,
			elective_deduction = EXCLUDED.elective_deduction,
			net_pay = EXCLUDED.net_pay,
			needs_review = EXCLUDED.needs_review,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, company_id, employee_id, period_start, period_end,
			working_days, paid_days, present_days, half_days, leave_days,
			holiday_days, absent_days, lop_days,
			basic_pay, allowance_total, allowances_detail, ot_pay, gross_pay,
			employee_statutory, employer_statutory, lop_deduction,
			elective_deduction, net_pay, needs_review,
			status, finalized_at, finalized_by, created_at, updated_at
	`

	var p payroll.Payroll
	var outJSON []byte
	err = q.QueryRow(ctx, query,
		record.CompanyID, record.EmployeeID, record.PeriodStart, record.PeriodEnd,
		record.WorkingDays, record.PaidDays, record.PresentDays, record.HalfDays, record.LeaveDays,
		record.HolidayDays, record.AbsentDays, record.LOPDays,
		record.BasicPay, record.AllowanceTotal, allowancesJSON, record.OTPay, record.GrossPay,
		record.EmployeeStatutory, record.EmployerStatutory, record.LOPDeduction,
		record.ElectiveDeduction, record.NetPay, record.NeedsReview, record.Status,
	).Scan(
		&p.ID, &p.CompanyID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.WorkingDays, &p.PaidDays, &p.PresentDays, &p.HalfDays, &p.LeaveDays,
		&p.HolidayDays, &p.AbsentDays, &p.LOPDays,
		&p.BasicPay, &p.AllowanceTotal, &outJSON, &p.OTPay, &p.GrossPay,
		&p.EmployeeStatutory, &p.EmployerStatutory, &p.LOPDeduction,
		&p.ElectiveDeduction, &p.NetPay, &p.NeedsReview,
		&p.Status, &p.FinalizedAt, &p.FinalizedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}
	if len(outJSON) > 0 {
		if err := json.Unmarshal(outJSON, &p.AllowancesDetail); err != nil {
			return payroll.Payroll{}, fmt.Errorf("failed to decode allowances detail: %w", err)
		}
	}

	return p, nil
}

func (r *payrollRepositoryImpl) List(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"p.company_id = $1"}
	args := []interface{}{companyID}
	argIdx := 2

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		where = append(where, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.PeriodStart != nil {
		where = append(where, fmt.Sprintf("p.period_start >= $%d", argIdx))
		args = append(args, *filter.PeriodStart)
		argIdx++
	}
	if filter.PeriodEnd != nil {
		where = append(where, fmt.Sprintf("p.period_end <= $%d", argIdx))
		args = append(args, *filter.PeriodEnd)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM payrolls p WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT `+payrollColumns+`, e.full_name, e.employee_code
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.period_start DESC, e.employee_code
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		var allowancesJSON []byte
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
			&p.WorkingDays, &p.PaidDays, &p.PresentDays, &p.HalfDays, &p.LeaveDays,
			&p.HolidayDays, &p.AbsentDays, &p.LOPDays,
			&p.BasicPay, &p.AllowanceTotal, &allowancesJSON, &p.OTPay, &p.GrossPay,
			&p.EmployeeStatutory, &p.EmployerStatutory, &p.LOPDeduction,
			&p.ElectiveDeduction, &p.NetPay, &p.NeedsReview,
			&p.Status, &p.FinalizedAt, &p.FinalizedBy, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		if len(allowancesJSON) > 0 {
			if err := json.Unmarshal(allowancesJSON, &p.AllowancesDetail); err != nil {
				return nil, 0, fmt.Errorf("failed to decode allowances detail: %w", err)
			}
		}
		records = append(records, p)
	}

	return records, totalCount, nil
}

func (r *payrollRepositoryImpl) Approve(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID, payroll.PayrollStatusApproved, payroll.PayrollStatusDraft).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotDraft
		}
		return fmt.Errorf("failed to approve payroll record: %w", err)
	}

	return nil
}

func (r *payrollRepositoryImpl) Finalize(ctx context.Context, id string, companyID string, finalizedBy string, finalizedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = $3, finalized_by = $4, finalized_at = $5, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status != $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID, payroll.PayrollStatusFinalized, finalizedBy, finalizedAt).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollFinalized
		}
		return fmt.Errorf("failed to finalize payroll record: %w", err)
	}

	return nil
}
