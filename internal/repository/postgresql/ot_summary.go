package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
)

type otSummaryRepositoryImpl struct {
	db *database.DB
}

func NewOTSummaryRepository(db *database.DB) overtime.OTSummaryRepository {
	return &otSummaryRepositoryImpl{db: db}
}

const otSummaryColumns = `
	id, company_id, employee_id, date, total_hours, total_amount, claim_count, status, created_at, updated_at
`

func scanOTSummary(row pgx.Row) (overtime.OTDailySummary, error) {
	var s overtime.OTDailySummary
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.EmployeeID, &s.Date, &s.TotalHours, &s.TotalAmount,
		&s.ClaimCount, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *otSummaryRepositoryImpl) GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (overtime.OTDailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + otSummaryColumns + `
		FROM ot_daily_summaries
		WHERE employee_id = $1 AND date = $2
	`

	s, err := scanOTSummary(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OTDailySummary{}, overtime.ErrSummaryNotFound
		}
		return overtime.OTDailySummary{}, fmt.Errorf("failed to get ot daily summary: %w", err)
	}

	return s, nil
}

func (r *otSummaryRepositoryImpl) GetByEmployeeDateForUpdate(ctx context.Context, employeeID string, date time.Time) (overtime.OTDailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + otSummaryColumns + `
		FROM ot_daily_summaries
		WHERE employee_id = $1 AND date = $2
		FOR UPDATE
	`

	s, err := scanOTSummary(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OTDailySummary{}, overtime.ErrSummaryNotFound
		}
		return overtime.OTDailySummary{}, fmt.Errorf("failed to lock ot daily summary: %w", err)
	}

	return s, nil
}

func (r *otSummaryRepositoryImpl) LockEmployeeDay(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	// Transaction-scoped advisory lock keyed on (employee, date). FOR
	// UPDATE has no row to grab before the first upsert of the day.
	query := `SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2, 0))`

	if _, err := q.Exec(ctx, query, employeeID, date.Format("2006-01-02")); err != nil {
		return fmt.Errorf("failed to lock employee day: %w", err)
	}

	return nil
}

func (r *otSummaryRepositoryImpl) Upsert(ctx context.Context, summary overtime.OTDailySummary) (overtime.OTDailySummary, error) {
	q := GetQuerier(ctx, r.db)

	// uk_ot_summary_employee_date (employee_id, date) makes the summary
	// unique per employee-day.
	query := `
		INSERT INTO ot_daily_summaries (company_id, employee_id, date, total_hours, total_amount, claim_count, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			total_hours = EXCLUDED.total_hours,
			total_amount = EXCLUDED.total_amount,
			claim_count = EXCLUDED.claim_count,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING ` + otSummaryColumns + `
	`

	s, err := scanOTSummary(q.QueryRow(ctx, query,
		summary.CompanyID, summary.EmployeeID, summary.Date,
		summary.TotalHours, summary.TotalAmount, summary.ClaimCount, summary.Status,
	))
	if err != nil {
		return overtime.OTDailySummary{}, fmt.Errorf("failed to upsert ot daily summary: %w", err)
	}

	return s, nil
}

func (r *otSummaryRepositoryImpl) ListByEmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) ([]overtime.OTDailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + otSummaryColumns + `
		FROM ot_daily_summaries
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list ot daily summaries: %w", err)
	}
	defer rows.Close()

	var summaries []overtime.OTDailySummary
	for rows.Next() {
		s, err := scanOTSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ot daily summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

func (r *otSummaryRepositoryImpl) MarkFinalized(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	// RETURNING hands back what was actually locked in, so the caller can
	// verify the settled total against the amount it is paying out.
	query := `
		UPDATE ot_daily_summaries
		SET status = $4, updated_at = NOW()
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		RETURNING total_amount
	`

	rows, err := q.Query(ctx, query, employeeID, start, end, overtime.SummaryStatusFinalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to finalize ot daily summaries: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan finalized ot daily summary: %w", err)
		}
		total = total.Add(amount)
	}

	return total, nil
}
