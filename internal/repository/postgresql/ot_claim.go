package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
)

type otClaimRepositoryImpl struct {
	db *database.DB
}

func NewOTClaimRepository(db *database.DB) overtime.OTClaimRepository {
	return &otClaimRepositoryImpl{db: db}
}

func (r *otClaimRepositoryImpl) Create(ctx context.Context, claim overtime.OTClaim) (overtime.OTClaim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ot_claims (company_id, employee_id, ot_type_id, date, hours, hourly_rate, amount, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, company_id, employee_id, ot_type_id, date, hours, hourly_rate, amount, remarks, created_at, updated_at
	`

	var c overtime.OTClaim
	err := q.QueryRow(ctx, query,
		claim.CompanyID, claim.EmployeeID, claim.OTTypeID, claim.Date,
		claim.Hours, claim.HourlyRate, claim.Amount, claim.Remarks,
	).Scan(
		&c.ID, &c.CompanyID, &c.EmployeeID, &c.OTTypeID, &c.Date,
		&c.Hours, &c.HourlyRate, &c.Amount, &c.Remarks, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return overtime.OTClaim{}, fmt.Errorf("failed to create ot claim: %w", err)
	}

	return c, nil
}

func (r *otClaimRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (overtime.OTClaim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.company_id, c.employee_id, c.ot_type_id, c.date, c.hours,
			c.hourly_rate, c.amount, c.remarks, c.created_at, c.updated_at,
			t.name, e.full_name
		FROM ot_claims c
		JOIN ot_types t ON t.id = c.ot_type_id
		JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1 AND c.company_id = $2
	`

	var c overtime.OTClaim
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&c.ID, &c.CompanyID, &c.EmployeeID, &c.OTTypeID, &c.Date, &c.Hours,
		&c.HourlyRate, &c.Amount, &c.Remarks, &c.CreatedAt, &c.UpdatedAt,
		&c.TypeName, &c.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OTClaim{}, overtime.ErrClaimNotFound
		}
		return overtime.OTClaim{}, fmt.Errorf("failed to get ot claim: %w", err)
	}

	return c, nil
}

// claimStatusCondition translates a derived claim status into a predicate
// over the claim's approval rows. A level-2 row exists only after level 1
// was accepted, so its status wins when present.
func claimStatusCondition(status overtime.ClaimStatus) (string, bool) {
	level1 := func(s overtime.ApprovalStatus) string {
		return fmt.Sprintf(
			"EXISTS (SELECT 1 FROM ot_approvals a WHERE a.claim_id = c.id AND a.level = %d AND a.status = '%s')"+
				" AND NOT EXISTS (SELECT 1 FROM ot_approvals a WHERE a.claim_id = c.id AND a.level = %d)",
			overtime.LevelLineManager, s, overtime.LevelHR,
		)
	}
	level2 := func(s overtime.ApprovalStatus) string {
		return fmt.Sprintf(
			"EXISTS (SELECT 1 FROM ot_approvals a WHERE a.claim_id = c.id AND a.level = %d AND a.status = '%s')",
			overtime.LevelHR, s,
		)
	}

	switch status {
	case overtime.ClaimStatusPendingLevel1:
		return level1(overtime.ApprovalStatusPending), true
	case overtime.ClaimStatusRejectedLevel1:
		return level1(overtime.ApprovalStatusRejected), true
	case overtime.ClaimStatusPendingLevel2:
		return level2(overtime.ApprovalStatusPending), true
	case overtime.ClaimStatusPayable:
		return level2(overtime.ApprovalStatusAccepted), true
	case overtime.ClaimStatusRejectedLevel2:
		return level2(overtime.ApprovalStatusRejected), true
	}
	return "", false
}

func (r *otClaimRepositoryImpl) ListByCompany(ctx context.Context, companyID string, filter overtime.ClaimFilter) ([]overtime.OTClaim, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"c.company_id = $1"}
	args := []interface{}{companyID}
	argIdx := 2

	if filter.Status != nil {
		cond, ok := claimStatusCondition(*filter.Status)
		if !ok {
			// An unrecognized status matches nothing.
			cond = "FALSE"
		}
		where = append(where, cond)
	}
	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("c.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.DateFrom != nil {
		where = append(where, fmt.Sprintf("c.date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		where = append(where, fmt.Sprintf("c.date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*) FROM ot_claims c WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count ot claims: %w", err)
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
		SELECT c.id, c.company_id, c.employee_id, c.ot_type_id, c.date, c.hours,
			c.hourly_rate, c.amount, c.remarks, c.created_at, c.updated_at,
			t.name, e.full_name
		FROM ot_claims c
		JOIN ot_types t ON t.id = c.ot_type_id
		JOIN employees e ON e.id = c.employee_id
		WHERE %s
		ORDER BY c.date DESC, c.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ot claims: %w", err)
	}
	defer rows.Close()

	var claims []overtime.OTClaim
	for rows.Next() {
		var c overtime.OTClaim
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.EmployeeID, &c.OTTypeID, &c.Date, &c.Hours,
			&c.HourlyRate, &c.Amount, &c.Remarks, &c.CreatedAt, &c.UpdatedAt,
			&c.TypeName, &c.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan ot claim: %w", err)
		}
		claims = append(claims, c)
	}

	return claims, totalCount, nil
}

func (r *otClaimRepositoryImpl) ListPayableByEmployeeDate(ctx context.Context, employeeID string, date time.Time) ([]overtime.OTClaim, error) {
	q := GetQuerier(ctx, r.db)

	// A claim is payable when its level-2 approval row is accepted.
	query := `
		SELECT c.id, c.company_id, c.employee_id, c.ot_type_id, c.date, c.hours,
			c.hourly_rate, c.amount, c.remarks, c.created_at, c.updated_at
		FROM ot_claims c
		JOIN ot_approvals a ON a.claim_id = c.id AND a.level = 2 AND a.status = 'accepted'
		WHERE c.employee_id = $1 AND c.date = $2
		ORDER BY c.created_at
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list payable ot claims: %w", err)
	}
	defer rows.Close()

	var claims []overtime.OTClaim
	for rows.Next() {
		var c overtime.OTClaim
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.EmployeeID, &c.OTTypeID, &c.Date, &c.Hours,
			&c.HourlyRate, &c.Amount, &c.Remarks, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payable ot claim: %w", err)
		}
		claims = append(claims, c)
	}

	return claims, nil
}
