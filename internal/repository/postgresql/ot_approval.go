package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
)

type otApprovalRepositoryImpl struct {
	db *database.DB
}

func NewOTApprovalRepository(db *database.DB) overtime.OTApprovalRepository {
	return &otApprovalRepositoryImpl{db: db}
}

const otApprovalColumns = `
	id, claim_id, level, approver_id, status, comment, decided_at, created_at, updated_at
`

func scanOTApproval(row pgx.Row) (overtime.OTApproval, error) {
	var a overtime.OTApproval
	err := row.Scan(
		&a.ID, &a.ClaimID, &a.Level, &a.ApproverID, &a.Status, &a.Comment,
		&a.DecidedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *otApprovalRepositoryImpl) Create(ctx context.Context, approval overtime.OTApproval) (overtime.OTApproval, error) {
	q := GetQuerier(ctx, r.db)

	// uk_ot_approval_active (claim_id, level) WHERE status = 'pending'
	// guarantees at most one active row per level.
	query := `
		INSERT INTO ot_approvals (claim_id, level, approver_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + otApprovalColumns + `
	`

	a, err := scanOTApproval(q.QueryRow(ctx, query,
		approval.ClaimID, approval.Level, approval.ApproverID, approval.Status,
	))
	if err != nil {
		return overtime.OTApproval{}, fmt.Errorf("failed to create ot approval: %w", err)
	}

	return a, nil
}

func (r *otApprovalRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OTApproval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + otApprovalColumns + `
		FROM ot_approvals
		WHERE id = $1
	`

	a, err := scanOTApproval(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OTApproval{}, overtime.ErrApprovalNotFound
		}
		return overtime.OTApproval{}, fmt.Errorf("failed to get ot approval: %w", err)
	}

	return a, nil
}

func (r *otApprovalRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (overtime.OTApproval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + otApprovalColumns + `
		FROM ot_approvals
		WHERE id = $1
		FOR UPDATE
	`

	a, err := scanOTApproval(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OTApproval{}, overtime.ErrApprovalNotFound
		}
		return overtime.OTApproval{}, fmt.Errorf("failed to lock ot approval: %w", err)
	}

	return a, nil
}

func (r *otApprovalRepositoryImpl) ListByClaimID(ctx context.Context, claimID string) ([]overtime.OTApproval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + otApprovalColumns + `
		FROM ot_approvals
		WHERE claim_id = $1
		ORDER BY level, created_at
	`

	rows, err := q.Query(ctx, query, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ot approvals: %w", err)
	}
	defer rows.Close()

	var approvals []overtime.OTApproval
	for rows.Next() {
		a, err := scanOTApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ot approval: %w", err)
		}
		approvals = append(approvals, a)
	}

	return approvals, nil
}

func (r *otApprovalRepositoryImpl) Decide(ctx context.Context, id string, status overtime.ApprovalStatus, approverID string, comment *string, decidedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// The status = 'pending' guard makes the write a no-op when another
	// approver got there first; the caller treats that as a lost race.
	query := `
		UPDATE ot_approvals
		SET status = $2, approver_id = $3, comment = $4, decided_at = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, status, approverID, comment, decidedAt).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to decide ot approval: %w", err)
	}

	return true, nil
}

func (r *otApprovalRepositoryImpl) ListPendingByApprover(ctx context.Context, approverID string, level int) ([]overtime.OTApproval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + otApprovalColumns + `
		FROM ot_approvals
		WHERE approver_id = $1 AND level = $2 AND status = 'pending'
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, approverID, level)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending ot approvals: %w", err)
	}
	defer rows.Close()

	var approvals []overtime.OTApproval
	for rows.Next() {
		a, err := scanOTApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ot approval: %w", err)
		}
		approvals = append(approvals, a)
	}

	return approvals, nil
}

func (r *otApprovalRepositoryImpl) ListPendingByLevel(ctx context.Context, companyID string, level int) ([]overtime.OTApproval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.claim_id, a.level, a.approver_id, a.status, a.comment,
			a.decided_at, a.created_at, a.updated_at
		FROM ot_approvals a
		JOIN ot_claims c ON c.id = a.claim_id
		WHERE c.company_id = $1 AND a.level = $2 AND a.status = 'pending'
		ORDER BY a.created_at
	`

	rows, err := q.Query(ctx, query, companyID, level)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending ot approvals by level: %w", err)
	}
	defer rows.Close()

	var approvals []overtime.OTApproval
	for rows.Next() {
		a, err := scanOTApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ot approval: %w", err)
		}
		approvals = append(approvals, a)
	}

	return approvals, nil
}
