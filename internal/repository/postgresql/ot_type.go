package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
)

type otTypeRepositoryImpl struct {
	db *database.DB
}

func NewOTTypeRepository(db *database.DB) overtime.OTTypeRepository {
	return &otTypeRepositoryImpl{db: db}
}

func (r *otTypeRepositoryImpl) Create(ctx context.Context, otType overtime.OTType) (overtime.OTType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO ot_types (company_id, name, rate_basis, hourly_rate, multiplier, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, name, rate_basis, hourly_rate, multiplier, is_active, created_at, updated_at
	`

	var t overtime.OTType
	err := q.QueryRow(ctx, query,
		otType.CompanyID, otType.Name, otType.RateBasis, otType.HourlyRate, otType.Multiplier, otType.IsActive,
	).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.RateBasis, &t.HourlyRate, &t.Multiplier, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return overtime.OTType{}, fmt.Errorf("failed to create ot type: %w", err)
	}

	return t, nil
}

func (r *otTypeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (overtime.OTType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, rate_basis, hourly_rate, multiplier, is_active, created_at, updated_at
		FROM ot_types
		WHERE id = $1 AND company_id = $2
	`

	var t overtime.OTType
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.RateBasis, &t.HourlyRate, &t.Multiplier, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OTType{}, overtime.ErrOTTypeNotFound
		}
		return overtime.OTType{}, fmt.Errorf("failed to get ot type: %w", err)
	}

	return t, nil
}

func (r *otTypeRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string, activeOnly bool) ([]overtime.OTType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, rate_basis, hourly_rate, multiplier, is_active, created_at, updated_at
		FROM ot_types
		WHERE company_id = $1
	`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ot types: %w", err)
	}
	defer rows.Close()

	var types []overtime.OTType
	for rows.Next() {
		var t overtime.OTType
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.Name, &t.RateBasis, &t.HourlyRate, &t.Multiplier, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ot type: %w", err)
		}
		types = append(types, t)
	}

	return types, nil
}

func (r *otTypeRepositoryImpl) Update(ctx context.Context, companyID string, req overtime.UpdateOTTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, companyID}
	argIdx := 3

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.HourlyRate != nil {
		setParts = append(setParts, fmt.Sprintf("hourly_rate = $%d", argIdx))
		args = append(args, *req.HourlyRate)
		argIdx++
	}
	if req.Multiplier != nil {
		setParts = append(setParts, fmt.Sprintf("multiplier = $%d", argIdx))
		args = append(args, *req.Multiplier)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE ot_types
		SET %s
		WHERE id = $1 AND company_id = $2
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.ErrOTTypeNotFound
		}
		return fmt.Errorf("failed to update ot type: %w", err)
	}

	return nil
}

func (r *otTypeRepositoryImpl) Deactivate(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE ot_types
		SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, companyID).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.ErrOTTypeNotFound
		}
		return fmt.Errorf("failed to deactivate ot type: %w", err)
	}

	return nil
}
