package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/pkg/database"
)

type compensationRepositoryImpl struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.CompensationRepository {
	return &compensationRepositoryImpl{db: db}
}

func (r *compensationRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) (compensation.CompensationConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, basic_salary, allowances,
			elective_deduction, effective_date, created_at, updated_at
		FROM compensation_configs
		WHERE employee_id = $1 AND company_id = $2 AND effective_date <= NOW()
		ORDER BY effective_date DESC
		LIMIT 1
	`

	var c compensation.CompensationConfig
	var allowancesJSON []byte
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&c.ID, &c.EmployeeID, &c.CompanyID, &c.BasicSalary, &allowancesJSON,
		&c.ElectiveDeduction, &c.EffectiveDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return compensation.CompensationConfig{}, compensation.ErrConfigNotFound
		}
		return compensation.CompensationConfig{}, fmt.Errorf("failed to get compensation config: %w", err)
	}

	if len(allowancesJSON) > 0 {
		if err := json.Unmarshal(allowancesJSON, &c.Allowances); err != nil {
			return compensation.CompensationConfig{}, fmt.Errorf("failed to decode allowances: %w", err)
		}
	}

	return c, nil
}

func (r *compensationRepositoryImpl) Upsert(ctx context.Context, config compensation.CompensationConfig) (compensation.CompensationConfig, error) {
	q := GetQuerier(ctx, r.db)

	allowancesJSON, err := json.Marshal(config.Allowances)
	if err != nil {
		return compensation.CompensationConfig{}, fmt.Errorf("failed to encode allowances: %w", err)
	}

	query := `
		INSERT INTO compensation_configs (
			employee_id, company_id, basic_salary, allowances, elective_deduction, effective_date
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, effective_date) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			allowances = EXCLUDED.allowances,
			elective_deduction = EXCLUDED.elective_deduction,
			updated_at = NOW()
		RETURNING id, employee_id, company_id, basic_salary, allowances,
			elective_deduction, effective_date, created_at, updated_at
	`

	var c compensation.CompensationConfig
	var outJSON []byte
	err = q.QueryRow(ctx, query,
		config.EmployeeID, config.CompanyID, config.BasicSalary, allowancesJSON,
		config.ElectiveDeduction, config.EffectiveDate,
	).Scan(
		&c.ID, &c.EmployeeID, &c.CompanyID, &c.BasicSalary, &outJSON,
		&c.ElectiveDeduction, &c.EffectiveDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return compensation.CompensationConfig{}, fmt.Errorf("failed to upsert compensation config: %w", err)
	}

	if len(outJSON) > 0 {
		if err := json.Unmarshal(outJSON, &c.Allowances); err != nil {
			return compensation.CompensationConfig{}, fmt.Errorf("failed to decode allowances: %w", err)
		}
	}

	return c, nil
}
