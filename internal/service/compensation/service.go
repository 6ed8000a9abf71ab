package compensation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/domain/employee"
	"github.com/sghrms/payroll-backend-go/internal/domain/user"
)

// Service maintains employee compensation configuration. Changes never touch
// existing overtime claims or generated payroll; they apply from the next
// calculation onward.
type Service struct {
	compRepo     compensation.CompensationRepository
	employeeRepo employee.EmployeeRepository
}

func NewService(compRepo compensation.CompensationRepository, employeeRepo employee.EmployeeRepository) *Service {
	return &Service{compRepo: compRepo, employeeRepo: employeeRepo}
}

func (s *Service) Upsert(ctx context.Context, req compensation.UpsertCompensationRequest) (compensation.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.CompensationResponse{}, err
	}

	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}
	if role != user.RoleAdmin {
		return compensation.CompensationResponse{}, user.ErrAdminAccessRequired
	}

	// The employee must exist in the caller's company.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return compensation.CompensationResponse{}, err
	}

	effectiveDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.EffectiveDate != nil {
		effectiveDate, _ = time.Parse("2006-01-02", *req.EffectiveDate)
	}

	cfg := compensation.CompensationConfig{
		EmployeeID:    req.EmployeeID,
		CompanyID:     companyID,
		BasicSalary:   req.BasicSalary,
		Allowances:    req.Allowances,
		EffectiveDate: effectiveDate,
	}
	if req.ElectiveDeduction != nil {
		cfg.ElectiveDeduction = *req.ElectiveDeduction
	}

	saved, err := s.compRepo.Upsert(ctx, cfg)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}
	return mapConfigToResponse(saved), nil
}

// Get returns the employee's current configuration. Employees may read their
// own; managers and admins may read anyone's in the company.
func (s *Service) Get(ctx context.Context, employeeID string) (compensation.CompensationResponse, error) {
	companyID, actorEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}
	if role == user.RoleEmployee && actorEmployeeID != employeeID {
		return compensation.CompensationResponse{}, employee.ErrUnauthorized
	}

	cfg, err := s.compRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return compensation.CompensationResponse{}, err
	}
	return mapConfigToResponse(cfg), nil
}

func mapConfigToResponse(cfg compensation.CompensationConfig) compensation.CompensationResponse {
	allowances := cfg.Allowances
	if allowances == nil {
		allowances = []compensation.AllowanceItem{}
	}
	return compensation.CompensationResponse{
		ID:                cfg.ID,
		EmployeeID:        cfg.EmployeeID,
		BasicSalary:       cfg.BasicSalary,
		Allowances:        allowances,
		ElectiveDeduction: cfg.ElectiveDeduction,
		EffectiveDate:     cfg.EffectiveDate.Format("2006-01-02"),
	}
}

// Helper to get company_id, employee_id and role from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, _ = claims["employee_id"].(string)

	roleStr, _ := claims["role"].(string)
	role, ok = user.ParseRole(roleStr)
	if !ok {
		return "", "", "", user.ErrUnknownRole
	}

	return companyID, employeeID, role, nil
}
