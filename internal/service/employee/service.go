package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/employee"
	"github.com/sghrms/payroll-backend-go/internal/domain/user"
	"github.com/sghrms/payroll-backend-go/internal/statutory"
)

// Service maintains the employee roster this core calculates against. The
// wider HR profile (contacts, documents, org structure) lives elsewhere.
type Service struct {
	employeeRepo employee.EmployeeRepository
}

func NewService(employeeRepo employee.EmployeeRepository) *Service {
	return &Service{employeeRepo: employeeRepo}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if role != user.RoleAdmin {
		return employee.EmployeeResponse{}, user.ErrAdminAccessRequired
	}

	if req.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID, companyID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	newEmployee := employee.Employee{
		CompanyID:        companyID,
		ManagerID:        req.ManagerID,
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		Residency:        statutory.ResidencyClass(req.Residency),
		HireDate:         hireDate,
		EmploymentStatus: employee.EmploymentStatusActive,
	}
	if req.DOB != nil {
		dob, _ := time.Parse("2006-01-02", *req.DOB)
		newEmployee.DOB = &dob
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(created), nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, actorEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if role == user.RoleEmployee && actorEmployeeID != id {
		return employee.EmployeeResponse{}, employee.ErrUnauthorized
	}

	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

func (s *Service) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if role == user.RoleEmployee {
		return nil, user.ErrManagerAccessRequired
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapEmployeeToResponse(emp))
	}
	return result, nil
}

func (s *Service) Deactivate(ctx context.Context, id string, status employee.EmploymentStatus) error {
	companyID, _, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	if role != user.RoleAdmin {
		return user.ErrAdminAccessRequired
	}
	if status != employee.EmploymentStatusResigned && status != employee.EmploymentStatusTerminated {
		status = employee.EmploymentStatusResigned
	}

	return s.employeeRepo.Deactivate(ctx, id, companyID, status)
}

func mapEmployeeToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		ManagerID:        e.ManagerID,
		Residency:        string(e.Residency),
		HireDate:         e.HireDate.Format("2006-01-02"),
		EmploymentStatus: string(e.EmploymentStatus),
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
