package overtime

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sghrms/payroll-backend-go/internal/domain/user"
)

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
