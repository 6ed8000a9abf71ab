package response

import (
	"errors"
	"net/http"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/domain/employee"
	"github.com/sghrms/payroll-backend-go/internal/domain/overtime"
	"github.com/sghrms/payroll-backend-go/internal/domain/payroll"
	"github.com/sghrms/payroll-backend-go/internal/domain/user"
	"github.com/sghrms/payroll-backend-go/internal/pkg/validator"
	"github.com/sghrms/payroll-backend-go/internal/statutory"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User / role errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUnknownRole):
		Unauthorized(w, "Unknown role in token")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, employee.ErrNoManagerAssigned):
		BadRequest(w, "Employee has no line manager assigned", nil)
	case errors.Is(err, employee.ErrMissingDateOfBirth):
		BadRequest(w, "Employee has no date of birth recorded", nil)
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this employee")

	// Compensation domain errors
	case errors.Is(err, compensation.ErrConfigNotFound):
		BadRequest(w, "Compensation configuration is missing", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOTTypeNotFound):
		NotFound(w, "Overtime type not found")
	case errors.Is(err, overtime.ErrOTTypeInactive):
		BadRequest(w, "Overtime type is inactive", nil)
	case errors.Is(err, overtime.ErrOTTypeMisconfigured):
		BadRequest(w, "Overtime type has no usable rate", nil)
	case errors.Is(err, overtime.ErrClaimNotFound):
		NotFound(w, "Overtime claim not found")
	case errors.Is(err, overtime.ErrApprovalNotFound):
		NotFound(w, "Overtime approval not found")
	case errors.Is(err, overtime.ErrAlreadyDecided):
		Conflict(w, "Approval already acted upon")
	case errors.Is(err, overtime.ErrWrongApprover):
		Forbidden(w, "Approval is not addressed to this approver")
	case errors.Is(err, overtime.ErrWrongLevel):
		Forbidden(w, "Role cannot decide this approval level")
	case errors.Is(err, overtime.ErrSummaryNotFound):
		NotFound(w, "Overtime daily summary not found")
	case errors.Is(err, overtime.ErrSummaryFinalized):
		Conflict(w, "Overtime daily summary is finalized")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollFinalized):
		Conflict(w, "Payroll record is finalized")
	case errors.Is(err, payroll.ErrPayrollNotDraft):
		Conflict(w, "Payroll record is no longer a draft")
	case errors.Is(err, payroll.ErrPayrollOutOfDate):
		Conflict(w, "Payroll no longer matches the period's overtime summaries, regenerate first")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrEmptyWorkingPeriod):
		BadRequest(w, "Period contains no working days", nil)

	// Statutory configuration errors
	case errors.Is(err, statutory.ErrRateNotConfigured):
		BadRequest(w, "Statutory rate not configured for this employee", nil)
	case errors.Is(err, statutory.ErrInvalidResidency):
		BadRequest(w, "Invalid residency class", nil)
	case errors.Is(err, statutory.ErrInvalidRateTable):
		BadRequest(w, "Invalid statutory rate table", nil)
	case errors.Is(err, statutory.ErrNegativeCeiling):
		BadRequest(w, "Statutory ceilings must not be negative", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
