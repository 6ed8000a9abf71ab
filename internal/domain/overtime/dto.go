package overtime

import (
	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/domain/compensation"
	"github.com/sghrms/payroll-backend-go/internal/pkg/validator"
)

// ========== OT TYPE DTOs ==========

type CreateOTTypeRequest struct {
	Name       string           `json:"name"`
	RateBasis  string           `json:"rate_basis"` // "fixed" or "multiplier"
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	Multiplier *decimal.Decimal `json:"multiplier,omitempty"`
}

func (r *CreateOTTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	switch compensation.RateBasis(r.RateBasis) {
	case compensation.RateBasisFixed:
		if r.HourlyRate == nil || !r.HourlyRate.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be positive for fixed basis"})
		}
	case compensation.RateBasisMultiplier:
		if r.Multiplier == nil || !r.Multiplier.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be positive for multiplier basis"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "rate_basis", Message: "must be fixed or multiplier"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOTTypeRequest struct {
	ID         string           `json:"id"`
	Name       *string          `json:"name,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	Multiplier *decimal.Decimal `json:"multiplier,omitempty"`
	IsActive   *bool            `json:"is_active,omitempty"`
}

type OTTypeResponse struct {
	ID         string           `json:"id"`
	CompanyID  string           `json:"company_id"`
	Name       string           `json:"name"`
	RateBasis  string           `json:"rate_basis"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	Multiplier *decimal.Decimal `json:"multiplier,omitempty"`
	IsActive   bool             `json:"is_active"`
}

// ========== CLAIM DTOs ==========

type CreateClaimRequest struct {
	EmployeeID string          `json:"employee_id"`
	OTTypeID   string          `json:"ot_type_id"`
	Date       string          `json:"date"`
	Hours      decimal.Decimal `json:"hours"`
	Remarks    *string         `json:"remarks,omitempty"`
}

func (r *CreateClaimRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.OTTypeID) {
		errs = append(errs, validator.ValidationError{Field: "ot_type_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsPositiveAmount(r.Hours) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClaimFilter struct {
	EmployeeID *string
	Status     *ClaimStatus
	DateFrom   *string
	DateTo     *string
	Page       int
	Limit      int
}

type ClaimResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	OTTypeID     string          `json:"ot_type_id"`
	TypeName     string          `json:"type_name,omitempty"`
	Date         string          `json:"date"`
	Hours        decimal.Decimal `json:"hours"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	Amount       decimal.Decimal `json:"amount"`
	Remarks      *string         `json:"remarks,omitempty"`
	Status       ClaimStatus     `json:"status"`
}

type ListClaimResponse struct {
	Data       []ClaimResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

// ========== APPROVAL DTOs ==========

type DecideApprovalRequest struct {
	Decision string  `json:"decision"` // "accepted" or "rejected"
	Comment  *string `json:"comment,omitempty"`
}

func (r *DecideApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	status := ApprovalStatus(r.Decision)
	if status != ApprovalStatusAccepted && status != ApprovalStatusRejected {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be accepted or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApprovalResponse struct {
	ID         string  `json:"id"`
	ClaimID    string  `json:"claim_id"`
	Level      int     `json:"level"`
	ApproverID *string `json:"approver_id,omitempty"`
	Status     string  `json:"status"`
	Comment    *string `json:"comment,omitempty"`
	DecidedAt  *string `json:"decided_at,omitempty"`
}

// ========== SUMMARY DTOs ==========

type SummaryResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ClaimCount  int             `json:"claim_count"`
	Status      string          `json:"status"`
}
