package compensation

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/pkg/validator"
)

type UpsertCompensationRequest struct {
	EmployeeID        string           `json:"employee_id"`
	BasicSalary       decimal.Decimal  `json:"basic_salary"`
	Allowances        []AllowanceItem  `json:"allowances,omitempty"`
	ElectiveDeduction *decimal.Decimal `json:"elective_deduction,omitempty"`
	EffectiveDate     *string          `json:"effective_date,omitempty"`
}

func (r *UpsertCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	for i, item := range r.Allowances {
		if validator.IsEmpty(item.Name) || item.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "allowances", Message: "item " + strconv.Itoa(i) + " must have a name and non-negative amount"})
		}
	}
	if !validator.IsNonNegativeAmount(r.ElectiveDeduction) {
		errs = append(errs, validator.ValidationError{Field: "elective_deduction", Message: "must be non-negative"})
	}
	if r.EffectiveDate != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CompensationResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	BasicSalary       decimal.Decimal `json:"basic_salary"`
	Allowances        []AllowanceItem `json:"allowances"`
	ElectiveDeduction decimal.Decimal `json:"elective_deduction"`
	EffectiveDate     string          `json:"effective_date"`
}
