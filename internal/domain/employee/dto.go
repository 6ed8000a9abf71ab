package employee

import (
	"github.com/sghrms/payroll-backend-go/internal/pkg/validator"
	"github.com/sghrms/payroll-backend-go/internal/statutory"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	ManagerID    *string `json:"manager_id,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	Residency    string  `json:"residency"`
	HireDate     string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match NNNN-NNNN"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{Field: "manager_id", Message: "must be a valid UUID"})
	}
	if !statutory.ResidencyClass(r.Residency).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "residency", Message: "must be full, graduated or exempt"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	EmployeeCode     string  `json:"employee_code"`
	FullName         string  `json:"full_name"`
	ManagerID        *string `json:"manager_id,omitempty"`
	Residency        string  `json:"residency"`
	HireDate         string  `json:"hire_date"`
	EmploymentStatus string  `json:"employment_status"`
}
