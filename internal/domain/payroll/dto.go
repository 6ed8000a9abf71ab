package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sghrms/payroll-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	PeriodStart string   `json:"period_start"`
	PeriodEnd   string   `json:"period_end"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, _, ok := validator.IsValidPeriod(r.PeriodStart, r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period_start and period_end must be YYYY-MM-DD with start <= end"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	EmployeeID  *string
	Status      *PayrollStatus
	PeriodStart *string
	PeriodEnd   *string
	Page        int
	Limit       int
}

type PayrollResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`

	WorkingDays decimal.Decimal `json:"working_days"`
	PaidDays    decimal.Decimal `json:"paid_days"`
	LOPDays     decimal.Decimal `json:"lop_days"`

	BasicPay          decimal.Decimal            `json:"basic_pay"`
	AllowanceTotal    decimal.Decimal            `json:"allowance_total"`
	AllowancesDetail  map[string]decimal.Decimal `json:"allowances_detail,omitempty"`
	OTPay             decimal.Decimal            `json:"ot_pay"`
	GrossPay          decimal.Decimal            `json:"gross_pay"`
	EmployeeStatutory decimal.Decimal            `json:"employee_statutory"`
	EmployerStatutory decimal.Decimal            `json:"employer_statutory"`
	LOPDeduction      decimal.Decimal            `json:"lop_deduction"`
	ElectiveDeduction decimal.Decimal            `json:"elective_deduction"`
	NetPay            decimal.Decimal            `json:"net_pay"`
	NeedsReview       bool                       `json:"needs_review"`

	Status      string  `json:"status"`
	FinalizedAt *string `json:"finalized_at,omitempty"`
}

type ListPayrollResponse struct {
	Data       []PayrollResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// GenerateFailure reports one employee's generation error inside a batch run.
type GenerateFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type BatchGenerateResponse struct {
	Generated []PayrollResponse `json:"generated"`
	Failures  []GenerateFailure `json:"failures,omitempty"`
}
