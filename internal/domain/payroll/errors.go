package payroll

import "errors"

var (
	ErrPayrollNotFound    = errors.New("payroll record not found")
	ErrPayrollFinalized   = errors.New("payroll record is finalized and cannot be changed")
	ErrPayrollNotDraft    = errors.New("payroll record is no longer a draft")
	ErrPayrollOutOfDate   = errors.New("payroll no longer matches the period's overtime summaries")
	ErrInvalidPeriod      = errors.New("invalid payroll period")
	ErrEmptyWorkingPeriod = errors.New("period contains no working days")
)
