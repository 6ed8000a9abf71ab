package compensation

import "errors"

var (
	ErrConfigNotFound     = errors.New("compensation config not found for employee")
	ErrInvalidBasicSalary = errors.New("basic salary must be non-negative")
	ErrInvalidAllowance   = errors.New("allowance items must have a name and non-negative amount")
)
