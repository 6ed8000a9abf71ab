package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeInactive   = errors.New("employee is not active")
	ErrNoManagerAssigned  = errors.New("employee has no line manager assigned")
	ErrMissingDateOfBirth = errors.New("employee has no date of birth recorded")
	ErrUnauthorized       = errors.New("unauthorized to access this employee")
)
