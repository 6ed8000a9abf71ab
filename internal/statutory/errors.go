package statutory

import "errors"

var (
	ErrRateNotConfigured = errors.New("no contribution rate configured for residency class and age band")
	ErrInvalidResidency  = errors.New("invalid residency class")
	ErrInvalidRateTable  = errors.New("rate table is empty or malformed")
	ErrNegativeCeiling   = errors.New("wage ceiling must be non-negative")
)
