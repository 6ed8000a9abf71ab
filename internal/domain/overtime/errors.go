package overtime

import "errors"

var (
	ErrOTTypeNotFound      = errors.New("overtime type not found")
	ErrOTTypeInactive      = errors.New("overtime type is inactive")
	ErrOTTypeMisconfigured = errors.New("overtime type has no usable rate for its basis")
	ErrClaimNotFound       = errors.New("overtime claim not found")
	ErrApprovalNotFound    = errors.New("overtime approval not found")
	ErrAlreadyDecided      = errors.New("approval already acted upon")
	ErrWrongApprover       = errors.New("approval is not addressed to this approver")
	ErrWrongLevel          = errors.New("approver role cannot decide this level")
	ErrSummaryNotFound     = errors.New("overtime daily summary not found")
	ErrSummaryFinalized    = errors.New("overtime daily summary is finalized and cannot be changed")
)
