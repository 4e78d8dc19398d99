package approval

import "errors"

// Approval domain errors
var (
	ErrApprovalNotFound = errors.New("approval request not found")
	ErrAlreadyProcessed = errors.New("approval request has already been decided")
)
