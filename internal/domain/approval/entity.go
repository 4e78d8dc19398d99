package approval

import "time"

type RequestType string

const (
	TypeLate     RequestType = "late"
	TypeBreak    RequestType = "break"
	TypeCheckout RequestType = "checkout"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ApprovalRequest is a policy-exception record routed to a manager or admin.
// It is created pending and decided exactly once; it never auto-transitions.
type ApprovalRequest struct {
	ID          string
	EmployeeID  string
	Type        RequestType
	Reason      string
	Status      Status
	RequestedAt time.Time
	ApprovedBy  *string
	ApprovedAt  *time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
}
