package approval

import "context"

// ApprovalService defines the exception-request workflow.
type ApprovalService interface {
	// Create records a pending request. Creation always succeeds for a
	// known employee; duplicate pending requests of the same type are
	// allowed.
	Create(ctx context.Context, req CreateApprovalRequest) (ApprovalResponse, error)

	// Decide applies a terminal approve/reject decision. A request is
	// decided at most once.
	Decide(ctx context.Context, req DecideApprovalRequest) (ApprovalResponse, error)

	// List retrieves every request, newest first.
	List(ctx context.Context) ([]ApprovalResponse, error)
}
