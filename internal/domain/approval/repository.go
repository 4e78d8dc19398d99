package approval

import "context"

// ApprovalRepository defines data access for approval requests.
type ApprovalRepository interface {
	// Create inserts a new approval request.
	Create(ctx context.Context, request ApprovalRequest) (ApprovalRequest, error)

	// GetByID retrieves a request by id.
	GetByID(ctx context.Context, id string) (ApprovalRequest, error)

	// Update persists a decision on an existing request.
	Update(ctx context.Context, request ApprovalRequest) error

	// ListAll retrieves every request, newest first.
	ListAll(ctx context.Context) ([]ApprovalRequest, error)
}
