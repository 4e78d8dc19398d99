package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sshraki/Attendance/internal/domain/approval"
	"github.com/sshraki/Attendance/internal/pkg/database"
)

type approvalRepository struct {
	db *database.DB
}

func NewApprovalRepository(db *database.DB) approval.ApprovalRepository {
	return &approvalRepository{db: db}
}

const approvalColumns = `
	r.id, r.employee_id, r.type, r.reason, r.status,
	r.requested_at, r.approved_by, r.approved_at,
	e.name AS employee_name, e.employee_code
`

func scanApproval(row pgx.Row) (approval.ApprovalRequest, error) {
	var req approval.ApprovalRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.Reason, &req.Status,
		&req.RequestedAt, &req.ApprovedBy, &req.ApprovedAt,
		&req.EmployeeName, &req.EmployeeCode,
	)
	return req, err
}

// Create implements approval.ApprovalRepository.
func (r *approvalRepository) Create(ctx context.Context, request approval.ApprovalRequest) (approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO approval_requests (employee_id, type, reason, status, requested_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Type, request.Reason, request.Status, request.RequestedAt,
	).Scan(&request.ID)
	if err != nil {
		return approval.ApprovalRequest{}, fmt.Errorf("failed to create approval request: %w", err)
	}

	return request, nil
}

// GetByID implements approval.ApprovalRepository.
func (r *approvalRepository) GetByID(ctx context.Context, id string) (approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalColumns + `
		FROM approval_requests r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	req, err := scanApproval(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return approval.ApprovalRequest{}, approval.ErrApprovalNotFound
		}
		return approval.ApprovalRequest{}, fmt.Errorf("failed to get approval request: %w", err)
	}

	return req, nil
}

// Update implements approval.ApprovalRepository.
func (r *approvalRepository) Update(ctx context.Context, request approval.ApprovalRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE approval_requests
		SET status = $2, approved_by = $3, approved_at = $4
		WHERE id = $1
	`, request.ID, request.Status, request.ApprovedBy, request.ApprovedAt)
	if err != nil {
		return fmt.Errorf("failed to update approval request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return approval.ErrApprovalNotFound
	}

	return nil
}

// ListAll implements approval.ApprovalRepository.
func (r *approvalRepository) ListAll(ctx context.Context) ([]approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalColumns + `
		FROM approval_requests r
		JOIN employees e ON e.id = r.employee_id
		ORDER BY r.requested_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval requests: %w", err)
	}
	defer rows.Close()

	var requests []approval.ApprovalRequest
	for rows.Next() {
		req, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}
