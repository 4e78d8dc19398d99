package approval

import (
	"context"

	"github.com/sshraki/Attendance/internal/domain/approval"
	"github.com/sshraki/Attendance/internal/domain/employee"
	"github.com/sshraki/Attendance/internal/pkg/clock"
)

type ApprovalServiceImpl struct {
	approval.ApprovalRepository
	employee.EmployeeRepository
	clk clock.Clock
}

func NewApprovalService(
	approvalRepo approval.ApprovalRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) approval.ApprovalService {
	return &ApprovalServiceImpl{
		ApprovalRepository: approvalRepo,
		EmployeeRepository: employeeRepo,
		clk:                clk,
	}
}

// Create implements approval.ApprovalService.
func (a *ApprovalServiceImpl) Create(ctx context.Context, req approval.CreateApprovalRequest) (approval.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.ApprovalResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}

	request := approval.ApprovalRequest{
		EmployeeID:  emp.ID,
		Type:        approval.RequestType(req.Type),
		Reason:      req.Reason,
		Status:      approval.StatusPending,
		RequestedAt: a.clk.Now().UTC(),
	}

	created, err := a.ApprovalRepository.Create(ctx, request)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}

	created.EmployeeName = &emp.Name
	created.EmployeeCode = &emp.EmployeeCode

	return approval.ToResponse(created), nil
}

// Decide implements approval.ApprovalService.
func (a *ApprovalServiceImpl) Decide(ctx context.Context, req approval.DecideApprovalRequest) (approval.ApprovalResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.ApprovalResponse{}, err
	}

	request, err := a.ApprovalRepository.GetByID(ctx, req.ID)
	if err != nil {
		return approval.ApprovalResponse{}, err
	}

	if request.Status != approval.StatusPending {
		return approval.ApprovalResponse{}, approval.ErrAlreadyProcessed
	}

	now := a.clk.Now().UTC()
	request.Status = approval.Status(req.Status)
	request.ApprovedBy = &req.ApprovedBy
	request.ApprovedAt = &now

	// The decision is recorded on the request only; it does not touch the
	// attendance record the exception refers to.
	if err := a.ApprovalRepository.Update(ctx, request); err != nil {
		return approval.ApprovalResponse{}, err
	}

	return approval.ToResponse(request), nil
}

// List implements approval.ApprovalService.
func (a *ApprovalServiceImpl) List(ctx context.Context) ([]approval.ApprovalResponse, error) {
	requests, err := a.ApprovalRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]approval.ApprovalResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, approval.ToResponse(r))
	}

	return responses, nil
}
