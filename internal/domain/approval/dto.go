package approval

import (
	"github.com/sshraki/Attendance/internal/pkg/validator"
)

type CreateApprovalRequest struct {
	EmployeeCode string `json:"employee_id"`
	Type         string `json:"type"`
	Reason       string `json:"reason"`
}

func (r *CreateApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	switch RequestType(r.Type) {
	case TypeLate, TypeBreak, TypeCheckout:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of late, break, checkout",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideApprovalRequest struct {
	ID         string `json:"-"`
	Status     string `json:"status"`
	ApprovedBy string `json:"approved_by"`
}

func (r *DecideApprovalRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Status(r.Status) {
	case StatusApproved, StatusRejected:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}
	if validator.IsEmpty(r.ApprovedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "approved_by",
			Message: "approved_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApprovalResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	RequestedAt  string  `json:"requested_at"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	ApprovedAt   *string `json:"approved_at,omitempty"`
}

// ToResponse maps a stored request to the API shape.
func ToResponse(r ApprovalRequest) ApprovalResponse {
	code := ""
	if r.EmployeeCode != nil {
		code = *r.EmployeeCode
	}

	var approvedAt *string
	if r.ApprovedAt != nil {
		s := r.ApprovedAt.Format("2006-01-02 15:04:05")
		approvedAt = &s
	}

	return ApprovalResponse{
		ID:           r.ID,
		EmployeeCode: code,
		EmployeeName: r.EmployeeName,
		Type:         string(r.Type),
		Reason:       r.Reason,
		Status:       string(r.Status),
		RequestedAt:  r.RequestedAt.Format("2006-01-02 15:04:05"),
		ApprovedBy:   r.ApprovedBy,
		ApprovedAt:   approvedAt,
	}
}
