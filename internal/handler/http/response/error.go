package response

import (
	"errors"
	"net/http"

	"github.com/sshraki/Attendance/internal/domain/approval"
	"github.com/sshraki/Attendance/internal/domain/attendance"
	"github.com/sshraki/Attendance/internal/domain/auth"
	"github.com/sshraki/Attendance/internal/domain/employee"
	"github.com/sshraki/Attendance/internal/domain/settings"
	"github.com/sshraki/Attendance/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrManagerNotFound):
		BadRequest(w, "Manager not found", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in found for today")
	case errors.Is(err, attendance.ErrAlreadyOnBreak):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, attendance.ErrNotOnBreak):
		Conflict(w, "No break in progress")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Approval domain errors
	case errors.Is(err, approval.ErrApprovalNotFound):
		NotFound(w, "Approval request not found")
	case errors.Is(err, approval.ErrAlreadyProcessed):
		Conflict(w, "Approval request already processed")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
