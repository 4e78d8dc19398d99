package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's attendance record for an employee and computes
	// lateness against the active settings.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's record and computes total work hours.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// StartBreak opens a new break on today's record.
	StartBreak(ctx context.Context, req BreakRequest) (AttendanceResponse, error)

	// EndBreak seals the open break and recomputes the break total.
	EndBreak(ctx context.Context, req BreakRequest) (AttendanceResponse, error)

	// GetToday retrieves today's record for an employee.
	GetToday(ctx context.Context, employeeCode string) (AttendanceResponse, error)

	// List retrieves records with filters (admin/manager).
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)

	// Update fixes a stored record (admin) - for correcting wrong data.
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
}
