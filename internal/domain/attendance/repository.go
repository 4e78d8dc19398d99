package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance and break records.
// Uniqueness of (employee_id, date) is enforced at the storage boundary;
// Create surfaces a violation as ErrAlreadyCheckedIn so racing check-ins
// yield exactly one success.
type AttendanceRepository interface {
	// Create inserts a new attendance record.
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByID retrieves an attendance record with its breaks in start order.
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// calendar date, breaks included. Returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)

	// Update persists the mutable fields of an attendance record.
	Update(ctx context.Context, record AttendanceRecord) error

	// AddBreak appends a break record.
	AddBreak(ctx context.Context, br BreakRecord) (BreakRecord, error)

	// UpdateBreak seals a break (end time and duration).
	UpdateBreak(ctx context.Context, br BreakRecord) error

	// List retrieves records in a date range, newest date first, optionally
	// filtered by employee id.
	List(ctx context.Context, filter ListFilter) ([]AttendanceRecord, error)

	// MarkAbsentees inserts absent records for every active employee with
	// no record on date. Returns the number of records created.
	MarkAbsentees(ctx context.Context, date time.Time) (int64, error)
}
