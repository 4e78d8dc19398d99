package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNotCheckedIn      = errors.New("no check-in record found for today")
	ErrAlreadyOnBreak    = errors.New("already on break")
	ErrNotOnBreak        = errors.New("not currently on break")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
