package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRecord is the single per-employee-per-day attendance row.
// History is append-only: records are created on first check-in and mutated
// by break and check-out operations, never deleted.
type AttendanceRecord struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	CheckIn          *time.Time
	CheckOut         *time.Time
	TotalWorkHours   decimal.Decimal // 2 fractional digits, set at check-out
	TotalBreakTime   int             // minutes, sum of closed break durations
	IsLate           bool
	LateReason       *string
	LateApproved     bool
	CheckoutReason   *string
	CheckoutType     *string
	CheckoutApproved bool
	Status           string // present, absent, partial
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Breaks []BreakRecord

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}

// BreakRecord is a bounded interval within a checked-in day. Duration stays
// zero until the break is ended.
type BreakRecord struct {
	ID                 string
	AttendanceRecordID string
	StartTime          time.Time
	EndTime            *time.Time
	Duration           int // minutes
	Reason             *string
	Approved           bool
	CreatedAt          time.Time
}

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusPartial = "partial"
)

// DateOf truncates a timestamp to the UTC calendar date attendance records
// are keyed under. Every writer of the date column must go through it so a
// record written by one component is found by the others.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OpenBreak returns the break that has not been ended yet, or nil. At most
// one such break exists per record.
func (r *AttendanceRecord) OpenBreak() *BreakRecord {
	for i := len(r.Breaks) - 1; i >= 0; i-- {
		if r.Breaks[i].EndTime == nil {
			return &r.Breaks[i]
		}
	}
	return nil
}

// SumBreakMinutes totals the duration of every break on the record.
func (r *AttendanceRecord) SumBreakMinutes() int {
	total := 0
	for _, b := range r.Breaks {
		total += b.Duration
	}
	return total
}
