package attendance

import (
	"time"

	"github.com/sshraki/Attendance/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeCode string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeCode string  `json:"employee_id"`
	Reason       *string `json:"reason"`
	Type         *string `json:"type"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakRequest struct {
	EmployeeCode string  `json:"employee_id"`
	Reason       *string `json:"reason"`
}

func (r *BreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows the attendance listing. EmployeeCode filters on the
// public employee code, matching the reporting queries.
type ListFilter struct {
	StartDate    *time.Time
	EndDate      *time.Time
	EmployeeCode *string
}

// UpdateAttendanceRequest lets an admin fix a stored record.
type UpdateAttendanceRequest struct {
	ID               string     `json:"-"`
	CheckIn          *time.Time `json:"check_in"`
	CheckOut         *time.Time `json:"check_out"`
	Status           string     `json:"status"`
	IsLate           bool       `json:"is_late"`
	LateApproved     bool       `json:"late_approved"`
	CheckoutApproved bool       `json:"checkout_approved"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Status {
	case StatusPresent, StatusAbsent, StatusPartial:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, partial",
		})
	}
	if r.CheckIn != nil && r.CheckOut != nil && r.CheckOut.Before(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must not be before check_in",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakResponse struct {
	ID        string  `json:"id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time,omitempty"`
	Duration  int     `json:"duration"`
	Reason    *string `json:"reason,omitempty"`
	Approved  bool    `json:"approved"`
}

type AttendanceResponse struct {
	ID               string          `json:"id"`
	EmployeeCode     string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	Date             string          `json:"date"`
	CheckIn          *string         `json:"check_in,omitempty"`
	CheckOut         *string         `json:"check_out,omitempty"`
	TotalWorkHours   string          `json:"total_work_hours"`
	TotalBreakTime   int             `json:"total_break_time"`
	IsLate           bool            `json:"is_late"`
	LateApproved     bool            `json:"late_approved"`
	CheckoutReason   *string         `json:"checkout_reason,omitempty"`
	CheckoutType     *string         `json:"checkout_type,omitempty"`
	CheckoutApproved bool            `json:"checkout_approved"`
	Status           string          `json:"status"`
	State            string          `json:"state"`
	Breaks           []BreakResponse `json:"breaks"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ToResponse maps a stored record to the API shape.
func ToResponse(r AttendanceRecord) AttendanceResponse {
	breaks := make([]BreakResponse, 0, len(r.Breaks))
	for _, b := range r.Breaks {
		breaks = append(breaks, BreakResponse{
			ID:        b.ID,
			StartTime: b.StartTime.Format("2006-01-02 15:04:05"),
			EndTime:   timePtrToString(b.EndTime),
			Duration:  b.Duration,
			Reason:    b.Reason,
			Approved:  b.Approved,
		})
	}

	code := ""
	if r.EmployeeCode != nil {
		code = *r.EmployeeCode
	}

	return AttendanceResponse{
		ID:               r.ID,
		EmployeeCode:     code,
		EmployeeName:     r.EmployeeName,
		Date:             r.Date.Format("2006-01-02"),
		CheckIn:          timePtrToString(r.CheckIn),
		CheckOut:         timePtrToString(r.CheckOut),
		TotalWorkHours:   r.TotalWorkHours.StringFixed(2),
		TotalBreakTime:   r.TotalBreakTime,
		IsLate:           r.IsLate,
		LateApproved:     r.LateApproved,
		CheckoutReason:   r.CheckoutReason,
		CheckoutType:     r.CheckoutType,
		CheckoutApproved: r.CheckoutApproved,
		Status:           r.Status,
		State:            string(StateOf(&r)),
		Breaks:           breaks,
	}
}
