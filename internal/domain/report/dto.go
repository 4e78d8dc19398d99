package report

import (
	"time"

	"github.com/sshraki/Attendance/internal/pkg/validator"
)

// DateRangeFilter bounds a report query. EmployeeCode is optional.
type DateRangeFilter struct {
	StartDate    time.Time
	EndDate      time.Time
	EmployeeCode *string
}

// ParseDateRange validates the raw query parameters of a report request.
func ParseDateRange(start, end string) (time.Time, time.Time, error) {
	var errs validator.ValidationErrors

	startDate, ok := validator.IsValidDate(start)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a YYYY-MM-DD date",
		})
	}
	endDate, ok := validator.IsValidDate(end)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a YYYY-MM-DD date",
		})
	}
	if len(errs) == 0 && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	return startDate, endDate, nil
}

type AttendanceRow struct {
	Date         string `json:"date"`
	EmployeeCode string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	Status       string `json:"status"`
	IsLate       bool   `json:"is_late"`
	TotalBreaks  int    `json:"total_breaks"`
	BreakTime    int    `json:"break_time"`
	WorkHours    string `json:"work_hours"`
}

type WorkHoursRow struct {
	EmployeeCode   string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	Department     string  `json:"department"`
	TotalDays      int     `json:"total_days"`
	TotalWorkHours string  `json:"total_work_hours"`
	TotalBreakTime int     `json:"total_break_time"`
	LateDays       int     `json:"late_days"`
	AverageWorkHrs float64 `json:"average_work_hours"`
}

type ApprovalRow struct {
	Date         string `json:"date"`
	EmployeeCode string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Type         string `json:"type"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	ApprovedBy   string `json:"approved_by"`
	ApprovedAt   string `json:"approved_at"`
}
