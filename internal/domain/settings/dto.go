package settings

import (
	"github.com/sshraki/Attendance/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	MaxBreakTime       int    `json:"max_break_time"`
	MaxLateTime        int    `json:"max_late_time"`
	MaxOvertime        int    `json:"max_overtime"`
	MinCheckInTime     string `json:"min_check_in_time"`
	MaxCheckInTime     string `json:"max_check_in_time"`
	MinCheckOutTime    string `json:"min_check_out_time"`
	MaxCheckOutTime    string `json:"max_check_out_time"`
	WorkingHoursPerDay int    `json:"working_hours_per_day"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	timeFields := []struct {
		field string
		value string
	}{
		{"min_check_in_time", r.MinCheckInTime},
		{"max_check_in_time", r.MaxCheckInTime},
		{"min_check_out_time", r.MinCheckOutTime},
		{"max_check_out_time", r.MaxCheckOutTime},
	}
	for _, tf := range timeFields {
		if _, err := TimeToMinutes(tf.value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   tf.field,
				Message: "must be a zero-padded HH:mm time of day",
			})
		}
	}

	if r.MaxBreakTime < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_break_time",
			Message: "must not be negative",
		})
	}
	if r.MaxLateTime < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_late_time",
			Message: "must not be negative",
		})
	}
	if r.MaxOvertime < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_overtime",
			Message: "must not be negative",
		})
	}
	if r.WorkingHoursPerDay <= 0 || r.WorkingHoursPerDay > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_hours_per_day",
			Message: "must be between 1 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	ID                 string `json:"id"`
	MaxBreakTime       int    `json:"max_break_time"`
	MaxLateTime        int    `json:"max_late_time"`
	MaxOvertime        int    `json:"max_overtime"`
	MinCheckInTime     string `json:"min_check_in_time"`
	MaxCheckInTime     string `json:"max_check_in_time"`
	MinCheckOutTime    string `json:"min_check_out_time"`
	MaxCheckOutTime    string `json:"max_check_out_time"`
	WorkingHoursPerDay int    `json:"working_hours_per_day"`
	UpdatedAt          string `json:"updated_at"`
}

// ToResponse maps stored settings to the API shape.
func ToResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		ID:                 s.ID,
		MaxBreakTime:       s.MaxBreakTime,
		MaxLateTime:        s.MaxLateTime,
		MaxOvertime:        s.MaxOvertime,
		MinCheckInTime:     s.MinCheckInTime,
		MaxCheckInTime:     s.MaxCheckInTime,
		MinCheckOutTime:    s.MinCheckOutTime,
		MaxCheckOutTime:    s.MaxCheckOutTime,
		WorkingHoursPerDay: s.WorkingHoursPerDay,
		UpdatedAt:          s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
