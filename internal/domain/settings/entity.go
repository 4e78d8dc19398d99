package settings

import "time"

// Settings is the singleton time-policy configuration. Exactly one row
// exists; it is created with defaults on first read.
type Settings struct {
	ID                 string
	MaxBreakTime       int    // minutes
	MaxLateTime        int    // minutes
	MaxOvertime        int    // minutes
	MinCheckInTime     string // HH:mm
	MaxCheckInTime     string // HH:mm
	MinCheckOutTime    string // HH:mm
	MaxCheckOutTime    string // HH:mm
	WorkingHoursPerDay int
	UpdatedAt          time.Time
}

// Default returns the policy applied when no settings row exists yet.
func Default() Settings {
	return Settings{
		MaxBreakTime:       60,
		MaxLateTime:        15,
		MaxOvertime:        120,
		MinCheckInTime:     "08:00",
		MaxCheckInTime:     "10:00",
		MinCheckOutTime:    "16:00",
		MaxCheckOutTime:    "20:00",
		WorkingHoursPerDay: 8,
	}
}
