package settings

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeToMinutes converts a zero-padded "HH:mm" string to minutes since
// midnight.
func TimeToMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:mm", hhmm)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", hhmm, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", hhmm, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", hhmm)
	}

	return hours*60 + minutes, nil
}

// MinutesSinceMidnight returns the minutes-since-midnight component of t.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsLateArrival reports whether a check-in at t falls after the minimum
// check-in time plus the late grace period. A check-in exactly at the grace
// limit is not late.
func (s Settings) IsLateArrival(t time.Time) bool {
	minMinutes, err := TimeToMinutes(s.MinCheckInTime)
	if err != nil {
		// Malformed policy value: fall back to the default window rather
		// than flagging everyone late.
		minMinutes, _ = TimeToMinutes(Default().MinCheckInTime)
	}
	return MinutesSinceMidnight(t) > minMinutes+s.MaxLateTime
}
