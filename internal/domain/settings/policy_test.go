package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"08:15", 495},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := TimeToMinutes(c.input)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "TimeToMinutes(%q)", c.input)
	}
}

func TestTimeToMinutes_Invalid(t *testing.T) {
	invalid := []string{"", "8", "08", "8:0:0", "24:00", "08:60", "-1:00", "ab:cd"}
	for _, s := range invalid {
		_, err := TimeToMinutes(s)
		assert.Error(t, err, "TimeToMinutes(%q)", s)
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	at := time.Date(2025, 3, 10, 8, 16, 59, 0, time.UTC)
	assert.Equal(t, 496, MinutesSinceMidnight(at))
}

func TestIsLateArrival(t *testing.T) {
	policy := Default() // 08:00 with 15 minutes of grace

	cases := []struct {
		hour, min int
		want      bool
	}{
		{7, 45, false},
		{8, 0, false},
		{8, 14, false},
		{8, 15, false}, // exactly at the grace limit
		{8, 16, true},
		{12, 0, true},
	}
	for _, c := range cases {
		at := time.Date(2025, 3, 10, c.hour, c.min, 0, 0, time.UTC)
		assert.Equal(t, c.want, policy.IsLateArrival(at), "check-in at %02d:%02d", c.hour, c.min)
	}
}

func TestIsLateArrival_SecondsIgnored(t *testing.T) {
	policy := Default()

	// 08:15:59 truncates to minute 495, still inside the grace window.
	at := time.Date(2025, 3, 10, 8, 15, 59, 0, time.UTC)
	assert.False(t, policy.IsLateArrival(at))
}

func TestIsLateArrival_MalformedPolicyFallsBack(t *testing.T) {
	policy := Default()
	policy.MinCheckInTime = "garbage"

	at := time.Date(2025, 3, 10, 8, 10, 0, 0, time.UTC)
	assert.False(t, policy.IsLateArrival(at))
}

func TestDefaultSettings(t *testing.T) {
	def := Default()
	assert.Equal(t, 60, def.MaxBreakTime)
	assert.Equal(t, 15, def.MaxLateTime)
	assert.Equal(t, 120, def.MaxOvertime)
	assert.Equal(t, "08:00", def.MinCheckInTime)
	assert.Equal(t, "20:00", def.MaxCheckOutTime)
	assert.Equal(t, 8, def.WorkingHoursPerDay)
}

func TestUpdateSettingsRequest_Validate(t *testing.T) {
	valid := UpdateSettingsRequest{
		MaxBreakTime:       60,
		MaxLateTime:        15,
		MaxOvertime:        120,
		MinCheckInTime:     "08:00",
		MaxCheckInTime:     "10:00",
		MinCheckOutTime:    "16:00",
		MaxCheckOutTime:    "20:00",
		WorkingHoursPerDay: 8,
	}
	assert.NoError(t, valid.Validate())

	badTime := valid
	badTime.MinCheckInTime = "25:00"
	assert.Error(t, badTime.Validate())

	negative := valid
	negative.MaxLateTime = -1
	assert.Error(t, negative.Validate())

	badHours := valid
	badHours.WorkingHoursPerDay = 0
	assert.Error(t, badHours.Validate())
}
