package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	later := now.Add(4 * time.Hour)

	assert.Equal(t, StateNotCheckedIn, StateOf(nil))
	assert.Equal(t, StateNotCheckedIn, StateOf(&AttendanceRecord{}))

	checkedIn := &AttendanceRecord{CheckIn: &now}
	assert.Equal(t, StateCheckedIn, StateOf(checkedIn))

	onBreak := &AttendanceRecord{
		CheckIn: &now,
		Breaks:  []BreakRecord{{StartTime: later}},
	}
	assert.Equal(t, StateOnBreak, StateOf(onBreak))

	closedBreak := &AttendanceRecord{
		CheckIn: &now,
		Breaks:  []BreakRecord{{StartTime: now, EndTime: &later, Duration: 240}},
	}
	assert.Equal(t, StateCheckedIn, StateOf(closedBreak))

	// Check-out wins even with an open break left behind.
	checkedOut := &AttendanceRecord{
		CheckIn:  &now,
		CheckOut: &later,
		Breaks:   []BreakRecord{{StartTime: now}},
	}
	assert.Equal(t, StateCheckedOut, StateOf(checkedOut))
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		state  DayState
		action Action
		want   error
	}{
		{StateNotCheckedIn, ActionCheckIn, nil},
		{StateCheckedIn, ActionCheckIn, ErrAlreadyCheckedIn},
		{StateOnBreak, ActionCheckIn, ErrAlreadyCheckedIn},
		{StateCheckedOut, ActionCheckIn, ErrAlreadyCheckedIn},

		{StateNotCheckedIn, ActionStartBreak, ErrNotCheckedIn},
		{StateCheckedIn, ActionStartBreak, nil},
		{StateOnBreak, ActionStartBreak, ErrAlreadyOnBreak},
		{StateCheckedOut, ActionStartBreak, ErrAlreadyCheckedOut},

		{StateNotCheckedIn, ActionEndBreak, ErrNotCheckedIn},
		{StateCheckedIn, ActionEndBreak, ErrNotOnBreak},
		{StateOnBreak, ActionEndBreak, nil},
		{StateCheckedOut, ActionEndBreak, ErrAlreadyCheckedOut},

		{StateNotCheckedIn, ActionCheckOut, ErrNotCheckedIn},
		{StateCheckedIn, ActionCheckOut, nil},
		{StateOnBreak, ActionCheckOut, nil},
		{StateCheckedOut, ActionCheckOut, ErrAlreadyCheckedOut},
	}

	for _, c := range cases {
		got := ValidateTransition(c.state, c.action)
		if c.want == nil {
			assert.NoError(t, got, "%s in %s", c.action, c.state)
		} else {
			assert.ErrorIs(t, got, c.want, "%s in %s", c.action, c.state)
		}
	}
}

func TestSumBreakMinutes(t *testing.T) {
	r := &AttendanceRecord{
		Breaks: []BreakRecord{
			{Duration: 15},
			{Duration: 42},
			{Duration: 0}, // open break
		},
	}
	assert.Equal(t, 57, r.SumBreakMinutes())
}

func TestOpenBreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(30 * time.Minute)

	r := &AttendanceRecord{
		Breaks: []BreakRecord{
			{ID: "a", StartTime: now, EndTime: &end, Duration: 30},
			{ID: "b", StartTime: end},
		},
	}

	open := r.OpenBreak()
	assert.NotNil(t, open)
	assert.Equal(t, "b", open.ID)

	r.Breaks[1].EndTime = &end
	assert.Nil(t, r.OpenBreak())
}

func TestDateOf(t *testing.T) {
	assert.Equal(t,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DateOf(time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)))

	// Zoned timestamps key under their UTC day, not the wall-clock day.
	wib := time.FixedZone("WIB", 7*3600)
	assert.Equal(t,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DateOf(time.Date(2025, 3, 11, 6, 30, 0, 0, wib)))
}
