package attendance

// DayState is the per-day attendance state derived from the stored record.
// The record itself keeps nullable timestamps for wire compatibility; every
// transition legality check goes through ValidateTransition so the state
// table lives in exactly one place.
type DayState string

const (
	StateNotCheckedIn DayState = "not_checked_in"
	StateCheckedIn    DayState = "checked_in"
	StateOnBreak      DayState = "on_break"
	StateCheckedOut   DayState = "checked_out"
)

// Action is a presence event interpreted against the day state.
type Action string

const (
	ActionCheckIn    Action = "check_in"
	ActionStartBreak Action = "start_break"
	ActionEndBreak   Action = "end_break"
	ActionCheckOut   Action = "check_out"
)

// StateOf derives the day state from a record. A nil record means the
// employee has not checked in today.
func StateOf(r *AttendanceRecord) DayState {
	switch {
	case r == nil || r.CheckIn == nil:
		return StateNotCheckedIn
	case r.CheckOut != nil:
		return StateCheckedOut
	case r.OpenBreak() != nil:
		return StateOnBreak
	default:
		return StateCheckedIn
	}
}

// ValidateTransition reports whether action is legal in state, returning the
// sentinel error the caller must surface when it is not.
//
//	NOT_CHECKED_IN --check_in--> CHECKED_IN
//	CHECKED_IN --start_break--> ON_BREAK
//	ON_BREAK --end_break--> CHECKED_IN
//	CHECKED_IN | ON_BREAK --check_out--> CHECKED_OUT (terminal)
func ValidateTransition(state DayState, action Action) error {
	switch action {
	case ActionCheckIn:
		if state != StateNotCheckedIn {
			return ErrAlreadyCheckedIn
		}
	case ActionStartBreak:
		switch state {
		case StateNotCheckedIn:
			return ErrNotCheckedIn
		case StateOnBreak:
			return ErrAlreadyOnBreak
		case StateCheckedOut:
			return ErrAlreadyCheckedOut
		}
	case ActionEndBreak:
		switch state {
		case StateNotCheckedIn:
			return ErrNotCheckedIn
		case StateCheckedIn:
			return ErrNotOnBreak
		case StateCheckedOut:
			return ErrAlreadyCheckedOut
		}
	case ActionCheckOut:
		switch state {
		case StateNotCheckedIn:
			return ErrNotCheckedIn
		case StateCheckedOut:
			return ErrAlreadyCheckedOut
		}
	}
	return nil
}
