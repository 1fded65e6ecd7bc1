package availability

import "errors"

var (
	ErrInvalidClockTime = errors.New("clock time must be formatted as HH:MM")
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidWindow    = errors.New("start time must be before end time")
	ErrInvalidBreak     = errors.New("break must start before it ends and lie within working hours")
	ErrInvalidStep      = errors.New("slot step must be between 1 and 1440 minutes")
	ErrNegativeBuffer   = errors.New("buffer cannot be negative")
	ErrBufferTooLong    = errors.New("buffer cannot exceed 1440 minutes")
	ErrInvalidWeekday   = errors.New("working days must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimezone  = errors.New("unknown timezone")
	ErrInvalidDuration  = errors.New("duration must be between 1 and 1440 minutes")
)

// Outcomes of Rule.Check.
var (
	ErrNotWorkingDay = errors.New("business does not work on this day")
	ErrOutsideHours  = errors.New("appointment does not fit within working hours")
	ErrOverlapsBreak = errors.New("appointment overlaps the break")
	ErrSlotTaken     = errors.New("slot is no longer available")
)
