package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// MaxDurationMinutes bounds appointment lengths so clock arithmetic stays
// within a few days of minutes.
const MaxDurationMinutes = minutesPerDay

// ClockTime is a wall-clock time of day expressed in minutes since midnight.
// Arithmetic may run past 24:00; only parsing is bounded.
type ClockTime int

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClockTime
	}
	c := ClockTime(hour*60 + minute)
	if c > minutesPerDay {
		return 0, ErrInvalidClockTime
	}
	return c, nil
}

// ParseClockTime accepts "HH:MM"; "24:00" is allowed as a closing time.
func ParseClockTime(s string) (ClockTime, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(h) != 2 || len(m) != 2 {
		return 0, ErrInvalidClockTime
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, ErrInvalidClockTime
	}
	return NewClockTime(hour, minute)
}

func MustParseClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(fmt.Sprintf("availability: invalid clock time %q", s))
	}
	return c
}

func (c ClockTime) Minutes() int { return int(c) }

func (c ClockTime) Add(minutes int) ClockTime { return c + ClockTime(minutes) }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(b []byte) error {
	parsed, err := ParseClockTime(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseDate parses a calendar date in YYYY-MM-DD form. Only the Y/M/D fields
// of the result are meaningful.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
