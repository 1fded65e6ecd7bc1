package availability

import (
	"sort"
	"strings"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "UTC"

type RuleParams struct {
	Timezone        string
	WorkingDays     []int
	Start           ClockTime
	End             ClockTime
	BreakStart      *ClockTime
	BreakEnd        *ClockTime
	BufferMinutes   int
	SlotStepMinutes int
}

// DefaultParams is the rule a freshly registered business starts with:
// Monday to Friday, 09:00-17:00, 30 minute slots.
func DefaultParams(timezone string) RuleParams {
	return RuleParams{
		Timezone:        timezone,
		WorkingDays:     []int{1, 2, 3, 4, 5},
		Start:           MustParseClockTime("09:00"),
		End:             MustParseClockTime("17:00"),
		SlotStepMinutes: 30,
	}
}

// Rule is a business' weekly working pattern. It is replaced wholesale on save.
type Rule struct {
	timezone        string
	location        *time.Location
	workingDays     [7]bool
	start           ClockTime
	end             ClockTime
	hasBreak        bool
	breakStart      ClockTime
	breakEnd        ClockTime
	bufferMinutes   int
	slotStepMinutes int
}

func NewRule(p RuleParams) (Rule, error) {
	tz := strings.TrimSpace(p.Timezone)
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Rule{}, ErrInvalidTimezone
	}

	var days [7]bool
	for _, d := range p.WorkingDays {
		if d < 0 || d > 6 {
			return Rule{}, ErrInvalidWeekday
		}
		days[d] = true
	}

	if p.Start >= p.End {
		return Rule{}, ErrInvalidWindow
	}
	if p.SlotStepMinutes <= 0 || p.SlotStepMinutes > minutesPerDay {
		return Rule{}, ErrInvalidStep
	}
	if p.BufferMinutes < 0 {
		return Rule{}, ErrNegativeBuffer
	}
	if p.BufferMinutes > minutesPerDay {
		return Rule{}, ErrBufferTooLong
	}

	r := Rule{
		timezone:        tz,
		location:        loc,
		workingDays:     days,
		start:           p.Start,
		end:             p.End,
		bufferMinutes:   p.BufferMinutes,
		slotStepMinutes: p.SlotStepMinutes,
	}

	switch {
	case p.BreakStart == nil && p.BreakEnd == nil:
	case p.BreakStart == nil || p.BreakEnd == nil:
		return Rule{}, ErrInvalidBreak
	default:
		bs, be := *p.BreakStart, *p.BreakEnd
		if bs >= be || bs < p.Start || be > p.End {
			return Rule{}, ErrInvalidBreak
		}
		r.hasBreak = true
		r.breakStart = bs
		r.breakEnd = be
	}

	return r, nil
}

func (r Rule) Timezone() string { return r.timezone }

func (r Rule) Location() *time.Location {
	if r.location == nil {
		return time.UTC
	}
	return r.location
}

func (r Rule) WorkingDays() []int {
	days := make([]int, 0, 7)
	for d, on := range r.workingDays {
		if on {
			days = append(days, d)
		}
	}
	sort.Ints(days)
	return days
}

func (r Rule) IsWorkingDay(d time.Weekday) bool { return r.workingDays[d] }

func (r Rule) Start() ClockTime     { return r.start }
func (r Rule) End() ClockTime       { return r.end }
func (r Rule) BufferMinutes() int   { return r.bufferMinutes }
func (r Rule) SlotStepMinutes() int { return r.slotStepMinutes }

// Break reports the break window, if any.
func (r Rule) Break() (start, end ClockTime, ok bool) {
	return r.breakStart, r.breakEnd, r.hasBreak
}

func (r Rule) Params() RuleParams {
	p := RuleParams{
		Timezone:        r.timezone,
		WorkingDays:     r.WorkingDays(),
		Start:           r.start,
		End:             r.end,
		BufferMinutes:   r.bufferMinutes,
		SlotStepMinutes: r.slotStepMinutes,
	}
	if r.hasBreak {
		bs, be := r.breakStart, r.breakEnd
		p.BreakStart = &bs
		p.BreakEnd = &be
	}
	return p
}

// ClockOf converts an absolute instant to the business' wall clock.
func (r Rule) ClockOf(instant time.Time) ClockTime {
	t := instant.In(r.Location())
	return ClockTime(t.Hour()*60 + t.Minute())
}

// LocalDate returns the business-local calendar date of an instant.
func (r Rule) LocalDate(instant time.Time) time.Time {
	t := instant.In(r.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Instant converts a calendar date and a wall-clock time to an absolute instant.
func (r Rule) Instant(date time.Time, c ClockTime) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(c)/60, int(c)%60, 0, 0, r.Location())
}

// DayBounds is the half-open interval [local midnight, next local midnight).
func (r Rule) DayBounds(date time.Time) (from, to time.Time) {
	loc := r.Location()
	from = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	to = time.Date(date.Year(), date.Month(), date.Day()+1, 0, 0, 0, 0, loc)
	return from, to
}
