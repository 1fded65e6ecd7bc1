package availability

import (
	"sort"
	"time"
)

// Occupancy is an existing confirmed booking as seen on the business' wall clock.
type Occupancy struct {
	Start           ClockTime
	DurationMinutes int
}

// Slots lists the candidate start labels of a day. Breaks remove labels that
// start inside [BreakStart, BreakEnd); a label straddling the break start is kept.
// Labels that a daylight saving jump skips on that date are left out.
func Slots(date time.Time, r Rule) []ClockTime {
	if r.slotStepMinutes <= 0 || !r.IsWorkingDay(date.Weekday()) {
		return nil
	}
	step := r.slotStepMinutes
	var out []ClockTime
	for s := r.start; s.Add(step) <= r.end; s = s.Add(step) {
		if r.inBreak(s) || !r.occursOn(date, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (r Rule) inBreak(c ClockTime) bool {
	return r.hasBreak && c >= r.breakStart && c < r.breakEnd
}

func (r Rule) occursOn(date time.Time, c ClockTime) bool {
	t := r.Instant(date, c)
	return t.Day() == date.Day() && t.Hour()*60+t.Minute() == int(c)
}

func validDuration(m int) bool {
	return m > 0 && m <= MaxDurationMinutes
}

// Fits reports whether the appointment plus its trailing buffer ends by closing time.
func (r Rule) Fits(start ClockTime, durationMinutes int) bool {
	return start.Add(durationMinutes+r.bufferMinutes) <= r.end
}

// OverlapsBreak compares [start, start+duration) with the break. The buffer may
// run into the break.
func (r Rule) OverlapsBreak(start ClockTime, durationMinutes int) bool {
	if !r.hasBreak {
		return false
	}
	return start < r.breakEnd && r.breakStart < start.Add(durationMinutes)
}

// FootprintMinutes is the time an appointment keeps the calendar busy:
// duration plus buffer rounded up to whole slot steps.
func (r Rule) FootprintMinutes(durationMinutes int) int {
	if r.slotStepMinutes <= 0 {
		return durationMinutes + r.bufferMinutes
	}
	total := durationMinutes + r.bufferMinutes
	blocks := (total + r.slotStepMinutes - 1) / r.slotStepMinutes
	return blocks * r.slotStepMinutes
}

// SlotRange lists the slot labels an appointment occupies, buffer included.
func (r Rule) SlotRange(start ClockTime, durationMinutes int) []ClockTime {
	if r.slotStepMinutes <= 0 {
		return nil
	}
	blocks := r.FootprintMinutes(durationMinutes) / r.slotStepMinutes
	out := make([]ClockTime, 0, blocks)
	for i := 0; i < blocks; i++ {
		out = append(out, start.Add(i*r.slotStepMinutes))
	}
	return out
}

// Conflicts reports whether the slot range of a new appointment shares a block
// with any existing one. Each label stands for [label, label+step), so an
// off-grid start is compared against the blocks it actually covers.
func (r Rule) Conflicts(start ClockTime, durationMinutes int, existing []Occupancy) bool {
	from := start
	to := start.Add(r.FootprintMinutes(durationMinutes))
	for _, e := range existing {
		eFrom := e.Start
		eTo := e.Start.Add(r.FootprintMinutes(e.DurationMinutes))
		if from < eTo && eFrom < to {
			return true
		}
	}
	return false
}

// Blocked is the sorted union of the slot ranges of existing appointments.
func (r Rule) Blocked(existing []Occupancy) []ClockTime {
	seen := make(map[ClockTime]struct{})
	for _, e := range existing {
		for _, s := range r.SlotRange(e.Start, e.DurationMinutes) {
			seen[s] = struct{}{}
		}
	}
	out := make([]ClockTime, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Available lists the start labels a customer may pick for an appointment of
// the given duration.
func (r Rule) Available(date time.Time, durationMinutes int, existing []Occupancy) []ClockTime {
	if !validDuration(durationMinutes) {
		return nil
	}
	var out []ClockTime
	for _, s := range Slots(date, r) {
		if !r.Fits(s, durationMinutes) || r.OverlapsBreak(s, durationMinutes) {
			continue
		}
		if r.Conflicts(s, durationMinutes, existing) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Check is the authoritative decision for a requested start. Rule violations
// are reported before conflicts.
func (r Rule) Check(date time.Time, start ClockTime, durationMinutes int, existing []Occupancy) error {
	if !validDuration(durationMinutes) {
		return ErrInvalidDuration
	}
	if !r.IsWorkingDay(date.Weekday()) {
		return ErrNotWorkingDay
	}
	if start < r.start || !r.Fits(start, durationMinutes) {
		return ErrOutsideHours
	}
	if r.OverlapsBreak(start, durationMinutes) {
		return ErrOverlapsBreak
	}
	if r.Conflicts(start, durationMinutes, existing) {
		return ErrSlotTaken
	}
	return nil
}
