package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRuleNotFound = errs.Mark(errs.New("availability rule not found"), errs.ErrNotFound)

// DayAvailability is what the booking page needs to render one calendar day.
// Available is only filled when a duration was asked for.
type DayAvailability struct {
	Date      string         `json:"date"`
	Timezone  string         `json:"timezone"`
	Bookings  []OccupiedSlot `json:"bookings"`
	Blocked   []string       `json:"blocked"`
	Available []string       `json:"available,omitempty"`
}

type RuleReadStore interface {
	FindByBusiness(ctx context.Context, businessID uuid.UUID) (*RuleView, error)
}

type AvailabilityQueries interface {
	GetDay(ctx context.Context, slug string, date time.Time, durationMinutes *int) (*DayAvailability, error)
	GetOwnerRule(ctx context.Context, ownerID uuid.UUID) (*RuleView, error)
}

type availabilityQueriesImpl struct {
	businesses BusinessReadStore
	rules      RuleReadStore
	bookings   BookingReadStore
}

func NewAvailabilityQueries(businesses BusinessReadStore, rules RuleReadStore, bookings BookingReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		businesses: businesses,
		rules:      rules,
		bookings:   bookings,
	}
}

// GetDay never reports an unknown business; callers get an empty day so that
// unknown slugs look the same as closed days.
func (q *availabilityQueriesImpl) GetDay(ctx context.Context, slug string, date time.Time, durationMinutes *int) (*DayAvailability, error) {
	empty := &DayAvailability{
		Date:     date.Format(time.DateOnly),
		Timezone: availability.DefaultTimezone,
		Bookings: []OccupiedSlot{},
		Blocked:  []string{},
	}

	b, err := findActiveBySlug(ctx, q.businesses, slug)
	if err != nil {
		if errs.Is(err, ErrBusinessNotFound) {
			return empty, nil
		}
		return nil, err
	}

	view, err := q.rules.FindByBusiness(ctx, b.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return empty, nil
		}
		return nil, err
	}
	rule, err := RuleFromView(view)
	if err != nil {
		return nil, errs.Wrap(err, "stored availability rule is invalid")
	}

	from, to := rule.DayBounds(date)
	slots, err := q.bookings.OccupiedBetween(ctx, b.ID, from, to)
	if err != nil {
		return nil, err
	}

	occupied := make([]availability.Occupancy, 0, len(slots))
	for _, s := range slots {
		occupied = append(occupied, availability.Occupancy{
			Start:           rule.ClockOf(s.StartAt),
			DurationMinutes: s.DurationMinutes,
		})
	}

	day := &DayAvailability{
		Date:     empty.Date,
		Timezone: rule.Timezone(),
		Bookings: slots,
		Blocked:  labels(rule.Blocked(occupied)),
	}
	if durationMinutes != nil {
		day.Available = labels(rule.Available(date, *durationMinutes, occupied))
	}
	return day, nil
}

func (q *availabilityQueriesImpl) GetOwnerRule(ctx context.Context, ownerID uuid.UUID) (*RuleView, error) {
	b, err := businessOfOwner(ctx, q.businesses, ownerID)
	if err != nil {
		return nil, err
	}
	view, err := q.rules.FindByBusiness(ctx, b.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}
	return view, nil
}

// RuleFromView rebuilds the domain rule from its read model.
func RuleFromView(v *RuleView) (availability.Rule, error) {
	start, err := availability.ParseClockTime(v.StartTime)
	if err != nil {
		return availability.Rule{}, err
	}
	end, err := availability.ParseClockTime(v.EndTime)
	if err != nil {
		return availability.Rule{}, err
	}
	p := availability.RuleParams{
		Timezone:        v.Timezone,
		WorkingDays:     v.WorkingDays,
		Start:           start,
		End:             end,
		BufferMinutes:   v.BufferMinutes,
		SlotStepMinutes: v.SlotStepMinutes,
	}
	if v.BreakStart != nil && v.BreakEnd != nil {
		bs, err := availability.ParseClockTime(*v.BreakStart)
		if err != nil {
			return availability.Rule{}, err
		}
		be, err := availability.ParseClockTime(*v.BreakEnd)
		if err != nil {
			return availability.Rule{}, err
		}
		p.BreakStart, p.BreakEnd = &bs, &be
	}
	return availability.NewRule(p)
}

func labels(cs []availability.ClockTime) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.String())
	}
	return out
}
