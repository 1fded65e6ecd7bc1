package response

import (
	"time"

	"slotbook/internal/usecase/queries"
)

type RuleResponse struct {
	Timezone        string    `json:"timezone"`
	WorkingDays     []int     `json:"working_days"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	BreakStart      *string   `json:"break_start,omitempty"`
	BreakEnd        *string   `json:"break_end,omitempty"`
	BufferMinutes   int       `json:"buffer_minutes"`
	SlotStepMinutes int       `json:"slot_step_minutes"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type OccupiedSlotResponse struct {
	StartTimestamp  time.Time `json:"start_timestamp"`
	DurationMinutes int       `json:"duration_minutes"`
}

type DayAvailabilityResponse struct {
	Date      string                  `json:"date"`
	Timezone  string                  `json:"timezone,omitempty"`
	Bookings  []*OccupiedSlotResponse `json:"bookings"`
	Blocked   []string                `json:"blocked"`
	Available []string                `json:"available,omitempty"`
}

func FromRuleView(v *queries.RuleView) (*RuleResponse, error) {
	return copyOne[RuleResponse](v)
}

func FromDayAvailability(d *queries.DayAvailability) *DayAvailabilityResponse {
	bookings := make([]*OccupiedSlotResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, &OccupiedSlotResponse{
			StartTimestamp:  b.StartAt.UTC(),
			DurationMinutes: b.DurationMinutes,
		})
	}
	blocked := d.Blocked
	if blocked == nil {
		blocked = []string{}
	}
	return &DayAvailabilityResponse{
		Date:      d.Date,
		Timezone:  d.Timezone,
		Bookings:  bookings,
		Blocked:   blocked,
		Available: d.Available,
	}
}
