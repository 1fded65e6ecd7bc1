package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                uuid.UUID  `json:"id"`
	BusinessID        uuid.UUID  `json:"business_id"`
	ServiceName       string     `json:"service_name"`
	DurationMinutes   int        `json:"duration_minutes"`
	PriceCents        int64      `json:"price_cents"`
	Currency          string     `json:"currency"`
	StartTimestamp    time.Time  `json:"start_timestamp"`
	EndTimestamp      time.Time  `json:"end_timestamp"`
	CustomerName      string     `json:"customer_name"`
	CustomerPhone     string     `json:"customer_phone"`
	CustomerEmail     *string    `json:"customer_email,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	Status            string     `json:"status"`
	ReviewRequestedAt *time.Time `json:"review_requested_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	r, err := copyOne[BookingResponse](v)
	if err != nil {
		return nil, err
	}
	r.StartTimestamp = v.StartAt.UTC()
	r.EndTimestamp = v.EndAt.UTC()
	return r, nil
}

func FromBookingList(items []*queries.BookingView) ([]*BookingResponse, error) {
	out := make([]*BookingResponse, 0, len(items))
	for _, v := range items {
		r, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
