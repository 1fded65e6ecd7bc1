package commands

import (
	"encoding/json"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// invalid marks a domain validation failure so handlers answer 4xx.
func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

// Outbox payloads. The mailer renders them; field names are part of the
// contract with it.
type bookingNotification struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BusinessID    uuid.UUID `json:"business_id"`
	ServiceName   string    `json:"service_name"`
	StartAt       time.Time `json:"start_at"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	CustomerPhone string    `json:"customer_phone"`
}

type reviewRequestNotification struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BusinessID    uuid.UUID `json:"business_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email,omitempty"`
	ReviewURL     string    `json:"review_url"`
}

func bookingPayload(b *booking.Booking) ([]byte, error) {
	c := b.Customer()
	return json.Marshal(bookingNotification{
		BookingID:     b.ID(),
		BusinessID:    b.BusinessID(),
		ServiceName:   b.Service().Name(),
		StartAt:       b.StartAt(),
		CustomerName:  c.Name(),
		CustomerEmail: c.Email(),
		CustomerPhone: c.Phone(),
	})
}

func reviewRequestPayload(b *booking.Booking, reviewURL string) ([]byte, error) {
	c := b.Customer()
	return json.Marshal(reviewRequestNotification{
		BookingID:     b.ID(),
		BusinessID:    b.BusinessID(),
		CustomerName:  c.Name(),
		CustomerEmail: c.Email(),
		ReviewURL:     reviewURL,
	})
}
