package request

import (
	"time"

	"slotbook/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest accepts either a catalog service_id or the explicit
// service fields. Field presence is checked by the booking command so the
// missing field is named in the error.
type CreateBookingRequest struct {
	ServiceID       *uuid.UUID `json:"service_id,omitempty"`
	ServiceName     string     `json:"service_name"`
	DurationMinutes int        `json:"duration_minutes" binding:"max=1440"`
	PriceCents      int64      `json:"price_cents"`
	Currency        string     `json:"currency"`
	StartTimestamp  time.Time  `json:"start_timestamp"`
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerEmail   *string    `json:"customer_email,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		Currency:        r.Currency,
		StartAt:         r.StartTimestamp,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		Notes:           r.Notes,
	}
}
