//go:build unit || e2e

package builder

import (
	"time"

	"slotbook/internal/domain/booking"
	reqdto "slotbook/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	BusinessID      uuid.UUID
	ServiceID       *uuid.UUID
	ServiceName     string
	DurationMinutes int
	PriceCents      int64
	Currency        string
	StartAt         time.Time
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	Notes           *string
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	email := "customer@example.com"
	return &BookingBuilder{
		BusinessID:      uuid.New(),
		ServiceName:     "Classic Lash Set",
		DurationMinutes: 60,
		PriceCents:      8500,
		Currency:        "USD",
		StartAt:         time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC),
		CustomerName:    "Jamie Rivera",
		CustomerPhone:   "+1 555 0100",
		CustomerEmail:   &email,
		Now:             time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	svc, err := booking.NewServiceSnapshot(b.ServiceName, b.DurationMinutes, b.PriceCents, b.Currency)
	if err != nil {
		return nil, err
	}
	customer, err := booking.NewCustomer(b.CustomerName, b.CustomerPhone, b.CustomerEmail, b.Notes)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.BusinessID, svc, b.StartAt, customer, b.Now)
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		DurationMinutes: b.DurationMinutes,
		PriceCents:      b.PriceCents,
		Currency:        b.Currency,
		StartTimestamp:  b.StartAt,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		Notes:           b.Notes,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithBusinessID(id uuid.UUID) *BookingBuilder {
	b.BusinessID = id
	return b
}

func (b *BookingBuilder) WithStartAt(t time.Time) *BookingBuilder {
	b.StartAt = t
	return b
}

func (b *BookingBuilder) WithDuration(minutes int) *BookingBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *BookingBuilder) WithCustomer(name, phone string) *BookingBuilder {
	b.CustomerName = name
	b.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithPrice(cents int64, currency string) *BookingBuilder {
	b.PriceCents = cents
	b.Currency = currency
	return b
}
