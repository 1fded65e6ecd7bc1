package booking

import (
	"errors"
	"time"

	"slotbook/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrBookingCancelled       = errors.New("booking is cancelled")
	ErrReviewAlreadyRequested = errors.New("review has already been requested for this booking")
	ErrNotCompleted           = errors.New("booking has not been completed yet")
)

type Booking struct {
	id                uuid.UUID
	businessID        uuid.UUID
	service           ServiceSnapshot
	startAt           time.Time
	customer          Customer
	status            Status
	reviewTokenHash   *string
	reviewRequestedAt *time.Time
	cancelledAt       *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// NewBooking creates a confirmed booking. The start instant is stored in UTC
// at minute precision.
func NewBooking(businessID uuid.UUID, service ServiceSnapshot, startAt time.Time, customer Customer, now time.Time) (*Booking, error) {
	if startAt.IsZero() {
		return nil, ErrMissingStart
	}
	if service.durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if customer.name == "" {
		return nil, ErrMissingCustomerName
	}
	if customer.phone == "" {
		return nil, ErrMissingCustomerPhone
	}

	return &Booking{
		id:         uuid.New(),
		businessID: businessID,
		service:    service,
		startAt:    NormalizeStart(startAt),
		customer:   customer,
		status:     StatusConfirmed,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, businessID uuid.UUID,
	service ServiceSnapshot,
	startAt time.Time,
	customer Customer,
	status Status,
	reviewTokenHash *string,
	reviewRequestedAt, cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		businessID:        businessID,
		service:           service,
		startAt:           startAt.UTC(),
		customer:          customer,
		status:            status,
		reviewTokenHash:   reviewTokenHash,
		reviewRequestedAt: reviewRequestedAt,
		cancelledAt:       cancelledAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func NormalizeStart(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}

// Cancel moves a confirmed booking to cancelled. It reports false when the
// booking was already cancelled, in which case nothing changes.
func (b *Booking) Cancel(now time.Time) bool {
	if b.status == StatusCancelled {
		return false
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	b.updatedAt = now
	return true
}

func (b *Booking) End() time.Time {
	return b.startAt.Add(b.service.Duration())
}

// Footprint is the interval the booking keeps busy under the rule: duration
// plus buffer rounded up to whole slot steps.
func (b *Booking) Footprint(r availability.Rule) TimeRange {
	minutes := r.FootprintMinutes(b.service.durationMinutes)
	return TimeRange{start: b.startAt, end: b.startAt.Add(time.Duration(minutes) * time.Minute)}
}

func (b *Booking) Occupancy(r availability.Rule) availability.Occupancy {
	return availability.Occupancy{
		Start:           r.ClockOf(b.startAt),
		DurationMinutes: b.service.durationMinutes,
	}
}

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }
func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

// IsCompleted reports whether the appointment has ended and was not cancelled.
func (b *Booking) IsCompleted(now time.Time) bool {
	return b.status == StatusConfirmed && !b.End().After(now)
}

// RequestReview records that a review invitation was issued with the given
// token hash. A booking is invited at most once.
func (b *Booking) RequestReview(tokenHash string, now time.Time) error {
	if b.reviewRequestedAt != nil {
		return ErrReviewAlreadyRequested
	}
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	if !b.IsCompleted(now) {
		return ErrNotCompleted
	}
	b.reviewTokenHash = &tokenHash
	b.reviewRequestedAt = &now
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) BusinessID() uuid.UUID         { return b.businessID }
func (b *Booking) Service() ServiceSnapshot      { return b.service }
func (b *Booking) StartAt() time.Time            { return b.startAt }
func (b *Booking) Customer() Customer            { return b.customer }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) ReviewTokenHash() *string      { return b.reviewTokenHash }
func (b *Booking) ReviewRequestedAt() *time.Time { return b.reviewRequestedAt }
func (b *Booking) CancelledAt() *time.Time       { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
