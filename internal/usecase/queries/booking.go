package queries

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)

// BookingFilters narrows an owner's booking list. From and To bound start_at
// as a half-open interval.
type BookingFilters struct {
	From   *time.Time
	To     *time.Time
	Status *string
}

type BookingReadStore interface {
	FindByID(ctx context.Context, businessID, bookingID uuid.UUID) (*BookingView, error)
	List(ctx context.Context, businessID uuid.UUID, filters BookingFilters, after *Keyset, limit int32) ([]*BookingView, error)
	OccupiedBetween(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]OccupiedSlot, error)
}

type BookingQueries interface {
	GetForOwner(ctx context.Context, ownerID, bookingID uuid.UUID) (*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	businesses BusinessReadStore
	bookings   BookingReadStore
}

func NewBookingQueries(businesses BusinessReadStore, bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{businesses: businesses, bookings: bookings}
}

// GetForOwner hides bookings of other businesses behind not-found.
func (q *bookingQueriesImpl) GetForOwner(ctx context.Context, ownerID, bookingID uuid.UUID) (*BookingView, error) {
	b, err := businessOfOwner(ctx, q.businesses, ownerID)
	if err != nil {
		return nil, err
	}
	view, err := q.bookings.FindByID(ctx, b.ID, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListForOwner pages through bookings ordered by start time.
func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	b, err := businessOfOwner(ctx, q.businesses, ownerID)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	after, err := cursor.keyset()
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.bookings.List(ctx, b.ID, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(v *BookingView) (time.Time, uuid.UUID) {
		return v.StartAt, v.ID
	})
	return items, next, nil
}

// NewBookingView flattens a booking for the read side.
func NewBookingView(b *booking.Booking) *BookingView {
	svc := b.Service()
	c := b.Customer()
	return &BookingView{
		ID:                b.ID(),
		BusinessID:        b.BusinessID(),
		ServiceName:       svc.Name(),
		DurationMinutes:   svc.DurationMinutes(),
		PriceCents:        svc.Price().Cents(),
		Currency:          svc.Price().Currency(),
		StartAt:           b.StartAt(),
		EndAt:             b.End(),
		CustomerName:      c.Name(),
		CustomerPhone:     c.Phone(),
		CustomerEmail:     c.Email(),
		Notes:             c.Notes(),
		Status:            b.Status().String(),
		ReviewRequestedAt: b.ReviewRequestedAt(),
		CancelledAt:       b.CancelledAt(),
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}
}
