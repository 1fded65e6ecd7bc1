package repository

import (
	"context"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
)

const createBookingSQL = `
INSERT INTO bookings (
    id, business_id, service_name, duration_minutes, price_cents, currency,
    start_at, slot, customer_name, customer_phone, customer_email, notes,
    status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create stores the booking with its footprint. A footprint overlapping another
// confirmed booking of the same business fails with KindConflict; an identical
// start fails with KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking, footprint booking.TimeRange) error {
	svc := b.Service()
	c := b.Customer()
	_, err := r.db.Exec(ctx, createBookingSQL,
		b.ID(), b.BusinessID(), svc.Name(), svc.DurationMinutes(), svc.Price().Cents(), svc.Price().Currency(),
		b.StartAt(), pgconv.TstzRange(footprint.Start(), footprint.End()),
		c.Name(), c.Phone(), c.Email(), c.Notes(),
		b.Status().String(), b.CreatedAt(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, cancelled_at = $3, updated_at = $4 WHERE id = $1`,
		b.ID(), b.Status().String(), b.CancelledAt(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) MarkReviewRequested(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET review_token_hash = $2, review_requested_at = $3, updated_at = $4
		 WHERE id = $1 AND review_requested_at IS NULL`,
		b.ID(), b.ReviewTokenHash(), b.ReviewRequestedAt(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to mark review requested", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review already requested", nil, infra.KindConflict)
	}
	return nil
}
