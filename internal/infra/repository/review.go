package repository

import (
	"context"

	"slotbook/internal/domain/review"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
)

const createReviewSQL = `
INSERT INTO reviews (id, business_id, booking_id, customer_name, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(db db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create fails with KindDuplicateKey when the booking already has a review.
func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	_, err := r.db.Exec(ctx, createReviewSQL,
		rev.ID(), rev.BusinessID(), rev.BookingID(), rev.CustomerName(),
		int16(rev.Rating().Value()), rev.Comment().Ptr(), rev.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}
