package readstore

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

const listReviewsSQL = `
SELECT id, customer_name, rating, comment, created_at
FROM reviews
WHERE business_id = $1
  AND ($2::int IS NULL OR rating >= $2)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5`

const ratingStatsSQL = `
SELECT count(*)::int,
       COALESCE(avg(rating), 0)::float8,
       count(*) FILTER (WHERE rating = 1)::int,
       count(*) FILTER (WHERE rating = 2)::int,
       count(*) FILTER (WHERE rating = 3)::int,
       count(*) FILTER (WHERE rating = 4)::int,
       count(*) FILTER (WHERE rating = 5)::int
FROM reviews
WHERE business_id = $1`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID, filters queries.ReviewFilters, after *queries.Keyset, limit int32) ([]*queries.ReviewListItem, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, listReviewsSQL, businessID, filters.MinRating, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	var items []*queries.ReviewListItem
	for rows.Next() {
		var it queries.ReviewListItem
		if err := rows.Scan(&it.ID, &it.CustomerName, &it.Rating, &it.Comment, &it.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	return items, nil
}

// RatingStats aggregates on read; a business without reviews gets zeros.
func (r *ReviewReadStore) RatingStats(ctx context.Context, businessID uuid.UUID) (*queries.RatingStats, error) {
	s := queries.RatingStats{BusinessID: businessID}
	err := r.db.QueryRow(ctx, ratingStatsSQL, businessID).Scan(
		&s.TotalReviews, &s.AverageRating,
		&s.Rating1Count, &s.Rating2Count, &s.Rating3Count, &s.Rating4Count, &s.Rating5Count,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating stats", err)
	}
	return &s, nil
}

func (r *ReviewReadStore) ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`, bookingID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
