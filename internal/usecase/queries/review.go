package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewFilters struct {
	MinRating *int
}

type ReviewReadStore interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID, filters ReviewFilters, after *Keyset, limit int32) ([]*ReviewListItem, error)
	RatingStats(ctx context.Context, businessID uuid.UUID) (*RatingStats, error)
}

type ReviewQueries interface {
	ListByBusiness(ctx context.Context, slug string, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetRatingStats(ctx context.Context, slug string) (*RatingStats, error)
}

type reviewQueriesImpl struct {
	businesses BusinessReadStore
	repo       ReviewReadStore
}

func NewReviewQueries(businesses BusinessReadStore, repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{businesses: businesses, repo: repo}
}

func (q *reviewQueriesImpl) ListByBusiness(ctx context.Context, slug string, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	b, err := findActiveBySlug(ctx, q.businesses, slug)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	after, err := cursor.keyset()
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.repo.ListByBusiness(ctx, b.ID, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(r *ReviewListItem) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	return items, next, nil
}

func (q *reviewQueriesImpl) GetRatingStats(ctx context.Context, slug string) (*RatingStats, error) {
	b, err := findActiveBySlug(ctx, q.businesses, slug)
	if err != nil {
		return nil, err
	}
	return q.repo.RatingStats(ctx, b.ID)
}
