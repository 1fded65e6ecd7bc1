package queries

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBusinessNotFound = errs.Mark(errs.New("business not found"), errs.ErrNotFound)

// BusinessProfile is the public page of a business.
type BusinessProfile struct {
	Business *BusinessView
	Services []*ServiceView
	Rule     *RuleView
	Rating   *RatingStats
}

type DirectoryFilters struct {
	Category *string
}

type BusinessReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*BusinessView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*BusinessView, error)
	List(ctx context.Context, filters DirectoryFilters, after *Keyset, limit int32) ([]*BusinessListItem, error)
}

type DirectoryQueries interface {
	List(ctx context.Context, filters DirectoryFilters, cursor *Cursor, limit int) ([]*BusinessListItem, *Cursor, error)
	GetProfile(ctx context.Context, slug string) (*BusinessProfile, error)
	GetOwnBusiness(ctx context.Context, ownerID uuid.UUID) (*BusinessView, error)
}

type directoryQueriesImpl struct {
	businesses BusinessReadStore
	services   ServiceReadStore
	rules      RuleReadStore
	reviews    ReviewReadStore
}

func NewDirectoryQueries(businesses BusinessReadStore, services ServiceReadStore, rules RuleReadStore, reviews ReviewReadStore) DirectoryQueries {
	return &directoryQueriesImpl{
		businesses: businesses,
		services:   services,
		rules:      rules,
		reviews:    reviews,
	}
}

func (q *directoryQueriesImpl) List(ctx context.Context, filters DirectoryFilters, cursor *Cursor, limit int) ([]*BusinessListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := cursor.keyset()
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.businesses.List(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(b *BusinessListItem) (time.Time, uuid.UUID) {
		return b.CreatedAt, b.ID
	})
	return items, next, nil
}

func (q *directoryQueriesImpl) GetProfile(ctx context.Context, slug string) (*BusinessProfile, error) {
	b, err := findActiveBySlug(ctx, q.businesses, slug)
	if err != nil {
		return nil, err
	}

	services, err := q.services.ListByBusiness(ctx, b.ID, true)
	if err != nil {
		return nil, err
	}

	rule, err := q.rules.FindByBusiness(ctx, b.ID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	stats, err := q.reviews.RatingStats(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	return &BusinessProfile{Business: b, Services: services, Rule: rule, Rating: stats}, nil
}

func (q *directoryQueriesImpl) GetOwnBusiness(ctx context.Context, ownerID uuid.UUID) (*BusinessView, error) {
	return businessOfOwner(ctx, q.businesses, ownerID)
}

func findActiveBySlug(ctx context.Context, store BusinessReadStore, slug string) (*BusinessView, error) {
	b, err := store.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	if !b.IsActive {
		return nil, ErrBusinessNotFound
	}
	return b, nil
}

func businessOfOwner(ctx context.Context, store BusinessReadStore, ownerID uuid.UUID) (*BusinessView, error) {
	b, err := store.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return b, nil
}
