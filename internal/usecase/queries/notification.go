package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationFilters struct {
	Status *string
	Topic  *string
}

type NotificationReadStore interface {
	List(ctx context.Context, filters NotificationFilters, after *Keyset, limit int32) ([]*NotificationJobView, error)
}

// NotificationQueries lets admins inspect the outbox.
type NotificationQueries interface {
	List(ctx context.Context, filters NotificationFilters, cursor *Cursor, limit int) ([]*NotificationJobView, *Cursor, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, filters NotificationFilters, cursor *Cursor, limit int) ([]*NotificationJobView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := cursor.keyset()
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	items, next := page(rows, limit, func(j *NotificationJobView) (time.Time, uuid.UUID) {
		return j.CreatedAt, j.ID
	})
	return items, next, nil
}
