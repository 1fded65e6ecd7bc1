package readstore

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/queries"
)

const listNotificationJobsSQL = `
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM notification_jobs
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::text IS NULL OR topic = $2)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5`

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

func (s *NotificationReadStore) List(ctx context.Context, filters queries.NotificationFilters, after *queries.Keyset, limit int32) ([]*queries.NotificationJobView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := s.db.Query(ctx, listNotificationJobsSQL, filters.Status, filters.Topic, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}
	defer rows.Close()

	var result []*queries.NotificationJobView
	for rows.Next() {
		var v queries.NotificationJobView
		if err := rows.Scan(&v.ID, &v.Kind, &v.Topic, &v.Payload, &v.RunAt, &v.Attempts,
			&v.Status, &v.LastError, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}
	return result, nil
}
