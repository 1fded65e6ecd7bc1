package readstore

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Expired keys are treated as absent; the repository overwrites them.
const findIdempotencyKeySQL = `
SELECT business_id, key, request_hash, booking_id, expires_at
FROM booking_idempotency_keys
WHERE business_id = $1 AND key = $2 AND expires_at > $3`

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(db db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: db}
}

func (s *IdempotencyReadStore) Get(ctx context.Context, businessID uuid.UUID, key string, now time.Time) (*shared.IdempotencyRecord, error) {
	var rec shared.IdempotencyRecord
	err := s.db.QueryRow(ctx, findIdempotencyKeySQL, businessID, key, now).Scan(
		&rec.BusinessID, &rec.Key, &rec.RequestHash, &rec.BookingID, &rec.ExpiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &rec, nil
}
