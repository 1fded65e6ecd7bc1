package repository

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/usecase/shared"
)

// A live key with the same (business, key) is left untouched and reported as
// a duplicate; an expired one is overwritten.
const insertIdempotencyKeySQL = `
INSERT INTO booking_idempotency_keys (business_id, key, request_hash, booking_id, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (business_id, key) DO UPDATE SET
    request_hash = EXCLUDED.request_hash,
    booking_id   = EXCLUDED.booking_id,
    expires_at   = EXCLUDED.expires_at,
    created_at   = now()
WHERE booking_idempotency_keys.expires_at <= now()`

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) Insert(ctx context.Context, rec shared.IdempotencyRecord) error {
	tag, err := r.db.Exec(ctx, insertIdempotencyKeySQL,
		rec.BusinessID, rec.Key, rec.RequestHash, rec.BookingID, rec.ExpiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key already in use", nil, infra.KindDuplicateKey)
	}
	return nil
}

// DeleteExpired removes keys whose replay window has passed.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM booking_idempotency_keys WHERE expires_at <= now()`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
