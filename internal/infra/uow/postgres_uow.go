package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/catalog"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/infra/readstore"
	"slotbook/internal/infra/repository"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Overlapping bookings are rejected by the exclusion constraint, not by
// isolation.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgx.Tx

	// Lazy-initialized repositories
	userRepo         shared.UserRepository
	businessRepo     shared.BusinessRepository
	ruleRepo         shared.AvailabilityRuleRepository
	serviceRepo      shared.ServiceRepository
	bookingRepo      shared.BookingRepository
	idempotencyRepo  shared.IdempotencyRepository
	reviewRepo       shared.ReviewRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Businesses() shared.BusinessRepository {
	if t.businessRepo == nil {
		t.businessRepo = repository.NewBusinessRepository(t.dbtx)
	}
	return t.businessRepo
}

func (t *pgTx) Rules() shared.AvailabilityRuleRepository {
	if t.ruleRepo == nil {
		t.ruleRepo = repository.NewAvailabilityRuleRepository(t.dbtx)
	}
	return t.ruleRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository(t.dbtx)
	}
	return t.serviceRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.dbtx)
	}
	return t.reviewRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	users       *readstore.UserReadStore
	businesses  *readstore.BusinessReadStore
	rules       *readstore.RuleReadStore
	services    *readstore.ServiceReadStore
	bookings    *readstore.BookingReadStore
	idempotency *readstore.IdempotencyReadStore
	reviews     *readstore.ReviewReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{
		users:       readstore.NewUserReadStore(dbtx),
		businesses:  readstore.NewBusinessReadStore(dbtx),
		rules:       readstore.NewRuleReadStore(dbtx),
		services:    readstore.NewServiceReadStore(dbtx),
		bookings:    readstore.NewBookingReadStore(dbtx),
		idempotency: readstore.NewIdempotencyReadStore(dbtx),
		reviews:     readstore.NewReviewReadStore(dbtx),
	}
}

func (r *commandReads) UserCredentialsByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	return r.users.FindCredentials(ctx, email)
}

func (r *commandReads) BusinessBySlug(ctx context.Context, slug string) (*shared.BusinessSnapshot, error) {
	b, err := r.businesses.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return toBusinessSnapshot(b), nil
}

func (r *commandReads) BusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*shared.BusinessSnapshot, error) {
	b, err := r.businesses.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toBusinessSnapshot(b), nil
}

func (r *commandReads) RuleByBusiness(ctx context.Context, businessID uuid.UUID) (availability.Rule, error) {
	view, err := r.rules.FindByBusiness(ctx, businessID)
	if err != nil {
		return availability.Rule{}, err
	}
	rule, err := queries.RuleFromView(view)
	if err != nil {
		return availability.Rule{}, infra.WrapRepoErr("stored availability rule is invalid", err)
	}
	return rule, nil
}

func (r *commandReads) ServiceByID(ctx context.Context, businessID, serviceID uuid.UUID) (*catalog.Service, error) {
	v, err := r.services.FindByID(ctx, businessID, serviceID)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(v.PriceCents, v.Currency)
	if err != nil {
		return nil, infra.WrapRepoErr("stored service price is invalid", err)
	}
	return catalog.ReconstructService(v.ID, v.BusinessID, v.Name, v.DurationMinutes, price, v.IsActive, v.CreatedAt, v.UpdatedAt), nil
}

func (r *commandReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings.LoadForUpdate(ctx, id)
}

func (r *commandReads) BookingByReviewTokenHashForUpdate(ctx context.Context, hash string) (*booking.Booking, error) {
	return r.bookings.LoadByReviewTokenHashForUpdate(ctx, hash)
}

func (r *commandReads) ConfirmedBookingsBetween(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	return r.bookings.LoadConfirmedBetween(ctx, businessID, from, to)
}

func (r *commandReads) BookingsDueForReview(ctx context.Context, now time.Time, limit int) ([]*booking.Booking, error) {
	return r.bookings.LoadDueForReview(ctx, now, limit)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, businessID uuid.UUID, key string, now time.Time) (*shared.IdempotencyRecord, error) {
	return r.idempotency.Get(ctx, businessID, key, now)
}

func (r *commandReads) ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	return r.reviews.ExistsForBooking(ctx, bookingID)
}

func toBusinessSnapshot(b *queries.BusinessView) *shared.BusinessSnapshot {
	return &shared.BusinessSnapshot{
		ID:       b.ID,
		OwnerID:  b.OwnerID,
		Name:     b.Name,
		Slug:     b.Slug,
		IsActive: b.IsActive,
	}
}
