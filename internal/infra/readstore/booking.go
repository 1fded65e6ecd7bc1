package readstore

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, business_id, service_name, duration_minutes, price_cents, currency, start_at,
       customer_name, customer_phone, customer_email, notes, status,
       review_token_hash, review_requested_at, cancelled_at, created_at, updated_at`

const listBookingsSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE business_id = $1
  AND ($2::timestamptz IS NULL OR start_at >= $2)
  AND ($3::timestamptz IS NULL OR start_at < $3)
  AND ($4::text IS NULL OR status = $4)
  AND ($5::timestamptz IS NULL OR (start_at, id) > ($5, $6::uuid))
ORDER BY start_at, id
LIMIT $7`

const occupiedBetweenSQL = `
SELECT start_at, duration_minutes
FROM bookings
WHERE business_id = $1 AND status = 'CONFIRMED' AND start_at >= $2 AND start_at < $3
ORDER BY start_at`

const confirmedBetweenSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE business_id = $1 AND status = 'CONFIRMED' AND start_at >= $2 AND start_at < $3
ORDER BY start_at`

// A booking is due once start_at + duration has passed. SKIP LOCKED lets
// concurrent sweeps split the work instead of queueing behind each other.
const dueForReviewSQL = `
SELECT ` + bookingColumns + `
FROM bookings b
WHERE status = 'CONFIRMED'
  AND review_requested_at IS NULL
  AND start_at + make_interval(mins => duration_minutes) <= $1
  AND NOT EXISTS (SELECT 1 FROM reviews r WHERE r.booking_id = b.id)
ORDER BY start_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, businessID, bookingID uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE business_id = $1 AND id = $2`, businessID, bookingID)
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return queries.NewBookingView(b), nil
}

func (r *BookingReadStore) List(ctx context.Context, businessID uuid.UUID, filters queries.BookingFilters, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	afterAt, afterID := keysetArgs(after)
	bookings, err := r.queryBookings(ctx, "failed to list bookings", listBookingsSQL,
		businessID, filters.From, filters.To, filters.Status, afterAt, afterID, limit)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, queries.NewBookingView(b))
	}
	return views, nil
}

func (r *BookingReadStore) OccupiedBetween(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]queries.OccupiedSlot, error) {
	rows, err := r.db.Query(ctx, occupiedBetweenSQL, businessID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load occupied slots", err)
	}
	defer rows.Close()

	slots := []queries.OccupiedSlot{}
	for rows.Next() {
		var s queries.OccupiedSlot
		if err := rows.Scan(&s.StartAt, &s.DurationMinutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied slot", err)
		}
		s.StartAt = s.StartAt.UTC()
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load occupied slots", err)
	}
	return slots, nil
}

// LoadForUpdate locks the booking row for the rest of the transaction.
func (r *BookingReadStore) LoadForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	return loadOne(row)
}

func (r *BookingReadStore) LoadByReviewTokenHashForUpdate(ctx context.Context, hash string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE review_token_hash = $1 FOR UPDATE`, hash)
	return loadOne(row)
}

func (r *BookingReadStore) LoadConfirmedBetween(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	return r.queryBookings(ctx, "failed to load confirmed bookings", confirmedBetweenSQL, businessID, from, to)
}

func (r *BookingReadStore) LoadDueForReview(ctx context.Context, now time.Time, limit int) ([]*booking.Booking, error) {
	return r.queryBookings(ctx, "failed to load bookings due for review", dueForReviewSQL, now, limit)
}

func (r *BookingReadStore) queryBookings(ctx context.Context, msg, sql string, args ...any) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return out, nil
}

func loadOne(row pgx.Row) (*booking.Booking, error) {
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}
	return b, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, businessID         uuid.UUID
		serviceName, currency  string
		duration               int
		priceCents             int64
		startAt                time.Time
		name, phone, status    string
		email, notes, hash     *string
		requestedAt, cancelled *time.Time
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&id, &businessID, &serviceName, &duration, &priceCents, &currency, &startAt,
		&name, &phone, &email, &notes, &status,
		&hash, &requestedAt, &cancelled, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	service, err := booking.NewServiceSnapshot(serviceName, duration, priceCents, currency)
	if err != nil {
		return nil, errs.Wrap(err, "stored service snapshot is invalid")
	}
	customer, err := booking.NewCustomer(name, phone, email, notes)
	if err != nil {
		return nil, errs.Wrap(err, "stored customer is invalid")
	}
	st, err := booking.NewStatus(status)
	if err != nil {
		return nil, errs.Wrap(err, "stored status is invalid")
	}

	return booking.ReconstructBooking(id, businessID, service, startAt, customer, st,
		hash, requestedAt, cancelled, createdAt, updatedAt), nil
}
