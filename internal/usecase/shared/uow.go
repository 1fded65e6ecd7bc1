package shared

import (
	"context"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/business"
	"slotbook/internal/domain/catalog"
	"slotbook/internal/domain/review"
	"slotbook/internal/domain/user"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Businesses() BusinessRepository
	Rules() AvailabilityRuleRepository
	Services() ServiceRepository
	Bookings() BookingRepository
	Idempotency() IdempotencyRepository
	Reviews() ReviewRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads loads write-side state. Methods ending in ForUpdate take row
// locks and are only meaningful inside Within.
type CommandReads interface {
	UserCredentialsByEmail(ctx context.Context, email string) (*UserCredentials, error)
	BusinessBySlug(ctx context.Context, slug string) (*BusinessSnapshot, error)
	BusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*BusinessSnapshot, error)
	RuleByBusiness(ctx context.Context, businessID uuid.UUID) (availability.Rule, error)
	ServiceByID(ctx context.Context, businessID, serviceID uuid.UUID) (*catalog.Service, error)
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	BookingByReviewTokenHashForUpdate(ctx context.Context, hash string) (*booking.Booking, error)
	ConfirmedBookingsBetween(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
	BookingsDueForReview(ctx context.Context, now time.Time, limit int) ([]*booking.Booking, error)
	IdempotencyByKey(ctx context.Context, businessID uuid.UUID, key string, now time.Time) (*IdempotencyRecord, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type BusinessRepository interface {
	Create(ctx context.Context, b *business.Business) error
}

type AvailabilityRuleRepository interface {
	Save(ctx context.Context, businessID uuid.UUID, rule availability.Rule, at time.Time) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *catalog.Service) error
	Update(ctx context.Context, s *catalog.Service) error
}

type BookingRepository interface {
	// Create inserts a confirmed booking together with its footprint.
	Create(ctx context.Context, b *booking.Booking, footprint booking.TimeRange) error
	Cancel(ctx context.Context, b *booking.Booking) error
	MarkReviewRequested(ctx context.Context, b *booking.Booking) error
}

type IdempotencyRepository interface {
	Insert(ctx context.Context, rec IdempotencyRecord) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
