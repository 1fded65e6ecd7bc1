package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	// Every way a slot can be lost, from a fresh read or from the database
	// constraints, surfaces as this one error.
	ErrSlotUnavailable     = errs.Mark(errs.New("slot no longer available"), errs.ErrConflict)
	ErrNotBookable         = errs.Mark(errs.New("requested time is not bookable"), errs.ErrValidation)
	ErrStartInPast         = errs.New("start time is in the past")
	ErrServiceUnavailable  = errs.Mark(errs.New("service is not available for booking"), errs.ErrValidation)
	ErrIdempotencyMismatch = errs.Mark(errs.New("idempotency key was used with a different request"), errs.ErrValidation)
	ErrBookingNotFound     = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
)

const (
	idempotencyTTL    = 24 * time.Hour
	maxIdempotencyKey = 255
)

type CreateBookingInput struct {
	// ServiceID selects a catalog service; when nil the explicit service
	// fields are used as the snapshot.
	ServiceID       *uuid.UUID `json:"service_id,omitempty"`
	ServiceName     string     `json:"service_name"`
	DurationMinutes int        `json:"duration_minutes"`
	PriceCents      int64      `json:"price_cents"`
	Currency        string     `json:"currency"`
	StartAt         time.Time  `json:"start_at"`
	CustomerName    string     `json:"customer_name"`
	CustomerPhone   string     `json:"customer_phone"`
	CustomerEmail   *string    `json:"customer_email,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

type CreateBookingResult struct {
	Booking  *booking.Booking
	Replayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, slug string, in CreateBookingInput, idempotencyKey string) (*CreateBookingResult, error)
	Cancel(ctx context.Context, ownerID, bookingID uuid.UUID) (*booking.Booking, error)
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

// Create validates the request, then re-checks the slot against a fresh read
// of the day's confirmed bookings and inserts inside the same transaction.
func (c *bookingCommandsImpl) Create(ctx context.Context, slug string, in CreateBookingInput, idempotencyKey string) (*CreateBookingResult, error) {
	customer, err := booking.NewCustomer(in.CustomerName, in.CustomerPhone, in.CustomerEmail, in.Notes)
	if err != nil {
		return nil, invalid(err)
	}
	var explicit booking.ServiceSnapshot
	if in.ServiceID == nil {
		explicit, err = booking.NewServiceSnapshot(in.ServiceName, in.DurationMinutes, in.PriceCents, in.Currency)
		if err != nil {
			return nil, invalid(err)
		}
	}
	if in.StartAt.IsZero() {
		return nil, invalid(booking.ErrMissingStart)
	}
	idempotencyKey = strings.TrimSpace(idempotencyKey)
	if len(idempotencyKey) > maxIdempotencyKey {
		return nil, invalid(errs.New("idempotency key is too long"))
	}
	requestHash, err := hashRequest(slug, in)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	var result *CreateBookingResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		biz, err := reads.BusinessBySlug(ctx, slug)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotUnavailable
			}
			return err
		}
		if !biz.IsActive {
			return ErrSlotUnavailable
		}

		if idempotencyKey != "" {
			replayed, err := c.replay(ctx, reads, biz.ID, idempotencyKey, requestHash, now)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = &CreateBookingResult{Booking: replayed, Replayed: true}
				return nil
			}
		}

		snapshot := explicit
		if in.ServiceID != nil {
			snapshot, err = c.catalogSnapshot(ctx, reads, biz.ID, *in.ServiceID)
			if err != nil {
				return err
			}
		}

		rule, err := reads.RuleByBusiness(ctx, biz.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotUnavailable
			}
			return err
		}

		b, err := booking.NewBooking(biz.ID, snapshot, in.StartAt, customer, now)
		if err != nil {
			return invalid(err)
		}
		if !b.StartAt().After(now) {
			return errs.MarkAll(ErrStartInPast, ErrNotBookable, errs.ErrValidation)
		}

		if err := c.checkSlot(ctx, reads, rule, b); err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, b, b.Footprint(rule)); err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.MarkAll(err, ErrSlotUnavailable, errs.ErrConflict)
			}
			return err
		}

		payload, err := bookingPayload(b)
		if err != nil {
			return err
		}
		if err := tx.Notifications().CreateJob(ctx, shared.NotificationKindEmail, shared.TopicBookingConfirmed, payload, now); err != nil {
			return err
		}

		if idempotencyKey != "" {
			rec := shared.IdempotencyRecord{
				BusinessID:  biz.ID,
				Key:         idempotencyKey,
				RequestHash: requestHash,
				BookingID:   b.ID(),
				ExpiresAt:   now.Add(idempotencyTTL),
			}
			if err := tx.Idempotency().Insert(ctx, rec); err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.MarkAll(err, ErrSlotUnavailable, errs.ErrConflict)
				}
				return err
			}
		}

		result = &CreateBookingResult{Booking: b}
		return nil
	})
	if err != nil {
		if idempotencyKey != "" && errs.Is(err, ErrSlotUnavailable) {
			// a concurrent request with the same key may have taken the slot
			if replayed, rerr := c.replayCommitted(ctx, slug, idempotencyKey, requestHash); rerr == nil && replayed != nil {
				return &CreateBookingResult{Booking: replayed, Replayed: true}, nil
			}
		}
		return nil, err
	}

	if !result.Replayed {
		slog.Info("booking confirmed",
			"booking_id", result.Booking.ID(),
			"business_id", result.Booking.BusinessID(),
			"start_at", result.Booking.StartAt())
	}
	return result, nil
}

// checkSlot is the authoritative availability decision for b.
func (c *bookingCommandsImpl) checkSlot(ctx context.Context, reads shared.CommandReads, rule availability.Rule, b *booking.Booking) error {
	date := rule.LocalDate(b.StartAt())
	from, to := rule.DayBounds(date)
	existing, err := reads.ConfirmedBookingsBetween(ctx, b.BusinessID(), from, to)
	if err != nil {
		return err
	}
	occupied := make([]availability.Occupancy, 0, len(existing))
	for _, e := range existing {
		occupied = append(occupied, e.Occupancy(rule))
	}

	err = rule.Check(date, rule.ClockOf(b.StartAt()), b.Service().DurationMinutes(), occupied)
	switch {
	case err == nil:
		return nil
	case errs.Is(err, availability.ErrSlotTaken):
		return errs.MarkAll(err, ErrSlotUnavailable, errs.ErrConflict)
	default:
		return errs.MarkAll(err, ErrNotBookable, errs.ErrValidation)
	}
}

func (c *bookingCommandsImpl) catalogSnapshot(ctx context.Context, reads shared.CommandReads, businessID, serviceID uuid.UUID) (booking.ServiceSnapshot, error) {
	svc, err := reads.ServiceByID(ctx, businessID, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.ServiceSnapshot{}, ErrServiceUnavailable
		}
		return booking.ServiceSnapshot{}, err
	}
	snapshot, err := svc.Snapshot()
	if err != nil {
		return booking.ServiceSnapshot{}, errs.MarkAll(err, ErrServiceUnavailable, errs.ErrValidation)
	}
	return snapshot, nil
}

// replay returns the booking created earlier under the same key, or nil when
// the key is unused.
func (c *bookingCommandsImpl) replay(ctx context.Context, reads shared.CommandReads, businessID uuid.UUID, key, requestHash string, now time.Time) (*booking.Booking, error) {
	rec, err := reads.IdempotencyByKey(ctx, businessID, key, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if rec.RequestHash != requestHash {
		return nil, ErrIdempotencyMismatch
	}
	return reads.BookingByIDForUpdate(ctx, rec.BookingID)
}

// replayCommitted looks the key up again in a fresh transaction, after the
// request lost its slot to whichever request committed first.
func (c *bookingCommandsImpl) replayCommitted(ctx context.Context, slug, key, requestHash string) (*booking.Booking, error) {
	var replayed *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		biz, err := tx.Reads().BusinessBySlug(ctx, slug)
		if err != nil {
			return err
		}
		replayed, err = c.replay(ctx, tx.Reads(), biz.ID, key, requestHash, c.clock.Now())
		return err
	})
	return replayed, err
}

// Cancel is owner-only and idempotent. Bookings of other businesses look
// exactly like missing ones.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, ownerID, bookingID uuid.UUID) (*booking.Booking, error) {
	var cancelled *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		biz, err := tx.Reads().BusinessByOwner(ctx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		b, err := tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if b.BusinessID() != biz.ID {
			return ErrBookingNotFound
		}

		now := c.clock.Now()
		cancelled = b
		if !b.Cancel(now) {
			return nil
		}
		if err := tx.Bookings().Cancel(ctx, b); err != nil {
			return err
		}

		payload, err := bookingPayload(b)
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, shared.NotificationKindEmail, shared.TopicBookingCancelled, payload, now)
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (c *bookingCommandsImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		n, err = tx.Idempotency().DeleteExpired(ctx)
		return err
	})
	return n, err
}

// hashRequest fingerprints a request; the start is compared as a UTC instant
// so the same time sent with another offset is the same request.
func hashRequest(slug string, in CreateBookingInput) (string, error) {
	in.StartAt = booking.NormalizeStart(in.StartAt)
	body, err := json.Marshal(struct {
		Slug  string             `json:"slug"`
		Input CreateBookingInput `json:"input"`
	}{Slug: slug, Input: in})
	if err != nil {
		return "", errs.Wrap(err, "failed to hash booking request")
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}
