package shared

import (
	"time"

	"github.com/google/uuid"
)

type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
}

type BusinessSnapshot struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Name     string
	Slug     string
	IsActive bool
}

type IdempotencyRecord struct {
	BusinessID  uuid.UUID
	Key         string
	RequestHash string
	BookingID   uuid.UUID
	ExpiresAt   time.Time
}

// Notification kinds and topics written to the outbox.
const (
	NotificationKindEmail = "email"

	TopicBookingConfirmed = "booking_confirmed"
	TopicBookingCancelled = "booking_cancelled"
	TopicReviewRequest    = "review_request"
)
