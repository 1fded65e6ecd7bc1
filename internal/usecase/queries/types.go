package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	IsActive   bool       `json:"is_active"`
}

type BusinessView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// BusinessListItem is a directory entry.
type BusinessListItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Category      string    `json:"category"`
	Description   *string   `json:"description,omitempty"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// RuleView is an availability rule with clock times already rendered as HH:MM.
type RuleView struct {
	BusinessID      uuid.UUID `json:"business_id"`
	Timezone        string    `json:"timezone"`
	WorkingDays     []int     `json:"working_days"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	BreakStart      *string   `json:"break_start,omitempty"`
	BreakEnd        *string   `json:"break_end,omitempty"`
	BufferMinutes   int       `json:"buffer_minutes"`
	SlotStepMinutes int       `json:"slot_step_minutes"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	BusinessID      uuid.UUID `json:"business_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	Currency        string    `json:"currency"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingView struct {
	ID                uuid.UUID  `json:"id"`
	BusinessID        uuid.UUID  `json:"business_id"`
	ServiceName       string     `json:"service_name"`
	DurationMinutes   int        `json:"duration_minutes"`
	PriceCents        int64      `json:"price_cents"`
	Currency          string     `json:"currency"`
	StartAt           time.Time  `json:"start_at"`
	EndAt             time.Time  `json:"end_at"`
	CustomerName      string     `json:"customer_name"`
	CustomerPhone     string     `json:"customer_phone"`
	CustomerEmail     *string    `json:"customer_email,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	Status            string     `json:"status"`
	ReviewRequestedAt *time.Time `json:"review_requested_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// OccupiedSlot is a confirmed booking as exposed on the public calendar.
type OccupiedSlot struct {
	StartAt         time.Time `json:"start_timestamp"`
	DurationMinutes int       `json:"duration_minutes"`
}

type ReviewListItem struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int32     `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RatingStats struct {
	BusinessID    uuid.UUID `json:"business_id"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
	Rating1Count  int32     `json:"rating_1_count"`
	Rating2Count  int32     `json:"rating_2_count"`
	Rating3Count  int32     `json:"rating_3_count"`
	Rating4Count  int32     `json:"rating_4_count"`
	Rating5Count  int32     `json:"rating_5_count"`
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
