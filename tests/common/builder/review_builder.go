//go:build unit || e2e

package builder

import (
	"time"

	domreview "slotbook/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	BusinessID   uuid.UUID
	BookingID    uuid.UUID
	CustomerName string
	Rating       int
	Comment      *string
	CreatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	comment := "Excellent service!"
	return &ReviewBuilder{
		BusinessID:   uuid.New(),
		BookingID:    uuid.New(),
		CustomerName: "Jamie Rivera",
		Rating:       5,
		Comment:      &comment,
		CreatedAt:    time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.BusinessID, r.BookingID, r.CustomerName, r.Rating, r.Comment, r.CreatedAt)
}

// Fluent builder methods
func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = &comment
	return r
}

func (r *ReviewBuilder) WithoutComment() *ReviewBuilder {
	r.Comment = nil
	return r
}

func (r *ReviewBuilder) WithBusinessID(id uuid.UUID) *ReviewBuilder {
	r.BusinessID = id
	return r
}
