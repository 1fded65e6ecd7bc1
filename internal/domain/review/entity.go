package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id           uuid.UUID
	businessID   uuid.UUID
	bookingID    uuid.UUID
	customerName string
	rating       Rating
	comment      Comment
	createdAt    time.Time
}

func NewReview(businessID, bookingID uuid.UUID, customerName string, ratingValue int, commentText *string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:           uuid.New(),
		businessID:   businessID,
		bookingID:    bookingID,
		customerName: customerName,
		rating:       rating,
		comment:      comment,
		createdAt:    now,
	}, nil
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) BusinessID() uuid.UUID { return r.businessID }
func (r *Review) BookingID() uuid.UUID  { return r.bookingID }
func (r *Review) CustomerName() string  { return r.customerName }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
