package review

import "errors"

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong  = errors.New("comment exceeds maximum length")
	ErrInvalidToken    = errors.New("review token is invalid")
	ErrBookingCanceled = errors.New("cancelled bookings cannot be reviewed")
	ErrNotCompleted    = errors.New("only completed bookings can be reviewed")
	ErrAlreadyReviewed = errors.New("booking has already been reviewed")
)
