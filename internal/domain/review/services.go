package review

import (
	"time"

	"slotbook/internal/domain/booking"
)

// CheckEligibility decides whether a booking may receive its one review.
func CheckEligibility(b *booking.Booking, alreadyReviewed bool, now time.Time) error {
	if b.IsCancelled() {
		return ErrBookingCanceled
	}
	if !b.IsCompleted(now) {
		return ErrNotCompleted
	}
	if alreadyReviewed {
		return ErrAlreadyReviewed
	}
	return nil
}
