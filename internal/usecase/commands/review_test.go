//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/shared"
	"slotbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const publicBaseURL = "https://book.example.com/"

// completedBooking ended an hour before testNow.
func completedBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := builder.NewBookingBuilder().
		WithStartAt(testNow.Add(-2 * time.Hour)).
		WithDuration(60).
		With(func(b *builder.BookingBuilder) { b.Now = testNow.Add(-48 * time.Hour) }).
		BuildDomain()
	require.NoError(t, err)
	return b
}

func TestSendDueReviewRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("success: invites completed bookings with a hashed token link", func(t *testing.T) {
		f := newUoWFixture(t)
		done := completedBooking(t)
		f.reads.EXPECT().BookingsDueForReview(gomock.Any(), testNow, 50).Return([]*booking.Booking{done}, nil)
		f.bookings.EXPECT().MarkReviewRequested(gomock.Any(), done).Return(nil)

		var payload []byte
		f.notifications.EXPECT().
			CreateJob(gomock.Any(), shared.NotificationKindEmail, shared.TopicReviewRequest, gomock.Any(), testNow).
			DoAndReturn(func(_ context.Context, _, _ string, p []byte, _ time.Time) error {
				payload = p
				return nil
			})

		cmds := commands.NewReviewCommands(f.uow, f.clock, publicBaseURL)
		n, err := cmds.SendDueReviewRequests(ctx, 50)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		require.NotNil(t, done.ReviewRequestedAt())
		require.NotNil(t, done.ReviewTokenHash())

		var body struct {
			BookingID uuid.UUID `json:"booking_id"`
			ReviewURL string    `json:"review_url"`
		}
		require.NoError(t, json.Unmarshal(payload, &body))
		assert.Equal(t, done.ID(), body.BookingID)
		require.True(t, strings.HasPrefix(body.ReviewURL, "https://book.example.com/review?token="), body.ReviewURL)

		u, err := url.Parse(body.ReviewURL)
		require.NoError(t, err)
		token := u.Query().Get("token")
		assert.Equal(t, *done.ReviewTokenHash(), booking.HashReviewToken(token), "only the hash is stored")
	})

	t.Run("skips bookings that cannot be invited", func(t *testing.T) {
		f := newUoWFixture(t)
		upcoming, err := builder.NewBookingBuilder().WithStartAt(testNow.Add(time.Hour)).BuildDomain()
		require.NoError(t, err)
		f.reads.EXPECT().BookingsDueForReview(gomock.Any(), testNow, commands.DefaultReviewBatchSize).
			Return([]*booking.Booking{upcoming}, nil)

		n, err := commands.NewReviewCommands(f.uow, f.clock, publicBaseURL).SendDueReviewRequests(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Nil(t, upcoming.ReviewRequestedAt())
	})

	t.Run("second sweep finds nothing", func(t *testing.T) {
		f := newUoWFixture(t)
		f.reads.EXPECT().BookingsDueForReview(gomock.Any(), testNow, 10).Return(nil, nil)

		n, err := commands.NewReviewCommands(f.uow, f.clock, publicBaseURL).SendDueReviewRequests(ctx, 10)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	invited := func(t *testing.T) (*booking.Booking, string) {
		t.Helper()
		b := completedBooking(t)
		token, hash, err := booking.NewReviewToken()
		require.NoError(t, err)
		require.NoError(t, b.RequestReview(hash, testNow))
		return b, token
	}

	t.Run("success: stores the review for the booking's business", func(t *testing.T) {
		f := newUoWFixture(t)
		b, token := invited(t)
		f.reads.EXPECT().BookingByReviewTokenHashForUpdate(gomock.Any(), booking.HashReviewToken(token)).Return(b, nil)
		f.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), b.ID()).Return(false, nil)
		f.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		comment := "Lovely"
		res, err := commands.NewReviewCommands(f.uow, f.clock, publicBaseURL).
			CreateReview(ctx, commands.CreateReviewInput{Token: token, Rating: 5, Comment: &comment})
		require.NoError(t, err)
		assert.Equal(t, b.BusinessID(), res.BusinessID)
	})

	t.Run("error: second review for the same booking conflicts", func(t *testing.T) {
		f := newUoWFixture(t)
		b, token := invited(t)
		f.reads.EXPECT().BookingByReviewTokenHashForUpdate(gomock.Any(), gomock.Any()).Return(b, nil)
		f.reads.EXPECT().ReviewExistsForBooking(gomock.Any(), b.ID()).Return(true, nil)

		_, err := commands.NewReviewCommands(f.uow, f.clock, publicBaseURL).
			CreateReview(ctx, commands.CreateReviewInput{Token: token, Rating: 4})
		assert.True(t, errs.Is(err, commands.ErrAlreadyReviewed))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("error: unknown token", func(t *testing.T) {
		f := newUoWFixture(t)
		f.reads.EXPECT().BookingByReviewTokenHashForUpdate(gomock.Any(), gomock.Any()).Return(nil, notFound("booking not found"))

		_, err := commands.NewReviewCommands(f.uow, f.clock, publicBaseURL).
			CreateReview(ctx, commands.CreateReviewInput{Token: "nope", Rating: 4})
		assert.True(t, errs.Is(err, commands.ErrInvalidReviewToken))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: rating out of range is rejected before any read", func(t *testing.T) {
		f := newUoWFixture(t)
		cmds := commands.NewReviewCommands(f.uow, f.clock, publicBaseURL)
		for _, r := range []int{0, 6} {
			_, err := cmds.CreateReview(ctx, commands.CreateReviewInput{Token: "t", Rating: r})
			assert.True(t, errs.Is(err, errs.ErrValidation), "rating %d", r)
		}
	})
}
