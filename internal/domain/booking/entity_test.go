//go:build unit

package booking_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/domain/booking"
	"slotbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, "Classic Lash Set", actual.Service().Name())
		assert.Equal(t, int64(8500), actual.Service().Price().Cents())
		assert.Equal(t, "USD", actual.Service().Price().Currency())
		assert.Nil(t, actual.ReviewRequestedAt())
		assert.Nil(t, actual.CancelledAt())
	})

	t.Run("start is stored in UTC at minute precision", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		actual, err := builder.NewBookingBuilder().
			WithStartAt(time.Date(2025, 1, 15, 20, 0, 42, 5, tokyo)).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC), actual.StartAt())
		assert.Equal(t, time.UTC, actual.StartAt().Location())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty customer name",
				mutate: func(b *builder.BookingBuilder) { b.CustomerName = "   " },
				errIs:  booking.ErrMissingCustomerName,
			},
			{
				name:   "empty phone",
				mutate: func(b *builder.BookingBuilder) { b.CustomerPhone = "" },
				errIs:  booking.ErrMissingCustomerPhone,
			},
			{
				name: "malformed email",
				mutate: func(b *builder.BookingBuilder) {
					e := "not-an-email"
					b.CustomerEmail = &e
				},
				errIs: booking.ErrInvalidCustomerEmail,
			},
			{
				name: "blank email is treated as absent",
				mutate: func(b *builder.BookingBuilder) {
					e := " "
					b.CustomerEmail = &e
				},
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.BookingBuilder) { b.DurationMinutes = 0 },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "duration longer than a day",
				mutate: func(b *builder.BookingBuilder) { b.DurationMinutes = math.MaxInt - 5 },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "full day duration",
				mutate: func(b *builder.BookingBuilder) { b.DurationMinutes = 24 * 60 },
			},
			{
				name:   "customer name too long",
				mutate: func(b *builder.BookingBuilder) { b.CustomerName = strings.Repeat("a", booking.MaxNameLength+1) },
				errIs:  booking.ErrCustomerNameTooLong,
			},
			{
				name:   "customer name at the limit counts characters",
				mutate: func(b *builder.BookingBuilder) { b.CustomerName = strings.Repeat("é", booking.MaxNameLength) },
			},
			{
				name:   "phone too long",
				mutate: func(b *builder.BookingBuilder) { b.CustomerPhone = strings.Repeat("1", booking.MaxPhoneLength+1) },
				errIs:  booking.ErrCustomerPhoneTooLong,
			},
			{
				name:   "negative duration",
				mutate: func(b *builder.BookingBuilder) { b.DurationMinutes = -30 },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.BookingBuilder) { b.PriceCents = -1 },
				errIs:  booking.ErrNegativePrice,
			},
			{
				name:   "free service",
				mutate: func(b *builder.BookingBuilder) { b.PriceCents = 0 },
			},
			{
				name:   "bad currency",
				mutate: func(b *builder.BookingBuilder) { b.Currency = "dollars" },
				errIs:  booking.ErrInvalidCurrency,
			},
			{
				name:   "missing service name",
				mutate: func(b *builder.BookingBuilder) { b.ServiceName = "" },
				errIs:  booking.ErrMissingServiceName,
			},
			{
				name:   "missing start",
				mutate: func(b *builder.BookingBuilder) { b.StartAt = time.Time{} },
				errIs:  booking.ErrMissingStart,
			},
		})
	})
}

func TestBookingCancel(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	first := time.Date(2025, 1, 12, 8, 0, 0, 0, time.UTC)
	assert.True(t, b.Cancel(first))
	assert.Equal(t, booking.StatusCancelled, b.Status())
	require.NotNil(t, b.CancelledAt())
	assert.Equal(t, first, *b.CancelledAt())

	assert.False(t, b.Cancel(first.Add(time.Hour)), "second cancel is a no-op")
	assert.Equal(t, first, *b.CancelledAt())
}

func TestBookingFootprint(t *testing.T) {
	bs, be := availability.MustParseClockTime("13:00"), availability.MustParseClockTime("13:30")
	rule, err := availability.NewRule(availability.RuleParams{
		WorkingDays:     []int{1, 2, 3, 4, 5},
		Start:           availability.MustParseClockTime("10:00"),
		End:             availability.MustParseClockTime("18:00"),
		BreakStart:      &bs,
		BreakEnd:        &be,
		BufferMinutes:   10,
		SlotStepMinutes: 30,
	})
	require.NoError(t, err)

	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	fp := b.Footprint(rule)
	assert.Equal(t, b.StartAt(), fp.Start())
	assert.Equal(t, 90*time.Minute, fp.End().Sub(fp.Start()))

	occ := b.Occupancy(rule)
	assert.Equal(t, "11:00", occ.Start.String())
	assert.Equal(t, 60, occ.DurationMinutes)
}

func TestBookingReviewRequest(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	before := b.StartAt().Add(30 * time.Minute)
	assert.False(t, b.IsCompleted(before))
	assert.ErrorIs(t, b.RequestReview("hash", before), booking.ErrNotCompleted)

	after := b.End()
	assert.True(t, b.IsCompleted(after))
	require.NoError(t, b.RequestReview("hash", after))
	require.NotNil(t, b.ReviewTokenHash())
	assert.Equal(t, "hash", *b.ReviewTokenHash())

	assert.ErrorIs(t, b.RequestReview("other", after), booking.ErrReviewAlreadyRequested)

	cancelled, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	cancelled.Cancel(before)
	assert.False(t, cancelled.IsCompleted(after))
	assert.ErrorIs(t, cancelled.RequestReview("hash", after), booking.ErrBookingCancelled)
}

func TestReviewToken(t *testing.T) {
	token, hash, err := booking.NewReviewToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, booking.HashReviewToken(token))

	other, _, err := booking.NewReviewToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
