//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"slotbook/internal/domain/review"
	"slotbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent service!", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithoutComment() },
			},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithComment("  Trimmed comment  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", actual.Comment().String())

		blank, err := builder.NewReviewBuilder().WithComment("   ").BuildDomain()
		require.NoError(t, err)
		assert.True(t, blank.Comment().IsEmpty())
		assert.Nil(t, blank.Comment().Ptr())
	})
}

func TestCheckEligibility(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	during := b.StartAt().Add(10 * time.Minute)
	after := b.End().Add(time.Minute)

	assert.ErrorIs(t, review.CheckEligibility(b, false, during), review.ErrNotCompleted)
	assert.NoError(t, review.CheckEligibility(b, false, after))
	assert.ErrorIs(t, review.CheckEligibility(b, true, after), review.ErrAlreadyReviewed)

	b.Cancel(during)
	assert.ErrorIs(t, review.CheckEligibility(b, false, after), review.ErrBookingCanceled)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
