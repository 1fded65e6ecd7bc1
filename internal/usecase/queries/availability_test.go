//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type availabilityFixture struct {
	businesses *queriesmock.MockBusinessReadStore
	rules      *queriesmock.MockRuleReadStore
	bookings   *queriesmock.MockBookingReadStore
	q          queries.AvailabilityQueries
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	ctrl := gomock.NewController(t)
	f := &availabilityFixture{
		businesses: queriesmock.NewMockBusinessReadStore(ctrl),
		rules:      queriesmock.NewMockRuleReadStore(ctrl),
		bookings:   queriesmock.NewMockBookingReadStore(ctrl),
	}
	f.q = queries.NewAvailabilityQueries(f.businesses, f.rules, f.bookings)
	return f
}

func ruleView(businessID uuid.UUID, tz string) *queries.RuleView {
	bs, be := "13:00", "13:30"
	return &queries.RuleView{
		BusinessID:      businessID,
		Timezone:        tz,
		WorkingDays:     []int{1, 2, 3, 4, 5},
		StartTime:       "10:00",
		EndTime:         "18:00",
		BreakStart:      &bs,
		BreakEnd:        &be,
		BufferMinutes:   10,
		SlotStepMinutes: 30,
	}
}

func TestGetDay(t *testing.T) {
	ctx := context.Background()
	wednesday := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	biz := &queries.BusinessView{ID: uuid.New(), Slug: "lash-studio", IsActive: true}

	t.Run("success: blocked and available slots around an existing booking", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		f.businesses.EXPECT().FindBySlug(gomock.Any(), "lash-studio").Return(biz, nil)
		f.rules.EXPECT().FindByBusiness(gomock.Any(), biz.ID).Return(ruleView(biz.ID, "UTC"), nil)
		f.bookings.EXPECT().OccupiedBetween(gomock.Any(), biz.ID, wednesday, wednesday.AddDate(0, 0, 1)).
			Return([]queries.OccupiedSlot{{StartAt: wednesday.Add(11 * time.Hour), DurationMinutes: 60}}, nil)

		duration := 60
		day, err := f.q.GetDay(ctx, "lash-studio", wednesday, &duration)
		require.NoError(t, err)

		assert.Equal(t, "2025-01-15", day.Date)
		assert.Len(t, day.Bookings, 1)
		if diff := cmp.Diff([]string{"11:00", "11:30", "12:00"}, day.Blocked); diff != "" {
			t.Errorf("blocked mismatch (-want +got):\n%s", diff)
		}
		want := []string{"13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30"}
		if diff := cmp.Diff(want, day.Available); diff != "" {
			t.Errorf("available mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: day bounds and labels follow the business timezone", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		from := time.Date(2025, 1, 15, 0, 0, 0, 0, berlin)

		f.businesses.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(biz, nil)
		f.rules.EXPECT().FindByBusiness(gomock.Any(), biz.ID).Return(ruleView(biz.ID, "Europe/Berlin"), nil)
		f.bookings.EXPECT().OccupiedBetween(gomock.Any(), biz.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, gotFrom, gotTo time.Time) ([]queries.OccupiedSlot, error) {
				assert.True(t, from.Equal(gotFrom), "from %s", gotFrom)
				assert.True(t, from.AddDate(0, 0, 1).Equal(gotTo), "to %s", gotTo)
				return []queries.OccupiedSlot{{StartAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), DurationMinutes: 30}}, nil
			})

		day, err := f.q.GetDay(ctx, "lash-studio", wednesday, nil)
		require.NoError(t, err)
		assert.Equal(t, "Europe/Berlin", day.Timezone)
		assert.Equal(t, []string{"11:00", "11:30"}, day.Blocked)
		assert.Nil(t, day.Available, "available is only computed for a duration")
	})

	t.Run("unknown or inactive business answers an empty day", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		f.businesses.EXPECT().FindBySlug(gomock.Any(), "ghost").
			Return(nil, infra.WrapRepoErr("business not found", pgx.ErrNoRows))
		day, err := f.q.GetDay(ctx, "ghost", wednesday, nil)
		require.NoError(t, err)
		assert.Empty(t, day.Blocked)
		assert.Empty(t, day.Bookings)

		inactive := *biz
		inactive.IsActive = false
		f.businesses.EXPECT().FindBySlug(gomock.Any(), "closed").Return(&inactive, nil)
		day, err = f.q.GetDay(ctx, "closed", wednesday, nil)
		require.NoError(t, err)
		assert.Empty(t, day.Blocked)
	})

	t.Run("business without a rule answers an empty day", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		f.businesses.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(biz, nil)
		f.rules.EXPECT().FindByBusiness(gomock.Any(), biz.ID).
			Return(nil, infra.WrapRepoErr("rule not found", pgx.ErrNoRows))

		day, err := f.q.GetDay(ctx, "lash-studio", wednesday, nil)
		require.NoError(t, err)
		assert.Empty(t, day.Blocked)
	})
}

func TestGetOwnerRule(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("error: owner without business", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		f.businesses.EXPECT().FindByOwner(gomock.Any(), ownerID).
			Return(nil, infra.WrapRepoErr("business not found", pgx.ErrNoRows))

		_, err := f.q.GetOwnerRule(ctx, ownerID)
		assert.True(t, errs.Is(err, queries.ErrBusinessNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: business without rule", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		biz := &queries.BusinessView{ID: uuid.New(), OwnerID: ownerID, IsActive: true}
		f.businesses.EXPECT().FindByOwner(gomock.Any(), ownerID).Return(biz, nil)
		f.rules.EXPECT().FindByBusiness(gomock.Any(), biz.ID).
			Return(nil, infra.WrapRepoErr("rule not found", pgx.ErrNoRows))

		_, err := f.q.GetOwnerRule(ctx, ownerID)
		assert.True(t, errs.Is(err, queries.ErrRuleNotFound))
	})
}
