//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/domain/availability"
	"slotbook/internal/infra"
	"slotbook/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestBookingRepository_Create(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	rule, err := availability.NewRule(availability.DefaultParams("UTC"))
	require.NoError(t, err)
	footprint := b.Footprint(rule)

	tests := []struct {
		name     string
		dbErr    error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "overlapping footprint", dbErr: &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}, wantKind: infra.KindConflict},
		{name: "same start", dbErr: &pgconn.PgError{Code: "23505", ConstraintName: "uq_bookings_business_start_confirmed"}, wantKind: infra.KindDuplicateKey},
		{name: "unknown business", dbErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, createBookingSQL, mock.Anything).
				Return(pgconn.NewCommandTag("INSERT 0 1"), tt.dbErr)

			err := NewBookingRepository(db).Create(context.Background(), b, footprint)
			if tt.dbErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_Cancel(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	b.Cancel(time.Date(2025, 1, 12, 8, 0, 0, 0, time.UTC))

	t.Run("success", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 1"), nil)
		assert.NoError(t, NewBookingRepository(db).Cancel(context.Background(), b))
	})

	t.Run("no row updated is not found", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)
		err := NewBookingRepository(db).Cancel(context.Background(), b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_MarkReviewRequested(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	db := new(MockDBTX)
	db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("UPDATE 0"), nil)

	err = NewBookingRepository(db).MarkReviewRequested(context.Background(), b)
	assert.True(t, infra.IsKind(err, infra.KindConflict), "a second sweep must not re-issue the token")
}
