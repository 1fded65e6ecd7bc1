//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		s, err := catalog.NewService(uuid.New(), "Gel Manicure", 45, 3500, "eur", now)
		require.NoError(t, err)
		assert.Equal(t, "EUR", s.Price().Currency())
		assert.True(t, s.IsActive())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := catalog.NewService(uuid.New(), " ", 45, 3500, "EUR", now)
		assert.ErrorIs(t, err, catalog.ErrInvalidName)

		_, err = catalog.NewService(uuid.New(), "Cut", 0, 3500, "EUR", now)
		assert.ErrorIs(t, err, catalog.ErrInvalidDuration)

		_, err = catalog.NewService(uuid.New(), "Cut", 30, -1, "EUR", now)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)

		_, err = catalog.NewService(uuid.New(), "Cut", 30, 100, "EU", now)
		assert.ErrorIs(t, err, booking.ErrInvalidCurrency)
	})
}

func TestServiceUpdate(t *testing.T) {
	s, err := catalog.NewService(uuid.New(), "Cut", 30, 2000, "USD", now)
	require.NoError(t, err)

	name := "Cut & Style"
	duration := 45
	later := now.Add(time.Hour)
	require.NoError(t, s.Update(&name, &duration, later))
	assert.Equal(t, name, s.Name())
	assert.Equal(t, 45, s.DurationMinutes())
	assert.Equal(t, int64(2000), s.Price().Cents(), "price is immutable")
	assert.Equal(t, later, s.UpdatedAt())

	bad := 0
	assert.ErrorIs(t, s.Update(nil, &bad, later), catalog.ErrInvalidDuration)
	assert.Equal(t, 45, s.DurationMinutes())
}

func TestServiceSnapshot(t *testing.T) {
	s, err := catalog.NewService(uuid.New(), "Cut", 30, 2000, "USD", now)
	require.NoError(t, err)

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "Cut", snap.Name())
	assert.Equal(t, 30, snap.DurationMinutes())

	s.Deactivate(now)
	_, err = s.Snapshot()
	assert.ErrorIs(t, err, catalog.ErrInactive)
}
