//go:build unit

package response

import (
	"testing"
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromServiceView(t *testing.T) {
	view := &queries.ServiceView{
		ID:              uuid.New(),
		BusinessID:      uuid.New(),
		Name:            "Lash Lift",
		DurationMinutes: 45,
		PriceCents:      6000,
		Currency:        "EUR",
		IsActive:        true,
		UpdatedAt:       time.Date(2025, 1, 14, 9, 0, 0, 0, time.UTC),
	}

	t.Run("maps fields by name", func(t *testing.T) {
		got, err := FromServiceView(view)
		require.NoError(t, err)
		assert.Equal(t, &ServiceResponse{
			ID:              view.ID,
			Name:            "Lash Lift",
			DurationMinutes: 45,
			PriceCents:      6000,
			Currency:        "EUR",
			IsActive:        true,
			UpdatedAt:       view.UpdatedAt,
		}, got)
	})

	t.Run("nil view is an error", func(t *testing.T) {
		got, err := FromServiceView(nil)
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("one bad item fails the list", func(t *testing.T) {
		got, err := FromServiceList([]*queries.ServiceView{view, nil})
		assert.Error(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty list", func(t *testing.T) {
		got, err := FromServiceList(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
