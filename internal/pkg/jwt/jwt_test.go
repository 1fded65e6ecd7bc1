//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/user"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleOwner)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "owner", claims.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour, clk)
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := clock.NewMockClock(clk.Now().Add(2 * time.Hour))
		_, err := jwt.NewService("secret", time.Hour, later).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
