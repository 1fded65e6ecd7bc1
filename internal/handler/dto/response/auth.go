package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	ExpiresIn   int64                       `json:"expires_in"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RegisterResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	BusinessID  uuid.UUID `json:"business_id"`
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
}

func Seconds(d time.Duration) int64 { return int64(d / time.Second) }
