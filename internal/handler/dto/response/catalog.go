package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	Currency        string    `json:"currency"`
	IsActive        bool      `json:"is_active"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromServiceView(v *queries.ServiceView) (*ServiceResponse, error) {
	return copyOne[ServiceResponse](v)
}

func FromServiceList(items []*queries.ServiceView) ([]*ServiceResponse, error) {
	return copyList[ServiceResponse](items)
}
