package response

import (
	"encoding/json"
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationJobResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	RunAt     time.Time       `json:"run_at"`
	Attempts  int32           `json:"attempts"`
	Status    string          `json:"status"`
	LastError *string         `json:"last_error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func FromNotificationList(items []*queries.NotificationJobView) []*NotificationJobResponse {
	out := make([]*NotificationJobResponse, 0, len(items))
	for _, v := range items {
		out = append(out, &NotificationJobResponse{
			ID:        v.ID,
			Kind:      v.Kind,
			Topic:     v.Topic,
			Payload:   json.RawMessage(v.Payload),
			RunAt:     v.RunAt,
			Attempts:  v.Attempts,
			Status:    v.Status,
			LastError: v.LastError,
			CreatedAt: v.CreatedAt,
		})
	}
	return out
}
