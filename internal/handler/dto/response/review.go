package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
}

type ReviewListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	Rating       int32     `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) ([]*ReviewListItemResponse, error) {
	return copyList[ReviewListItemResponse](items)
}

type RatingStatsResponse struct {
	TotalReviews  int32   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	Rating1Count  int32   `json:"rating_1_count"`
	Rating2Count  int32   `json:"rating_2_count"`
	Rating3Count  int32   `json:"rating_3_count"`
	Rating4Count  int32   `json:"rating_4_count"`
	Rating5Count  int32   `json:"rating_5_count"`
}

func FromRatingStats(s *queries.RatingStats) (*RatingStatsResponse, error) {
	if s == nil {
		return &RatingStatsResponse{}, nil
	}
	return copyOne[RatingStatsResponse](s)
}
