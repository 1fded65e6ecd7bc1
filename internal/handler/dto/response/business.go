package response

import (
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type BusinessListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Category      string    `json:"category"`
	Description   *string   `json:"description,omitempty"`
	TotalReviews  int32     `json:"total_reviews"`
	AverageRating float64   `json:"average_rating"`
}

type BusinessProfileResponse struct {
	Business *BusinessResponse    `json:"business"`
	Services []*ServiceResponse   `json:"services"`
	Rule     *RuleResponse        `json:"availability_rule,omitempty"`
	Rating   *RatingStatsResponse `json:"rating"`
}

func FromBusinessList(items []*queries.BusinessListItem) ([]*BusinessListItemResponse, error) {
	return copyList[BusinessListItemResponse](items)
}

func FromBusinessProfile(p *queries.BusinessProfile) (*BusinessProfileResponse, error) {
	var (
		resp = &BusinessProfileResponse{}
		err  error
	)
	if resp.Business, err = copyOne[BusinessResponse](p.Business); err != nil {
		return nil, err
	}
	if resp.Services, err = FromServiceList(p.Services); err != nil {
		return nil, err
	}
	if resp.Rating, err = FromRatingStats(p.Rating); err != nil {
		return nil, err
	}
	if p.Rule != nil {
		if resp.Rule, err = FromRuleView(p.Rule); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
