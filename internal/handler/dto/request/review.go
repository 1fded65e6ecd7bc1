package request

import "slotbook/internal/usecase/commands"

type CreateReviewRequest struct {
	Token   string  `json:"token" binding:"required"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{Token: r.Token, Rating: r.Rating, Comment: r.Comment}
}
