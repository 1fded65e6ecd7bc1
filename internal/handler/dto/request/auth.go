package request

import "slotbook/internal/usecase/commands"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RegisterRequest struct {
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	BusinessName string  `json:"business_name" binding:"required,max=120"`
	Slug         string  `json:"slug" binding:"required,min=3,max=60"`
	Category     string  `json:"category" binding:"required"`
	Description  *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Timezone     string  `json:"timezone"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:        r.Email,
		Password:     r.Password,
		BusinessName: r.BusinessName,
		Slug:         r.Slug,
		Category:     r.Category,
		Description:  r.Description,
		Timezone:     r.Timezone,
	}
}
