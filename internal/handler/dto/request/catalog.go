package request

import "slotbook/internal/usecase/commands"

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5,max=720"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
	Currency        string `json:"currency" binding:"required,len=3"`
}

func (r *CreateServiceRequest) ToInput() commands.CreateServiceInput {
	return commands.CreateServiceInput{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		Currency:        r.Currency,
	}
}

// UpdateServiceRequest deliberately has no price or currency.
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,max=120"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" binding:"omitempty,min=5,max=720"`
}

func (r *UpdateServiceRequest) ToInput() commands.UpdateServiceInput {
	return commands.UpdateServiceInput{Name: r.Name, DurationMinutes: r.DurationMinutes}
}
