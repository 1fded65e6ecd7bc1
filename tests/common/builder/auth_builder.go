//go:build unit || e2e

package builder

import (
	reqdto "slotbook/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email        string
	Password     string
	BusinessName string
	Slug         string
	Category     string
	Timezone     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:        "test@example.com",
		Password:     "password123",
		BusinessName: "Lash Studio",
		Slug:         "lash-studio",
		Category:     "lash",
		Timezone:     "UTC",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:        a.Email,
		Password:     a.Password,
		BusinessName: a.BusinessName,
		Slug:         a.Slug,
		Category:     a.Category,
		Timezone:     a.Timezone,
	}
}
