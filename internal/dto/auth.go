package dto

import "github.com/shopspring/decimal"

type RegisterRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type AuthResponseDTO struct {
	User UserDTO `json:"user"`
}

type UserDTO struct {
	ID      int             `json:"id" example:"1"`
	Email   string          `json:"email" example:"user@example.com"`
	Name    string          `json:"name" example:"John"`
	Role    string          `json:"role" example:"user"`
	Status  string          `json:"status" example:"active"`
	Balance decimal.Decimal `json:"balance" example:"120.50"`
}
