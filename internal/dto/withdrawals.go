package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalRequestDTO struct {
	Amount         decimal.Decimal `json:"amount" example:"15.00"`
	PaymentMethod  string          `json:"payment_method" example:"paypal"`
	PaymentDetails string          `json:"payment_details" example:"user@example.com"`
}

type WithdrawalDTO struct {
	ID             int             `json:"id" example:"1"`
	Amount         decimal.Decimal `json:"amount" example:"15.00"`
	Status         string          `json:"status" example:"pending"`
	PaymentMethod  string          `json:"payment_method" example:"paypal"`
	PaymentDetails string          `json:"payment_details,omitempty"`
	AdminNote      *string         `json:"admin_note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty"`
}

type WithdrawalListResponseDTO struct {
	Withdrawals []WithdrawalDTO `json:"withdrawals"`
	Balance     decimal.Decimal `json:"balance" example:"5.00"`
}
