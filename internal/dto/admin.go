package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTaskRequestDTO struct {
	Title           string          `json:"title" validate:"required"`
	ChannelName     string          `json:"channel_name" validate:"required"`
	VideoThumbnail  string          `json:"video_thumbnail"`
	VideoLength     string          `json:"video_length"`
	RequiredActions []string        `json:"required_actions"`
	RewardAmount    decimal.Decimal `json:"reward_amount" validate:"required"`
	MaxUsers        int             `json:"max_users"`
	IsEnabled       *bool           `json:"is_enabled"`
}

// UpdateTaskRequestDTO carries a partial update, nil fields stay untouched.
type UpdateTaskRequestDTO struct {
	ID              int              `json:"id" validate:"required"`
	Title           *string          `json:"title"`
	ChannelName     *string          `json:"channel_name"`
	VideoThumbnail  *string          `json:"video_thumbnail"`
	VideoLength     *string          `json:"video_length"`
	RequiredActions *[]string        `json:"required_actions"`
	RewardAmount    *decimal.Decimal `json:"reward_amount"`
	MaxUsers        *int             `json:"max_users"`
	IsEnabled       *bool            `json:"is_enabled"`
}

type DeleteTaskRequestDTO struct {
	ID int `json:"id" validate:"required"`
}

type AdminWithdrawalDTO struct {
	WithdrawalDTO
	UserEmail string `json:"user_email" example:"user@example.com"`
	UserName  string `json:"user_name" example:"John"`
}

type DecideWithdrawalRequestDTO struct {
	ID        int     `json:"id" validate:"required"`
	Status    string  `json:"status" validate:"required,oneof=approved rejected"`
	AdminNote *string `json:"admin_note"`
}

type UpdateUserStatusRequestDTO struct {
	ID     int    `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

type FlagFraudRequestDTO struct {
	CompletionID int `json:"completion_id" validate:"required"`
}

type AdminUserDTO struct {
	ID        int             `json:"id" example:"2"`
	Email     string          `json:"email" example:"user@example.com"`
	Name      string          `json:"name" example:"John"`
	Role      string          `json:"role" example:"user"`
	Status    string          `json:"status" example:"active"`
	Balance   decimal.Decimal `json:"balance" example:"120.50"`
	CreatedAt time.Time       `json:"created_at"`
}

type AnalyticsResponseDTO struct {
	TotalUsers          int             `json:"total_users" example:"120"`
	ActiveUsers         int             `json:"active_users" example:"110"`
	SuspendedUsers      int             `json:"suspended_users" example:"10"`
	TotalTasks          int             `json:"total_tasks" example:"30"`
	ActiveTasks         int             `json:"active_tasks" example:"25"`
	TotalCompletions    int             `json:"total_completions" example:"400"`
	PendingCompletions  int             `json:"pending_completions" example:"50"`
	FailedCompletions   int             `json:"failed_completions" example:"80"`
	FraudFlags          int             `json:"fraud_flags" example:"3"`
	CompletionRate      int             `json:"completion_rate" example:"75"`
	DropOffRate         int             `json:"drop_off_rate" example:"25"`
	TotalEarned         decimal.Decimal `json:"total_earned" example:"4000.00"`
	PendingWithdrawals  int             `json:"pending_withdrawals" example:"7"`
	TotalPendingAmount  decimal.Decimal `json:"total_pending_amount" example:"105.00"`
	TotalApprovedAmount decimal.Decimal `json:"total_approved_amount" example:"900.00"`
}
