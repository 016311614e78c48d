package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TaskDTO struct {
	ID              int             `json:"id" example:"1"`
	Title           string          `json:"title" example:"Watch the product review"`
	ChannelName     string          `json:"channel_name" example:"TechDaily"`
	VideoThumbnail  string          `json:"video_thumbnail,omitempty"`
	VideoLength     string          `json:"video_length,omitempty" example:"12:30"`
	RequiredActions []string        `json:"required_actions" example:"watch,like"`
	RewardAmount    decimal.Decimal `json:"reward_amount" example:"10.00"`
	MaxUsers        int             `json:"max_users" example:"500"`
	CompletedCount  int             `json:"completed_count" example:"42"`
	IsEnabled       bool            `json:"is_enabled" example:"true"`
	CreatedAt       time.Time       `json:"created_at"`

	UserStatus *CompletionDTO `json:"user_status,omitempty"`
}

type CompletionDTO struct {
	TaskID        int             `json:"task_id" example:"1"`
	Status        string          `json:"status" example:"pending"`
	CompletionPct int             `json:"completion_pct" example:"0"`
	EarnedAmount  decimal.Decimal `json:"earned_amount" example:"0"`
	StartedAt     time.Time       `json:"started_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

type TaskListResponseDTO struct {
	Available []TaskDTO       `json:"available"`
	Ongoing   []TaskDTO       `json:"ongoing"`
	Completed []TaskDTO       `json:"completed"`
	Balance   decimal.Decimal `json:"balance" example:"120.50"`
}

type StartTaskRequestDTO struct {
	TaskID int `json:"task_id" validate:"required"`
}

type CompleteTaskRequestDTO struct {
	TaskID        int `json:"task_id" validate:"required"`
	CompletionPct int `json:"completion_pct"`
}

type CompleteTaskResponseDTO struct {
	Passed        bool            `json:"passed" example:"true"`
	Earned        decimal.Decimal `json:"earned" example:"10.00"`
	CompletionPct int             `json:"completion_pct" example:"92"`
	MinRequired   int             `json:"min_required" example:"75"`
}
