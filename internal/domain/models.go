package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"

	UserStatusActive    string = "active"
	UserStatusSuspended string = "suspended"
)

const (
	// CompletionStatusPending task started, percentage not reported yet;
	CompletionStatusPending string = "pending"
	// CompletionStatusCompleted threshold cleared, reward credited;
	CompletionStatusCompleted string = "completed"
	// CompletionStatusFailed threshold missed, nothing credited;
	CompletionStatusFailed string = "failed"
	// CompletionStatusFraud terminal flag assigned by an administrator;
	CompletionStatusFraud string = "fraud"
)

const (
	WithdrawalStatusPending  string = "pending"
	WithdrawalStatusApproved string = "approved"
	WithdrawalStatusRejected string = "rejected"
)

const (
	PaymentMethodPaypal string = "paypal"
	PaymentMethodBank   string = "bank"
	PaymentMethodCard   string = "card"
	PaymentMethodCrypto string = "crypto"
)

const (
	ActionWatch     string = "watch"
	ActionLike      string = "like"
	ActionSubscribe string = "subscribe"
	ActionComment   string = "comment"
)

type User struct {
	ID           int             `db:"id"`
	Email        string          `db:"email"`
	Name         string          `db:"name"`
	PasswordHash string          `db:"password_hash"`
	Role         string          `db:"role"`
	Status       string          `db:"status"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Task struct {
	ID              int             `db:"id"`
	Title           string          `db:"title"`
	ChannelName     string          `db:"channel_name"`
	VideoThumbnail  string          `db:"video_thumbnail"`
	VideoLength     string          `db:"video_length"`
	RequiredActions []string        `db:"required_actions"`
	RewardAmount    decimal.Decimal `db:"reward_amount"`
	MaxUsers        int             `db:"max_users"`
	CompletedCount  int             `db:"completed_count"`
	IsEnabled       bool            `db:"is_enabled"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

type TaskCompletion struct {
	ID            int             `db:"id"`
	TaskID        int             `db:"task_id"`
	UserID        int             `db:"user_id"`
	Status        string          `db:"status"`
	CompletionPct int             `db:"completion_pct"`
	EarnedAmount  decimal.Decimal `db:"earned_amount"`
	StartedAt     time.Time       `db:"started_at"`
	CompletedAt   *time.Time      `db:"completed_at"`
}

type Withdrawal struct {
	ID             int             `db:"id"`
	UserID         int             `db:"user_id"`
	Amount         decimal.Decimal `db:"amount"`
	Status         string          `db:"status"`
	PaymentMethod  string          `db:"payment_method"`
	PaymentDetails string          `db:"payment_details"`
	AdminNote      *string         `db:"admin_note"`
	CreatedAt      time.Time       `db:"created_at"`
	ProcessedAt    *time.Time      `db:"processed_at"`

	// populated only by the admin listing join
	UserEmail string `db:"email"`
	UserName  string `db:"name"`
}
