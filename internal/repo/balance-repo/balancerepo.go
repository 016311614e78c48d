package balancerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"watchearn/internal/pg"
)

// Repository mutates the per-user balance column. All movements go through
// Credit and DebitIfSufficient so concurrent updates can never be lost to a
// read-modify-write overwrite.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetBalance(ctx context.Context, userID int) (decimal.Decimal, error) {
	query := `
        SELECT balance
        FROM users
        WHERE id = $1
    `
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) Credit(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `
        UPDATE users
        SET balance = balance + $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return err
	}
	return nil
}

// DebitIfSufficient decrements the balance only when it covers the amount.
// Returns false when the balance was insufficient (or the user is missing).
func (r *Repository) DebitIfSufficient(ctx context.Context, userID int, amount decimal.Decimal) (bool, error) {
	query := `
        UPDATE users
        SET balance = balance - $1
        WHERE id = $2 AND balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("failed to debit user balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
