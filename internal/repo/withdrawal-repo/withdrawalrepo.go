package withdrawalrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"watchearn/internal/domain"
	"watchearn/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
        INSERT INTO withdrawals (user_id, amount, payment_method, payment_details)
        VALUES ($1, $2, $3, $4)
        RETURNING id, status, created_at
    `
	err := r.db.QueryRow(ctx, query,
		withdrawal.UserID, withdrawal.Amount, withdrawal.PaymentMethod, withdrawal.PaymentDetails,
	).Scan(&withdrawal.ID, &withdrawal.Status, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT id, user_id, amount, status, payment_method, payment_details, admin_note, created_at, processed_at
        FROM withdrawals
        WHERE id = $1
    `
	var wd domain.Withdrawal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.PaymentMethod,
		&wd.PaymentDetails, &wd.AdminNote, &wd.CreatedAt, &wd.ProcessedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, user_id, amount, status, payment_method, payment_details, admin_note, created_at, processed_at
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(
			&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.PaymentMethod,
			&wd.PaymentDetails, &wd.AdminNote, &wd.CreatedAt, &wd.ProcessedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Withdrawal, error) {
	query := `
        SELECT w.id, w.user_id, w.amount, w.status, w.payment_method, w.payment_details,
               w.admin_note, w.created_at, w.processed_at, u.email, u.name
        FROM withdrawals w
        JOIN users u ON u.id = w.user_id
        ORDER BY w.created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch all withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(
			&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.PaymentMethod,
			&wd.PaymentDetails, &wd.AdminNote, &wd.CreatedAt, &wd.ProcessedAt,
			&wd.UserEmail, &wd.UserName,
		)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}

// Decide flips a pending request to its terminal status. The
// status = 'pending' guard makes the decision one-shot; a request already
// decided returns nil without error.
func (r *Repository) Decide(ctx context.Context, id int, status string, adminNote *string, processedAt time.Time) (*domain.Withdrawal, error) {
	query := `
        UPDATE withdrawals
        SET status = $1, admin_note = $2, processed_at = $3
        WHERE id = $4 AND status = 'pending'
        RETURNING id, user_id, amount, status, payment_method, payment_details, admin_note, created_at, processed_at
    `
	var wd domain.Withdrawal
	err := r.db.QueryRow(ctx, query, status, adminNote, processedAt, id).Scan(
		&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.PaymentMethod,
		&wd.PaymentDetails, &wd.AdminNote, &wd.CreatedAt, &wd.ProcessedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't decide withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) Stats(ctx context.Context) (*domain.WithdrawalStats, error) {
	query := `
        SELECT COUNT(*) FILTER (WHERE status = 'pending'),
               COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
               COALESCE(SUM(amount) FILTER (WHERE status = 'approved'), 0)
        FROM withdrawals
    `
	var stats domain.WithdrawalStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.PendingCount, &stats.PendingAmount, &stats.ApprovedAmount)
	if err != nil {
		zap.L().Error("can't get withdrawal stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
