package completionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"watchearn/internal/domain"
	"watchearn/internal/pg"
)

// ErrDuplicateClaim is returned when the (task, user) pair already has a
// completion record. Backed by the unique constraint, so two concurrent
// claims can never both succeed.
var ErrDuplicateClaim = errors.New("task already claimed by user")

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const completionColumns = `id, task_id, user_id, status, completion_pct, earned_amount, started_at, completed_at`

func scanCompletion(row pgx.Row) (*domain.TaskCompletion, error) {
	var c domain.TaskCompletion
	err := row.Scan(
		&c.ID, &c.TaskID, &c.UserID, &c.Status,
		&c.CompletionPct, &c.EarnedAmount, &c.StartedAt, &c.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateClaim inserts a pending record for (taskID, userID). The capacity
// and enablement predicates ride inside the INSERT, so the check and the
// insert cannot race. Returns nil without error when the task is full,
// disabled or missing at insert time.
func (r *Repository) CreateClaim(ctx context.Context, taskID, userID int) (*domain.TaskCompletion, error) {
	query := `
        INSERT INTO task_completions (task_id, user_id, status)
        SELECT id, $2, 'pending'
        FROM tasks
        WHERE id = $1 AND is_enabled = true AND completed_count < max_users
        RETURNING ` + completionColumns
	claim, err := scanCompletion(r.db.QueryRow(ctx, query, taskID, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateClaim
		}
		zap.L().Error("can't create claim", zap.Error(err))
		return nil, err
	}
	return claim, nil
}

func (r *Repository) FindByTaskAndUser(ctx context.Context, taskID, userID int) (*domain.TaskCompletion, error) {
	query := `
        SELECT ` + completionColumns + `
        FROM task_completions
        WHERE task_id = $1 AND user_id = $2
    `
	c, err := scanCompletion(r.db.QueryRow(ctx, query, taskID, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find completion", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.TaskCompletion, error) {
	query := `
        SELECT ` + completionColumns + `
        FROM task_completions
        WHERE id = $1
    `
	c, err := scanCompletion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find completion by id", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.TaskCompletion, error) {
	query := `
        SELECT ` + completionColumns + `
        FROM task_completions
        WHERE user_id = $1
        ORDER BY started_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list completions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var completions []domain.TaskCompletion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			zap.L().Error("can't scan completion row", zap.Error(err))
			return nil, err
		}
		completions = append(completions, *c)
	}
	return completions, nil
}

// CompleteClaim moves a pending record to its terminal status. The
// status = 'pending' guard makes the transition one-shot: a second call
// affects zero rows and returns false.
func (r *Repository) CompleteClaim(ctx context.Context, id int, status string, pct int, earned decimal.Decimal, completedAt time.Time) (bool, error) {
	query := `
        UPDATE task_completions
        SET status = $1, completion_pct = $2, earned_amount = $3, completed_at = $4
        WHERE id = $5 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, pct, earned, completedAt, id)
	if err != nil {
		zap.L().Error("can't complete claim", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FlagFraud marks a completed record as fraud. Only completed records can be
// flagged, so the guard keeps the transition one-shot as well.
func (r *Repository) FlagFraud(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE task_completions
        SET status = 'fraud'
        WHERE id = $1 AND status = 'completed'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't flag completion as fraud", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Stats(ctx context.Context) (*domain.CompletionStats, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'completed'),
               COUNT(*) FILTER (WHERE status = 'pending'),
               COUNT(*) FILTER (WHERE status = 'failed'),
               COUNT(*) FILTER (WHERE status = 'fraud'),
               COALESCE(SUM(earned_amount), 0)
        FROM task_completions
    `
	var stats domain.CompletionStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.Completed, &stats.Pending, &stats.Failed, &stats.Fraud, &stats.TotalEarned,
	)
	if err != nil {
		zap.L().Error("can't get completion stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
