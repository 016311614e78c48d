package taskrepo

import (
	"context"

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

const taskColumns = `id, title, channel_name, video_thumbnail, video_length, required_actions,
	reward_amount, max_users, completed_count, is_enabled, created_at, updated_at`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID, &task.Title, &task.ChannelName, &task.VideoThumbnail, &task.VideoLength,
		&task.RequiredActions, &task.RewardAmount, &task.MaxUsers, &task.CompletedCount,
		&task.IsEnabled, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *Repository) ListEnabled(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE is_enabled = true ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *Repository) list(ctx context.Context, query string) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			zap.L().Error("can't scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *Repository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
        INSERT INTO tasks (title, channel_name, video_thumbnail, video_length, required_actions,
                           reward_amount, max_users, is_enabled)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, completed_count, created_at, updated_at
    `
	err := r.db.QueryRow(ctx, query,
		task.Title, task.ChannelName, task.VideoThumbnail, task.VideoLength,
		task.RequiredActions, task.RewardAmount, task.MaxUsers, task.IsEnabled,
	).Scan(&task.ID, &task.CompletedCount, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

// Update writes the editable columns. completed_count is owned by the reward
// engine and never appears here.
func (r *Repository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
        UPDATE tasks
        SET title = $1, channel_name = $2, video_thumbnail = $3, video_length = $4,
            required_actions = $5, reward_amount = $6, max_users = $7, is_enabled = $8,
            updated_at = now()
        WHERE id = $9
        RETURNING ` + taskColumns
	updated, err := scanTask(r.db.QueryRow(ctx, query,
		task.Title, task.ChannelName, task.VideoThumbnail, task.VideoLength,
		task.RequiredActions, task.RewardAmount, task.MaxUsers, task.IsEnabled, task.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update task", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete task", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) IncrementCompleted(ctx context.Context, id int) error {
	query := `
        UPDATE tasks
        SET completed_count = completed_count + 1
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment completed count", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Stats(ctx context.Context) (*domain.TaskStats, error) {
	query := `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE is_enabled)
        FROM tasks
    `
	var stats domain.TaskStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Active)
	if err != nil {
		zap.L().Error("can't get task stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
