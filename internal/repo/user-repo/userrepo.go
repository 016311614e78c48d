package userrepo

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

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, name, password_hash, role, status, balance, created_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.Role, &user.Status, &user.Balance, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, email, name, password_hash, role, status, balance, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.Role, &user.Status, &user.Balance, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (email, name, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, status, balance, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Email, user.Name, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.Status, &user.Balance, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, email, name, role, status, balance, created_at
        FROM users
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.Status, &user.Balance, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// UpdateStatus flips a user between active and suspended. Admin accounts are
// excluded at the SQL level, so a raced role change can never suspend one.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) (*domain.User, error) {
	query := `
        UPDATE users
        SET status = $1
        WHERE id = $2 AND role <> 'admin'
        RETURNING id, email, name, role, status, balance, created_at
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, status, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.Role, &user.Status, &user.Balance, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update user status", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Stats(ctx context.Context) (*domain.UserStats, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'active'),
               COUNT(*) FILTER (WHERE status = 'suspended')
        FROM users
        WHERE role = 'user'
    `
	var stats domain.UserStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Active, &stats.Suspended)
	if err != nil {
		zap.L().Error("can't get user stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
