package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"watchearn/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	balance := decimal.RequireFromString("10.00")

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing email returns user",
			email: "user@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "status", "balance", "created_at"}).
					AddRow(1, "user@example.com", "John", "hash", "user", "active", balance, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
					WithArgs("user@example.com").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID: 1, Email: "user@example.com", Name: "John", PasswordHash: "hash",
				Role: "user", Status: "active", Balance: balance, CreatedAt: now,
			},
		},
		{
			name:  "Unknown email returns nil",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			email: "user@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
					WithArgs("user@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    int
	}{
		{
			name: "Returns count",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"count"}).AddRow(3)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    3,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Count(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create fills generated fields",
			user: &domain.User{Email: "user@example.com", Name: "John", PasswordHash: "hash", Role: "user"},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "status", "balance", "created_at"}).
					AddRow(1, "active", decimal.Zero, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, name, password_hash, role)`)).
					WithArgs("user@example.com", "John", "hash", "user").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{Email: "user@example.com", Name: "John", PasswordHash: "hash", Role: "user"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, name, password_hash, role)`)).
					WithArgs("user@example.com", "John", "hash", "user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, "active", result.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	balance := decimal.RequireFromString("10.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Suspends a regular user",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "name", "role", "status", "balance", "created_at"}).
					AddRow(2, "user@example.com", "John", "user", "suspended", balance, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND role <> 'admin'`)).
					WithArgs("suspended", 2).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID: 2, Email: "user@example.com", Name: "John",
				Role: "user", Status: "suspended", Balance: balance, CreatedAt: now,
			},
		},
		{
			name: "Admin account affects no rows",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND role <> 'admin'`)).
					WithArgs("suspended", 2).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $2 AND role <> 'admin'`)).
					WithArgs("suspended", 2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), 2, "suspended")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	t.Run("Returns all users", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "email", "name", "role", "status", "balance", "created_at"}).
			AddRow(1, "admin@example.com", "Admin", "admin", "active", decimal.Zero, now).
			AddRow(2, "user@example.com", "John", "user", "active", decimal.Zero, now)
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
			WillReturnRows(rows)

		result, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
			WillReturnError(errors.New("database error"))

		result, err := repo.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Stats(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Returns counters", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"total", "active", "suspended"}).AddRow(10, 8, 2)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE role = 'user'`)).
			WillReturnRows(rows)

		stats, err := repo.Stats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, &domain.UserStats{Total: 10, Active: 8, Suspended: 2}, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE role = 'user'`)).
			WillReturnError(errors.New("database error"))

		stats, err := repo.Stats(context.Background())
		assert.Error(t, err)
		assert.Nil(t, stats)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
