package withdrawalrepo

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

var withdrawalRows = []string{
	"id", "user_id", "amount", "status", "payment_method", "payment_details",
	"admin_note", "created_at", "processed_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	amount := decimal.RequireFromString("50.00")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create fills generated fields",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "status", "created_at"}).
					AddRow(1, "pending", now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawals`)).
					WithArgs(2, amount, "paypal", "user@paypal.com").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawals`)).
					WithArgs(2, amount, "paypal", "user@paypal.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wd := &domain.Withdrawal{
				UserID: 2, Amount: amount, PaymentMethod: "paypal", PaymentDetails: "user@paypal.com",
			}
			result, err := repo.Create(context.Background(), wd)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, "pending", result.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	amount := decimal.RequireFromString("50.00")

	t.Run("Existing withdrawal", func(t *testing.T) {
		rows := pgxmock.NewRows(withdrawalRows).
			AddRow(1, 2, amount, "pending", "paypal", "user@paypal.com", nil, now, nil)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals`)).
			WithArgs(1).
			WillReturnRows(rows)

		result, err := repo.FindByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing withdrawal returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals`)).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	amount := decimal.RequireFromString("50.00")

	t.Run("Returns requests for user", func(t *testing.T) {
		rows := pgxmock.NewRows(withdrawalRows).
			AddRow(2, 2, amount, "approved", "bank", "DE00 1234", nil, now, &now).
			AddRow(1, 2, amount, "pending", "paypal", "user@paypal.com", nil, now, nil)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1`)).
			WithArgs(2).
			WillReturnRows(rows)

		result, err := repo.ListByUserID(context.Background(), 2)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1`)).
			WithArgs(2).
			WillReturnError(errors.New("database error"))

		result, err := repo.ListByUserID(context.Background(), 2)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	amount := decimal.RequireFromString("50.00")

	t.Run("Joins requester email and name", func(t *testing.T) {
		rows := pgxmock.NewRows(append(withdrawalRows, "email", "name")).
			AddRow(1, 2, amount, "pending", "paypal", "user@paypal.com", nil, now, nil,
				"user@example.com", "John")
		mock.ExpectQuery(regexp.QuoteMeta(`JOIN users u ON u.id = w.user_id`)).
			WillReturnRows(rows)

		result, err := repo.ListAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "user@example.com", result[0].UserEmail)
		assert.Equal(t, "John", result[0].UserName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Decide(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	amount := decimal.RequireFromString("50.00")
	note := "looks good"

	t.Run("Pending request decided once", func(t *testing.T) {
		rows := pgxmock.NewRows(withdrawalRows).
			AddRow(1, 2, amount, "approved", "paypal", "user@paypal.com", &note, now, &now)
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $4 AND status = 'pending'`)).
			WithArgs("approved", &note, now, 1).
			WillReturnRows(rows)

		result, err := repo.Decide(context.Background(), 1, "approved", &note, now)
		assert.NoError(t, err)
		assert.Equal(t, "approved", result.Status)
		assert.NotNil(t, result.ProcessedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already decided request returns nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $4 AND status = 'pending'`)).
			WithArgs("rejected", (*string)(nil), now, 1).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.Decide(context.Background(), 1, "rejected", nil, now)
		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Stats(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Returns counters", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"pending_count", "pending_amount", "approved_amount"}).
			AddRow(7, decimal.RequireFromString("105.00"), decimal.RequireFromString("900.00"))
		mock.ExpectQuery(regexp.QuoteMeta(`FILTER (WHERE status = 'pending')`)).
			WillReturnRows(rows)

		stats, err := repo.Stats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 7, stats.PendingCount)
		assert.True(t, stats.PendingAmount.Equal(decimal.RequireFromString("105.00")))
		assert.True(t, stats.ApprovedAmount.Equal(decimal.RequireFromString("900.00")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
